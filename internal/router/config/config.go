package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

const (
	PostgresSource = "postgres"
	MemorySource   = "memory"
)

// Config - структура для хранения конфигураций приложения
type Config struct {
	ServerAddress  string        `mapstructure:"SERVER_ADDRESS"`
	PostgresConn   string        `mapstructure:"POSTGRES_CONN"`
	PostgresUser   string        `mapstructure:"POSTGRES_USERNAME"`
	PostgresPass   string        `mapstructure:"POSTGRES_PASSWORD"`
	PostgresHost   string        `mapstructure:"POSTGRES_HOST"`
	PostgresPort   string        `mapstructure:"POSTGRES_PORT"`
	PostgresDB     string        `mapstructure:"POSTGRES_DATABASE"`
	MigrationURL   string        `mapstructure:"MIGRATION_URL"`
	JobSource      string        `mapstructure:"JOB_SOURCE"`
	SeedFile       string        `mapstructure:"SEED_FILE"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	BidRateLimit   float64       `mapstructure:"BID_RATE_LIMIT"`
	BidRateBurst   int           `mapstructure:"BID_RATE_BURST"`

	// Ограничение на создание сессий, сессии живут в памяти до удаления.
	SessionRateLimit float64 `mapstructure:"SESSION_RATE_LIMIT"`
	SessionRateBurst int     `mapstructure:"SESSION_RATE_BURST"`
}

var keys = []string{
	"SERVER_ADDRESS", "POSTGRES_CONN", "POSTGRES_USERNAME", "POSTGRES_PASSWORD",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_DATABASE", "MIGRATION_URL",
	"JOB_SOURCE", "SEED_FILE", "REQUEST_TIMEOUT", "BID_RATE_LIMIT", "BID_RATE_BURST",
	"SESSION_RATE_LIMIT", "SESSION_RATE_BURST",
}

// LoadConfig загружает конфигурацию из файла app.env в path и переменных окружения.
// Отсутствие файла не считается ошибкой.
func LoadConfig(path string) (cfg Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("MIGRATION_URL", "file://migrations")
	v.SetDefault("JOB_SOURCE", MemorySource)
	v.SetDefault("REQUEST_TIMEOUT", 5*time.Second)
	v.SetDefault("BID_RATE_LIMIT", 5.0)
	v.SetDefault("BID_RATE_BURST", 10)
	v.SetDefault("SESSION_RATE_LIMIT", 1.0)
	v.SetDefault("SESSION_RATE_BURST", 5)

	v.AutomaticEnv()
	// Unmarshal видит только известные ключи, поэтому явно связываем их с окружением.
	for _, key := range keys {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
	}
	if err = v.Unmarshal(&cfg); err != nil {
		return
	}
	err = cfg.Validate()
	return
}

// Validate проверяет согласованность параметров.
func (c Config) Validate() error {
	switch c.JobSource {
	case MemorySource:
	case PostgresSource:
		if c.PostgresConn == "" {
			return errors.New("POSTGRES_CONN is required for postgres job source")
		}
	default:
		return errors.New("JOB_SOURCE must be either postgres or memory")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	if c.BidRateLimit <= 0 || c.BidRateBurst <= 0 {
		return errors.New("BID_RATE_LIMIT and BID_RATE_BURST must be positive")
	}
	if c.SessionRateLimit <= 0 || c.SessionRateBurst <= 0 {
		return errors.New("SESSION_RATE_LIMIT and SESSION_RATE_BURST must be positive")
	}
	return nil
}
