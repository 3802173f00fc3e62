package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/senyabanana/towbid-service/internal/db"
	"github.com/senyabanana/towbid-service/internal/handlers"
	"github.com/senyabanana/towbid-service/internal/repository"
	"github.com/senyabanana/towbid-service/internal/router"
	"github.com/senyabanana/towbid-service/internal/router/config"
	"github.com/senyabanana/towbid-service/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "INFO: ", log.LstdFlags)

	jobRepo, bidRepo, closeStore := initRepositories(ctx, cfg)
	defer closeStore()

	jobService := services.NewJobService(jobRepo)
	bidService := services.NewBidService(bidRepo)
	sessionService := services.NewSessionService(services.NewSessionStore(), jobRepo, bidService)

	jobHandler := handlers.NewJobHandler(jobService, logger, cfg.RequestTimeout)
	bidHandler := handlers.NewBidHandler(bidService, logger, cfg.RequestTimeout)
	sessionHandler := handlers.NewSessionHandler(sessionService, logger, cfg.RequestTimeout)

	bidLimiter := rate.NewLimiter(rate.Limit(cfg.BidRateLimit), cfg.BidRateBurst)
	sessionLimiter := rate.NewLimiter(rate.Limit(cfg.SessionRateLimit), cfg.SessionRateBurst)
	routes := router.InitRoutes(jobHandler, bidHandler, sessionHandler, bidLimiter, sessionLimiter, logger)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           routes,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("server is listening on %s (job source: %s)...", cfg.ServerAddress, cfg.JobSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
	log.Println("server stopped")
}

// initRepositories выбирает источник заказов и приёмник предложений по JOB_SOURCE.
func initRepositories(ctx context.Context, cfg config.Config) (repository.JobRepository, repository.BidRepository, func()) {
	if cfg.JobSource == config.MemorySource {
		jobs, err := repository.LoadJobsFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("cannot load jobs: %v", err)
		}
		jobRepo, err := repository.NewMemoryJobRepository(jobs)
		if err != nil {
			log.Fatalf("invalid jobs: %v", err)
		}
		return jobRepo, repository.NewMemoryBidRepository(jobRepo), func() {}
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(ctx, cfg)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	return repository.NewPostgresJobRepository(dbPool), repository.NewPostgresBidRepository(dbPool), dbPool.Close
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance", err)
	}

	if err = migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
