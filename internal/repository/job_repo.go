package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/senyabanana/towbid-service/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// JobRepository - источник заказов.
type JobRepository interface {
	// ListJobs возвращает страницу заказов и общее число подходящих заказов до пагинации.
	ListJobs(ctx context.Context, criteria models.JobCriteria) ([]models.Job, int, error)
	GetJob(ctx context.Context, jobId string) (*models.Job, error)
}

const jobColumns = `id, pickup_location, dropoff_location, vehicle_type, date_time, urgency, distance, estimated_duration, COALESCE(photo_url, ''), status`

// PostgresJobRepository - реализация JobRepository для базы данных.
type PostgresJobRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresJobRepository создаёт новый экземпляр PostgresJobRepository.
func NewPostgresJobRepository(db *pgxpool.Pool) *PostgresJobRepository {
	return &PostgresJobRepository{DB: db}
}

// ListJobs возвращает заказы, подходящие под критерии, в порядке добавления.
func (r *PostgresJobRepository) ListJobs(ctx context.Context, criteria models.JobCriteria) ([]models.Job, int, error) {
	var where string
	var filters []string
	var args []interface{}
	argIndex := 1

	if criteria.Urgency != "" && criteria.Urgency != models.AllUrgencies {
		filters = append(filters, fmt.Sprintf("urgency = $%d", argIndex))
		args = append(args, string(criteria.Urgency))
		argIndex++
	}

	if criteria.Query != "" {
		filters = append(filters, fmt.Sprintf(
			"(pickup_location ILIKE $%[1]d OR dropoff_location ILIKE $%[1]d OR vehicle_type ILIKE $%[1]d)", argIndex))
		args = append(args, "%"+escapeLike(criteria.Query)+"%")
		argIndex++
	}

	if len(criteria.Statuses) > 0 {
		statuses := make([]string, 0, len(criteria.Statuses))
		for _, s := range criteria.Statuses {
			statuses = append(statuses, string(s))
		}
		filters = append(filters, fmt.Sprintf("status = ANY($%d)", argIndex))
		args = append(args, pq.Array(statuses))
		argIndex++
	}

	if len(filters) > 0 {
		where = " WHERE " + strings.Join(filters, " AND ")
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM job`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := `SELECT ` + jobColumns + ` FROM job` + where + " ORDER BY position"
	if criteria.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, criteria.Limit)
		argIndex++
	}
	query += fmt.Sprintf(" OFFSET $%d", argIndex)
	args = append(args, criteria.Offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, total, nil
}

// GetJob возвращает заказ по ID.
func (r *PostgresJobRepository) GetJob(ctx context.Context, jobId string) (*models.Job, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+jobColumns+` FROM job WHERE id = $1`, jobId)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	return job, err
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	if err := row.Scan(
		&job.ID,
		&job.PickupLocation,
		&job.DropoffLocation,
		&job.VehicleType,
		&job.DateTime,
		&job.Urgency,
		&job.Distance,
		&job.EstimatedDuration,
		&job.PhotoURL,
		&job.Status); err != nil {
		return nil, err
	}
	return &job, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE, чтобы запрос искал подстроку буквально.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
