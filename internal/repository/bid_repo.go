package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/senyabanana/towbid-service/internal/models"
	"github.com/senyabanana/towbid-service/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository - интерфейс для работы с предложениями.
type BidRepository interface {
	CreateBid(ctx context.Context, jobId string, amount float64) (*models.Bid, error)
	GetJobBids(ctx context.Context, jobId string, limit, offset int) ([]models.Bid, error)
}

// PostgresBidRepository - реализация BidRepository для базы данных.
type PostgresBidRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresBidRepository создает новый экземпляр PostgresBidRepository.
func NewPostgresBidRepository(db *pgxpool.Pool) *PostgresBidRepository {
	return &PostgresBidRepository{DB: db}
}

// CreateBid сохраняет новое предложение по заказу.
func (r *PostgresBidRepository) CreateBid(ctx context.Context, jobId string, amount float64) (*models.Bid, error) {
	exists, err := utils.CheckJobExists(ctx, r.DB, jobId)
	if err != nil {
		return nil, fmt.Errorf("failed to check job: %w", err)
	}
	if !exists {
		return nil, ErrJobNotFound
	}

	newBid := models.Bid{
		ID:        uuid.New().String(),
		JobID:     jobId,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	insertQuery := `INSERT INTO bid (id, job_id, amount, created_at) VALUES ($1, $2, $3, $4)`
	_, err = r.DB.Exec(ctx, insertQuery, newBid.ID, newBid.JobID, newBid.Amount, newBid.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bid: %w", err)
	}
	return &newBid, nil
}

// GetJobBids возвращает список предложений по заказу, новые первыми.
func (r *PostgresBidRepository) GetJobBids(ctx context.Context, jobId string, limit, offset int) ([]models.Bid, error) {
	query := `
		SELECT id, job_id, amount, created_at
		FROM bid
		WHERE job_id = $1
		ORDER BY created_at DESC
		LIMIT NULLIF($2, 0) OFFSET $3`
	rows, err := r.DB.Query(ctx, query, jobId, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bids: %w", err)
	}
	defer rows.Close()

	bids := make([]models.Bid, 0)
	for rows.Next() {
		var bid models.Bid
		if err := rows.Scan(&bid.ID, &bid.JobID, &bid.Amount, &bid.CreatedAt); err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

// MemoryBidRepository хранит предложения в памяти процесса.
type MemoryBidRepository struct {
	jobs JobRepository

	mu   sync.Mutex
	bids []models.Bid
	now  func() time.Time
}

// NewMemoryBidRepository создаёт хранилище предложений, проверяющее заказы через jobs.
func NewMemoryBidRepository(jobs JobRepository) *MemoryBidRepository {
	return &MemoryBidRepository{
		jobs: jobs,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryBidRepository) CreateBid(ctx context.Context, jobId string, amount float64) (*models.Bid, error) {
	if _, err := r.jobs.GetJob(ctx, jobId); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	newBid := models.Bid{
		ID:        uuid.New().String(),
		JobID:     jobId,
		Amount:    amount,
		CreatedAt: r.now(),
	}
	r.bids = append(r.bids, newBid)
	return &newBid, nil
}

func (r *MemoryBidRepository) GetJobBids(ctx context.Context, jobId string, limit, offset int) ([]models.Bid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bids := make([]models.Bid, 0)
	for i := len(r.bids) - 1; i >= 0; i-- {
		if r.bids[i].JobID == jobId {
			bids = append(bids, r.bids[i])
		}
	}
	if offset >= len(bids) {
		return bids[:0], nil
	}
	bids = bids[offset:]
	if limit > 0 && limit < len(bids) {
		bids = bids[:limit]
	}
	return bids, nil
}
