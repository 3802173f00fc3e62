package repository

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/senyabanana/towbid-service/internal/filter"
	"github.com/senyabanana/towbid-service/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed/jobs.yaml
var defaultJobsYAML []byte

type jobFixture struct {
	Jobs []models.Job `yaml:"jobs"`
}

// MemoryJobRepository - реализация JobRepository поверх неизменяемого набора заказов.
type MemoryJobRepository struct {
	jobs  []models.Job
	index map[string]int
}

// NewMemoryJobRepository создаёт хранилище заказов. ID заказов должны быть уникальны.
func NewMemoryJobRepository(jobs []models.Job) (*MemoryJobRepository, error) {
	repo := &MemoryJobRepository{
		jobs:  make([]models.Job, len(jobs)),
		index: make(map[string]int, len(jobs)),
	}
	copy(repo.jobs, jobs)
	for i, job := range repo.jobs {
		if job.ID == "" {
			return nil, fmt.Errorf("job at position %d has empty id", i)
		}
		if _, ok := repo.index[job.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateJob, job.ID)
		}
		repo.index[job.ID] = i
	}
	return repo, nil
}

// DefaultJobs возвращает демонстрационный набор заказов.
func DefaultJobs() ([]models.Job, error) {
	jobs, err := LoadJobs(bytes.NewReader(defaultJobsYAML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse default jobs: %w", err)
	}
	return jobs, nil
}

// LoadJobs читает набор заказов в формате YAML.
func LoadJobs(r io.Reader) ([]models.Job, error) {
	var fixture jobFixture
	if err := yaml.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	for _, job := range fixture.Jobs {
		if !job.Urgency.Valid() {
			return nil, fmt.Errorf("job %s: invalid urgency %q", job.ID, job.Urgency)
		}
		if !job.Status.Valid() {
			return nil, fmt.Errorf("job %s: invalid status %q", job.ID, job.Status)
		}
	}
	return fixture.Jobs, nil
}

// LoadJobsFile читает набор заказов из файла. Пустой путь означает демонстрационный набор.
func LoadJobsFile(path string) ([]models.Job, error) {
	if path == "" {
		return DefaultJobs()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadJobs(f)
}

func (r *MemoryJobRepository) ListJobs(ctx context.Context, criteria models.JobCriteria) ([]models.Job, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	matched := filter.Match(r.jobs, criteria)
	return filter.Page(matched, criteria.Limit, criteria.Offset), len(matched), nil
}

func (r *MemoryJobRepository) GetJob(ctx context.Context, jobId string) (*models.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.index[jobId]
	if !ok {
		return nil, ErrJobNotFound
	}
	job := r.jobs[i]
	return &job, nil
}
