package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/senyabanana/towbid-service/internal/models"
)

func TestDefaultJobs(t *testing.T) {
	jobs, err := DefaultJobs()
	if err != nil {
		t.Fatalf("DefaultJobs() error: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 sample jobs, got %d", len(jobs))
	}

	wantUrgency := []models.Urgency{models.HighUrgency, models.MediumUrgency, models.LowUrgency}
	for i, job := range jobs {
		if job.Urgency != wantUrgency[i] {
			t.Errorf("job %s urgency = %q, want %q", job.ID, job.Urgency, wantUrgency[i])
		}
		if job.Status != models.OpenJob {
			t.Errorf("job %s status = %q, want open", job.ID, job.Status)
		}
	}
	if jobs[1].PhotoURL != "" {
		t.Errorf("job 2 should have no photo, got %q", jobs[1].PhotoURL)
	}
}

func TestNewMemoryJobRepositoryRejectsDuplicates(t *testing.T) {
	jobs := []models.Job{{ID: "1"}, {ID: "2"}, {ID: "1"}}
	_, err := NewMemoryJobRepository(jobs)
	if !errors.Is(err, ErrDuplicateJob) {
		t.Fatalf("expected ErrDuplicateJob, got %v", err)
	}

	if _, err := NewMemoryJobRepository([]models.Job{{ID: ""}}); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestLoadJobs(t *testing.T) {
	src := `
jobs:
  - id: "a"
    pickupLocation: "1 First St"
    dropoffLocation: "2 Second St"
    vehicleType: "Van"
    urgency: medium
    status: assigned
`
	jobs, err := LoadJobs(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadJobs() error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "a" || jobs[0].Status != models.AssignedJob {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}

	bad := strings.Replace(src, "medium", "urgent", 1)
	if _, err := LoadJobs(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for invalid urgency")
	}
}

func TestDefaultJobsValidatesFixture(t *testing.T) {
	saved := defaultJobsYAML
	t.Cleanup(func() { defaultJobsYAML = saved })

	defaultJobsYAML = []byte(`
jobs:
  - id: "x"
    urgency: urgent
    status: open
`)
	if _, err := DefaultJobs(); err == nil {
		t.Fatal("expected error for invalid urgency in embedded fixture")
	}

	defaultJobsYAML = []byte(`
jobs:
  - id: "x"
    urgency: low
    status: cancelled
`)
	if _, err := DefaultJobs(); err == nil {
		t.Fatal("expected error for invalid status in embedded fixture")
	}
}

func newSampleRepo(t *testing.T) *MemoryJobRepository {
	t.Helper()
	jobs, err := DefaultJobs()
	if err != nil {
		t.Fatal(err)
	}
	repo, err := NewMemoryJobRepository(jobs)
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

func TestMemoryJobRepositoryListJobs(t *testing.T) {
	repo := newSampleRepo(t)
	ctx := context.Background()

	all, total, err := repo.ListJobs(ctx, models.JobCriteria{Urgency: models.AllUrgencies})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(all) != 3 || all[0].ID != "1" || all[1].ID != "2" || all[2].ID != "3" {
		t.Fatalf("unexpected order: %+v", all)
	}

	high, total, err := repo.ListJobs(ctx, models.JobCriteria{Urgency: "high"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(high) != 1 || high[0].ID != "1" {
		t.Fatalf("expected only job 1, got %+v (total %d)", high, total)
	}
}

func TestMemoryJobRepositoryTotalIgnoresPaging(t *testing.T) {
	repo := newSampleRepo(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		criteria  models.JobCriteria
		wantLen   int
		wantTotal int
	}{
		{"first page", models.JobCriteria{Limit: 1}, 1, 3},
		{"middle page", models.JobCriteria{Limit: 1, Offset: 1}, 1, 3},
		{"past the end", models.JobCriteria{Offset: 5}, 0, 3},
		{"filtered past the end", models.JobCriteria{Urgency: "low", Offset: 1}, 0, 1},
		{"no matches", models.JobCriteria{Query: "nowhere"}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, total, err := repo.ListJobs(ctx, tt.criteria)
			if err != nil {
				t.Fatal(err)
			}
			if len(jobs) != tt.wantLen || total != tt.wantTotal {
				t.Errorf("got %d jobs, total %d; want %d jobs, total %d", len(jobs), total, tt.wantLen, tt.wantTotal)
			}
		})
	}
}

func TestMemoryJobRepositoryReturnsCopies(t *testing.T) {
	repo := newSampleRepo(t)
	ctx := context.Background()

	list, _, _ := repo.ListJobs(ctx, models.JobCriteria{})
	list[0].Status = models.CompletedJob

	job, err := repo.GetJob(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	job.Status = models.AssignedJob

	again, _ := repo.GetJob(ctx, "1")
	if again.Status != models.OpenJob {
		t.Errorf("stored job status changed to %q", again.Status)
	}
}

func TestMemoryJobRepositoryGetJobNotFound(t *testing.T) {
	repo := newSampleRepo(t)
	if _, err := repo.GetJob(context.Background(), "42"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestMemoryJobRepositoryHonoursContext(t *testing.T) {
	repo := newSampleRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := repo.ListJobs(ctx, models.JobCriteria{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
