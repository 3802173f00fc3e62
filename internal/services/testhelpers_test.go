package services

import (
	"context"
	"testing"

	"github.com/senyabanana/towbid-service/internal/models"
	"github.com/senyabanana/towbid-service/internal/repository"
)

func sampleJobRepo(t *testing.T) *repository.MemoryJobRepository {
	t.Helper()
	jobs, err := repository.DefaultJobs()
	if err != nil {
		t.Fatal(err)
	}
	repo, err := repository.NewMemoryJobRepository(jobs)
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

func mustJob(t *testing.T, repo repository.JobRepository, id string) models.Job {
	t.Helper()
	job, err := repo.GetJob(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	return *job
}

// recordingSink запоминает вызовы и возвращает заданный исход.
type recordingSink struct {
	calls   []submitCall
	outcome models.BidOutcome
}

type submitCall struct {
	jobId  string
	amount string
}

func (r *recordingSink) SubmitBid(_ context.Context, jobId, amount string) models.SubmitResult {
	r.calls = append(r.calls, submitCall{jobId: jobId, amount: amount})
	if r.outcome == "" || r.outcome == models.BidSucceeded {
		return models.SubmitResult{Outcome: models.BidSucceeded, Bid: &models.Bid{ID: "b1", JobID: jobId}}
	}
	return models.SubmitResult{Outcome: r.outcome, Reason: "sink failure"}
}
