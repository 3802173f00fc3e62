package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/senyabanana/towbid-service/internal/models"
	"github.com/senyabanana/towbid-service/internal/repository"
	"github.com/senyabanana/towbid-service/internal/utils"
)

const (
	noMatchesMessage = "No jobs match your criteria"
	noMatchesHint    = "Try adjusting your filters or search query"
)

type JobService struct {
	Repo repository.JobRepository
}

// NewJobService создаёт новый экземпляр JobService.
func NewJobService(repo repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// ListJobs получает список заказов с фильтром по срочности и поиском по тексту.
func (s *JobService) ListJobs(ctx context.Context, urgencyStr, query string, statusValues []string, limitStr, offsetStr string) (*models.JobListResponse, error) {
	urgency, err := models.ParseUrgencyFilter(urgencyStr)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusBadRequest, err.Error())
	}

	statuses, err := models.ParseJobStatuses(statusValues)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusBadRequest, err.Error())
	}

	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusBadRequest, err.Error())
	}

	jobs, total, err := s.Repo.ListJobs(ctx, models.JobCriteria{
		Urgency:  urgency,
		Query:    query,
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, models.WrapErrorResponse(http.StatusInternalServerError, "failed to retrieve jobs", err)
	}

	resp := &models.JobListResponse{Jobs: jobs, Total: total}
	if len(jobs) == 0 {
		resp.Jobs = []models.Job{}
	}
	// Пустая страница за концом списка - не то же самое, что отсутствие совпадений.
	if total == 0 {
		resp.NoMatches = true
		resp.Message = noMatchesMessage
		resp.Hint = noMatchesHint
	}
	return resp, nil
}

// GetJob получает заказ по ID.
func (s *JobService) GetJob(ctx context.Context, jobId string) (*models.Job, error) {
	if jobId == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required path parameter: jobId")
	}
	job, err := s.Repo.GetJob(ctx, jobId)
	if errors.Is(err, repository.ErrJobNotFound) {
		return nil, models.NewErrorResponse(http.StatusNotFound, "job not found")
	}
	if err != nil {
		return nil, models.WrapErrorResponse(http.StatusInternalServerError, "failed to retrieve job", err)
	}
	return job, nil
}
