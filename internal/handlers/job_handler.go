package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/senyabanana/towbid-service/internal/services"
	"github.com/senyabanana/towbid-service/internal/utils"
)

// JobHandler - структура для обработки HTTP-запросов к заказам.
type JobHandler struct {
	Service *services.JobService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewJobHandler создает новый экземпляр JobHandler.
func NewJobHandler(service *services.JobService, logger *log.Logger, timeout time.Duration) *JobHandler {
	return &JobHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// ListJobs обрабатывает запросы на получение списка заказов.
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	params := r.URL.Query()
	resp, err := h.Service.ListJobs(ctx,
		params.Get("urgency"),
		params.Get("q"),
		params["status"],
		params.Get("limit"),
		params.Get("offset"))
	if err != nil {
		sendServiceError(w, h.Logger, err, "failed to retrieve jobs")
		return
	}

	utils.SendJSON(w, http.StatusOK, resp)
}

// GetJob обрабатывает запросы на получение заказа.
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	job, err := h.Service.GetJob(ctx, r.PathValue("jobId"))
	if err != nil {
		sendServiceError(w, h.Logger, err, "failed to retrieve job")
		return
	}

	utils.SendJSON(w, http.StatusOK, job)
}
