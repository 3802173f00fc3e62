package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/senyabanana/towbid-service/internal/models"
	"github.com/senyabanana/towbid-service/internal/services"
	"github.com/senyabanana/towbid-service/internal/utils"
)

// BidHandler - структура для обработки HTTP-запросов к предложениям.
type BidHandler struct {
	Service *services.BidService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewBidHandler создает новый экземпляр BidHandler.
func NewBidHandler(service *services.BidService, logger *log.Logger, timeout time.Duration) *BidHandler {
	return &BidHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// SubmitBid обрабатывает запросы на отправку предложения по заказу.
func (h *BidHandler) SubmitBid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var bidReq models.BidRequest
	if !decodeJSON(w, r, &bidReq) {
		return
	}

	result := h.Service.SubmitBid(ctx, r.PathValue("jobId"), bidReq.Amount)
	if !result.Succeeded() {
		h.Logger.Printf("bid for job %s rejected: %s: %s", r.PathValue("jobId"), result.Outcome, result.Reason)
	}
	utils.SendJSON(w, submitStatus(result), result)
}

// GetJobBids обрабатывает запросы на получение списка предложений по заказу.
func (h *BidHandler) GetJobBids(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	bids, err := h.Service.GetJobBids(ctx,
		r.PathValue("jobId"),
		r.URL.Query().Get("limit"),
		r.URL.Query().Get("offset"))
	if err != nil {
		sendServiceError(w, h.Logger, err, "failed to retrieve bids for job")
		return
	}

	utils.SendJSON(w, http.StatusOK, bids)
}
