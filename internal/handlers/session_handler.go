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

// SessionHandler - структура для обработки HTTP-запросов к сессиям торгов.
type SessionHandler struct {
	Service *services.SessionService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewSessionHandler создает новый экземпляр SessionHandler.
func NewSessionHandler(service *services.SessionService, logger *log.Logger, timeout time.Duration) *SessionHandler {
	return &SessionHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

type submitResponse struct {
	Result  models.SubmitResult    `json:"result"`
	Session models.SessionSnapshot `json:"session"`
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, http.StatusCreated, h.Service.CreateSession())
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Service.GetSession(r.PathValue("sessionId"))
	h.respond(w, snapshot, err)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSession(r.PathValue("sessionId")); err != nil {
		sendServiceError(w, h.Logger, err, "failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectJob обрабатывает выбор заказа в сессии.
func (h *SessionHandler) SelectJob(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var req models.SessionJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snapshot, err := h.Service.SelectJob(ctx, r.PathValue("sessionId"), req.JobID)
	h.respond(w, snapshot, err)
}

// OpenBid обрабатывает открытие диалога предложения.
func (h *SessionHandler) OpenBid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var req models.SessionJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snapshot, err := h.Service.OpenBid(ctx, r.PathValue("sessionId"), req.JobID)
	h.respond(w, snapshot, err)
}

// SetAmount обрабатывает ввод суммы предложения.
func (h *SessionHandler) SetAmount(w http.ResponseWriter, r *http.Request) {
	var req models.BidRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snapshot, err := h.Service.SetAmount(r.PathValue("sessionId"), req.Amount)
	h.respond(w, snapshot, err)
}

func (h *SessionHandler) CancelBid(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Service.CancelBid(r.PathValue("sessionId"))
	h.respond(w, snapshot, err)
}

// SubmitBid обрабатывает отправку предложения из диалога.
func (h *SessionHandler) SubmitBid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	result, snapshot, err := h.Service.SubmitBid(ctx, r.PathValue("sessionId"))
	if err != nil {
		sendServiceError(w, h.Logger, err, "failed to submit bid")
		return
	}
	if !result.Succeeded() {
		h.Logger.Printf("session %s: bid rejected: %s: %s", snapshot.ID, result.Outcome, result.Reason)
	}
	utils.SendJSON(w, submitStatus(result), submitResponse{Result: result, Session: snapshot})
}

func (h *SessionHandler) respond(w http.ResponseWriter, snapshot models.SessionSnapshot, err error) {
	if err != nil {
		sendServiceError(w, h.Logger, err, "session operation failed")
		return
	}
	utils.SendJSON(w, http.StatusOK, snapshot)
}
