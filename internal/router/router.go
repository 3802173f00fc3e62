package router

import (
	"log"
	"net/http"

	"github.com/senyabanana/towbid-service/internal/handlers"

	"golang.org/x/time/rate"
)

// InitRoutes регистрирует маршруты API. Отправка предложений ограничена bidLimiter,
// создание сессий - sessionLimiter.
func InitRoutes(
	jobHandler *handlers.JobHandler,
	bidHandler *handlers.BidHandler,
	sessionHandler *handlers.SessionHandler,
	bidLimiter *rate.Limiter,
	sessionLimiter *rate.Limiter,
	logger *log.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/ping", handlers.PingHandler)
	mux.HandleFunc("GET /api/landing", handlers.LandingHandler)

	mux.HandleFunc("GET /api/jobs", jobHandler.ListJobs)
	mux.HandleFunc("GET /api/jobs/{jobId}", jobHandler.GetJob)
	mux.HandleFunc("POST /api/jobs/{jobId}/bids", handlers.RateLimit(bidLimiter, bidHandler.SubmitBid))
	mux.HandleFunc("GET /api/jobs/{jobId}/bids", bidHandler.GetJobBids)

	mux.HandleFunc("POST /api/sessions", handlers.RateLimit(sessionLimiter, sessionHandler.CreateSession))
	mux.HandleFunc("GET /api/sessions/{sessionId}", sessionHandler.GetSession)
	mux.HandleFunc("DELETE /api/sessions/{sessionId}", sessionHandler.DeleteSession)
	mux.HandleFunc("POST /api/sessions/{sessionId}/select", sessionHandler.SelectJob)
	mux.HandleFunc("POST /api/sessions/{sessionId}/bid", sessionHandler.OpenBid)
	mux.HandleFunc("PUT /api/sessions/{sessionId}/bid/amount", sessionHandler.SetAmount)
	mux.HandleFunc("POST /api/sessions/{sessionId}/bid/cancel", sessionHandler.CancelBid)
	mux.HandleFunc("POST /api/sessions/{sessionId}/bid/submit", handlers.RateLimit(bidLimiter, sessionHandler.SubmitBid))

	return handlers.LogRequests(logger, mux)
}
