package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/senyabanana/towbid-service/internal/models"
	"github.com/senyabanana/towbid-service/internal/utils"
)

// sendServiceError отправляет ErrorResponse как есть, остальные ошибки - как 500 с сообщением fallback.
func sendServiceError(w http.ResponseWriter, logger *log.Logger, err error, fallback string) {
	logger.Println(err)
	var errorResponse *models.ErrorResponse
	if errors.As(err, &errorResponse) {
		utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
		return
	}
	utils.SendErrorResponse(w, http.StatusInternalServerError, fallback)
}

// submitStatus сопоставляет исход отправки предложения с HTTP-статусом.
func submitStatus(result models.SubmitResult) int {
	switch result.Outcome {
	case models.BidSucceeded:
		return http.StatusOK
	case models.BidValidationError:
		if result.Reason == models.ReasonJobNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
