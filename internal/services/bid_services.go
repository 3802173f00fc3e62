package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/senyabanana/towbid-service/internal/models"
	"github.com/senyabanana/towbid-service/internal/repository"
	"github.com/senyabanana/towbid-service/internal/utils"
)

var ErrInvalidBidAmount = errors.New("bid amount must be a number greater than zero")

// ValidateBidAmount разбирает введённую сумму. Сумма должна быть конечным числом больше нуля.
func ValidateBidAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidBidAmount
	}
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidBidAmount
	}
	return amount, nil
}

// BidSubmitter принимает предложение по заказу.
type BidSubmitter interface {
	SubmitBid(ctx context.Context, jobId, amount string) models.SubmitResult
}

type BidService struct {
	Repo repository.BidRepository
}

// NewBidService создает новый экземпляр BidService.
func NewBidService(repo repository.BidRepository) *BidService {
	return &BidService{Repo: repo}
}

// SubmitBid проверяет сумму и сохраняет предложение.
// Статус заказа не проверяется.
func (s *BidService) SubmitBid(ctx context.Context, jobId, amount string) models.SubmitResult {
	if jobId == "" {
		return models.SubmitResult{Outcome: models.BidValidationError, Reason: "missing job id"}
	}
	value, err := ValidateBidAmount(amount)
	if err != nil {
		return models.SubmitResult{Outcome: models.BidValidationError, Reason: err.Error()}
	}

	bid, err := s.Repo.CreateBid(ctx, jobId, value)
	if errors.Is(err, repository.ErrJobNotFound) {
		return models.SubmitResult{Outcome: models.BidValidationError, Reason: models.ReasonJobNotFound}
	}
	if err != nil {
		return models.SubmitResult{Outcome: models.BidTransportError, Reason: fmt.Sprintf("failed to submit bid: %v", err)}
	}
	return models.SubmitResult{Outcome: models.BidSucceeded, Bid: bid}
}

// GetJobBids получает список предложений по заказу.
func (s *BidService) GetJobBids(ctx context.Context, jobId, limitStr, offsetStr string) ([]models.Bid, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusBadRequest, err.Error())
	}
	return s.Repo.GetJobBids(ctx, jobId, limit, offset)
}
