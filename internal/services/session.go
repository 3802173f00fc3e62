package services

import (
	"context"
	"errors"

	"github.com/senyabanana/towbid-service/internal/models"
)

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrSessionNotFound   = errors.New("session not found")
)

// BiddingSession - состояние выбора заказа и диалога предложения одного водителя.
// В состояниях selected и bidding job всегда задан, в idle - всегда nil.
type BiddingSession struct {
	ID string

	state  models.SessionState
	job    *models.Job
	prior  *models.Job // выбор до открытия диалога, восстанавливается при отмене
	amount string
}

// NewBiddingSession создаёт сессию в состоянии idle.
func NewBiddingSession(id string) *BiddingSession {
	return &BiddingSession{ID: id, state: models.SessionIdle}
}

func (s *BiddingSession) State() models.SessionState {
	return s.state
}

// Job возвращает копию выбранного заказа (или заказа в открытом диалоге).
func (s *BiddingSession) Job() *models.Job {
	if s.job == nil {
		return nil
	}
	job := *s.job
	return &job
}

func (s *BiddingSession) Amount() string {
	return s.amount
}

// Select выбирает заказ. Недопустимо при открытом диалоге.
func (s *BiddingSession) Select(job models.Job) error {
	if s.state == models.SessionBidding {
		return ErrInvalidTransition
	}
	s.state = models.SessionSelected
	s.job = &job
	s.prior = nil
	s.amount = ""
	return nil
}

// OpenBid открывает диалог предложения для заказа из любого состояния.
// Заказ одновременно становится выбранным.
func (s *BiddingSession) OpenBid(job models.Job) {
	if s.state != models.SessionBidding {
		s.prior = s.job
	}
	s.state = models.SessionBidding
	s.job = &job
	s.amount = ""
}

// SetAmount сохраняет введённую сумму.
func (s *BiddingSession) SetAmount(text string) error {
	if s.state != models.SessionBidding {
		return ErrInvalidTransition
	}
	s.amount = text
	return nil
}

// CanSubmit сообщает, можно ли отправить предложение.
func (s *BiddingSession) CanSubmit() bool {
	if s.state != models.SessionBidding {
		return false
	}
	_, err := ValidateBidAmount(s.amount)
	return err == nil
}

// Cancel закрывает диалог и возвращает прежний выбор, если он был.
func (s *BiddingSession) Cancel() error {
	if s.state != models.SessionBidding {
		return ErrInvalidTransition
	}
	s.amount = ""
	s.job = s.prior
	s.prior = nil
	if s.job == nil {
		s.state = models.SessionIdle
	} else {
		s.state = models.SessionSelected
	}
	return nil
}

// Submit отправляет предложение. После успеха сессия возвращается в idle,
// после ошибки транспорта остаётся в диалоге с введённой суммой.
func (s *BiddingSession) Submit(ctx context.Context, sink BidSubmitter) (models.SubmitResult, error) {
	if s.state != models.SessionBidding {
		return models.SubmitResult{}, ErrInvalidTransition
	}
	if !s.CanSubmit() {
		return models.SubmitResult{Outcome: models.BidValidationError, Reason: ErrInvalidBidAmount.Error()}, nil
	}

	result := sink.SubmitBid(ctx, s.job.ID, s.amount)
	if result.Succeeded() {
		s.state = models.SessionIdle
		s.job = nil
		s.prior = nil
		s.amount = ""
	}
	return result, nil
}

// Snapshot возвращает представление сессии для клиента.
func (s *BiddingSession) Snapshot() models.SessionSnapshot {
	return models.SessionSnapshot{
		ID:        s.ID,
		State:     s.state,
		Job:       s.Job(),
		Amount:    s.amount,
		CanSubmit: s.CanSubmit(),
	}
}
