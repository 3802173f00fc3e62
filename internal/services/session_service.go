package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/senyabanana/towbid-service/internal/models"
	"github.com/senyabanana/towbid-service/internal/repository"
)

// SessionService связывает сессии торгов с источником заказов и приёмником предложений.
type SessionService struct {
	Store *SessionStore
	Jobs  repository.JobRepository
	Bids  BidSubmitter
}

// NewSessionService создаёт новый экземпляр SessionService.
func NewSessionService(store *SessionStore, jobs repository.JobRepository, bids BidSubmitter) *SessionService {
	return &SessionService{Store: store, Jobs: jobs, Bids: bids}
}

func (s *SessionService) CreateSession() models.SessionSnapshot {
	return s.Store.Create().Snapshot()
}

func (s *SessionService) GetSession(sessionId string) (models.SessionSnapshot, error) {
	var snapshot models.SessionSnapshot
	err := s.Store.Do(sessionId, func(session *BiddingSession) error {
		snapshot = session.Snapshot()
		return nil
	})
	return snapshot, sessionError(err)
}

func (s *SessionService) DeleteSession(sessionId string) error {
	return sessionError(s.Store.Delete(sessionId))
}

// SelectJob выбирает заказ в сессии.
func (s *SessionService) SelectJob(ctx context.Context, sessionId, jobId string) (models.SessionSnapshot, error) {
	job, err := s.lookupJob(ctx, jobId)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	return s.apply(sessionId, func(session *BiddingSession) error {
		return session.Select(*job)
	})
}

// OpenBid открывает диалог предложения для заказа.
func (s *SessionService) OpenBid(ctx context.Context, sessionId, jobId string) (models.SessionSnapshot, error) {
	job, err := s.lookupJob(ctx, jobId)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	return s.apply(sessionId, func(session *BiddingSession) error {
		session.OpenBid(*job)
		return nil
	})
}

func (s *SessionService) SetAmount(sessionId, amount string) (models.SessionSnapshot, error) {
	return s.apply(sessionId, func(session *BiddingSession) error {
		return session.SetAmount(amount)
	})
}

func (s *SessionService) CancelBid(sessionId string) (models.SessionSnapshot, error) {
	return s.apply(sessionId, func(session *BiddingSession) error {
		return session.Cancel()
	})
}

// SubmitBid отправляет предложение из открытого диалога.
func (s *SessionService) SubmitBid(ctx context.Context, sessionId string) (models.SubmitResult, models.SessionSnapshot, error) {
	var result models.SubmitResult
	var snapshot models.SessionSnapshot
	err := s.Store.Do(sessionId, func(session *BiddingSession) error {
		var err error
		result, err = session.Submit(ctx, s.Bids)
		snapshot = session.Snapshot()
		return err
	})
	return result, snapshot, sessionError(err)
}

func (s *SessionService) apply(sessionId string, fn func(*BiddingSession) error) (models.SessionSnapshot, error) {
	var snapshot models.SessionSnapshot
	err := s.Store.Do(sessionId, func(session *BiddingSession) error {
		if err := fn(session); err != nil {
			return err
		}
		snapshot = session.Snapshot()
		return nil
	})
	return snapshot, sessionError(err)
}

func (s *SessionService) lookupJob(ctx context.Context, jobId string) (*models.Job, error) {
	if jobId == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required field: jobId")
	}
	job, err := s.Jobs.GetJob(ctx, jobId)
	if errors.Is(err, repository.ErrJobNotFound) {
		return nil, models.NewErrorResponse(http.StatusNotFound, "job not found")
	}
	if err != nil {
		return nil, models.WrapErrorResponse(http.StatusBadGateway, "job source unavailable", err)
	}
	return job, nil
}

// sessionError переводит ошибки сессии в ErrorResponse.
func sessionError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrSessionNotFound):
		return models.NewErrorResponse(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidTransition):
		return models.NewErrorResponse(http.StatusConflict, err.Error())
	}
	return err
}
