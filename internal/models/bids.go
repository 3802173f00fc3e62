package models

import "time"

type BidOutcome string // Результат отправки предложения

const (
	BidSucceeded       BidOutcome = "success"
	BidValidationError BidOutcome = "validationError"
	BidTransportError  BidOutcome = "transportError"

	ReasonJobNotFound = "job not found"
)

// Bid представляет модель ценового предложения водителя.
type Bid struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// BidRequest представляет структуру запроса на отправку предложения.
// Сумма передаётся строкой в том виде, в каком её ввёл пользователь.
type BidRequest struct {
	Amount string `json:"amount"`
}

// SubmitResult описывает исход отправки предложения.
type SubmitResult struct {
	Outcome BidOutcome `json:"outcome"`
	Bid     *Bid       `json:"bid,omitempty"`
	Reason  string     `json:"reason,omitempty"`
}

func (r SubmitResult) Succeeded() bool {
	return r.Outcome == BidSucceeded
}
