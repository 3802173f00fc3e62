package models

type SessionState string // Состояние сессии торгов

const (
	SessionIdle     SessionState = "idle"     // Заказ не выбран, диалог закрыт
	SessionSelected SessionState = "selected" // Заказ выбран, диалог закрыт
	SessionBidding  SessionState = "bidding"  // Диалог предложения открыт
)

// SessionSnapshot - представление сессии для ответа клиенту.
type SessionSnapshot struct {
	ID        string       `json:"id"`
	State     SessionState `json:"state"`
	Job       *Job         `json:"job,omitempty"`
	Amount    string       `json:"amount"`
	CanSubmit bool         `json:"canSubmit"`
}

// SessionJobRequest - тело запроса выбора заказа или открытия диалога.
type SessionJobRequest struct {
	JobID string `json:"jobId"`
}
