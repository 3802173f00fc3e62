package models

// ErrorResponse описывает ошибку с кодом и сообщением для клиента.
// Cause хранит исходную ошибку для логов и не попадает в ответ.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"reason"`
	Cause      error  `json:"-"`
}

// NewErrorResponse создает новую ошибку с кодом и сообщением.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message}
}

// WrapErrorResponse создает ошибку с кодом и сообщением поверх исходной ошибки.
func WrapErrorResponse(statusCode int, message string, cause error) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause}
}

func (e *ErrorResponse) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ErrorResponse) Unwrap() error {
	return e.Cause
}
