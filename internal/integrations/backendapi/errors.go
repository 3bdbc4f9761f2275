package backendapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("backendapi client: internal error")

	// ErrTransport возвращается, когда запрос не дошёл до API (сеть, таймаут)
	ErrTransport = errors.New("backendapi client: transport failure")

	// ErrInvalidResponse возвращается при некорректном ответе API
	ErrInvalidResponse = errors.New("backendapi client: invalid response")

	// ErrUnauthorized сопоставляется с любым APIError со статусом 401
	ErrUnauthorized = errors.New("backendapi client: unauthorized")

	// ErrEmptyData возвращается, когда API ответил 2xx без data там, где она обязательна
	ErrEmptyData = errors.New("backendapi client: response has no data")
)

// APIError ошибка, о которой сообщил сам API.
// Текст ошибки - сообщение сервера как есть, его и показывают пользователю.
type APIError struct {
	Status  int
	Message string
}

func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Status: status, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

// Is позволяет проверять errors.Is(err, ErrUnauthorized)
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
