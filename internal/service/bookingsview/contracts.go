package bookingsview

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// APIClient интерфейс клиента внешнего API
type APIClient interface {
	ListBookings(ctx context.Context, filter domain.BookingsFilter) (*domain.BookingsPage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
