package create_booking

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
)

// BookingAPI интерфейс отправки бронирования во внешний API
type BookingAPI interface {
	CreateBooking(ctx context.Context, payload domain.BookingPayload) (*domain.Booking, error)
}

// CatalogProvider интерфейс справочников для черновика
type CatalogProvider interface {
	Load(ctx context.Context, s *domain.Session) (*domain.Catalog, error)
}

// SessionProvider интерфейс текущей сессии
type SessionProvider interface {
	Current() (*domain.Session, session.State)
}

// BookingsView список подтверждённых бронирований, в который добавляется результат
type BookingsView interface {
	Prepend(booking domain.Booking)
}

// Metrics метрики локальной валидации
type Metrics interface {
	IncValidationFailure(rule string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
