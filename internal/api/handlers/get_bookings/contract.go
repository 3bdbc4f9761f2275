package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/bookingsview"
)

type BookingsView interface {
	Refresh(ctx context.Context, s *domain.Session, filter domain.BookingsFilter) (bookingsview.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
