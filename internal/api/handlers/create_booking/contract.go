package create_booking

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	createBooking "github.com/m04kA/SMC-AdminConsole/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, draft domain.BookingDraft) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
