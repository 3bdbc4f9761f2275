package logout

import (
	"context"
)

type SessionGate interface {
	Logout(ctx context.Context)
}

// BookingsView список бронирований, очищаемый при выходе
type BookingsView interface {
	Reset()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
