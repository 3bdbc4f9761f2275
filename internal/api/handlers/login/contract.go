package login

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type SessionGate interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
