package session

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// APIClient интерфейс клиента внешнего API
type APIClient interface {
	Login(ctx context.Context, email, password string) (*domain.UserProfile, error)
	CurrentUser(ctx context.Context) (*domain.UserProfile, error)
	Token(ctx context.Context) (string, bool)
	ClearToken(ctx context.Context) error
}

// Metrics метрики переходов состояния
type Metrics interface {
	IncSessionTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
