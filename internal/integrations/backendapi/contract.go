package backendapi

import (
	"context"
	"time"
)

// TokenStore долговременное хранилище учётного токена
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Metrics метрики вызовов API
type Metrics interface {
	ObserveUpstream(method, endpoint string, status int, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
