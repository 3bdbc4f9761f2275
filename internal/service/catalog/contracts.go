package catalog

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// APIClient интерфейс клиента внешнего API
type APIClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
