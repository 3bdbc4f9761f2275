package list_products

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type CatalogService interface {
	AllProducts(ctx context.Context) ([]domain.Product, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
