package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type CatalogService interface {
	Load(ctx context.Context, s *domain.Session) (*domain.Catalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
