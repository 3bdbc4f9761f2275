package get_theme

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type PreferencesService interface {
	Theme(ctx context.Context) (domain.Theme, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
