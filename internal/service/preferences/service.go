package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/infra/storage/state"
)

// Service настройки интерфейса оператора
type Service struct {
	store  StateStore
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(store StateStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Theme возвращает сохранённую тему; без сохранённого значения - тема по умолчанию
func (s *Service) Theme(ctx context.Context) (domain.Theme, error) {
	value, err := s.store.Get(ctx, domain.StateKeyTheme)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return domain.DefaultTheme, nil
		}
		s.logger.Error("Theme: failed to read theme: %v", err)
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	theme := domain.Theme(value)
	if !theme.IsValid() {
		s.logger.Warn("Theme: stored theme %q is unknown, using %s", value, domain.DefaultTheme)
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme сохраняет тему
func (s *Service) SetTheme(ctx context.Context, theme domain.Theme) (domain.Theme, error) {
	if !theme.IsValid() {
		return "", ErrInvalidTheme
	}

	if err := s.store.Set(ctx, domain.StateKeyTheme, string(theme)); err != nil {
		s.logger.Error("SetTheme: failed to save theme=%s: %v", theme, err)
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("SetTheme: theme=%s", theme)
	return theme, nil
}

// ToggleTheme переключает светлую и тёмную тему
func (s *Service) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}

	next := domain.ThemeDark
	if current == domain.ThemeDark {
		next = domain.ThemeLight
	}
	return s.SetTheme(ctx, next)
}
