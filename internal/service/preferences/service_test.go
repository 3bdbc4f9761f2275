package preferences

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/infra/storage/state"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

func TestTheme_DefaultsToDark(t *testing.T) {
	svc := NewService(state.NewMemoryStore(), logger.NewNop())

	theme, err := svc.Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestTheme_UnknownStoredValue(t *testing.T) {
	store := state.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), domain.StateKeyTheme, "sepia"))

	theme, err := NewService(store, logger.NewNop()).Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTheme, theme)
}

func TestSetTheme(t *testing.T) {
	svc := NewService(state.NewMemoryStore(), logger.NewNop())

	_, err := svc.SetTheme(context.Background(), "blue")
	assert.ErrorIs(t, err, ErrInvalidTheme)

	theme, err := svc.SetTheme(context.Background(), domain.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	theme, err = svc.Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestToggleTheme(t *testing.T) {
	svc := NewService(state.NewMemoryStore(), logger.NewNop())

	theme, err := svc.ToggleTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	theme, err = svc.ToggleTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

// Тема переживает перезапуск консоли
func TestTheme_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := state.NewBoltStore(path)
	require.NoError(t, err)
	_, err = NewService(store, logger.NewNop()).SetTheme(context.Background(), domain.ThemeLight)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := state.NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	theme, err := NewService(reopened, logger.NewNop()).Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}
