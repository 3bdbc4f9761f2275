package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	boltStore, err := NewBoltStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = boltStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"bolt":   boltStore,
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "auth_token")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set(ctx, "auth_token", "first"))
			require.NoError(t, s.Set(ctx, "auth_token", "second"))

			v, err := s.Get(ctx, "auth_token")
			require.NoError(t, err)
			assert.Equal(t, "second", v)

			require.NoError(t, s.Delete(ctx, "auth_token"))
			_, err = s.Get(ctx, "auth_token")
			assert.ErrorIs(t, err, ErrNotFound)

			// удаление отсутствующего ключа не ошибка
			assert.NoError(t, s.Delete(ctx, "auth_token"))
		})
	}
}

func TestStore_EmptyKey(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "")
			assert.ErrorIs(t, err, ErrEmptyKey)
			assert.ErrorIs(t, s.Set(ctx, "", "v"), ErrEmptyKey)
			assert.ErrorIs(t, s.Delete(ctx, ""), ErrEmptyKey)
		})
	}
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "theme", "light"))
	require.NoError(t, s.Close())

	reopened, err := NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}
