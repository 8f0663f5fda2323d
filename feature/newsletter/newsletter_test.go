package newsletter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "subscribers.json"))
	require.NoError(t, err)
	return store
}

func TestStore_AddAndDeduplicate(t *testing.T) {
	store := newTestStore(t)

	added, err := store.Add("a@example.com")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add("  A@Example.COM ")
	require.NoError(t, err)
	assert.False(t, added, "emails are normalized before deduplication")

	assert.Equal(t, 1, store.Count())
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscribers.json")

	store, err := NewStore(path)
	require.NoError(t, err)
	_, err = store.Add("a@example.com")
	require.NoError(t, err)
	_, err = store.Add("b@example.com")
	require.NoError(t, err)

	reopened, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Count())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscribers.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path)
	assert.Error(t, err)
}

func TestService_Subscribe(t *testing.T) {
	svc := NewService(newTestStore(t), zap.NewNop())

	require.NoError(t, svc.Subscribe("listener@example.com"))
	assert.Equal(t, 1, svc.Count())

	assert.Error(t, svc.Subscribe("not-an-email"))
	assert.Error(t, svc.Subscribe(""))
	assert.Equal(t, 1, svc.Count())

	require.NoError(t, svc.Subscribe("listener@example.com"), "duplicate signup is a quiet success")
	assert.Equal(t, 1, svc.Count())
}
