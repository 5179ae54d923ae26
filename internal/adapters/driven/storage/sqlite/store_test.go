package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "recap-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore_ErrorHandling(t *testing.T) {
	store, err := NewStore("/dev/null/cannot/create")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewStore_Success(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, databaseFile, filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".recap", "data", "recap.db"), store.Path())
}

func TestNewStore_Migrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	var name string
	err = store.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()

	store1, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store1.Set(context.Background(), "tab-1", []byte("{}")))
	require.NoError(t, store1.Close())

	store2, err := NewStore(dir)
	require.NoError(t, err)
	defer store2.Close()

	var count int
	require.NoError(t, store2.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	val, err := store2.Get(context.Background(), "tab-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), val)
}

func TestStore_Migrate_SkipsUnversionedFiles(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	fsys := fstest.MapFS{
		"notes.up.sql":       {Data: []byte("THIS IS NOT SQL")},
		"002_extra.up.sql":   {Data: []byte("CREATE TABLE extra (id INTEGER)")},
		"002_extra.down.sql": {Data: []byte("DROP TABLE extra")},
		"001_already.up.sql": {Data: []byte("THIS WOULD FAIL")},
	}

	require.NoError(t, store.migrate(fsys))

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 2, version)
}

func TestStore_Migrate_BadSQL(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	fsys := fstest.MapFS{
		"005_broken.up.sql": {Data: []byte("CREATE NONSENSE")},
	}

	err := store.migrate(fsys)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "005_broken.up.sql")
}

func TestStore_SetAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.Set(ctx, "tab-1", []byte(`{"caseId":"318547","docketNumber":"20-15019"}`))
	require.NoError(t, err)

	val, err := store.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"caseId":"318547","docketNumber":"20-15019"}`, string(val))
}

func TestStore_Set_Update(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tab-1", []byte("first")))
	require.NoError(t, store.Set(ctx, "tab-1", []byte("second")))

	val, err := store.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.Equal(t, "second", string(val))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tab-1"}, keys)
}

func TestStore_Set_NilValue(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "empty", nil))

	val, err := store.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	val, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, val)
}

func TestStore_Delete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tab-1", []byte("x")))
	require.NoError(t, store.Delete(ctx, "tab-1"))

	_, err := store.Get(ctx, "tab-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Non-existent key
	assert.NoError(t, store.Delete(ctx, "tab-1"))
}

func TestStore_Keys(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	for _, k := range []string{"tab-b", domain.OptionsStoreKey, "tab-a"} {
		require.NoError(t, store.Set(ctx, k, []byte("{}")))
	}

	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"options", "tab-a", "tab-b"}, keys)
}

func TestStore_ContextCancellation(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "tab-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	assert.Error(t, store.Set(ctx, "tab-1", []byte("x")))
}

func TestStore_ConcurrentWrites(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("tab-%d", n)
			assert.NoError(t, store.Set(ctx, key, []byte(key)))
		}(i)
	}
	wg.Wait()

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 10)
}
