package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

func TestNewKeyValueStore(t *testing.T) {
	store := NewKeyValueStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, 0, store.Len())
}

func TestKeyValueStore_SetAndGet(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	err := store.Set(ctx, "tab-1", []byte(`{"caseId":"318547"}`))
	require.NoError(t, err)

	val, err := store.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"caseId":"318547"}`, string(val))
}

func TestKeyValueStore_Set_Overwrites(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tab-1", []byte("a")))
	require.NoError(t, store.Set(ctx, "tab-1", []byte("b")))

	val, err := store.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), val)
	assert.Equal(t, 1, store.Len())
}

func TestKeyValueStore_Get_NotFound(t *testing.T) {
	store := NewKeyValueStore()

	val, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, val)
}

func TestKeyValueStore_CopiesValues(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	in := []byte("original")
	require.NoError(t, store.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(out))

	out[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}

func TestKeyValueStore_Delete(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tab-1", []byte("x")))
	require.NoError(t, store.Delete(ctx, "tab-1"))

	_, err := store.Get(ctx, "tab-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is fine
	assert.NoError(t, store.Delete(ctx, "tab-1"))
}

func TestKeyValueStore_Keys_Sorted(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	for _, k := range []string{"tab-b", domain.OptionsStoreKey, "tab-a"} {
		require.NoError(t, store.Set(ctx, k, []byte("{}")))
	}

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"options", "tab-a", "tab-b"}, keys)
}

func TestKeyValueStore_CancelledContext(t *testing.T) {
	store := NewKeyValueStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Set(ctx, "k", nil), context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx, "k"), context.Canceled)
	_, err = store.Keys(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeyValueStore_Concurrency(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("tab-%d", id%5)
			_ = store.Set(ctx, key, []byte(key))
			_, _ = store.Get(ctx, key)
			_, _ = store.Keys(ctx)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, store.Len())
}
