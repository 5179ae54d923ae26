package observer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/dom"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
)

func mustParse(t *testing.T, html string) driven.Document {
	t.Helper()
	doc, err := dom.ParseString(html)
	require.NoError(t, err)
	return doc
}

func receive(t *testing.T, ch <-chan driven.Document) (driven.Document, bool) {
	t.Helper()
	select {
	case doc, ok := <-ch:
		return doc, ok
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil, false
	}
}

func TestMemoryObserver_Current(t *testing.T) {
	initial := mustParse(t, "<p>initial</p>")
	obs := NewMemoryObserver(initial)

	doc, err := obs.Current()
	require.NoError(t, err)
	assert.Same(t, initial, doc)
}

func TestMemoryObserver_PushDelivers(t *testing.T) {
	obs := NewMemoryObserver(mustParse(t, "<p>initial</p>"))
	ch, err := obs.Observe(context.Background())
	require.NoError(t, err)

	next := mustParse(t, `<p id="late">late</p>`)
	obs.Push(next)

	doc, ok := receive(t, ch)
	require.True(t, ok)
	assert.Same(t, next, doc)

	current, _ := obs.Current()
	assert.Same(t, next, current)
}

func TestMemoryObserver_SlowSubscriberSeesLatest(t *testing.T) {
	obs := NewMemoryObserver(nil)
	ch, err := obs.Observe(context.Background())
	require.NoError(t, err)

	first := mustParse(t, "<p>1</p>")
	second := mustParse(t, "<p>2</p>")
	obs.Push(first)
	obs.Push(second)

	doc, ok := receive(t, ch)
	require.True(t, ok)
	assert.Same(t, second, doc)
}

func TestMemoryObserver_Disconnect(t *testing.T) {
	obs := NewMemoryObserver(nil)
	ch, err := obs.Observe(context.Background())
	require.NoError(t, err)

	require.NoError(t, obs.Disconnect())
	_, ok := receive(t, ch)
	assert.False(t, ok)
	assert.Equal(t, 0, obs.Subscribers())

	// Safe to call twice, and later subscriptions are closed immediately.
	require.NoError(t, obs.Disconnect())
	late, err := obs.Observe(context.Background())
	require.NoError(t, err)
	_, ok = receive(t, late)
	assert.False(t, ok)
}

func TestMemoryObserver_ContextCancelUnsubscribes(t *testing.T) {
	obs := NewMemoryObserver(nil)
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := obs.Observe(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, obs.Subscribers())

	cancel()
	_, ok := receive(t, ch)
	assert.False(t, ok)
	assert.Equal(t, 0, obs.Subscribers())

	// Pushing after unsubscribe must not panic.
	obs.Push(mustParse(t, "<p>after</p>"))
}
