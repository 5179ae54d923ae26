package observer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/dom"
)

func writePage(t *testing.T, path, html string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(html), 0600))
}

func TestFileObserver_Current(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	writePage(t, path, "<title>Docket</title>")

	obs := NewFileObserver(path, dom.Parse)
	doc, err := obs.Current()

	require.NoError(t, err)
	assert.Equal(t, "Docket", doc.Title())
}

func TestFileObserver_Current_Missing(t *testing.T) {
	obs := NewFileObserver(filepath.Join(t.TempDir(), "missing.html"), dom.Parse)

	_, err := obs.Current()
	assert.Error(t, err)
}

func TestFileObserver_Observe_EmitsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	writePage(t, path, "<p>loading</p>")

	obs := NewFileObserver(path, dom.Parse)
	defer obs.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ch, err := obs.Observe(ctx)
	require.NoError(t, err)

	writePage(t, path, `<table><tr><td id="late">Image</td></tr></table>`)

	for {
		select {
		case doc, ok := <-ch:
			require.True(t, ok, "channel closed before the write was seen")
			if len(doc.Find("#late")) > 0 {
				return
			}
		case <-ctx.Done():
			t.Fatal("timed out waiting for file change")
		}
	}
}

func TestFileObserver_Observe_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	writePage(t, path, "<p>page</p>")

	obs := NewFileObserver(path, dom.Parse)
	defer obs.Disconnect()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := obs.Observe(ctx)
	require.NoError(t, err)

	writePage(t, filepath.Join(dir, "other.html"), "<p>other</p>")

	select {
	case doc := <-ch:
		t.Fatalf("unexpected snapshot %v", doc)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFileObserver_Disconnect_ClosesChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	writePage(t, path, "<p>page</p>")

	obs := NewFileObserver(path, dom.Parse)
	ch, err := obs.Observe(context.Background())
	require.NoError(t, err)

	require.NoError(t, obs.Disconnect())
	require.NoError(t, obs.Disconnect())

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after Disconnect")
	}
}

func TestFileObserver_Observe_MissingDirectory(t *testing.T) {
	obs := NewFileObserver(filepath.Join(t.TempDir(), "nope", "page.html"), dom.Parse)

	_, err := obs.Observe(context.Background())
	assert.Error(t, err)
}
