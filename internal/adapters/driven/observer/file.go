package observer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/logger"
)

var log = logger.Named("observer")

// Ensure FileObserver implements the interface.
var _ driven.PageObserver = (*FileObserver)(nil)

// ParseFunc turns HTML into a Document.
type ParseFunc func(r io.Reader) (driven.Document, error)

// FileObserver treats an HTML file as a live page. Every write to the file
// produces a fresh snapshot.
type FileObserver struct {
	path  string
	parse ParseFunc

	once sync.Once
	done chan struct{}
}

// NewFileObserver creates an observer for the HTML file at path.
func NewFileObserver(path string, parse ParseFunc) *FileObserver {
	return &FileObserver{
		path:  filepath.Clean(path),
		parse: parse,
		done:  make(chan struct{}),
	}
}

// Current parses the file as it is now.
func (o *FileObserver) Current() (driven.Document, error) {
	f, err := os.Open(o.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", o.path, err)
	}
	defer f.Close()
	return o.parse(f)
}

// Observe watches the file's directory, so editors that replace the file
// by rename are seen as well as in-place writes.
func (o *FileObserver) Observe(ctx context.Context) (<-chan driven.Document, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(o.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", o.path, err)
	}

	out := make(chan driven.Document)
	go o.run(ctx, watcher, out)
	return out, nil
}

func (o *FileObserver) run(ctx context.Context, watcher *fsnotify.Watcher, out chan<- driven.Document) {
	defer close(out)
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-o.done:
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Debug("watch error on %s: %v", o.path, err)
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != o.path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			doc, err := o.Current()
			if err != nil {
				log.Debug("%v", err)
				continue
			}
			select {
			case out <- doc:
			case <-ctx.Done():
				return
			case <-o.done:
				return
			}
		}
	}
}

// Disconnect stops every running Observe loop.
func (o *FileObserver) Disconnect() error {
	o.once.Do(func() { close(o.done) })
	return nil
}
