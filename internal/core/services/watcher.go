package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/logger"
)

var watchLog = logger.Named("watch")

// Ensure Watcher implements the interface.
var _ driving.WatchService = (*Watcher)(nil)

// Watcher re-runs classification as a late-rendered page changes.
type Watcher struct {
	classifier *Classifier
	resolver   driving.ResolverService
}

// NewWatcher creates a watcher. The resolver may be nil, in which case
// only classification is reported.
func NewWatcher(classifier *Classifier, resolver driving.ResolverService) *Watcher {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Watcher{classifier: classifier, resolver: resolver}
}

// Await returns the first snapshot satisfying match. The current snapshot
// is checked after subscribing, since content already present produces no
// change event and content arriving in between must still be seen. The
// observer is disconnected once Await returns.
func (w *Watcher) Await(ctx context.Context, observer driven.PageObserver, match func(driven.Document) bool) (driven.Document, error) {
	return await(ctx, observer, match)
}

func await(ctx context.Context, observer driven.PageObserver, match func(driven.Document) bool) (driven.Document, error) {
	defer func() {
		if err := observer.Disconnect(); err != nil {
			watchLog.Debug("disconnect: %v", err)
		}
	}()

	updates, err := observer.Observe(ctx)
	if doc, cerr := observer.Current(); cerr == nil && doc != nil && match(doc) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("observe: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case doc, ok := <-updates:
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return nil, domain.ErrNoMatch
			}
			if doc != nil && match(doc) {
				return doc, nil
			}
		}
	}
}

// Watch waits until the page classifies as want (any known kind when want
// is empty), then resolves it.
func (w *Watcher) Watch(ctx context.Context, page driving.PageContext, observer driven.PageObserver,
	want domain.PageKind) (*driving.WatchResult, error) {
	var result driving.Classification
	matches := func(doc driven.Document) bool {
		c := w.classifier.Explain(page.WithDocument(doc))
		if c.Kind == domain.PageKindUnknown || (want != "" && c.Kind != want) {
			return false
		}
		result = c
		return true
	}

	doc, err := await(ctx, observer, matches)
	if err != nil {
		return nil, err
	}
	watchLog.Debug("%s matched rule %s", page.TabID, result.Rule)

	out := &driving.WatchResult{Classification: result}
	if w.resolver == nil {
		return out, nil
	}
	resolved := page.WithDocument(doc)
	resolved.Kind = result.Kind
	ids, err := w.resolver.Resolve(ctx, resolved)
	if err != nil {
		return nil, err
	}
	out.Identifiers = ids
	return out, nil
}
