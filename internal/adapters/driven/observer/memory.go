package observer

import (
	"context"
	"sync"

	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
)

// Ensure MemoryObserver implements the interface.
var _ driven.PageObserver = (*MemoryObserver)(nil)

// MemoryObserver fans snapshots passed to Push out to every subscriber.
// A slow subscriber only ever sees the latest snapshot.
type MemoryObserver struct {
	mu      sync.Mutex
	current driven.Document
	subs    map[chan driven.Document]struct{}
	closed  bool
}

// NewMemoryObserver creates an observer whose current snapshot is initial.
func NewMemoryObserver(initial driven.Document) *MemoryObserver {
	return &MemoryObserver{
		current: initial,
		subs:    make(map[chan driven.Document]struct{}),
	}
}

// Current returns the latest snapshot.
func (o *MemoryObserver) Current() (driven.Document, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current, nil
}

// Observe subscribes to snapshots pushed after the call.
func (o *MemoryObserver) Observe(ctx context.Context) (<-chan driven.Document, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ch := make(chan driven.Document, 1)
	if o.closed {
		close(ch)
		return ch, nil
	}
	o.subs[ch] = struct{}{}

	go func() {
		<-ctx.Done()
		o.unsubscribe(ch)
	}()
	return ch, nil
}

// Push records a new snapshot and delivers it to subscribers.
func (o *MemoryObserver) Push(doc driven.Document) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.current = doc
	for ch := range o.subs {
		select {
		case ch <- doc:
		default:
			// Replace the undelivered snapshot. Senders hold o.mu, so the
			// buffer cannot refill between the drain and the send.
			select {
			case <-ch:
			default:
			}
			ch <- doc
		}
	}
}

// Disconnect closes every subscription. Later Observe calls return a
// closed channel.
func (o *MemoryObserver) Disconnect() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.closed = true
	for ch := range o.subs {
		delete(o.subs, ch)
		close(ch)
	}
	return nil
}

// Subscribers returns the number of open subscriptions.
func (o *MemoryObserver) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

func (o *MemoryObserver) unsubscribe(ch chan driven.Document) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.subs[ch]; ok {
		delete(o.subs, ch)
		close(ch)
	}
}
