package driven

import "context"

// PageObserver reports DOM snapshots of a page as it changes.
type PageObserver interface {
	// Current returns the latest snapshot.
	Current() (Document, error)

	// Observe streams snapshots taken after each change until ctx is done
	// or Disconnect is called, at which point the channel is closed.
	Observe(ctx context.Context) (<-chan Document, error)

	// Disconnect stops observation and releases resources.
	// Calling it more than once is safe.
	Disconnect() error
}
