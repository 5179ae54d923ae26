package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
)

// Ensure TabCacheService implements the interfaces.
var (
	_ driving.TabCacheService = (*TabCacheService)(nil)
	_ driven.TabCache         = (*TabCacheService)(nil)
	_ driven.OptionsStore     = (*TabCacheService)(nil)
)

// TabCacheService stores tab cache entries as JSON in a key-value store.
// Each tab's entry lives under the tab identifier.
type TabCacheService struct {
	store   driven.KeyValueStore
	locks   *keyedMutex
	timeout time.Duration
}

// NewTabCacheService creates a tab cache. A non-positive timeout uses
// domain.DefaultCacheTimeout.
func NewTabCacheService(store driven.KeyValueStore, timeout time.Duration) *TabCacheService {
	if timeout <= 0 {
		timeout = domain.DefaultCacheTimeout
	}
	return &TabCacheService{
		store:   store,
		locks:   newKeyedMutex(),
		timeout: timeout,
	}
}

// Get returns the tab's entry.
func (s *TabCacheService) Get(ctx context.Context, tabID string) (*domain.TabCacheEntry, error) {
	if err := validateTabID(tabID); err != nil {
		return nil, err
	}

	var entry *domain.TabCacheEntry
	err := s.bounded(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.load(ctx, tabID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Merge applies the patch under the tab's lock. A missing entry is created.
// A Merge that timed out with ErrCacheUnavailable may still be applied later
// when the store ignores its context.
func (s *TabCacheService) Merge(ctx context.Context, tabID string, patch domain.TabCachePatch) error {
	if err := validateTabID(tabID); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	return s.bounded(ctx, func(ctx context.Context) error {
		unlock := s.locks.Lock(tabID)
		defer unlock()

		entry, err := s.load(ctx, tabID)
		if errors.Is(err, domain.ErrNotFound) {
			entry = &domain.TabCacheEntry{}
		} else if err != nil {
			return err
		}

		entry.Apply(patch)

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encode tab %s: %w", tabID, err)
		}
		if err := s.store.Set(ctx, tabID, data); err != nil {
			return fmt.Errorf("%w: save tab %s: %w", domain.ErrCacheUnavailable, tabID, err)
		}
		return nil
	})
}

// Destroy removes the tab's entry.
func (s *TabCacheService) Destroy(ctx context.Context, tabID string) error {
	if err := validateTabID(tabID); err != nil {
		return err
	}

	return s.bounded(ctx, func(ctx context.Context) error {
		unlock := s.locks.Lock(tabID)
		defer unlock()

		if err := s.store.Delete(ctx, tabID); err != nil {
			return fmt.Errorf("%w: delete tab %s: %w", domain.ErrCacheUnavailable, tabID, err)
		}
		return nil
	})
}

// List returns every tab with an entry.
func (s *TabCacheService) List(ctx context.Context) ([]string, error) {
	var tabs []string
	err := s.bounded(ctx, func(ctx context.Context) error {
		keys, err := s.store.Keys(ctx)
		if err != nil {
			return fmt.Errorf("%w: list tabs: %w", domain.ErrCacheUnavailable, err)
		}
		tabs = make([]string, 0, len(keys))
		for _, k := range keys {
			if k != domain.OptionsStoreKey {
				tabs = append(tabs, k)
			}
		}
		return nil
	})
	return tabs, err
}

// Options returns the stored options over the defaults.
func (s *TabCacheService) Options(ctx context.Context) (domain.Options, error) {
	opts := domain.DefaultOptions()
	err := s.bounded(ctx, func(ctx context.Context) error {
		data, err := s.store.Get(ctx, domain.OptionsStoreKey)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: load options: %w", domain.ErrCacheUnavailable, err)
		}
		if err := json.Unmarshal(data, &opts); err != nil {
			return fmt.Errorf("decode options: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DefaultOptions(), err
	}
	return opts, nil
}

// SaveOptions persists the options.
func (s *TabCacheService) SaveOptions(ctx context.Context, opts domain.Options) error {
	data, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	return s.bounded(ctx, func(ctx context.Context) error {
		if err := s.store.Set(ctx, domain.OptionsStoreKey, data); err != nil {
			return fmt.Errorf("%w: save options: %w", domain.ErrCacheUnavailable, err)
		}
		return nil
	})
}

func (s *TabCacheService) load(ctx context.Context, tabID string) (*domain.TabCacheEntry, error) {
	data, err := s.store.Get(ctx, tabID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load tab %s: %w", domain.ErrCacheUnavailable, tabID, err)
	}

	var entry domain.TabCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: decode tab %s: %w", domain.ErrCacheUnavailable, tabID, err)
	}
	return &entry, nil
}

// bounded runs op with the cache timeout. The caller returns when the
// deadline passes even if the store ignores its context; op keeps any lock
// it holds until it actually finishes.
func (s *TabCacheService) bounded(ctx context.Context, op func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- op(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// A result that raced the deadline still counts.
		select {
		case err := <-done:
			return err
		default:
		}
		return fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, ctx.Err())
	}
}

func validateTabID(tabID string) error {
	if tabID == "" {
		return fmt.Errorf("%w: empty tab id", domain.ErrInvalidInput)
	}
	if tabID == domain.OptionsStoreKey {
		return fmt.Errorf("%w: %q is reserved", domain.ErrInvalidInput, tabID)
	}
	return nil
}
