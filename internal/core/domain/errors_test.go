package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNoMatch", ErrNoMatch},
		{"ErrMissingIdentifier", ErrMissingIdentifier},
		{"ErrUntrustedOrigin", ErrUntrustedOrigin},
		{"ErrCacheUnavailable", ErrCacheUnavailable},
		{"ErrStaleNavigation", ErrStaleNavigation},
		{"ErrArchiveUnavailable", ErrArchiveUnavailable},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrCacheUnavailable))
}

func TestErrUntrustedOrigin_Wrapped(t *testing.T) {
	err := fmt.Errorf("resolve https://example.com: %w", ErrUntrustedOrigin)

	assert.True(t, errors.Is(err, ErrUntrustedOrigin))
	assert.False(t, errors.Is(err, ErrNoMatch))
}

func TestErrCacheUnavailable_Wrapped(t *testing.T) {
	err := fmt.Errorf("get tab 1: %w", ErrCacheUnavailable)

	assert.True(t, errors.Is(err, ErrCacheUnavailable))
	assert.Contains(t, err.Error(), "tab cache unavailable")
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	all := []error{
		ErrNotFound, ErrInvalidInput, ErrNoMatch, ErrMissingIdentifier,
		ErrUntrustedOrigin, ErrCacheUnavailable, ErrStaleNavigation,
		ErrArchiveUnavailable, ErrRateLimited,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
