package courtlistener

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_CheckRateLimit(t *testing.T) {
	r := NewRateLimiter(0)

	assert.NoError(t, r.CheckRateLimit(nil))
	assert.NoError(t, r.CheckRateLimit(&http.Response{StatusCode: http.StatusOK}))
	assert.True(t, r.ResetTime().IsZero())

	resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}
	resp.Header.Set(HeaderRetryAfter, "10")
	err := r.CheckRateLimit(resp)

	require.Error(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Second), r.ResetTime(), 2*time.Second)
}

func TestRateLimiter_CheckRateLimit_DefaultBackoff(t *testing.T) {
	r := NewRateLimiter(0)

	err := r.CheckRateLimit(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}})

	require.Error(t, err)
	assert.WithinDuration(t, time.Now().Add(defaultBackoff), r.ResetTime(), 2*time.Second)
}

func TestRateLimiter_Wait_Unlimited(t *testing.T) {
	r := NewRateLimiter(0)

	for i := 0; i < 100; i++ {
		require.NoError(t, r.Wait(context.Background()))
	}
}

func TestRateLimiter_Wait_Throttles(t *testing.T) {
	r := NewRateLimiter(1)
	ctx := context.Background()

	require.NoError(t, r.Wait(ctx))

	// The bucket holds one token; the second call must wait about a second.
	short, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	assert.Error(t, r.Wait(short))
}
