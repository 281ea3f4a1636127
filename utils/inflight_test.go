package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInFlightGuardBlocksSecondMutation(t *testing.T) {
	guard := NewInFlightGuard(time.Minute)

	assert.True(t, guard.Begin("cancel", 42))
	assert.False(t, guard.Begin("cancel", 42), "same op on same entity must be blocked")

	guard.End("cancel", 42)
	assert.True(t, guard.Begin("cancel", 42), "lock must be reusable after release")
}

func TestInFlightGuardIsPerOperationAndEntity(t *testing.T) {
	guard := NewInFlightGuard(time.Minute)

	assert.True(t, guard.Begin("cancel", 1))
	assert.True(t, guard.Begin("cancel", 2), "different entity is independent")
	assert.True(t, guard.Begin("submit-return", 1), "different operation is independent")
}

func TestInFlightGuardExpires(t *testing.T) {
	guard := NewInFlightGuard(20 * time.Millisecond)

	assert.True(t, guard.Begin("review-return", 7))
	assert.False(t, guard.Begin("review-return", 7))

	time.Sleep(50 * time.Millisecond)
	assert.True(t, guard.Begin("review-return", 7), "stale lock must expire")
}

func TestTTLCacheRoundTrip(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	assert.Equal(t, time.Minute, cache.TTL())

	_, ok := cache.Get("order:1")
	assert.False(t, ok)

	cache.Set("order:1", "payload")
	got, ok := cache.Get("order:1")
	assert.True(t, ok)
	assert.Equal(t, "payload", got)

	cache.Invalidate("order:1")
	_, ok = cache.Get("order:1")
	assert.False(t, ok, "invalidated entry must not be served")
}

func TestTTLCacheExpiry(t *testing.T) {
	cache := NewTTLCache(20 * time.Millisecond)
	cache.Set("order:9", 9)

	time.Sleep(50 * time.Millisecond)
	_, ok := cache.Get("order:9")
	assert.False(t, ok)
}
