package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("allows up to the limit, throttles the next", func(t *testing.T) {
		l := New(60, time.Minute, WithClock(clock))

		for i := 0; i < 60; i++ {
			require.True(t, l.Allow("1.2.3.4"), "request %d should pass", i+1)
		}
		assert.False(t, l.Allow("1.2.3.4"))
	})

	t.Run("window slides: old entries free up capacity", func(t *testing.T) {
		base := now
		l := New(60, time.Minute, WithClock(func() time.Time { return now }))

		for i := 0; i < 60; i++ {
			require.True(t, l.Allow("ip"))
		}
		require.False(t, l.Allow("ip"))

		now = base.Add(61 * time.Second)
		assert.True(t, l.Allow("ip"))
		now = base
	})

	t.Run("throttled requests are not recorded", func(t *testing.T) {
		base := now
		l := New(2, time.Minute, WithClock(func() time.Time { return now }))

		require.True(t, l.Allow("ip"))
		require.True(t, l.Allow("ip"))
		for i := 0; i < 10; i++ {
			require.False(t, l.Allow("ip"))
		}

		// Only the two recorded hits age out; the denials left no trace.
		now = base.Add(61 * time.Second)
		assert.True(t, l.Allow("ip"))
		now = base
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := New(1, time.Minute, WithClock(clock))

		require.True(t, l.Allow("a"))
		require.False(t, l.Allow("a"))
		assert.True(t, l.Allow("b"))
	})
}
