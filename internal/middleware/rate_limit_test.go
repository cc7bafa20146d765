package middleware

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_SweepsIdleVisitors(t *testing.T) {
	clock := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return clock }

	for i := 0; i < visitorSweepSize; i++ {
		l.Allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	assert.Equal(t, visitorSweepSize, l.Len())

	clock = clock.Add(visitorIdleTTL + time.Second)
	assert.True(t, l.Allow("192.168.1.1"))
	assert.Equal(t, 1, l.Len())
}

func TestIPRateLimiter_SeparateBuckets(t *testing.T) {
	l := NewIPRateLimiter(0.001, 1)

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
}
