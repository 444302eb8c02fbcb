package fetch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterEnforcesMinimumSpacing(t *testing.T) {
	l := NewLimiter(30 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Wait(ctx))
	}
	// First wait is immediate; the next two each wait the fixed delay.
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestLimiterZeroDelayNeverBlocks(t *testing.T) {
	l := NewLimiter(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestLimiterHonoursContextCancellation(t *testing.T) {
	l := NewLimiter(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.NoError(t, l.Wait(ctx)) // immediate
	assert.Error(t, l.Wait(ctx))    // would block for an hour
}
