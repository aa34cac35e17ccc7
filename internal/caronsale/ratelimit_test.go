package caronsale_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/auction-monitor/internal/caronsale"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     float64
		burst    int
		maxCalls int64
		calls    int
		wantErr  bool
	}{
		{
			name:     "allows calls within rate",
			rate:     100,
			burst:    10,
			maxCalls: 10,
			calls:    3,
		},
		{
			name:     "allows burst",
			rate:     100,
			burst:    5,
			maxCalls: 10,
			calls:    5,
		},
		{
			name:  "zero budget is unlimited",
			rate:  100,
			burst: 10,
			calls: 8,
		},
		{
			name:     "rejects when budget spent",
			rate:     100,
			burst:    10,
			maxCalls: 2,
			calls:    3,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := caronsale.NewRateLimiter(tt.rate, tt.burst, tt.maxCalls)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.Error(t, lastErr)
				assert.ErrorIs(t, lastErr, caronsale.ErrCallBudgetExhausted)
				return
			}
			require.NoError(t, lastErr)
			assert.Equal(t, int64(tt.calls), rl.Calls())
		})
	}
}

func TestRateLimiter_Remaining(t *testing.T) {
	t.Parallel()

	rl := caronsale.NewRateLimiter(100, 10, 3)
	assert.Equal(t, int64(3), rl.Remaining())

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(2), rl.Remaining())

	unlimited := caronsale.NewRateLimiter(100, 10, 0)
	assert.Equal(t, int64(-1), unlimited.Remaining())
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	// One token, then a very slow refill.
	rl := caronsale.NewRateLimiter(0.001, 1, 0)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
	assert.Equal(t, int64(1), rl.Calls())
}
