package llm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	t.Run("basic rate limiting", func(t *testing.T) {
		rl := newRateLimiter(10)
		defer rl.Close()
		ctx := context.Background()

		// The bucket starts full.
		for i := 0; i < 10; i++ {
			err := rl.wait(ctx)
			require.NoError(t, err)
		}

		// 11th request should need to wait for a refill
		start := time.Now()
		done := make(chan bool)
		go func() {
			err := rl.wait(ctx)
			assert.NoError(t, err)
			done <- true
		}()

		select {
		case <-done:
			elapsed := time.Since(start)
			// Allow some tolerance for timing
			assert.True(t, elapsed >= 50*time.Millisecond, "Expected to wait for refill, but completed too quickly")
		case <-time.After(10 * time.Second):
			t.Fatal("Rate limiter wait timed out")
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		rl := newRateLimiter(1)
		defer rl.Close()

		err := rl.wait(context.Background())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error)
		go func() {
			done <- rl.wait(ctx)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		err = <-done
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limiter canceled")
	})

	t.Run("tryAcquire", func(t *testing.T) {
		rl := newRateLimiter(5)
		defer rl.Close()

		for i := 0; i < 5; i++ {
			success := rl.tryAcquire()
			assert.True(t, success, "Expected tryAcquire to succeed for attempt %d", i+1)
		}

		success := rl.tryAcquire()
		assert.False(t, success, "Expected tryAcquire to fail after tokens exhausted")
	})

	t.Run("default rate limit", func(t *testing.T) {
		// Zero falls back to 60 requests per minute.
		rl := newRateLimiter(0)
		defer rl.Close()

		for i := 0; i < 50; i++ {
			success := rl.tryAcquire()
			require.True(t, success, "Expected default rate limit to allow many requests")
		}
	})

	t.Run("poll interval tracks refill rate", func(t *testing.T) {
		slow := newRateLimiter(1)
		defer slow.Close()
		assert.Equal(t, time.Second, slow.pollInterval())

		mid := newRateLimiter(100)
		defer mid.Close()
		assert.Equal(t, 150*time.Millisecond, mid.pollInterval())

		fast := newRateLimiter(100000)
		defer fast.Close()
		assert.Equal(t, 10*time.Millisecond, fast.pollInterval())
	})

	t.Run("concurrent access", func(t *testing.T) {
		rl := newRateLimiter(100)
		defer rl.Close()
		ctx := context.Background()

		var acquired int32
		done := make(chan bool, 10)
		mu := sync.Mutex{}

		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 10; j++ {
					if err := rl.wait(ctx); err == nil {
						mu.Lock()
						acquired++
						mu.Unlock()
					}
				}
				done <- true
			}()
		}

		for i := 0; i < 10; i++ {
			<-done
		}

		assert.Equal(t, int32(100), acquired)
	})
}
