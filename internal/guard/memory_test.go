package guard

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("second acquire is rejected until release", func(t *testing.T) {
		g := NewMemory()

		release, err := g.Acquire(ctx, "login:screen-1")
		require.NoError(t, err)
		assert.True(t, g.Held("login:screen-1"))

		_, err = g.Acquire(ctx, "login:screen-1")
		assert.ErrorIs(t, err, ErrHeld)

		release()
		assert.False(t, g.Held("login:screen-1"))

		release2, err := g.Acquire(ctx, "login:screen-1")
		require.NoError(t, err)
		release2()
	})

	t.Run("keys are independent", func(t *testing.T) {
		g := NewMemory()
		r1, err := g.Acquire(ctx, "login:a")
		require.NoError(t, err)
		r2, err := g.Acquire(ctx, "login:b")
		require.NoError(t, err)
		r1()
		r2()
	})

	t.Run("double release does not free a later holder", func(t *testing.T) {
		g := NewMemory()
		release, err := g.Acquire(ctx, "k")
		require.NoError(t, err)
		release()

		_, err = g.Acquire(ctx, "k")
		require.NoError(t, err)
		release()
		assert.True(t, g.Held("k"))
	})

	t.Run("only one of many concurrent acquires wins", func(t *testing.T) {
		g := NewMemory()
		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := g.Acquire(ctx, "register:x"); err == nil {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})
}
