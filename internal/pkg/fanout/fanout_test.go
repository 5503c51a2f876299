package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PreservesOrder(t *testing.T) {
	items := []int{5, 4, 3, 2, 1}

	results, err := Map(context.Background(), 2, items, func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * 10, nil
	})

	require.NoError(t, err)
	require.Len(t, results, len(items))
	for i, n := range items {
		assert.NoError(t, results[i].Err)
		assert.Equal(t, n*10, results[i].Value)
	}
}

func TestMap_IsolatesFailures(t *testing.T) {
	boom := errors.New("boom")
	items := []string{"ok", "fail", "panic", "ok-too"}

	results, err := Map(context.Background(), 4, items, func(_ context.Context, s string) (string, error) {
		switch s {
		case "fail":
			return "", boom
		case "panic":
			panic("unexpected")
		}
		return s, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", results[0].Value)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.Error(t, results[2].Err)
	assert.Equal(t, "ok-too", results[3].Value)
}

func TestMap_RespectsLimit(t *testing.T) {
	var running, peak int32
	items := make([]int, 20)

	_, err := Map(context.Background(), 3, items, func(_ context.Context, _ int) (struct{}, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return struct{}{}, nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestMap_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Map(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMap_Empty(t *testing.T) {
	results, err := Map(context.Background(), 0, []int(nil), func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}
