package channel_utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPool(t *testing.T, size int) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(size)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	return pool
}

func TestFanOut_KeepsInputOrder(t *testing.T) {
	pool := newPool(t, 10)
	inputs := []int{30, 10, 20, 0}

	results, err := FanOut(context.Background(), pool, inputs, func(ctx context.Context, index int, delay int) (int, error) {
		time.Sleep(time.Duration(delay) * time.Millisecond)
		return index * 10, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20, 30}, results)
}

func TestFanOut_EmptyInput(t *testing.T) {
	results, err := FanOut(context.Background(), newPool(t, 1), []string{}, func(ctx context.Context, index int, in string) (string, error) {
		t.Fatal("task must not run")
		return "", nil
	})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFanOut_FirstErrorCancelsAndJoins(t *testing.T) {
	pool := newPool(t, 10)
	boom := errors.New("boom")
	var running atomic.Int32

	_, err := FanOut(context.Background(), pool, []int{0, 1, 2}, func(ctx context.Context, index int, in int) (int, error) {
		running.Add(1)
		defer running.Add(-1)
		if index == 1 {
			return 0, boom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return in, nil
		}
	})

	require.ErrorIs(t, err, boom)
	assert.Zero(t, running.Load())
}

func TestFanOut_RecoversPanics(t *testing.T) {
	pool := newPool(t, 2)

	_, err := FanOut(context.Background(), pool, []string{"a"}, func(ctx context.Context, index int, in string) (string, error) {
		panic("kaboom")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

type closedDispatcher struct{}

func (closedDispatcher) Submit(func()) error {
	return ants.ErrPoolClosed
}

func TestFanOut_SubmitFailure(t *testing.T) {
	_, err := FanOut(context.Background(), closedDispatcher{}, []string{"a", "b"}, func(ctx context.Context, index int, in string) (string, error) {
		return in, nil
	})

	require.ErrorIs(t, err, ants.ErrPoolClosed)
}
