package assets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanDispatcher hands posted tasks to the test goroutine.
type chanDispatcher chan func()

func (d chanDispatcher) Post(task func()) { d <- task }

func TestFutureWaitResolved(t *testing.T) {
	f := Resolved("a.png", 42, nil)

	assert.True(t, f.Ready())
	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, "a.png", f.Path())
}

func TestFutureWaitContextCancelled(t *testing.T) {
	f := newFuture[int]("slow.png")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.Ready())
}

func TestFutureThenRunsOnDispatcher(t *testing.T) {
	d := make(chanDispatcher, 1)
	f := newFuture[string]("model.glb")

	var got string
	var gotErr error
	f.Then(d, func(v string, err error) { got, gotErr = v, err })

	boom := errors.New("boom")
	f.resolve("partial", boom)

	select {
	case task := <-d:
		assert.Empty(t, got, "callback must not run before the dispatcher drains")
		task()
	case <-time.After(time.Second):
		t.Fatal("task was never posted")
	}
	assert.Equal(t, "partial", got)
	assert.ErrorIs(t, gotErr, boom)
}

func TestFutureResultPending(t *testing.T) {
	f := newFuture[int]("pending.png")
	_, _, ok := f.Result()
	assert.False(t, ok)

	f.resolve(7, nil)
	v, err, ok := f.Result()
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestPendingResolvesOnce(t *testing.T) {
	f, resolve := Pending[int]("p.png")
	assert.False(t, f.Ready())

	resolve(1, nil)
	resolve(2, errors.New("late"))

	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
