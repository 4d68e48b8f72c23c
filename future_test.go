package completion

import (
	"context"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goid parses the current goroutine id from the stack header. Test-only.
func goid() int {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	fields := strings.Fields(string(buf[:n]))
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		panic(err)
	}
	return id
}

func TestFutureStatusPendingBeforeResolve(t *testing.T) {
	f := New[int]().Future()

	assert.Equal(t, StatusPending, f.Status())
	_, _, ok := f.Peek()
	assert.False(t, ok)
	select {
	case <-f.Done():
		t.Fatal("done closed before resolve")
	default:
	}
}

func TestFutureWaitHonorsContext(t *testing.T) {
	f := New[int]().Future()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// Abandoning a wait does not disturb the future.
	assert.Equal(t, StatusPending, f.Status())
}

func TestFutureWaitReturnsOutcome(t *testing.T) {
	s := New[string]()
	f := s.Future()

	go func() {
		time.Sleep(10 * time.Millisecond)
		s.SetResult("late")
	}()

	val, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", val)
}

func TestFuturePeekAfterResolve(t *testing.T) {
	boom := errors.New("boom")
	s := New[int]()
	f := s.Future()

	s.SetError(boom)
	<-f.Done()

	val, err, ok := f.Peek()
	require.True(t, ok)
	assert.Zero(t, val)
	assert.Equal(t, boom, err)
}

func TestFutureManyConsumersSeeOneOutcome(t *testing.T) {
	s := New[int]()
	f := s.Future()

	const n = 16
	results := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, err := f.Result()
			assert.NoError(t, err)
			results <- val
		}()
	}

	s.SetResult(42)
	wg.Wait()
	close(results)

	for val := range results {
		assert.Equal(t, 42, val)
	}
}

func TestOutcomePublishedOffResolvingGoroutine(t *testing.T) {
	forwardID := make(chan int, 1)
	exec := ExecutorFunc(func(fn func()) {
		go func() {
			forwardID <- goid()
			fn()
		}()
	})
	s := New[int](WithExecutor(exec))
	f := s.Future()

	resolverID := goid()
	s.SetResult(1)

	_, err := f.Result()
	require.NoError(t, err)
	assert.NotEqual(t, resolverID, <-forwardID)
}

func TestCompleted(t *testing.T) {
	f := Completed("v")
	val, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, "v", val)
	assert.Equal(t, StatusSucceeded, f.Status())
}

func TestFaulted(t *testing.T) {
	boom := errors.New("boom")
	f := Faulted[string](boom)
	_, err := f.Result()
	assert.Equal(t, boom, err)

	assert.PanicsWithValue(t, ErrNilError, func() { Faulted[string](nil) })
}

func TestCanceled(t *testing.T) {
	f := Canceled[string]()
	_, err := f.Result()
	require.ErrorIs(t, err, ErrCanceled)
	assert.Equal(t, StatusCanceled, f.Status())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "succeeded", StatusSucceeded.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "canceled", StatusCanceled.String())
	assert.Equal(t, "status(9)", Status(9).String())
}
