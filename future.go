package completion

import "context"

// Future is the read-only consumer view of a Source. It exposes observation
// only: polling, blocking and context-aware waits, and a completion channel.
// All observers of the same future see the same terminal outcome.
//
// A future resolves strictly after the call that resolved its source returns,
// on a goroutine chosen by the source's executor. Code that checks Status or
// Peek immediately after a Set call may still observe a pending future.
type Future[T any] struct {
	cell  *cell[T]
	state any
	flags Flags
}

// Done returns a channel that is closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.cell.done
}

// Status reports the current resolution state without blocking.
func (f *Future[T]) Status() Status {
	return statusOf(f.cell.terminal())
}

// Result blocks until the future is resolved. It returns (value, nil) on
// success, (zero, err) with the exact error given to SetError on failure, and
// (zero, ErrCanceled) on cancellation.
func (f *Future[T]) Result() (T, error) {
	<-f.cell.done
	return f.outcome()
}

// Wait is like Result but gives up when ctx is done, returning ctx's error.
// Giving up does not affect the future; a later Wait or Result may still
// observe the outcome.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.cell.done:
		return f.outcome()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Peek returns the outcome without blocking. ok is false while the future is
// pending, in which case val and err are meaningless.
func (f *Future[T]) Peek() (val T, err error, ok bool) {
	if f.cell.terminal() == cellPending {
		return val, nil, false
	}
	val, err = f.outcome()
	return val, err, true
}

// State returns the opaque value attached via WithState, or nil.
func (f *Future[T]) State() any {
	return f.state
}

// Flags returns the creation flags recorded via WithFlags.
func (f *Future[T]) Flags() Flags {
	return f.flags
}

// outcome must only be called once the cell is terminal.
func (f *Future[T]) outcome() (T, error) {
	switch f.cell.terminal() {
	case cellFailed:
		var zero T
		return zero, f.cell.err
	case cellCanceled:
		var zero T
		return zero, ErrCanceled
	default:
		return f.cell.val, nil
	}
}

func statusOf(terminal uint32) Status {
	switch terminal {
	case cellSucceeded:
		return StatusSucceeded
	case cellFailed:
		return StatusFailed
	case cellCanceled:
		return StatusCanceled
	default:
		return StatusPending
	}
}

// Completed returns a future already on its way to resolving with val.
func Completed[T any](val T) *Future[T] {
	s := New[T]()
	s.SetResult(val)
	return s.Future()
}

// Faulted returns a future already on its way to failing with err.
// It panics with ErrNilError if err is nil.
func Faulted[T any](err error) *Future[T] {
	s := New[T]()
	s.SetError(err)
	return s.Future()
}

// Canceled returns a future already on its way to cancellation.
func Canceled[T any]() *Future[T] {
	s := New[T]()
	s.SetCanceled()
	return s.Future()
}
