package completion

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	// ErrAlreadyResolved is the panic value of the must-succeed Set methods when
	// the source has already reached a terminal state.
	ErrAlreadyResolved = errors.New("completion: source already resolved")

	// ErrNilError is the panic value of SetError and TrySetError when called
	// with a nil error. A nil error is a usage bug in the caller and is never
	// reported as an ordinary false return.
	ErrNilError = errors.New("completion: nil error")

	// ErrCanceled is returned by Future.Result, Future.Wait and Future.Peek
	// when the source was resolved by SetCanceled or TrySetCanceled. It is
	// distinct from any error stored via SetError.
	ErrCanceled = errors.New("completion: canceled")
)

const (
	cellPending uint32 = iota
	cellResolving // transition won, payload not yet published
	cellSucceeded
	cellFailed
	cellCanceled
)

// cell is the write-once terminal-state machine shared by the resolver and the
// public side of a Source. A cell leaves cellPending at most once; every
// terminal state is absorbing. Both the must-succeed and the try forms of each
// transition are built on the same resolve primitive.
type cell[T any] struct {
	status atomic.Uint32
	done   chan struct{}

	val T
	err error

	// onResolved is attached before the cell is reachable by any writer and
	// fires exactly once, after the terminal status is published.
	onResolved func()
}

func newCell[T any]() *cell[T] {
	return &cell[T]{done: make(chan struct{})}
}

// resolve attempts the pending → terminal transition and reports whether this
// call won it. The payload becomes readable only after the terminal status is
// stored, so a concurrent reader never observes a partial write. Exactly one
// of any number of concurrent resolve calls returns true.
func (c *cell[T]) resolve(terminal uint32, val T, err error) bool {
	if !c.status.CompareAndSwap(cellPending, cellResolving) {
		return false
	}
	c.val = val
	c.err = err
	c.status.Store(terminal)
	close(c.done)
	if c.onResolved != nil {
		c.onResolved()
	}
	return true
}

func (c *cell[T]) trySetResult(val T) bool {
	return c.resolve(cellSucceeded, val, nil)
}

func (c *cell[T]) setResult(val T) {
	if !c.trySetResult(val) {
		panic(ErrAlreadyResolved)
	}
}

// trySetError validates err before looking at the current state: a nil error
// is always a usage bug, never a lost race.
func (c *cell[T]) trySetError(err error) bool {
	if err == nil {
		panic(ErrNilError)
	}
	var zero T
	return c.resolve(cellFailed, zero, err)
}

func (c *cell[T]) setError(err error) {
	if !c.trySetError(err) {
		panic(ErrAlreadyResolved)
	}
}

func (c *cell[T]) trySetCanceled() bool {
	var zero T
	return c.resolve(cellCanceled, zero, nil)
}

func (c *cell[T]) setCanceled() {
	if !c.trySetCanceled() {
		panic(ErrAlreadyResolved)
	}
}

// terminal returns the published terminal status, or cellPending while the
// cell is unresolved or mid-transition.
func (c *cell[T]) terminal() uint32 {
	s := c.status.Load()
	if s == cellResolving {
		return cellPending
	}
	return s
}
