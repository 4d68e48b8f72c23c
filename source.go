// Package completion provides a producer/consumer future primitive whose
// consumer wake-ups never run inline on the resolving goroutine.
//
// A Source is the producer side: it can be resolved exactly once into one of
// three terminal states (a value, an error, or cancellation). Its Future is
// the consumer side: a read-only handle supporting polling, blocking waits and
// a completion channel.
//
// A plain promise wakes its waiters from inside the Set call, on the caller's
// own goroutine. If that caller holds a lock or runs on a single-threaded
// dispatch loop, waiter code piggybacks on it, which invites deadlocks and
// unbounded stack growth. Source interposes a relay: resolving only records
// the terminal state and submits a forwarding step to an Executor, and the
// exposed future resolves from that independently scheduled step. Set and
// TrySet therefore always return promptly, and no consumer ever resumes on the
// resolving goroutine.
package completion

// Source is the write side of a completion pipeline. It is resolved at most
// once; after any terminal state is reached, the must-succeed Set methods
// panic with ErrAlreadyResolved and the TrySet methods return false.
//
// When several goroutines race distinct transitions against one Source,
// exactly one wins; which one is unspecified. The losers observe the winner's
// terminal state through their fault or false return.
type Source[T any] struct {
	resolver *cell[T]
	future   *Future[T]
}

// New constructs a Source wired to a fresh future. The resolver, the future's
// backing state, and the relay between them are private to the returned
// Source; consumers only ever see the Future.
func New[T any](opts ...Option) *Source[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	executor := o.executor
	if executor == nil {
		executor = defaultExecutor
	}

	resolver := newCell[T]()
	public := newCell[T]()
	r := &relay[T]{resolver: resolver, public: public, executor: executor}
	r.attach()

	return &Source[T]{
		resolver: resolver,
		future:   &Future[T]{cell: public, state: o.state, flags: o.flags},
	}
}

// Future returns the consumer-facing future. The same instance is returned on
// every call for the lifetime of the source.
func (s *Source[T]) Future() *Future[T] {
	return s.future
}

// SetResult resolves the source with val. It panics with ErrAlreadyResolved
// if the source is already resolved.
func (s *Source[T]) SetResult(val T) {
	s.resolver.setResult(val)
}

// TrySetResult resolves the source with val and reports whether this call won
// the transition.
func (s *Source[T]) TrySetResult(val T) bool {
	return s.resolver.trySetResult(val)
}

// SetError resolves the source with err. Consumers receive err itself, not a
// wrapped copy. It panics with ErrNilError if err is nil and with
// ErrAlreadyResolved if the source is already resolved.
func (s *Source[T]) SetError(err error) {
	s.resolver.setError(err)
}

// TrySetError resolves the source with err and reports whether this call won
// the transition. It panics with ErrNilError if err is nil, regardless of the
// source's state.
func (s *Source[T]) TrySetError(err error) bool {
	return s.resolver.trySetError(err)
}

// SetCanceled resolves the source as canceled. It panics with
// ErrAlreadyResolved if the source is already resolved.
func (s *Source[T]) SetCanceled() {
	s.resolver.setCanceled()
}

// TrySetCanceled resolves the source as canceled and reports whether this call
// won the transition.
func (s *Source[T]) TrySetCanceled() bool {
	return s.resolver.trySetCanceled()
}
