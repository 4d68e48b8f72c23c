package completion

// relay forwards the resolver cell's terminal state onto the public cell. The
// forwarding step always runs on a goroutine chosen by the executor, never on
// the goroutine that resolved the source; that one asynchronous hop is the
// reason this package exists over a bare promise.
type relay[T any] struct {
	resolver *cell[T]
	public   *cell[T]
	executor Executor
}

// attach wires the relay to the resolver cell. It must run before the resolver
// is reachable by any writer, so the continuation is in place for whichever
// transition eventually wins.
func (r *relay[T]) attach() {
	r.resolver.onResolved = func() {
		r.executor.Submit(r.forward)
	}
}

// forward copies the resolver's terminal state onto the public cell. The
// resolver is write-once and fully published before onResolved fires, so
// forward runs exactly once and never sees a partial state.
func (r *relay[T]) forward() {
	switch r.resolver.terminal() {
	case cellSucceeded:
		r.public.setResult(r.resolver.val)
	case cellFailed:
		r.public.setError(r.resolver.err)
	case cellCanceled:
		r.public.setCanceled()
	}
}
