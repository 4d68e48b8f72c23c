package completion

import "github.com/saltfishpr/completion/executors"

// Executor is the scheduling capability a Source needs from its host: submit a
// unit of work for independent execution. Submit must queue f and return; it
// must never run f inline on the calling goroutine, because the forwarding
// step handed to it is exactly the work this package promises to keep off the
// resolver's stack.
//
// The default is executors.Go, which starts a goroutine per submission. Use
// ExecutorFunc to adapt a worker pool:
//
//	pool := executors.NewPool(100)
//	completion.SetDefaultExecutor(pool)
type Executor interface {
	Submit(f func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(func())

func (e ExecutorFunc) Submit(f func()) {
	e(f)
}

var defaultExecutor Executor = executors.Go{}

// SetDefaultExecutor replaces the executor used by sources constructed without
// WithExecutor. It panics if e is nil. It is not safe to call concurrently
// with New.
func SetDefaultExecutor(e Executor) {
	if e == nil {
		panic("completion: executor is nil")
	}
	defaultExecutor = e
}
