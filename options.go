package completion

// Flags carries creation hints recorded on the exposed future. Flags never
// alter completion behavior; they exist for custom executors and
// instrumentation that inspect the future.
type Flags uint32

const (
	// FlagNone is the empty flag set.
	FlagNone Flags = 0
	// FlagLongRunning hints that consumers may block on the future for a long
	// time.
	FlagLongRunning Flags = 1 << 0
)

// Has reports whether every flag in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

type options struct {
	state    any
	flags    Flags
	executor Executor
}

// Option configures a Source at construction time.
type Option func(*options)

// WithState attaches an opaque value to the exposed future, retrievable via
// Future.State. It has no effect on completion semantics.
func WithState(state any) Option {
	return func(o *options) {
		o.state = state
	}
}

// WithFlags records creation flags on the exposed future, retrievable via
// Future.Flags.
func WithFlags(flags Flags) Option {
	return func(o *options) {
		o.flags = flags
	}
}

// WithExecutor overrides the executor that runs the forwarding step for this
// source only. It panics if e is nil.
func WithExecutor(e Executor) Option {
	if e == nil {
		panic("completion: executor is nil")
	}
	return func(o *options) {
		o.executor = e
	}
}
