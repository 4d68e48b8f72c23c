// Package executors provides ready-made implementations of the scheduling
// capability a completion source needs: submit a unit of work, queue it, and
// return without running it inline.
package executors

// Go runs each submitted function on a fresh goroutine.
type Go struct{}

func (Go) Submit(f func()) {
	go f()
}

// Pool bounds how many submitted functions run concurrently.
type Pool struct {
	sem chan struct{}
}

func NewPool(maxWorkers int) *Pool {
	return &Pool{
		sem: make(chan struct{}, maxWorkers),
	}
}

// Submit queues f and returns immediately. The worker goroutine acquires the
// slot, so a saturated pool delays f rather than blocking the submitter.
func (p *Pool) Submit(f func()) {
	go func() {
		p.sem <- struct{}{}
		defer func() { <-p.sem }()
		f()
	}()
}
