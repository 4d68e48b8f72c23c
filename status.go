package completion

import "fmt"

// Status describes the resolution state of a Future.
type Status uint32

const (
	// StatusPending means the source has not reached the future yet.
	StatusPending Status = iota
	// StatusSucceeded means the future holds a value.
	StatusSucceeded
	// StatusFailed means the future holds an error.
	StatusFailed
	// StatusCanceled means the source was canceled before producing a value.
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("status(%d)", uint32(s))
	}
}
