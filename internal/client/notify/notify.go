// Package notify is the fire-and-forget channel for transient user-facing
// status messages (progress, success, error).
package notify

// Sink receives status messages. id groups messages that describe the same
// logical activity so a later message can replace an earlier one; it may be
// empty. Implementations must be safe for concurrent use and must not block
// for long.
type Sink interface {
	Loading(id, msg string)
	Success(id, msg string)
	Error(id, msg string)
}

type Kind string

const (
	KindLoading Kind = "loading"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Nop drops everything.
type Nop struct{}

func (Nop) Loading(string, string) {}
func (Nop) Success(string, string) {}
func (Nop) Error(string, string)   {}
