package client

import (
	"errors"
	"fmt"
)

// MaxUploadSize is the client-enforced upload ceiling (10 MiB). It is
// independent of whatever limit the server applies.
const MaxUploadSize int64 = 10 * 1024 * 1024

var (
	ErrNoCredential      = errors.New("no credential")
	ErrSizeLimitExceeded = errors.New("file size exceeds client limit")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrPayloadTooLarge   = errors.New("payload too large")
	ErrNotFound          = errors.New("not found")
	ErrServerRejected    = errors.New("server rejected request")
	ErrUnreachable       = errors.New("server unreachable")
	// ErrBodySizeMismatch means the upload body did not hold exactly the
	// declared number of bytes, typically because the file changed after
	// its size was taken.
	ErrBodySizeMismatch = errors.New("upload body does not match declared size")
)

// ServerRejectedError carries the message of a structured error response.
// It matches ErrServerRejected with errors.Is.
type ServerRejectedError struct {
	Status  int
	Message string
}

func (e *ServerRejectedError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}

func (e *ServerRejectedError) Is(target error) bool {
	return target == ErrServerRejected
}

// RejectionMessage returns the server-provided message when err is a
// ServerRejectedError.
func RejectionMessage(err error) (string, bool) {
	var sr *ServerRejectedError
	if errors.As(err, &sr) {
		return sr.Message, true
	}
	return "", false
}

func unreachable(cause error) error {
	return fmt.Errorf("%w: %w", ErrUnreachable, cause)
}
