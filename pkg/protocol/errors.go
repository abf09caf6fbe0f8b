package protocol

import "fmt"

// FormatError reports a malformed task/queue identifier or wire message.
// It is unrecoverable for the run in progress.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %q: %s", e.Input, e.Reason)
}
