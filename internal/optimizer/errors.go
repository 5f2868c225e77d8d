package optimizer

import "fmt"

// PreconditionError reports malformed input caught before any mutation:
// invalid settings or a broken strategy registry. Degenerate but well-formed
// input (empty document, blank job description) is not an error; it yields
// a no-op success so repeated calls stay idempotent.
type PreconditionError struct {
	Message string
	Cause   error
}

func (e *PreconditionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("precondition failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

func (e *PreconditionError) Unwrap() error {
	return e.Cause
}
