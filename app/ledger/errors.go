package ledger

import "fmt"

// ValidationError reports client-detectable bad input. Operations that fail
// validation are never submitted to the fees service.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// AuthError reports a missing or expired credential. It is surfaced by the
// transport layer and must never be folded into validation or persistence
// failures.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "unauthorized: " + e.Reason
}

// PersistenceError reports that the fees service failed or was unreachable.
// The operation aborts with no partial state change.
type PersistenceError struct {
	Reason string
	Err    error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fees service: %s: %v", e.Reason, e.Err)
	}
	return "fees service: " + e.Reason
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
