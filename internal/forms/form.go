// internal/forms/form.go
package forms

// State is the form controller state machine. Transitions:
// closed -> open (create or edit) -> submitting -> closed on success, or
// submitting -> open with the entered data intact on a retryable failure.
// Cancel discards uncommitted input from any open state.
type State string

const (
	StateClosed     State = "closed"
	StateOpen       State = "open"
	StateSubmitting State = "submitting"
)
