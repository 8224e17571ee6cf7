package domain

// ValidationError marks a request rejected by a field-level check before
// any mutation happened. Carries the user-facing message.
type ValidationError struct {
	msg string
}

func Validation(msg string) error {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}
