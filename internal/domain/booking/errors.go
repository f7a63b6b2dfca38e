package booking

// ValidationError marks a transition-guard failure. It is always
// recoverable: the session keeps its state and the caller may correct the
// input and retry the step.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

func validationError(msg string) error {
	return NewValidationError(msg)
}
