package session

// ValidationError rejects learner input without mutating state or
// advancing the phase. The message is shown to the learner as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
