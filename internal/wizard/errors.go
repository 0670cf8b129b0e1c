package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTransition  = errors.New("wizard: action not allowed at the current step")
	ErrSubmissionInFlight = errors.New("wizard: submission in flight")
)

// FieldError is a validation failure local to one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError blocks a transition out of Step.
type ValidationError struct {
	Step   Step
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("wizard: step %d is invalid: %s", e.Step, strings.Join(msgs, "; "))
}

// Fields maps field name to message.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}
