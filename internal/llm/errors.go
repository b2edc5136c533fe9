// Package llm implements the two-phase breed classification pipeline
// against a vision-capable chat model.
package llm

import "errors"

// ErrProvider indicates the external model was unreachable or returned
// content that could not be used. Transient from the caller's point of
// view; the service never retries it.
var ErrProvider = errors.New("classification provider error")

// DefaultNotACatReason is used when the gate rejects an image without
// giving its own explanation.
const DefaultNotACatReason = "The image does not contain a cat"

// NotACatError is returned when the gate phase decides the image does
// not contain a cat. Reason carries the model's explanation for user
// display.
type NotACatError struct {
	Reason string
}

func (e *NotACatError) Error() string {
	return "not a cat: " + e.Reason
}
