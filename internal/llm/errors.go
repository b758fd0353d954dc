package llm

import "fmt"

// ModelError is returned for any failure while talking to the generation
// endpoint: auth failure, quota exhaustion, network failure, or a malformed
// upstream response. Callers decide how far the failure travels; the expert
// stages convert it to fallback text instead of propagating it.
type ModelError struct {
	Message string
	Cause   error
}

func (e *ModelError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *ModelError) Unwrap() error {
	return e.Cause
}
