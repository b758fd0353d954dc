package server

import (
	"fmt"
	"net/http"
)

// ErrNoSession indicates the token's session is no longer active, typically
// because a different API key was registered after the token was issued.
type ErrNoSession struct{}

func (e *ErrNoSession) Error() string {
	return "session is no longer active; register the API key again"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrNoSession:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
