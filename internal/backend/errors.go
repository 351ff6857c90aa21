package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches any APIError with status 404.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the body's "message" field, or its "error" field when message is absent.
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Is reports whether target is ErrNotFound and e is a 404.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// UserMessage returns the API message, or a generic French fallback.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode >= http.StatusInternalServerError {
		return "Le serveur de jeu est indisponible. Réessayez dans un instant."
	}
	return fmt.Sprintf("La requête a été refusée par le serveur (%d).", e.StatusCode)
}
