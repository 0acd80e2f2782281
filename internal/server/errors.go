// Package server provides the HTTP REST API for the resume builder wizard.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/enhance"
)

// ErrEntryNotFound indicates a resume entry with the given id does not exist
type ErrEntryNotFound struct {
	Kind string
	ID   string
}

func (e *ErrEntryNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrEnhancementUnavailable indicates no Gemini API key is configured
type ErrEnhancementUnavailable struct{}

func (e *ErrEnhancementUnavailable) Error() string {
	return "enhancement unavailable: no API key configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *ErrEntryNotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var unavailable *ErrEnhancementUnavailable
	if errors.As(err, &unavailable) {
		return http.StatusServiceUnavailable
	}
	var apiErr *enhance.APICallError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	var parseErr *enhance.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
