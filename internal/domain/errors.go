package domain

import "errors"

var (
	// ErrFetchFailed is returned when the target page cannot be retrieved
	ErrFetchFailed = errors.New("failed to fetch page")

	// ErrModelNotConfigured is returned when no model API key is configured
	ErrModelNotConfigured = errors.New("model API key not configured")

	// ErrModelCallFailed is returned when a model request fails
	ErrModelCallFailed = errors.New("model request failed")

	// ErrProductNotFound is returned when a catalog product cannot be found
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
