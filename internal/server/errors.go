package server

import (
	"errors"

	"github.com/spacesedan/sentilabel/internal/models"
)

// Public error messages. These are the exact strings clients see.
var (
	ErrNotJSON          = errors.New("Request must be JSON")
	ErrMissingText      = errors.New("Missing 'text' field in JSON data")
	ErrBodyTooLarge     = errors.New("Request body too large")
	ErrInvalidForm      = errors.New("Invalid form submission")
	ErrNotFound         = errors.New("Not found")
	ErrMethodNotAllowed = errors.New("Method not allowed")
	ErrInternal         = errors.New("Internal server error")
)

func errorBody(err error) models.ErrorResponse {
	return models.ErrorResponse{Error: err.Error()}
}
