package analysis

import (
	"errors"

	"fpl-league-mcp/internal/model"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrEmptyInput is returned where at least one record is required.
	ErrEmptyInput = errors.New("no records supplied")

	// ErrInvalidConfig is returned for out-of-range caller parameters (n < 1).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDataIntegrity aliases the model-level fault so callers can match
	// either package.
	ErrDataIntegrity = model.ErrDataIntegrity
)
