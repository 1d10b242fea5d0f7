package domain

import "errors"

// ErrNotFound marks lookups for designs that do not exist (or are deleted).
// Handlers map it to a 404; it is never conflated with validation failures.
var ErrNotFound = errors.New("not found")

// ErrValidation marks malformed input: an unrecognized enum value or a
// missing required field. Raised before any pipeline stage runs.
var ErrValidation = errors.New("validation")
