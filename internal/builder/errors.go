package builder

import "errors"

// Errors returned by builds. They are wrapped with the offending path, so
// check them with errors.Is.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrNotDirectory  = errors.New("input is not a directory")
	ErrReadFailed    = errors.New("failed to read input")
	ErrEncoding      = errors.New("input is not valid UTF-8")
	ErrWriteFailed   = errors.New("failed to write output")
)
