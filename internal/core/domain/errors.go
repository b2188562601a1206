package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors, which are wrapped as-is.
var (
	// ErrInvalidInput indicates malformed or invalid input, such as a
	// non-positive n-gram length or a negative k.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidEncoding indicates a file source is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

	// ErrUnsupportedSource indicates a Source variant no reader handles.
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrUnknownSetting indicates a settings key that does not exist.
	ErrUnknownSetting = errors.New("unknown setting")
)
