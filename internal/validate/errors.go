// errors.go defines sentinel errors for validation findings.
//
// Separated to centralise the finding taxonomy. Each error names one
// category of problem; a Finding wraps it with the file, record and message.
//
// Design: Sentinel errors (not error types) because the category is all a
// caller needs to branch on. Record details live on the Finding.

package validate

import "errors"

// Fatal: the affected file cannot be checked any further.
var (
	ErrMissingFile = errors.New("missing file")
	ErrParse       = errors.New("parse error")
	ErrSchema      = errors.New("schema error")
)

// Non-fatal: recorded, scanning continues.
var (
	ErrMissingField      = errors.New("missing field")
	ErrInvalidType       = errors.New("invalid type")
	ErrInvalidFormat     = errors.New("invalid format")
	ErrInvalidEnum       = errors.New("invalid enum value")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrInvalidURL        = errors.New("invalid url")
	ErrEmptyCategories   = errors.New("empty categories")
	ErrDanglingReference = errors.New("dangling reference")
	ErrInvalidDate       = errors.New("invalid date")
)

// ErrLength is advisory: always recorded as a warning.
var ErrLength = errors.New("length limit exceeded")

// fatal reports whether kind aborts checks for its file.
func fatal(kind error) bool {
	return errors.Is(kind, ErrMissingFile) ||
		errors.Is(kind, ErrParse) ||
		errors.Is(kind, ErrSchema)
}
