package catalog

import "errors"

// Domain error kinds. The HTTP facade maps these to status codes.
var (
	ErrInvalidData = errors.New("invalid book data")
	ErrNotFound    = errors.New("book not found")
	ErrWrongStatus = errors.New("book is in the opposite status")
)
