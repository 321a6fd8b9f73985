package cabi

import "errors"

// Sentinel errors for rejected boundary calls. C callers only ever see NULL.
var (
	// Input errors.
	ErrNilInput    = errors.New("cabi: input pointer is NULL")
	ErrInvalidUTF8 = errors.New("cabi: input is not valid UTF-8")

	// Output errors.
	ErrEmbeddedNUL = errors.New("cabi: result contains a NUL byte")
)
