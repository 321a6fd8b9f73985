// Package cabi adapts the slug engine to C callers.
//
// Every pointer conversion and C heap operation of the module lives here.
// Input is a borrowed NUL-terminated UTF-8 buffer; output is a fresh
// C-allocated NUL-terminated buffer owned by the caller, who must hand it
// back to FreeString exactly once. Nothing in this package keeps a reference
// to returned buffers.
//
// Failures are reported as a nil pointer:
//   - the input pointer is nil (ErrNilInput)
//   - the input bytes are not valid UTF-8 (ErrInvalidUTF8)
//   - the slug contains a NUL byte and cannot be terminated (ErrEmbeddedNUL),
//     which happens when the separator byte is 0 and two or more words survive
//
// Rejections are logged through the logger installed with SetLogger: unencodable
// results at warn level, bad input at debug level.
package cabi
