package cabi

/*
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"unicode/utf8"
	"unsafe"

	"github.com/dmitrymomot/slugkit/pkg/logger"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

var log atomic.Pointer[slog.Logger]

func init() {
	log.Store(logger.NewNope())
}

// SetLogger installs the logger used to report rejected calls.
// A nil logger restores the no-op default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logger.NewNope()
	}
	log.Store(l)
}

// SlugifySimple slugs the NUL-terminated string at input with slug.DefaultOptions.
// The result must be released with FreeString; nil means no slug was produced.
func SlugifySimple(input unsafe.Pointer) unsafe.Pointer {
	return slugify(input, slug.DefaultOptions())
}

// SlugifyWithOptions is SlugifySimple with explicit options, see Options.
func SlugifyWithOptions(input unsafe.Pointer, separator byte, maxLength int32, lowercase, removeStopwords, asciiOnly bool) unsafe.Pointer {
	return slugify(input, Options(separator, maxLength, lowercase, removeStopwords, asciiOnly))
}

// Options converts C primitives into slug.Options.
// The separator byte is read as the code point of the same value (Latin-1),
// so only U+0000..U+00FF can be requested. A non-positive maxLength is unbounded.
func Options(separator byte, maxLength int32, lowercase, removeStopwords, asciiOnly bool) slug.Options {
	opts := slug.Options{
		Separator:       rune(separator),
		Lowercase:       lowercase,
		RemoveStopwords: removeStopwords,
		ASCIIOnly:       asciiOnly,
	}
	if maxLength > 0 {
		opts.MaxLength = int(maxLength)
	}
	return opts
}

// FreeString releases a buffer returned by SlugifySimple or SlugifyWithOptions.
// It is a no-op for nil. Passing any other pointer, or the same one twice, is undefined.
func FreeString(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
}

// Decode copies the NUL-terminated buffer at p into a Go string.
func Decode(p unsafe.Pointer) (string, error) {
	if p == nil {
		return "", ErrNilInput
	}
	s := C.GoString((*C.char)(p))
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	return s, nil
}

// Encode copies s into a new NUL-terminated C buffer owned by the caller.
func Encode(s string) (unsafe.Pointer, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	return unsafe.Pointer(C.CString(s)), nil
}

func slugify(input unsafe.Pointer, opts slug.Options) unsafe.Pointer {
	s, err := Decode(input)
	if err != nil {
		reject(err, opts)
		return nil
	}

	out, err := Encode(slug.Slugify(s, opts))
	if err != nil {
		reject(err, opts)
		return nil
	}
	return out
}

// reject logs a failed call. An embedded NUL means the caller passed a NUL
// separator and is logged at warn level. Bad input is logged at debug level.
func reject(err error, opts slug.Options) {
	level := slog.LevelDebug
	if errors.Is(err, ErrEmbeddedNUL) {
		level = slog.LevelWarn
	}
	log.Load().Log(context.Background(), level, "slugify call rejected",
		slog.String("error", err.Error()),
		slog.Int("separator", int(opts.Separator)),
		slog.Int("max_length", opts.MaxLength),
	)
}
