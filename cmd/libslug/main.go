// Command libslug builds the slug engine as a C shared library:
//
//	go build -buildmode=c-shared -o libslug.so ./cmd/libslug
//
// The generated libslug.h declares:
//
//	char *slugify_simple(char *input);
//	char *slugify_with_options(char *input, char separator, int max_length,
//	                           bool lowercase, bool remove_stopwords, bool ascii_only);
//	void free_string(char *ptr);
//
// Every non-NULL result is owned by the caller and must be passed to free_string exactly once.
// Warnings about rejected calls are written to stderr as JSON lines.
package main

/*
#include <stdbool.h>
*/
import "C"

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/dmitrymomot/slugkit/internal/cabi"
	"github.com/dmitrymomot/slugkit/pkg/logger"
)

func init() {
	cabi.SetLogger(logger.New(os.Stderr, slog.LevelWarn))
}

//export slugify_simple
func slugify_simple(input *C.char) *C.char { //nolint:revive // exported C symbol name
	return (*C.char)(cabi.SlugifySimple(unsafe.Pointer(input)))
}

//export slugify_with_options
func slugify_with_options(input *C.char, separator C.char, maxLength C.int, lowercase, removeStopwords, asciiOnly C.bool) *C.char { //nolint:revive // exported C symbol name
	return (*C.char)(cabi.SlugifyWithOptions(
		unsafe.Pointer(input),
		byte(separator),
		int32(maxLength),
		bool(lowercase),
		bool(removeStopwords),
		bool(asciiOnly),
	))
}

//export free_string
func free_string(ptr *C.char) { //nolint:revive // exported C symbol name
	cabi.FreeString(unsafe.Pointer(ptr))
}

func main() {}
