package cabi_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/slugkit/internal/cabi"
	"github.com/dmitrymomot/slugkit/pkg/logger"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

// cString returns a NUL-terminated copy of s, standing in for a borrowed C buffer.
func cString(s string) unsafe.Pointer {
	b := append([]byte(s), 0)
	return unsafe.Pointer(&b[0])
}

// goString reads a NUL-terminated buffer returned by the adapter.
func goString(p unsafe.Pointer) string {
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// consume reads and releases an adapter result.
func consume(t *testing.T, p unsafe.Pointer) string {
	t.Helper()
	require.NotNil(t, p)
	defer cabi.FreeString(p)
	return goString(p)
}

func TestSlugifySimple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "punctuation", input: "Hello, World! @#$%", expected: "hello-world"},
		{name: "unicode", input: "Café münü", expected: "café-münü"},
		{name: "stopwords kept", input: "The quick brown fox", expected: "the-quick-brown-fox"},
		{name: "empty input", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := consume(t, cabi.SlugifySimple(cString(tt.input)))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSlugifySimpleRejects(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, cabi.SlugifySimple(nil))
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, cabi.SlugifySimple(cString("Hello \xff\xfe World")))
	})

	t.Run("truncated multi-byte sequence", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, cabi.SlugifySimple(cString("Caf\xc3")))
	})
}

func TestSlugifyWithOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		input           string
		separator       byte
		maxLength       int32
		lowercase       bool
		removeStopwords bool
		asciiOnly       bool
		expected        string
	}{
		{
			name:      "defaults",
			input:     "Hello World",
			separator: '-',
			lowercase: true,
			expected:  "hello-world",
		},
		{
			name:      "custom separator",
			input:     "Hello World",
			separator: '_',
			lowercase: true,
			expected:  "hello_world",
		},
		{
			name:      "max length",
			input:     "This is a very long title",
			separator: '-',
			maxLength: 10,
			lowercase: true,
			expected:  "this-is-a",
		},
		{
			name:      "negative max length is unbounded",
			input:     "This is a very long title",
			separator: '-',
			maxLength: -1,
			lowercase: true,
			expected:  "this-is-a-very-long-title",
		},
		{
			name:      "keep case",
			input:     "Hello World",
			separator: '-',
			expected:  "Hello-World",
		},
		{
			name:            "remove stopwords",
			input:           "The quick brown fox",
			separator:       '-',
			lowercase:       true,
			removeStopwords: true,
			expected:        "quick-brown-fox",
		},
		{
			name:      "ascii only",
			input:     "Café münü",
			separator: '-',
			lowercase: true,
			asciiOnly: true,
			expected:  "cafe-munu",
		},
		{
			name:      "high separator byte is read as latin-1",
			input:     "Hello World",
			separator: 0xB7,
			lowercase: true,
			expected:  "hello·world",
		},
		{
			name:      "nul separator with a single word",
			input:     "Hello",
			separator: 0,
			lowercase: true,
			expected:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := cabi.SlugifyWithOptions(cString(tt.input), tt.separator, tt.maxLength, tt.lowercase, tt.removeStopwords, tt.asciiOnly)
			assert.Equal(t, tt.expected, consume(t, p))
		})
	}
}

func TestSlugifyWithOptionsRejects(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, cabi.SlugifyWithOptions(nil, '-', 0, true, false, false))
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, cabi.SlugifyWithOptions(cString("\xc0\xaf"), '-', 0, true, false, false))
	})

	t.Run("nul separator between words", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, cabi.SlugifyWithOptions(cString("Hello World"), 0, 0, true, false, false))
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("mirrors default options", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slug.DefaultOptions(), cabi.Options('-', 0, true, false, false))
	})

	t.Run("maps all fields", func(t *testing.T) {
		t.Parallel()

		opts := cabi.Options(0xE9, 42, false, true, true)
		assert.Equal(t, 'é', opts.Separator)
		assert.Equal(t, 42, opts.MaxLength)
		assert.False(t, opts.Lowercase)
		assert.True(t, opts.RemoveStopwords)
		assert.True(t, opts.ASCIIOnly)
		assert.False(t, opts.StripHTML)
	})

	t.Run("non-positive max length", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, cabi.Options('-', 0, true, false, false).MaxLength)
		assert.Zero(t, cabi.Options('-', -100, true, false, false).MaxLength)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	s, err := cabi.Decode(cString("Grüße"))
	require.NoError(t, err)
	assert.Equal(t, "Grüße", s)

	_, err = cabi.Decode(nil)
	assert.ErrorIs(t, err, cabi.ErrNilInput)

	_, err = cabi.Decode(cString("\xff"))
	assert.ErrorIs(t, err, cabi.ErrInvalidUTF8)

	// Decoding stops at the first NUL.
	s, err = cabi.Decode(cString("abc\x00def"))
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	p, err := cabi.Encode("café-münü")
	require.NoError(t, err)
	assert.Equal(t, "café-münü", consume(t, p))

	p, err = cabi.Encode("")
	require.NoError(t, err)
	assert.Empty(t, consume(t, p))

	p, err = cabi.Encode("a\x00b")
	assert.ErrorIs(t, err, cabi.ErrEmbeddedNUL)
	assert.Nil(t, p)
}

func TestFreeStringNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		cabi.FreeString(nil)
	})
}

// TestRoundTrip allocates and releases many results; run with -race or -asan to check the ownership protocol.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	input := cString("Hello World")
	for i := range 10_000 {
		p := cabi.SlugifySimple(input)
		if p == nil {
			require.FailNow(t, "nil result", "iteration %d", i)
		}
		if got := goString(p); got != "hello-world" {
			require.FailNow(t, "unexpected result", "iteration %d: %q", i, got)
		}
		cabi.FreeString(p)
	}
}

func TestConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			input := cString("The quick brown fox")
			for range 500 {
				p := cabi.SlugifyWithOptions(input, '_', 0, true, true, false)
				got := goString(p)
				cabi.FreeString(p)
				if got != "quick_brown_fox" {
					assert.Equal(t, "quick_brown_fox", got)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// Not parallel: swaps the package logger.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	cabi.SetLogger(logger.New(&buf, slog.LevelDebug))
	t.Cleanup(func() { cabi.SetLogger(nil) })

	require.Nil(t, cabi.SlugifySimple(nil))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "slugify call rejected", rec["msg"])
	assert.Equal(t, cabi.ErrNilInput.Error(), rec["error"])
	assert.EqualValues(t, '-', rec["separator"])

	buf.Reset()
	result := cabi.SlugifySimple(cString("Hello"))
	assert.Equal(t, "hello", consume(t, result))
	assert.Empty(t, buf.String(), "successful calls are not logged")
}

// Not parallel: swaps the package logger.
func TestSetLoggerWarnLevel(t *testing.T) {
	var buf bytes.Buffer
	cabi.SetLogger(logger.New(&buf, slog.LevelWarn))
	t.Cleanup(func() { cabi.SetLogger(nil) })

	require.Nil(t, cabi.SlugifySimple(nil))
	assert.Empty(t, buf.String(), "bad input is logged below warn level")

	require.Nil(t, cabi.SlugifyWithOptions(cString("Hello World"), 0, 0, true, false, false))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, cabi.ErrEmbeddedNUL.Error(), rec["error"])
	assert.EqualValues(t, 0, rec["separator"])
}
