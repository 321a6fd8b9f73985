package slug

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/slugkit/pkg/sanitizer"
)

// Make generates a slug from input, starting from DefaultOptions and applying opts in order.
func Make(input string, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return Slugify(input, o)
}

// Slugify converts input into a slug.
//
// The input is NFC-normalized and split into Unicode words (UAX #29).
// Each word is filtered down to its letters and digits and the survivors are
// joined with opts.Separator. Casing and truncation are applied to the joined
// result. Blank input always yields an empty string.
//
// Slugify never fails and is safe for concurrent use.
func Slugify(input string, opts Options) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	if opts.StripHTML {
		input = sanitizer.StripHTML(input)
	}
	if len(opts.Replacements) > 0 {
		input = newReplacer(opts.Replacements).Replace(input)
	}
	if opts.StripChars != "" {
		input = strings.Map(func(r rune) rune {
			if strings.ContainsRune(opts.StripChars, r) {
				return -1
			}
			return r
		}, input)
	}

	// cases.Caser keeps state between calls, so each Slugify gets its own.
	lower := newLowerCaser()

	var b strings.Builder
	b.Grow(len(input))

	written := 0
	forEachWord(norm.NFC.String(input), func(word string) {
		word = strings.TrimSpace(word)
		if word == "" {
			return
		}
		if opts.RemoveStopwords && isStopword(lower.String(word)) {
			return
		}

		filtered := filterWord(word, opts.ASCIIOnly)
		if filtered == "" {
			return
		}

		if written > 0 {
			b.WriteRune(opts.Separator)
		}
		b.WriteString(filtered)
		written++
	})

	result := b.String()
	if opts.Lowercase {
		result = lower.String(result)
	}

	return truncate(result, opts.MaxLength, opts.Separator)
}

func newLowerCaser() cases.Caser {
	return cases.Lower(language.Und)
}

// newReplacer orders keys longest first so "&&" is matched before "&".
// Empty keys are ignored.
func newReplacer(replacements map[string]string) *strings.Replacer {
	keys := slices.SortedFunc(maps.Keys(replacements), func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		if k == "" {
			continue
		}
		pairs = append(pairs, k, replacements[k])
	}
	return strings.NewReplacer(pairs...)
}

// forEachWord calls fn for every word segment of s that holds at least one letter or digit.
// Spaces and punctuation are boundaries and never reach fn.
func forEachWord(s string, fn func(word string)) {
	var word string
	state := -1
	for len(s) > 0 {
		word, s, state = uniseg.FirstWordInString(s, state)
		if strings.IndexFunc(word, isAlphanumeric) >= 0 {
			fn(word)
		}
	}
}

func filterWord(word string, asciiOnly bool) string {
	var b strings.Builder
	b.Grow(len(word))

	for _, r := range word {
		switch {
		case asciiOnly && isASCIIAlphanumeric(r):
			b.WriteRune(r)
		case asciiOnly:
			if !isAlphabetic(r) {
				continue
			}
			if t, ok := Transliterate(r); ok {
				b.WriteRune(t)
			}
		case isAlphanumeric(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// truncate cuts s to limit runes and drops the separators the cut leaves at the end.
func truncate(s string, limit int, sep rune) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	n := 0
	for i := range s {
		if n == limit {
			s = s[:i]
			break
		}
		n++
	}
	return strings.TrimRightFunc(s, func(r rune) bool { return r == sep })
}

// combiningLatin holds the combining Latin small letters U+0363..U+036F,
// which became Other_Alphabetic in Unicode 16 but are absent from Go's tables.
var combiningLatin = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0363, Hi: 0x036f, Stride: 1}},
}

// isAlphabetic matches the Unicode Alphabetic property: letters, letter
// numbers and the marks listed in Other_Alphabetic.
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_Alphabetic, r) ||
		unicode.Is(combiningLatin, r)
}

func isAlphanumeric(r rune) bool {
	return isAlphabetic(r) || unicode.IsNumber(r)
}

func isASCIIAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
