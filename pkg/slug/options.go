package slug

import "maps"

// Options controls how Slugify builds a slug.
// The zero value is not the default configuration; start from DefaultOptions.
type Options struct {
	// Separator is placed between words.
	Separator rune
	// MaxLength limits the slug to this many runes. Zero or negative means unbounded.
	MaxLength int
	// Lowercase lower-cases the joined slug.
	Lowercase bool
	// RemoveStopwords drops common English words such as "the" and "of".
	RemoveStopwords bool
	// ASCIIOnly keeps ASCII letters and digits only, transliterating
	// the Latin-1 accented letters and dropping everything else.
	ASCIIOnly bool
	// StripHTML removes markup and decodes entities before slugging.
	StripHTML bool
	// Replacements maps substrings to their substitutes, applied before segmentation.
	// Longer keys win over their prefixes.
	Replacements map[string]string
	// StripChars lists characters deleted from the input after replacements.
	StripChars string
}

// DefaultOptions returns the configuration used by Make when no options are given:
// '-' separator, no length limit, lowercase output.
func DefaultOptions() Options {
	return Options{
		Separator: '-',
		Lowercase: true,
	}
}

// Option configures a slug generation.
type Option func(*Options)

// Separator sets the rune placed between words.
// Default: '-'.
func Separator(sep rune) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// MaxLength limits the slug length in runes. Trailing separators left by the
// cut are removed, so the result may be shorter than n.
// Zero or negative means unbounded.
// Default: 0 (unbounded).
func MaxLength(n int) Option {
	return func(o *Options) {
		o.MaxLength = n
	}
}

// Lowercase controls case conversion of the result.
// Default: true.
func Lowercase(enabled bool) Option {
	return func(o *Options) {
		o.Lowercase = enabled
	}
}

// RemoveStopwords drops common English words (case-insensitive).
// Default: false.
func RemoveStopwords(enabled bool) Option {
	return func(o *Options) {
		o.RemoveStopwords = enabled
	}
}

// ASCIIOnly restricts the slug to ASCII letters and digits.
// Accented Latin-1 letters are transliterated; other non-ASCII letters are dropped.
// Default: false.
func ASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// StripHTML removes HTML tags and decodes entities before slugging,
// so "<b>Fish</b> &amp; Chips" becomes "fish-chips".
// Default: false.
func StripHTML(enabled bool) Option {
	return func(o *Options) {
		o.StripHTML = enabled
	}
}

// CustomReplace applies string replacements before slugification:
//
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// Output: "fish-and-chips"
//
// The map is copied. Replacements run after StripHTML and before StripChars.
// Default: none.
func CustomReplace(replacements map[string]string) Option {
	replacements = maps.Clone(replacements)
	return func(o *Options) {
		o.Replacements = replacements
	}
}

// StripChars deletes every occurrence of the given characters before processing,
// so they neither separate nor appear in words.
// Default: none.
func StripChars(chars string) Option {
	return func(o *Options) {
		o.StripChars = chars
	}
}
