// Package slug generates URL-safe slugs from arbitrary text with Unicode-aware word handling.
//
// Text is NFC-normalized, split into words using Unicode word boundaries, and
// each word is reduced to its letters and digits before the words are joined
// with a separator. Letters from any script are kept by default; ASCIIOnly
// restricts the output to ASCII.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugkit/pkg/slug"
//
//	// Simple slug generation
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	// Non-ASCII letters are preserved
//	s = slug.Make("Café münü")
//	// Output: "café-münü"
//
//	// With configuration options
//	s = slug.Make("The quick brown fox",
//		slug.RemoveStopwords(true),
//		slug.Separator('_'),
//	)
//	// Output: "quick_brown_fox"
//
// Slugify takes an Options value instead of functional options:
//
//	opts := slug.DefaultOptions()
//	opts.MaxLength = 10
//	slug.Slugify("This is a very long title", opts)
//	// Output: "this-is-a"
//
// # Configuration Options
//
// MaxLength limits the slug length in runes and removes separators left dangling by the cut:
//
//	slug.Make("This is a very long title", slug.MaxLength(10))
//	// Output: "this-is-a"
//
// Separator sets the rune used between words:
//
//	slug.Make("Product Name", slug.Separator('_'))
//	// Output: "product_name"
//
// Lowercase controls case conversion:
//
//	slug.Make("Product Name", slug.Lowercase(false))
//	// Output: "Product-Name"
//
// RemoveStopwords drops common English words (a, the, of, ...):
//
//	slug.Make("The Lord of the Rings", slug.RemoveStopwords(true))
//	// Output: "lord-rings"
//
// ASCIIOnly transliterates Latin-1 accented letters and drops other non-ASCII letters:
//
//	slug.Make("Café münü", slug.ASCIIOnly(true))
//	// Output: "cafe-munu"
//
// StripHTML removes markup and decodes entities first:
//
//	slug.Make("<h1>Fish &amp; Chips</h1>", slug.StripHTML(true))
//	// Output: "fish-chips"
//
// CustomReplace applies string replacements before slugification:
//
//	replacements := map[string]string{"&": "and", "@": "at"}
//	slug.Make("Fish & Chips @ Home", slug.CustomReplace(replacements))
//	// Output: "fish-and-chips-at-home"
//
// StripChars removes specific characters before processing, joining the text around them:
//
//	slug.Make("e-mail re-send", slug.StripChars("-"))
//	// Output: "email-resend"
//
// # Unicode Support
//
// Words follow Unicode Standard Annex #29, so "don't" stays one word ("dont")
// while "state-of-the-art" is four. Lower-casing uses full Unicode case mapping.
//
// The ASCIIOnly table only covers Latin-1 letters (à-å, ç, è-ë, ì-ï, ñ, ò-ö,
// ù-ü, ý, ÿ, ß and their upper-case forms). Letters outside it, including
// Cyrillic and CJK, are dropped:
//
//	slug.Make("Привет мир", slug.ASCIIOnly(true))
//	// Output: ""
package slug
