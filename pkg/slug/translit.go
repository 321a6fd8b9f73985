package slug

// Transliterate maps an accented Latin-1 letter to its plain ASCII letter.
// The result is always lower case. It reports false for runes outside the table,
// including ASCII itself.
func Transliterate(r rune) (rune, bool) {
	switch {
	case r >= 'à' && r <= 'å', r >= 'À' && r <= 'Å':
		return 'a', true
	case r == 'ç', r == 'Ç':
		return 'c', true
	case r >= 'è' && r <= 'ë', r >= 'È' && r <= 'Ë':
		return 'e', true
	case r >= 'ì' && r <= 'ï', r >= 'Ì' && r <= 'Ï':
		return 'i', true
	case r == 'ñ', r == 'Ñ':
		return 'n', true
	case r >= 'ò' && r <= 'ö', r >= 'Ò' && r <= 'Ö':
		return 'o', true
	case r >= 'ù' && r <= 'ü', r >= 'Ù' && r <= 'Ü':
		return 'u', true
	case r == 'ý', r == 'ÿ', r == 'Ý':
		return 'y', true
	case r == 'ß':
		return 's', true
	}
	return 0, false
}
