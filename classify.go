package docseg

// CharacterClassifier answers questions about single code points. The
// tokenizer and the sentence boundary oracle only look at text through this
// interface, so alternate scripts or conventions can be plugged in. The
// default implementation is [Characters].
type CharacterClassifier interface {
	IsLetter(r rune) bool
	IsUpper(r rune) bool
	IsLower(r rune) bool
	ToLower(r rune) rune
	IsVowel(r rune) bool
	IsConsonant(r rune) bool
	IsSpaceHorizontal(r rune) bool
	IsSpaceVertical(r rune) bool
	IsHyphen(r rune) bool
	IsDash(r rune) bool
	IsSingleQuote(r rune) bool
	IsDoubleQuote(r rune) bool
	IsQuote(r rune) bool
	IsPeriod(r rune) bool
	CanBeginWord(r rune) bool
	CanBeginWordUppercase(r rune) bool
	CanEndWord(r rune) bool
	CanPrefixNumeral(r rune) bool
	IsNumericSimple(r rune) bool
	IsNumeric(r rune) bool
	IsPunctuation(r rune) bool
}

// Characters is the default [CharacterClassifier]. It delegates to the
// package-level predicates.
type Characters struct{}

var _ CharacterClassifier = Characters{}

func (Characters) IsLetter(r rune) bool              { return IsLetter(r) }
func (Characters) IsUpper(r rune) bool               { return IsUpper(r) }
func (Characters) IsLower(r rune) bool               { return IsLower(r) }
func (Characters) ToLower(r rune) rune               { return ToLower(r) }
func (Characters) IsVowel(r rune) bool               { return IsVowel(r) }
func (Characters) IsConsonant(r rune) bool           { return IsConsonant(r) }
func (Characters) IsSpaceHorizontal(r rune) bool     { return IsSpaceHorizontal(r) }
func (Characters) IsSpaceVertical(r rune) bool       { return IsSpaceVertical(r) }
func (Characters) IsHyphen(r rune) bool              { return IsHyphen(r) }
func (Characters) IsDash(r rune) bool                { return IsDash(r) }
func (Characters) IsSingleQuote(r rune) bool         { return IsSingleQuote(r) }
func (Characters) IsDoubleQuote(r rune) bool         { return IsDoubleQuote(r) }
func (Characters) IsQuote(r rune) bool               { return IsQuote(r) }
func (Characters) IsPeriod(r rune) bool              { return IsPeriod(r) }
func (Characters) CanBeginWord(r rune) bool          { return CanBeginWord(r) }
func (Characters) CanBeginWordUppercase(r rune) bool { return CanBeginWordUppercase(r) }
func (Characters) CanEndWord(r rune) bool            { return CanEndWord(r) }
func (Characters) CanPrefixNumeral(r rune) bool      { return CanPrefixNumeral(r) }
func (Characters) IsNumericSimple(r rune) bool       { return IsNumericSimple(r) }
func (Characters) IsNumeric(r rune) bool             { return IsNumeric(r) }
func (Characters) IsPunctuation(r rune) bool         { return IsPunctuation(r) }

// IsLetter reports whether r is a letter of one of the supported scripts
// (Latin, Greek, Cyrillic).
func IsLetter(r rune) bool {
	return property(r)&prLetter != 0
}

// IsUpper reports whether r is an uppercase letter.
func IsUpper(r rune) bool {
	return property(r)&prUpper != 0
}

// IsLower reports whether r is a lowercase letter.
func IsLower(r rune) bool {
	return property(r)&prLower != 0
}

// ToLower returns the lowercase form of r. Full-width letters are folded to
// ASCII. Code points without a known lowercase form are returned unchanged.
func ToLower(r rune) rune {
	r = fold(r)
	if !IsUpper(r) {
		return r
	}
	switch {
	case r < 0x80:
		return r + 'a' - 'A'
	case r >= 0x00C0 && r <= 0x00DE:
		return r + 0x20
	case r == 0x0178:
		return 0x00FF
	case r == 0x0386:
		return 0x03AC
	case r >= 0x0388 && r <= 0x038A:
		return r + 0x25
	case r == 0x038C:
		return 0x03CC
	case r == 0x038E, r == 0x038F:
		return r + 0x3F
	case r >= 0x0391 && r <= 0x03AB:
		return r + 0x20
	case r >= 0x0400 && r <= 0x040F:
		return r + 0x50
	case r >= 0x0410 && r <= 0x042F:
		return r + 0x20
	case r == 0x04C0:
		return 0x04CF
	case r == 0x1E9E:
		return 0x00DF
	}
	// Alternating-case ranges.
	return r + 1
}

// IsVowel reports whether r is a vowel. Y is treated as a vowel.
func IsVowel(r rune) bool {
	return property(r)&prVowel != 0
}

// IsConsonant reports whether r is a letter that is not a vowel.
func IsConsonant(r rune) bool {
	p := property(r)
	return p&prLetter != 0 && p&prVowel == 0
}

// IsSpaceHorizontal reports whether r is a space or tab-like character.
func IsSpaceHorizontal(r rune) bool {
	return property(r)&prSpace != 0
}

// IsSpaceVertical reports whether r ends a line (CR, LF, FF, VT, NEL, line
// and paragraph separators).
func IsSpaceVertical(r rune) bool {
	return property(r)&prEOL != 0
}

// IsSpace reports whether r is horizontal or vertical whitespace.
func IsSpace(r rune) bool {
	return property(r)&(prSpace|prEOL) != 0
}

// IsHyphen reports whether r is a hyphen (including the soft hyphen).
func IsHyphen(r rune) bool {
	return property(r)&prHyphen != 0
}

// IsDash reports whether r is a figure, en, em or similar dash.
func IsDash(r rune) bool {
	return property(r)&prDash != 0
}

// IsSingleQuote reports whether r is an apostrophe or single quotation mark.
func IsSingleQuote(r rune) bool {
	return property(r)&prSingleQuote != 0
}

// IsDoubleQuote reports whether r is a double quotation mark.
func IsDoubleQuote(r rune) bool {
	return property(r)&prDoubleQuote != 0
}

// IsQuote reports whether r is a single or double quotation mark.
func IsQuote(r rune) bool {
	return property(r)&(prSingleQuote|prDoubleQuote) != 0
}

// IsPeriod reports whether r is a full stop.
func IsPeriod(r rune) bool {
	return property(r)&prPeriod != 0
}

// IsControl reports whether r is a control code that is not whitespace.
func IsControl(r rune) bool {
	return property(r)&prControl != 0
}

// isWordPrefixSymbol reports whether r may open a word when a letter or digit
// follows it, as in "#hashtag", "@name" or "$5".
func isWordPrefixSymbol(r rune) bool {
	switch fold(r) {
	case '#', '@', '$', '&', 0x00A2, 0x00A3, 0x00A5, 0x20AC:
		return true
	}
	return false
}

// CanBeginWord reports whether a word may start with r.
func CanBeginWord(r rune) bool {
	return property(r)&(prLetter|prDigit|prNumeral) != 0 || isWordPrefixSymbol(r)
}

// CanBeginWordUppercase is like [CanBeginWord] but rejects lowercase letters.
func CanBeginWordUppercase(r rune) bool {
	return property(r)&(prUpper|prDigit|prNumeral) != 0 || isWordPrefixSymbol(r)
}

// CanEndWord reports whether a word may end with r.
func CanEndWord(r rune) bool {
	if property(r)&(prLetter|prDigit|prNumeral) != 0 {
		return true
	}
	switch fold(r) {
	case '%', '#', '+', 0x00B0:
		return true
	}
	return false
}

// CanPrefixNumeral reports whether r, directly followed by a digit, belongs to
// the number (signs, currency symbols, a leading decimal point).
func CanPrefixNumeral(r rune) bool {
	switch fold(r) {
	case '+', '-', '.', '#', '$', '~', 0x00A2, 0x00A3, 0x00A5, 0x00B1, 0x20AC, 0x2212:
		return true
	}
	return false
}

// IsNumericSimple reports whether r is a decimal digit (ASCII or full-width).
func IsNumericSimple(r rune) bool {
	return property(r)&prDigit != 0
}

// IsNumeric reports whether r is a digit or a superscript, subscript or
// fraction numeral.
func IsNumeric(r rune) bool {
	return property(r)&(prDigit|prNumeral) != 0
}

// IsPunctuation reports whether r is neither numeric, a letter, whitespace,
// nor a control code. Unassigned code points are punctuation.
func IsPunctuation(r rune) bool {
	return property(r)&(prLetter|prDigit|prNumeral|prSpace|prEOL|prControl) == 0
}

// isCitationNumeral reports whether r is a superscript digit, as used for
// footnote references.
func isCitationNumeral(r rune) bool {
	switch r {
	case 0x00B9, 0x00B2, 0x00B3, 0x2070:
		return true
	}
	return r >= 0x2074 && r <= 0x2079
}

// isLetterOrDigit reports whether r is a letter or any numeral.
func isLetterOrDigit(r rune) bool {
	return property(r)&(prLetter|prDigit|prNumeral) != 0
}

// IsNumericSpan reports whether a span reads as a number: at least half of its
// code points are numerals. A digit run followed by a hyphen and two letters
// ("10000-year") is a compound adjective, not a number.
func IsNumericSpan(span []rune) bool {
	if len(span) == 0 {
		return false
	}
	digits := 0
	for _, r := range span {
		if IsNumeric(r) {
			digits++
		}
	}
	if digits*2 < len(span) {
		return false
	}
	lead := 0
	for lead < len(span) && IsNumeric(span[lead]) {
		lead++
	}
	if lead > 0 && lead+2 < len(span) && IsHyphen(span[lead]) && IsLetter(span[lead+1]) && IsLetter(span[lead+2]) {
		return false
	}
	return true
}
