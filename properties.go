package docseg

// Character properties used by the classifier. A code point may carry several
// of them at once, so they are bit flags rather than an enumeration.
const (
	prLetter = 1 << iota
	prUpper
	prLower
	prVowel // Y counts as a vowel
	prDigit
	prNumeral // superscript, subscript and vulgar fraction numerals
	prSpace   // horizontal whitespace
	prEOL     // vertical whitespace
	prHyphen
	prDash
	prSingleQuote
	prDoubleQuote
	prPeriod
	prControl

	// Letter ranges where case alternates from one code point to the next.
	// They are resolved to prUpper or prLower by property().
	prEvenUpper
	prOddUpper
)

// Shorthands for the table below.
const (
	ltU  = prLetter | prUpper
	ltL  = prLetter | prLower
	ltUV = prLetter | prUpper | prVowel
	ltLV = prLetter | prLower | prVowel
	ltE  = prLetter | prEvenUpper
	ltEV = prLetter | prEvenUpper | prVowel
	ltO  = prLetter | prOddUpper
)

// characterCodePoints lists the non-ASCII code points the engine knows about.
// Each entry is [first, last, properties]. Entries are sorted and do not
// overlap. Code points not listed have no properties, which the predicates
// report as "false" (and IsPunctuation as "true").
var characterCodePoints = [][3]int{
	{0x0080, 0x0084, prControl},
	{0x0085, 0x0085, prEOL},
	{0x0086, 0x009F, prControl},
	{0x00A0, 0x00A0, prSpace},
	{0x00AB, 0x00AB, prDoubleQuote},
	{0x00AD, 0x00AD, prHyphen},
	{0x00B2, 0x00B3, prNumeral},
	{0x00B9, 0x00B9, prNumeral},
	{0x00BB, 0x00BB, prDoubleQuote},
	{0x00BC, 0x00BE, prNumeral},

	// Latin-1 Supplement
	{0x00C0, 0x00C6, ltUV},
	{0x00C7, 0x00C7, ltU},
	{0x00C8, 0x00CF, ltUV},
	{0x00D0, 0x00D1, ltU},
	{0x00D2, 0x00D6, ltUV},
	{0x00D8, 0x00DD, ltUV},
	{0x00DE, 0x00DE, ltU},
	{0x00DF, 0x00DF, ltL},
	{0x00E0, 0x00E6, ltLV},
	{0x00E7, 0x00E7, ltL},
	{0x00E8, 0x00EF, ltLV},
	{0x00F0, 0x00F1, ltL},
	{0x00F2, 0x00F6, ltLV},
	{0x00F8, 0x00FD, ltLV},
	{0x00FE, 0x00FE, ltL},
	{0x00FF, 0x00FF, ltLV},

	// Latin Extended-A
	{0x0100, 0x0105, ltEV},
	{0x0106, 0x0111, ltE},
	{0x0112, 0x011B, ltEV},
	{0x011C, 0x0127, ltE},
	{0x0128, 0x0133, ltEV},
	{0x0134, 0x0137, ltE},
	{0x0138, 0x0138, ltL},
	{0x0139, 0x0148, ltO},
	{0x0149, 0x0149, ltL},
	{0x014A, 0x014B, ltE},
	{0x014C, 0x0153, ltEV},
	{0x0154, 0x0167, ltE},
	{0x0168, 0x0173, ltEV},
	{0x0174, 0x0175, ltE},
	{0x0176, 0x0177, ltEV},
	{0x0178, 0x0178, ltUV},
	{0x0179, 0x017E, ltO},
	{0x017F, 0x017F, ltL},

	// Latin Extended-B and IPA
	{0x0180, 0x024F, prLetter},
	{0x0250, 0x02AF, ltL},

	// Greek
	{0x0386, 0x0386, ltUV},
	{0x0388, 0x038A, ltUV},
	{0x038C, 0x038C, ltUV},
	{0x038E, 0x038F, ltUV},
	{0x0390, 0x0390, ltLV},
	{0x0391, 0x0391, ltUV},
	{0x0392, 0x0394, ltU},
	{0x0395, 0x0395, ltUV},
	{0x0396, 0x0396, ltU},
	{0x0397, 0x0397, ltUV},
	{0x0398, 0x0398, ltU},
	{0x0399, 0x0399, ltUV},
	{0x039A, 0x039E, ltU},
	{0x039F, 0x039F, ltUV},
	{0x03A0, 0x03A4, ltU},
	{0x03A5, 0x03A5, ltUV},
	{0x03A6, 0x03A8, ltU},
	{0x03A9, 0x03AB, ltUV},
	{0x03AC, 0x03B1, ltLV},
	{0x03B2, 0x03B4, ltL},
	{0x03B5, 0x03B5, ltLV},
	{0x03B6, 0x03B6, ltL},
	{0x03B7, 0x03B7, ltLV},
	{0x03B8, 0x03B8, ltL},
	{0x03B9, 0x03B9, ltLV},
	{0x03BA, 0x03BE, ltL},
	{0x03BF, 0x03BF, ltLV},
	{0x03C0, 0x03C4, ltL},
	{0x03C5, 0x03C5, ltLV},
	{0x03C6, 0x03C8, ltL},
	{0x03C9, 0x03CE, ltLV},

	// Cyrillic
	{0x0400, 0x040F, ltU},
	{0x0410, 0x0410, ltUV},
	{0x0411, 0x0414, ltU},
	{0x0415, 0x0415, ltUV},
	{0x0416, 0x0417, ltU},
	{0x0418, 0x0418, ltUV},
	{0x0419, 0x041D, ltU},
	{0x041E, 0x041E, ltUV},
	{0x041F, 0x0422, ltU},
	{0x0423, 0x0423, ltUV},
	{0x0424, 0x042A, ltU},
	{0x042B, 0x042B, ltUV},
	{0x042C, 0x042C, ltU},
	{0x042D, 0x042F, ltUV},
	{0x0430, 0x0430, ltLV},
	{0x0431, 0x0434, ltL},
	{0x0435, 0x0435, ltLV},
	{0x0436, 0x0437, ltL},
	{0x0438, 0x0438, ltLV},
	{0x0439, 0x043D, ltL},
	{0x043E, 0x043E, ltLV},
	{0x043F, 0x0442, ltL},
	{0x0443, 0x0443, ltLV},
	{0x0444, 0x044A, ltL},
	{0x044B, 0x044B, ltLV},
	{0x044C, 0x044C, ltL},
	{0x044D, 0x044F, ltLV},
	{0x0450, 0x045F, ltL},
	{0x0460, 0x0481, ltE},
	{0x048A, 0x04BF, ltE},
	{0x04C0, 0x04C0, ltU},
	{0x04C1, 0x04CE, ltO},
	{0x04CF, 0x04CF, ltL},
	{0x04D0, 0x04FF, ltE},

	// Latin Extended Additional
	{0x1E00, 0x1E95, ltE},
	{0x1E96, 0x1E9D, ltL},
	{0x1E9E, 0x1E9E, ltU},
	{0x1E9F, 0x1E9F, ltL},
	{0x1EA0, 0x1EF9, ltEV},
	{0x1EFA, 0x1EFF, ltE},

	// General Punctuation
	{0x2000, 0x200B, prSpace},
	{0x2010, 0x2011, prHyphen},
	{0x2012, 0x2015, prDash},
	{0x2018, 0x201B, prSingleQuote},
	{0x201C, 0x201F, prDoubleQuote},
	{0x2028, 0x2029, prEOL},
	{0x202F, 0x202F, prSpace},
	{0x2039, 0x203A, prSingleQuote},
	{0x205F, 0x205F, prSpace},

	// Superscripts, subscripts and number forms
	{0x2070, 0x2070, prNumeral},
	{0x2074, 0x2079, prNumeral},
	{0x2080, 0x2089, prNumeral},
	{0x2150, 0x215F, prNumeral},
	{0x2189, 0x2189, prNumeral},

	{0x2E3A, 0x2E3B, prDash},
	{0x3000, 0x3000, prSpace},
	{0x3002, 0x3002, prPeriod},
	{0xFE58, 0xFE58, prDash},
	{0xFF61, 0xFF61, prPeriod},
}

// asciiProperties holds the properties of the first 128 code points.
var asciiProperties = func() (props [128]int) {
	for r := 0; r < 0x20; r++ {
		props[r] = prControl
	}
	props['\t'] = prSpace
	props[' '] = prSpace
	props['\n'] = prEOL
	props['\v'] = prEOL
	props['\f'] = prEOL
	props['\r'] = prEOL
	props[0x7f] = prControl
	for r := '0'; r <= '9'; r++ {
		props[r] = prDigit
	}
	for r := 'A'; r <= 'Z'; r++ {
		props[r] = ltU
		props[r+'a'-'A'] = ltL
	}
	for _, r := range "AEIOUY" {
		props[r] |= prVowel
		props[r+'a'-'A'] |= prVowel
	}
	props['"'] = prDoubleQuote
	props['\''] = prSingleQuote
	props['`'] = prSingleQuote
	props['-'] = prHyphen
	props['.'] = prPeriod
	return
}()

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry, or zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// fold maps full-width ASCII variants onto their ASCII counterparts so both
// forms classify identically.
func fold(r rune) rune {
	if r >= 0xFF01 && r <= 0xFF5E {
		return r - 0xFEE0
	}
	return r
}

// property returns the resolved property flags of a code point, fast tracking
// ASCII.
func property(r rune) int {
	r = fold(r)
	if r >= 0 && r < 0x80 {
		return asciiProperties[r]
	}
	props := propertySearch(characterCodePoints, r)[2]
	switch {
	case props&prEvenUpper != 0:
		props &^= prEvenUpper
		if r%2 == 0 {
			props |= prUpper
		} else {
			props |= prLower
		}
	case props&prOddUpper != 0:
		props &^= prOddUpper
		if r%2 == 1 {
			props |= prUpper
		} else {
			props |= prLower
		}
	}
	return props
}
