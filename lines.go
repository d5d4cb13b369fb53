package docseg

// Line classification. These functions look at the text from a given
// position onward and never past its end. They are used by the tokenizer to
// decide where paragraphs start and which characters are decoration rather
// than punctuation.

// minSeparatorLength is the number of decorative characters that make a
// formatted line separator ("+++", "-*-*-").
const minSeparatorLength = 3

// EndOfLineRun counts the line endings at the start of text. Runs of CR only
// or LF only count one line ending per character, CR LF pairs count one per
// pair, and mismatched runs pair up as far as possible with the leftovers
// counted singly. Other vertical spaces (form feed, line separator) count one
// each. Lines holding nothing but horizontal whitespace are part of the run.
//
// It returns the number of line endings and the number of code points the run
// occupies. Horizontal whitespace in front of the next non-blank line is not
// part of the run.
func EndOfLineRun(text []rune) (eols, skipped int) {
	var cr, lf, other int
	i := 0
scan:
	for i < len(text) {
		r := text[i]
		switch {
		case r == '\r':
			cr++
		case r == '\n':
			lf++
		case IsSpaceVertical(r):
			other++
		case IsSpaceHorizontal(r):
			j := i
			for j < len(text) && IsSpaceHorizontal(text[j]) {
				j++
			}
			if j >= len(text) || !IsSpaceVertical(text[j]) {
				break scan
			}
			i = j
			continue
		default:
			break scan
		}
		i++
	}
	return max(cr, lf) + other, i
}

// IsIndented reports whether line starts with a tab or with more than two
// horizontal spaces. It also returns the width of the leading whitespace.
func IsIndented(line []rune) (bool, int) {
	n := 0
	for n < len(line) && IsSpaceHorizontal(line[n]) {
		n++
	}
	if n == 0 {
		return false, 0
	}
	return line[0] == '\t' || n > 2, n
}

// IsBulleted reports whether the line starting at line[0] is a list item.
// Leading spaces are skipped. A line is a list item if it starts with a
// bullet glyph, a dash followed by a space, a number followed by ".", ")" or
// ":" and a space, or a single lowercase letter followed by one of those
// marks. A number without such a mark still makes a list item if the next
// line also starts with a number or if a blank line follows.
//
// line should extend to the end of the text so the next line can be
// examined.
func IsBulleted(line []rune) bool {
	i := 0
	for i < len(line) && IsSpaceHorizontal(line[i]) {
		i++
	}
	if i >= len(line) {
		return false
	}
	r := line[i]
	switch {
	case isBulletGlyph(r):
		return true
	case IsHyphen(r) || IsDash(r) || r == '*':
		return i+1 < len(line) && IsSpaceHorizontal(line[i+1])
	case IsNumericSimple(r):
		return isNumberedLine(line, i)
	case IsLower(r):
		return i+1 < len(line) && isListMarker(line[i+1]) &&
			(i+2 >= len(line) || IsSpace(line[i+2]))
	}
	return false
}

// isNumberedLine handles the numeric case of IsBulleted. The number starts
// at line[i].
func isNumberedLine(line []rune, i int) bool {
	j := i
	for j < len(line) {
		if IsNumericSimple(line[j]) {
			j++
			continue
		}
		// Multi-level numbering such as "1.2".
		if IsPeriod(line[j]) && j+1 < len(line) && IsNumericSimple(line[j+1]) {
			j++
			continue
		}
		break
	}
	if j < len(line) && isListMarker(line[j]) && (j+1 >= len(line) || IsSpace(line[j+1])) {
		return true
	}

	// Look at the next line.
	for j < len(line) && !IsSpaceVertical(line[j]) {
		j++
	}
	if j >= len(line) {
		return false
	}
	eols, skipped := EndOfLineRun(line[j:])
	if eols > 1 {
		return true
	}
	k := j + skipped
	for k < len(line) && IsSpaceHorizontal(line[k]) {
		k++
	}
	return k < len(line) && IsNumericSimple(line[k])
}

// isListMarker reports whether r closes a list item number or letter.
func isListMarker(r rune) bool {
	switch fold(r) {
	case '.', ')', ':':
		return true
	}
	return false
}

// isBulletGlyph reports whether r is a bullet, including the private-use
// bullets word processors emit for their symbol fonts.
func isBulletGlyph(r rune) bool {
	switch r {
	case 0x00B7, 0x2022, 0x2023, 0x2043, 0x2219, 0x25A0, 0x25A1, 0x25AA, 0x25AB,
		0x25B6, 0x25BA, 0x25CB, 0x25CF, 0x25E6, 0x2713, 0x2714, 0x27A2,
		0xF076, 0xF0A7, 0xF0B7, 0xF0D8:
		return true
	}
	return false
}

// isDecorative reports whether r may be part of a formatted line separator.
func isDecorative(r rune) bool {
	switch fold(r) {
	case '+', '@', '-', '#', '*':
		return true
	}
	return false
}

// decorativeRun returns the number of decorative characters at the start of
// text.
func decorativeRun(text []rune) int {
	n := 0
	for n < len(text) && isDecorative(text[n]) {
		n++
	}
	return n
}

// LeadingSeparator returns the length of a formatted line separator (three or
// more of "+@-#*") at the start of text, which is expected to be the start of
// a line. It returns 0 if there is none.
func LeadingSeparator(text []rune) int {
	if n := decorativeRun(text); n >= minSeparatorLength {
		return n
	}
	return 0
}

// TrailingSeparator returns the length of a formatted line separator at the
// start of text that ends its line: only horizontal whitespace may follow it
// before the next line ending or the end of the text. It returns 0 if there
// is none.
func TrailingSeparator(text []rune) int {
	n := decorativeRun(text)
	if n < minSeparatorLength {
		return 0
	}
	i := n
	for i < len(text) && IsSpaceHorizontal(text[i]) {
		i++
	}
	if i < len(text) && !IsSpaceVertical(text[i]) {
		return 0
	}
	return n
}
