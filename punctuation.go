package docseg

// Punctuation marks the oracle treats specially.
const (
	horizontalEllipsis  = 0x2026 // …
	interrobang         = 0x203D // ‽
	invertedInterrobang = 0x2E18 // ⸘
	leftwardsArrow      = 0x2190 // ←
	leftwardsArrowHook  = 0x21A9 // ↩
	trademarkSign       = 0x2122 // ™
	registeredSign      = 0x00AE // ®
	ideographicFullStop = 0x3002 // 。
)

// PunctuationClassifier decides which marks may end a sentence. "Strict"
// terminators are always candidates; "passive" ones (dashes) only end a
// sentence when the following context confirms it. The default
// implementation is [Punctuation].
type PunctuationClassifier interface {
	IsStrictTerminator(r rune) bool
	IsPassiveTerminator(r rune) bool
	IsEllipsis(r rune) bool
}

// Punctuation is the default [PunctuationClassifier].
type Punctuation struct{}

var _ PunctuationClassifier = Punctuation{}

// IsStrictTerminator reports whether r is a period, exclamation mark,
// question mark, colon, ellipsis or interrobang.
func (Punctuation) IsStrictTerminator(r rune) bool {
	return IsSentenceTerminator(r)
}

// IsPassiveTerminator reports whether r is a dash or hyphen.
func (Punctuation) IsPassiveTerminator(r rune) bool {
	return IsDash(r) || IsHyphen(r)
}

// IsEllipsis reports whether r is the single-character ellipsis.
func (Punctuation) IsEllipsis(r rune) bool {
	return r == horizontalEllipsis
}

// IsSentenceTerminator reports whether r is one of the strict sentence
// terminators.
func IsSentenceTerminator(r rune) bool {
	switch fold(r) {
	case '.', '!', '?', ':', horizontalEllipsis, interrobang, invertedInterrobang, ideographicFullStop, 0xFF61:
		return true
	}
	return false
}

// isExclamationOrQuestion reports whether r is "!", "?" or an interrobang.
func isExclamationOrQuestion(r rune) bool {
	switch fold(r) {
	case '!', '?', interrobang, invertedInterrobang:
		return true
	}
	return false
}

// isOpeningBracket reports whether r opens a parenthetical.
func isOpeningBracket(r rune) bool {
	switch fold(r) {
	case '(', '[', '{':
		return true
	}
	return false
}

// isClosingBracket reports whether r closes a parenthetical.
func isClosingBracket(r rune) bool {
	switch fold(r) {
	case ')', ']', '}':
		return true
	}
	return false
}

// isBackReference reports whether r is a glyph that links a footnote back to
// its reference.
func isBackReference(r rune) bool {
	return r == leftwardsArrow || r == leftwardsArrowHook
}
