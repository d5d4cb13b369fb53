package docseg

// AcronymRecognizer recognizes acronyms such as "NASA" or "KAOSs". Besides
// the verdict it remembers details of the last span it examined.
//
// The zero value is ready to use. An AcronymRecognizer must not be shared
// between goroutines.
type AcronymRecognizer struct {
	dots   int
	plural bool
}

// IsAcronym reports whether more than half of the letters in span are
// uppercase.
func (a *AcronymRecognizer) IsAcronym(span []rune) bool {
	a.dots = 0
	a.plural = false
	letters, upper := 0, 0
	for _, r := range span {
		switch {
		case IsPeriod(r):
			a.dots++
		case IsUpper(r):
			letters++
			upper++
		case IsLetter(r):
			letters++
		}
	}
	n := len(span)
	a.plural = n > 2 && span[n-1] == 's'
	return letters > 0 && upper*2 > letters
}

// DotCount returns the number of periods in the span last passed to
// IsAcronym.
func (a *AcronymRecognizer) DotCount() int {
	return a.dots
}

// EndsWithLowerS reports whether the span last passed to IsAcronym was longer
// than two code points and ended in a lowercase "s", as plural acronyms such
// as "KAOSs" do.
func (a *AcronymRecognizer) EndsWithLowerS() bool {
	return a.plural
}

// IsAcronym reports whether more than half of the letters in span are
// uppercase.
func IsAcronym(span []rune) bool {
	var a AcronymRecognizer
	return a.IsAcronym(span)
}

// IsDottedAcronym reports whether span is a repeated letter-period pattern
// such as "K.A.O.S." or "e.g.".
func IsDottedAcronym(span []rune) bool {
	if len(span) < 4 || len(span)%2 != 0 {
		return false
	}
	for i := 0; i < len(span); i += 2 {
		if !IsLetter(span[i]) || !IsPeriod(span[i+1]) {
			return false
		}
	}
	return true
}
