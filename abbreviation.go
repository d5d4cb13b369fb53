package docseg

import (
	"sort"
	"strings"
	"sync"
)

// AbbreviationTable recognizes abbreviations. It combines a sorted,
// case-insensitive list of known abbreviations with heuristics for compound
// abbreviations, consonant runs and times of day. A separate list of
// non-abbreviations vetoes false positives of both the list and the
// heuristics.
//
// A table may be extended while no tokenizer reads from it. Reads are safe
// from any number of goroutines.
type AbbreviationTable struct {
	mu     sync.RWMutex
	known  []string // sorted, lowercase, with trailing period
	vetoed []string // sorted, lowercase, with trailing period
}

var (
	defaultAbbreviations *AbbreviationTable
	abbreviationsOnce    sync.Once
)

// DefaultAbbreviations returns the process-wide table. It is built from the
// built-in list the first time it is requested. Additions made through it
// are seen by every tokenizer that does not bring its own table.
func DefaultAbbreviations() *AbbreviationTable {
	abbreviationsOnce.Do(func() {
		defaultAbbreviations = NewAbbreviationTable(builtinAbbreviations...)
	})
	return defaultAbbreviations
}

// NewAbbreviationTable returns a table that knows the given abbreviations
// (and nothing else). A missing trailing period is added.
func NewAbbreviationTable(words ...string) *AbbreviationTable {
	t := &AbbreviationTable{}
	t.Add(words...)
	return t
}

// Add registers additional abbreviations.
func (t *AbbreviationTable) Add(words ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		t.known = insertSorted(t.known, normalizeAbbreviation(word))
	}
}

// AddNonAbbreviations registers words that must never be read as
// abbreviations, even if they are listed or match a heuristic.
func (t *AbbreviationTable) AddNonAbbreviations(words ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		t.vetoed = insertSorted(t.vetoed, normalizeAbbreviation(word))
	}
}

// Clone returns an independent copy of t.
func (t *AbbreviationTable) Clone() *AbbreviationTable {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &AbbreviationTable{
		known:  append([]string(nil), t.known...),
		vetoed: append([]string(nil), t.vetoed...),
	}
}

// Len returns the number of listed abbreviations.
func (t *AbbreviationTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.known)
}

// IsAbbreviation reports whether span, including its trailing period, is an
// abbreviation. Matching is case-insensitive.
func (t *AbbreviationTable) IsAbbreviation(span []rune) bool {
	if len(span) == 0 {
		return false
	}
	key := lowerString(span)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if containsSorted(t.vetoed, key) {
		return false
	}
	if containsSorted(t.known, key) {
		return true
	}

	// "and/etc." and similar: look at what follows the last slash.
	if slash := strings.LastIndexByte(key, '/'); slash >= 0 && slash < len(key)-1 {
		if containsSorted(t.known, key[slash+1:]) {
			return true
		}
	}

	return isTimeAbbreviation(span) || isCompoundAbbreviation(span) || isConsonantAbbreviation(span)
}

// IsAbbreviation reports whether span is an abbreviation according to the
// default table.
func IsAbbreviation(span []rune) bool {
	return DefaultAbbreviations().IsAbbreviation(span)
}

// isTimeAbbreviation matches a time of day: one or two digits, optionally a
// colon and exactly two more digits, then "a.m." or "p.m." in any case
// ("5:07P.M.", "2a.m.").
func isTimeAbbreviation(span []rune) bool {
	i := 0
	for i < len(span) && IsNumericSimple(span[i]) {
		i++
	}
	if i == 0 || i > 2 {
		return false
	}
	if i < len(span) && span[i] == ':' {
		minutes := i + 1
		i = minutes
		for i < len(span) && IsNumericSimple(span[i]) {
			i++
		}
		if i-minutes != 2 {
			return false
		}
	}
	rest := span[i:]
	if len(rest) != 4 || !IsPeriod(rest[1]) || !IsPeriod(rest[3]) {
		return false
	}
	meridiem, m := ToLower(rest[0]), ToLower(rest[2])
	return (meridiem == 'a' || meridiem == 'p') && m == 'm'
}

// isCompoundAbbreviation matches spans such as "std.err.": at least two
// lowercase consonants, a period, and another period later on.
func isCompoundAbbreviation(span []rune) bool {
	if len(span) < 5 {
		return false
	}
	i := 0
	for i < len(span) && IsLower(span[i]) && IsConsonant(span[i]) {
		i++
	}
	if i < 2 || i >= len(span) || !IsPeriod(span[i]) {
		return false
	}
	for _, r := range span[i+1:] {
		if IsPeriod(r) {
			return true
		}
	}
	return false
}

// isConsonantAbbreviation matches spans of at least five code points made of
// consonants and a final period ("bldgs."), which cannot be words.
func isConsonantAbbreviation(span []rune) bool {
	if len(span) < 5 || !IsPeriod(span[len(span)-1]) {
		return false
	}
	for _, r := range span[:len(span)-1] {
		if !IsConsonant(r) {
			return false
		}
	}
	return true
}

// normalizeAbbreviation lowercases a word and makes sure it ends with a
// period.
func normalizeAbbreviation(word string) string {
	word = lowerString([]rune(strings.TrimSpace(word)))
	if !strings.HasSuffix(word, ".") {
		word += "."
	}
	return word
}

// lowerString returns the lowercase form of span as a string.
func lowerString(span []rune) string {
	var b strings.Builder
	b.Grow(len(span))
	for _, r := range span {
		b.WriteRune(ToLower(r))
	}
	return b.String()
}

func containsSorted(list []string, s string) bool {
	i := sort.SearchStrings(list, s)
	return i < len(list) && list[i] == s
}

func insertSorted(list []string, s string) []string {
	i := sort.SearchStrings(list, s)
	if i < len(list) && list[i] == s {
		return list
	}
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = s
	return list
}
