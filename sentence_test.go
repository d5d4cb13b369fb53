package docseg

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// candidate returns the index of the last rune of at within text and the
// start of the word it ends.
func candidate(t *testing.T, text, at string) (pos, wordStart int) {
	t.Helper()
	i := strings.Index(text, at)
	require.GreaterOrEqual(t, i, 0, "%q not in %q", at, text)
	runes := []rune(text)
	pos = utf8.RuneCountInString(text[:i+len(at)]) - 1
	wordStart = pos
	for wordStart > 0 && !IsSpace(runes[wordStart-1]) {
		wordStart--
	}
	return pos, wordStart
}

func TestOracle_Decide(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		at        string
		wordPos   int
		uppercase bool
		end       bool
		rule      string
	}{
		{"plain end", "Hello world. Next one.", "world.", 1, false, true, "sentence-start"},
		{"end of text", "Hello.", "Hello.", 1, false, true, "end-of-text"},
		{"not a terminator", "a, b", "a,", 1, false, false, "candidate"},
		{"list number", "1. First", "1.", 0, false, false, "bullet-number"},
		{"after comma", "Hi,. there", "Hi,.", 1, false, false, "after-comma"},
		{"colon at line end", "Ingredients:\nflour", ":", 1, false, true, "colon"},
		{"colon inline", "Note: this", ":", 1, false, false, "colon"},
		{"interrupted dialogue", "\"Wait—\"\nHe left.", "Wait—", 1, false, true, "dash"},
		{"inline dash", "well—maybe", "well—", 1, false, false, "dash"},
		{"table of contents", "Introduction . 5\nChapter", "Introduction .", 1, false, false, "table-of-contents"},
		{"dot leader", "Chapter one.......5", "one.", 1, false, false, "run-on"},
		{"parenthetical", "It ended. (See above.)", "ended.", 1, false, true, "parenthetical"},
		{"abbreviation before parenthetical", "Ask Mr. (Smith) now.", "Mr.", 1, false, false, "parenthetical"},
		{"closing bracket", "(See above.)", "above.", 1, false, true, "nothing-follows"},
		{"back reference", "A note.↩ More", "note.", 1, false, true, "back-reference"},
		{"footnote number", "It ended.¹ Next", "ended.", 1, false, true, "sentence-start"},
		{"footnote run", "It ended.¹²³ Next", "ended.", 1, true, true, "sentence-start"},
		{"footnote then lowercase", "It ended.² then", "ended.", 1, true, false, "sentence-start"},
		{"footnote at end", "It ended.¹²", "ended.", 1, false, true, "nothing-follows"},
		{"trademark", "Made by Acme.™ Next", "Acme.", 2, false, true, "sentence-start"},
		{"registered", "Made by Acme.® Next", "Acme.", 2, true, true, "sentence-start"},
		{"trademark at end", "Made by Acme.™", "Acme.", 2, false, true, "nothing-follows"},
		{"missing space", "The end.Next", "end.", 1, false, false, "spacing"},
		{"ellipsis glued", "wait...what", "wait.", 1, false, false, "ellipsis-adjacent"},
		{"decimal", "pi is 3.14 ok", "3.", 2, false, false, "spacing"},
		{"etc continues", "Apples, pears, etc. and more.", "etc.", 2, false, false, "continuation"},
		{"line break", "the end.\nand more", "end.", 1, false, true, "line-break"},
		{"initial", "See J. Smith.", "J.", 1, false, false, "initial"},
		{"number abbreviation", "Item No. 5 is here.", "No.", 1, false, false, "number-abbreviation"},
		{"number of", "The No. of items.", "No.", 1, false, false, "number-abbreviation"},
		{"versus", "Kramer. Vs. Kramer", "Kramer.", 1, false, false, "versus"},
		{"month with day", "It was Jan. 5 when", "Jan.", 2, false, false, "month"},
		{"month as word", "We met Jan. Then we left.", "Jan.", 2, false, true, "sentence-start"},
		{"abbreviation", "Ask Mr. Smith.", "Mr.", 1, false, false, "abbreviation"},
		{"dotted acronym", "Made in the U.S. Then", "U.S.", 3, false, false, "abbreviation"},
		{"quoted continuation", "He said wow. \"and then\" he left.", "wow.", 2, false, false, "quoted-continuation"},
		{"ellipsis lowercase", "Wait... what?", "Wait.", 0, false, false, "ellipsis"},
		{"ellipsis uppercase", "Wait... What?", "Wait.", 0, false, true, "ellipsis"},
		{"ellipsis then question", "What...? No.", "What.", 0, false, true, "ellipsis"},
		{"lowercase start allowed", "It rained. then it stopped.", "rained.", 1, false, true, "sentence-start"},
		{"lowercase start required upper", "It rained. then it stopped.", "rained.", 1, true, false, "sentence-start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOracle(Config{UppercaseSentenceStart: tt.uppercase})
			pos, wordStart := candidate(t, tt.text, tt.at)
			d := o.Decide([]rune(tt.text), pos, wordStart, tt.wordPos)
			require.Equal(t, tt.end, d.End, "rule %s", d.Rule)
			require.Equal(t, tt.rule, d.Rule)
			require.Equal(t, tt.end, o.IsEndOfSentence([]rune(tt.text), pos, wordStart, tt.wordPos))
		})
	}
}

func TestOracle_RunOfMarks(t *testing.T) {
	o := NewOracle(Config{})
	text := []rune("Really?! Yes.")
	d := o.Decide(text, 6, 0, 0)
	require.True(t, d.End)
	require.Equal(t, '!', d.Terminator)
	require.Equal(t, 8, d.RunEnd)

	text = []rune("Wait... What?")
	d = o.Decide(text, 4, 0, 0)
	require.True(t, d.End)
	require.Equal(t, '.', d.Terminator)
	require.Equal(t, 7, d.RunEnd)
}

func TestOracle_OutOfRange(t *testing.T) {
	o := NewOracle(Config{})
	text := []rune("Hi.")
	require.False(t, o.Decide(text, -1, 0, 0).End)
	require.False(t, o.Decide(text, 3, 0, 0).End)
	require.Equal(t, "out-of-range", o.Decide(text, 3, 0, 0).Rule)
}

func TestOracle_CustomAbbreviations(t *testing.T) {
	text := []rune("Ask Zzq. Smith.")
	require.True(t, NewOracle(Config{}).IsEndOfSentence(text, 7, 4, 1))

	table := NewAbbreviationTable("zzq.")
	require.False(t, NewOracle(Config{Abbreviations: table}).IsEndOfSentence(text, 7, 4, 1))
}

func TestCanBeginSentence(t *testing.T) {
	tests := []struct {
		r         rune
		uppercase bool
		want      bool
	}{
		{'A', true, true},
		{'a', true, false},
		{'a', false, true},
		{'7', true, true},
		{'(', true, true},
		{'"', true, true},
		{'—', true, true},
		{'.', false, false},
		{',', false, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CanBeginSentence(tt.r, tt.uppercase), "%q uppercase=%v", tt.r, tt.uppercase)
	}
}
