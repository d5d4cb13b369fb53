package docseg

import "sort"

// Kind classifies sentences and paragraphs.
type Kind int

// Sentence and paragraph kinds. A sentence is complete if it ends with a
// terminator and incomplete otherwise; headers and list items override both.
const (
	KindIncomplete Kind = iota
	KindComplete
	KindHeader
	KindListItem
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIncomplete:
		return "incomplete"
	case KindComplete:
		return "complete"
	case KindHeader:
		return "header"
	case KindListItem:
		return "list_item"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// PunctuationMark is a punctuation character found between words.
type PunctuationMark struct {
	// Mark is the punctuation character.
	Mark rune `yaml:"mark"`

	// WordPosition is the index of the word the mark precedes. Marks after
	// the last word carry the total number of words.
	WordPosition int `yaml:"word_position"`

	// ConnectedToPrevious reports whether no whitespace separates the mark
	// from the previous word.
	ConnectedToPrevious bool `yaml:"connected_to_previous"`
}

// PunctuationLog is the ordered list of punctuation marks of a text. Marks
// are appended in text order, so they are sorted by WordPosition.
type PunctuationLog []PunctuationMark

// ForWord returns the marks that precede word i.
func (l PunctuationLog) ForWord(i int) []PunctuationMark {
	return l.Between(i, i+1)
}

// Between returns the marks preceding words from through to-1.
func (l PunctuationLog) Between(from, to int) []PunctuationMark {
	lo := sort.Search(len(l), func(j int) bool { return l[j].WordPosition >= from })
	hi := sort.Search(len(l), func(j int) bool { return l[j].WordPosition >= to })
	if lo >= hi {
		return nil
	}
	return l[lo:hi]
}

// Word is a word returned by the tokenizer along with its position in the
// document.
type Word struct {
	// Text is the word. For a split word it is the joined text without the
	// hyphen and line break.
	Text string `yaml:"text"`

	// Start and End delimit the word in the input, End excluded.
	Start int `yaml:"start"`
	End   int `yaml:"end"`

	// Length is the number of code points in Text, trailing punctuation
	// (such as an abbreviation's period) excluded.
	Length int `yaml:"length"`

	Index            int `yaml:"index"`
	SentenceIndex    int `yaml:"sentence"`
	ParagraphIndex   int `yaml:"paragraph"`
	SentencePosition int `yaml:"position"`

	// Numeric reports whether the word reads as a number.
	Numeric bool `yaml:"numeric,omitempty"`

	// Tabbed reports whether a tab precedes the word.
	Tabbed bool `yaml:"tabbed,omitempty"`

	// SplitWord reports whether the word was hyphenated across a line break
	// or a space ("pump-\nkin", "pro- gramming").
	SplitWord bool `yaml:"split,omitempty"`

	// EndOfLine reports whether only punctuation and whitespace follow the
	// word on its line.
	EndOfLine bool `yaml:"end_of_line,omitempty"`

	// LeadingEOLs is the number of line endings between the previous word
	// and this one.
	LeadingEOLs int `yaml:"leading_eols,omitempty"`

	// StartsLine reports whether the word is the first on its line.
	StartsLine bool `yaml:"starts_line,omitempty"`

	// Bulleted reports whether the word starts a list item line.
	Bulleted bool `yaml:"bulleted,omitempty"`
}

// SentenceInfo describes a sentence as a range of words.
type SentenceInfo struct {
	FirstWordIndex int `yaml:"first_word"`
	LastWordIndex  int `yaml:"last_word"`
	WordCount      int `yaml:"word_count"`

	// ValidWordCount counts the words that are not numbers.
	ValidWordCount int `yaml:"valid_word_count"`

	// EndingPunctuation is the terminator that ended the sentence, or 0.
	EndingPunctuation rune `yaml:"ending_punctuation"`

	// IsValid reports whether the sentence ended with a terminator.
	IsValid bool `yaml:"valid"`

	Kind Kind `yaml:"kind"`

	// UnitCount is the number of dash-delimited clauses.
	UnitCount int `yaml:"unit_count"`

	ParagraphIndex int `yaml:"paragraph"`
}

// ParagraphInfo describes a paragraph as a range of sentences.
type ParagraphInfo struct {
	FirstSentenceIndex int `yaml:"first_sentence"`
	LastSentenceIndex  int `yaml:"last_sentence"`
	SentenceCount      int `yaml:"sentence_count"`
	LeadingEOLCount    int `yaml:"leading_eols"`

	// IsValid is false for a paragraph that is a single sentence without a
	// terminator.
	IsValid bool `yaml:"valid"`

	Kind Kind `yaml:"kind"`
}
