package docseg

// KnownSpellings tells whether a word is spelled as written. The tokenizer
// uses it only to decide whether a trailing apostrophe belongs to a word
// ("somethin'") or is punctuation (a possessive or a closing quote).
type KnownSpellings interface {
	Contains(word string) bool
}

// KnownSpellingsFunc adapts a function to the [KnownSpellings] interface.
type KnownSpellingsFunc func(word string) bool

// Contains calls f(word).
func (f KnownSpellingsFunc) Contains(word string) bool {
	return f(word)
}

// Config controls how a [Tokenizer] segments text. The zero value is a valid
// configuration. A configuration is fixed for the lifetime of a tokenizer.
type Config struct {
	// EOLIsParagraph starts a new paragraph at every line ending.
	EOLIsParagraph bool

	// IgnoreBlankLines stops blank lines alone from starting a new
	// paragraph. Text copied out of page layouts often has blank lines in
	// the middle of sentences.
	IgnoreBlankLines bool

	// IgnoreIndentation stops indented lines from starting a new paragraph.
	IgnoreIndentation bool

	// UppercaseSentenceStart requires letters that start a sentence to be
	// uppercase.
	UppercaseSentenceStart bool

	// Spellings is consulted for words ending in an apostrophe. Optional.
	Spellings KnownSpellings

	// Abbreviations defaults to DefaultAbbreviations().
	Abbreviations *AbbreviationTable

	// Classifier defaults to Characters{}.
	Classifier CharacterClassifier

	// Punctuation defaults to Punctuation{}.
	Punctuation PunctuationClassifier
}

// withDefaults fills in the collaborators left unset.
func (c Config) withDefaults() Config {
	if c.Abbreviations == nil {
		c.Abbreviations = DefaultAbbreviations()
	}
	if c.Classifier == nil {
		c.Classifier = Characters{}
	}
	if c.Punctuation == nil {
		c.Punctuation = Punctuation{}
	}
	return c
}
