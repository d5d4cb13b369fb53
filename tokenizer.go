package docseg

// Words joined by a suspended hyphen ("pre- and post-war") rather than
// hyphenated across a space ("pro- gramming").
var suspendedHyphenWords = []string{"and", "or", "nor", "to", "und", "oder", "bis", "bzw"}

// Apostrophe-final words are kept whole when they end in this suffix
// ("nothin'", "goin'").
const droppedGSuffix = "in"

// tokenizerState is everything the tokenizer carries from one call of Next
// to the following one.
type tokenizerState struct {
	pos int // scan cursor

	wordIndex        int // index of the next word
	sentenceIndex    int
	paragraphIndex   int
	sentencePosition int // position of the next word within its sentence

	// The current sentence has been ended by terminator.
	atSentenceEnd bool
	terminator    rune

	// The sentence closed by the last call of Next, if any.
	closed       bool
	closedEnding rune

	// Terminators before this index have been decided on.
	checkedThrough int

	// The most recent word.
	lastWordStart    int
	lastWordPosition int

	// Start of the last segment of the word being scanned. Earlier segments
	// of a split word are in Tokenizer.buf.
	lastSegment int

	line lineContext
	done bool
}

// Tokenizer splits text into words and assigns them to sentences and
// paragraphs. It reads the text in a single pass, one word per call of Next,
// and logs the punctuation it passes.
//
// A Tokenizer never modifies its input. It must not be used from more than
// one goroutine at a time, but any number of tokenizers may read the same
// text concurrently.
type Tokenizer struct {
	text   []rune
	cfg    Config
	chars  CharacterClassifier
	punct  PunctuationClassifier
	oracle *Oracle

	state tokenizerState
	marks PunctuationLog
	buf   []rune
}

// NewTokenizer returns a tokenizer over text. An empty text yields no words.
func NewTokenizer(text []rune, cfg Config) *Tokenizer {
	cfg = cfg.withDefaults()
	t := &Tokenizer{
		text:   text,
		cfg:    cfg,
		chars:  cfg.Classifier,
		punct:  cfg.Punctuation,
		oracle: NewOracle(cfg),
	}
	t.state.line = beginLine(text, 0)
	return t
}

// Punctuation returns the punctuation marks logged so far. The returned log
// is owned by the tokenizer and grows with further calls of Next.
func (t *Tokenizer) Punctuation() PunctuationLog {
	return t.marks
}

// ClosedSentence reports whether the last call of Next closed a sentence and
// which terminator ended it (0 if the sentence was closed by a paragraph
// break). When Next returns a word that starts a new sentence, the sentence
// before it was closed; when Next reports the end of the text, the last
// sentence is closed if it ended with a terminator.
func (t *Tokenizer) ClosedSentence() (ending rune, closed bool) {
	return t.state.closedEnding, t.state.closed
}

// Next returns the next word. It returns false once the text is exhausted.
func (t *Tokenizer) Next() (Word, bool) {
	s := &t.state
	s.closed = false
	s.closedEnding = 0
	if s.done {
		return Word{}, false
	}

	eols, tabbed, leader, ok := t.skipToWord()
	if !ok {
		s.done = true
		if s.wordIndex > 0 && s.atSentenceEnd {
			s.closed = true
			s.closedEnding = s.terminator
		}
		return Word{}, false
	}

	start := s.pos
	t.advanceBoundaries(start, eols, leader)
	startsLine := s.line.isFirstWord()
	bulleted := startsLine && s.line.has(lineCtxBulleted)

	end, split := t.scanWord(start)
	end = t.walkBackApostrophes(start, end)
	end = t.decideTerminator(start, end)

	word := t.wordText(end)
	w := Word{
		Text:             string(word),
		Start:            start,
		End:              end,
		Length:           t.lengthWithoutPunctuation(word),
		Index:            s.wordIndex,
		SentenceIndex:    s.sentenceIndex,
		ParagraphIndex:   s.paragraphIndex,
		SentencePosition: s.sentencePosition,
		Numeric:          IsNumericSpan(word),
		Tabbed:           tabbed,
		SplitWord:        split,
		EndOfLine:        t.atEndOfLine(end),
		LeadingEOLs:      eols,
		StartsLine:       startsLine,
		Bulleted:         bulleted,
	}

	s.line.Words++
	s.lastWordStart = start
	s.lastWordPosition = s.sentencePosition
	s.wordIndex++
	s.sentencePosition++
	s.pos = end
	return w, true
}

// skipToWord moves the cursor to the start of the next word, logging
// punctuation and skipping whitespace and decorative separators on the way.
// It returns the number of line endings passed, whether a tab was passed,
// whether a line ending in a dot leader was passed, and false if the text
// ended first.
func (t *Tokenizer) skipToWord() (eols int, tabbed, leader, ok bool) {
	s := &t.state
	text := t.text
	connected := s.wordIndex > 0
	lineStart := s.pos == 0

	for s.pos < len(text) {
		r := text[s.pos]

		if t.chars.IsSpaceVertical(r) {
			if endsWithLeader(text, s.pos) {
				leader = true
			}
			count, skipped := EndOfLineRun(text[s.pos:])
			if skipped == 0 {
				count, skipped = 1, 1
			}
			eols += count
			s.pos += skipped
			s.line = beginLine(text, s.pos)
			connected = false
			lineStart = true
			continue
		}

		if t.chars.IsSpaceHorizontal(r) {
			if r == '\t' {
				tabbed = true
			}
			connected = false
			s.pos++
			continue
		}

		if lineStart {
			lineStart = false
			if n := LeadingSeparator(text[s.pos:]); n > 0 {
				s.pos += n
				continue
			}
		}
		if n := TrailingSeparator(text[s.pos:]); n > 0 {
			s.pos += n
			continue
		}

		// Footnote numbers glued to the previous word.
		if connected && isCitationNumeral(r) {
			s.pos++
			continue
		}

		if t.startsWord(s.pos) {
			return eols, tabbed, leader, true
		}

		if IsControl(r) {
			s.pos++
			continue
		}

		// A terminator separated from its word by quotes or brackets.
		if s.wordIndex > 0 && !s.atSentenceEnd && s.pos >= s.checkedThrough && t.isCandidate(r) {
			d := t.oracle.Decide(text, s.pos, s.lastWordStart, s.lastWordPosition)
			s.checkedThrough = d.RunEnd
			if d.End {
				s.atSentenceEnd = true
				s.terminator = d.Terminator
			}
		}

		t.marks = append(t.marks, PunctuationMark{
			Mark:                r,
			WordPosition:        s.wordIndex,
			ConnectedToPrevious: connected,
		})
		s.pos++
	}
	return eols, tabbed, leader, false
}

// advanceBoundaries moves to a new sentence and paragraph as required before
// the word starting at text[start] is emitted.
func (t *Tokenizer) advanceBoundaries(start, eols int, leader bool) {
	s := &t.state
	if s.wordIndex > 0 {
		toc := leader && t.chars.IsNumeric(t.text[start])
		newParagraph := t.startsParagraph(eols, toc)
		if newParagraph || s.atSentenceEnd {
			s.closed = true
			if s.atSentenceEnd {
				s.closedEnding = s.terminator
			}
			s.sentenceIndex++
			s.sentencePosition = 0
		}
		if newParagraph {
			s.paragraphIndex++
		}
	}
	s.atSentenceEnd = false
	s.terminator = 0
}

// startsParagraph decides whether eols line endings before the next word
// start a new paragraph.
func (t *Tokenizer) startsParagraph(eols int, toc bool) bool {
	s := &t.state
	switch {
	case eols == 0:
		return false
	case t.cfg.EOLIsParagraph, s.atSentenceEnd:
		return true
	case eols >= 2 && (!t.cfg.IgnoreBlankLines || toc):
		return true
	case s.line.has(lineCtxIndented) && !t.cfg.IgnoreIndentation:
		return true
	case s.line.has(lineCtxBulleted):
		return true
	}
	return false
}

// startsWord reports whether a word starts at text[i].
func (t *Tokenizer) startsWord(i int) bool {
	text := t.text
	r := text[i]
	if t.chars.IsLetter(r) || t.chars.IsNumeric(r) {
		return true
	}
	if i+1 >= len(text) {
		return false
	}
	next := text[i+1]
	if t.chars.CanPrefixNumeral(r) && t.chars.IsNumericSimple(next) {
		return true
	}
	return t.chars.CanBeginWord(r) && (t.chars.IsLetter(next) || t.chars.IsNumeric(next))
}

// scanWord reads the word starting at text[start] and returns the index
// after it and whether it was joined across a hyphen. Segments of a split
// word before the last one are collected in t.buf.
func (t *Tokenizer) scanWord(start int) (end int, split bool) {
	text := t.text
	n := len(text)
	t.buf = t.buf[:0]
	t.state.lastSegment = start

	i := start
	if !t.chars.IsLetter(text[i]) && !t.chars.IsNumeric(text[i]) {
		i++ // prefix symbol or sign
	}
	for i < n {
		r := text[i]
		switch {
		case t.chars.IsLetter(r), t.chars.IsNumericSimple(r):
			i++

		case t.chars.IsNumeric(r):
			// Superscripts after letters are footnote references.
			if isCitationNumeral(r) && t.hasLetters(t.state.lastSegment, i) {
				return i, split
			}
			i++

		case t.chars.IsHyphen(r):
			if i > start && i+1 < n && isLetterOrDigit(text[i+1]) {
				i++
				continue
			}
			next, ok := t.wrappedHyphen(i)
			if !ok {
				next, ok = t.spacedHyphen(start, i)
			}
			if !ok {
				return i, split
			}
			t.buf = append(t.buf, text[t.state.lastSegment:i]...)
			t.state.lastSegment = next
			split = true
			i = next

		case t.chars.IsSingleQuote(r):
			// Apostrophes inside words; trailing ones are walked back later.
			i++

		case t.chars.IsPeriod(r), r == ',', r == ':', r == '/', r == '@':
			if !t.isInfix(i) {
				return i, split
			}
			i++

		case r == '+' || r == '#':
			j := i
			for j < n && text[j] == r {
				j++
			}
			// "C++", "C#"
			if j-i > 2 || !t.chars.IsLetter(text[i-1]) || (j < n && isLetterOrDigit(text[j])) {
				return i, split
			}
			i = j

		case r == '%' || r == 0x00B0:
			if !t.chars.IsNumeric(text[i-1]) {
				return i, split
			}
			i++

		default:
			return i, split
		}
	}
	return i, split
}

// isInfix reports whether the separator at text[i] joins two parts of a word:
// a period inside "3.14", "e.g", "U.S" or "example.com", a comma or colon
// between digits ("1,000", "10:30"), a slash ("and/or", "1/2") or an at sign.
// Superscript and fraction numerals never continue a word, so "ended.¹" ends
// at the period.
func (t *Tokenizer) isInfix(i int) bool {
	text := t.text
	if i == 0 || i+1 >= len(text) || i <= t.state.lastSegment {
		return false
	}
	prev, next := text[i-1], text[i+1]
	if !t.isWordRune(prev) || !t.isWordRune(next) {
		return false
	}
	switch r := text[i]; {
	case r == ',' || r == ':':
		return t.chars.IsNumericSimple(prev) && t.chars.IsNumericSimple(next)
	case t.chars.IsPeriod(r):
		if t.chars.IsLower(next) || t.chars.IsNumericSimple(next) {
			return true
		}
		// An uppercase letter after the period only continues a run of
		// initials; "end.Next" is two words.
		return i-1 == t.state.lastSegment || t.chars.IsPeriod(text[i-2])
	default:
		return true
	}
}

// isWordRune reports whether r can sit on either side of an infix separator:
// a letter or a plain decimal digit.
func (t *Tokenizer) isWordRune(r rune) bool {
	return t.chars.IsLetter(r) || t.chars.IsNumericSimple(r)
}

// wrappedHyphen reports whether the hyphen at text[i] ends a line and the
// word continues on the next line. It returns where the continuation starts.
func (t *Tokenizer) wrappedHyphen(i int) (int, bool) {
	text := t.text
	j := i + 1
	for j < len(text) && t.chars.IsSpaceHorizontal(text[j]) {
		j++
	}
	if j >= len(text) || !t.chars.IsSpaceVertical(text[j]) || !t.hasLetters(t.state.lastSegment, i) {
		return 0, false
	}
	eols, skipped := EndOfLineRun(text[j:])
	if eols != 1 {
		return 0, false
	}
	k := j + skipped
	lineStart := k
	for k < len(text) && t.chars.IsSpaceHorizontal(text[k]) {
		k++
	}
	if k >= len(text) || !t.chars.IsLetter(text[k]) {
		return 0, false
	}
	t.state.line = beginLine(text, lineStart)
	return k, true
}

// spacedHyphen reports whether the hyphen at text[i] is followed by a single
// space and the rest of the word ("pro- gramming"). A suspended hyphen
// ("pre- and post-war") does not join.
func (t *Tokenizer) spacedHyphen(start, i int) (int, bool) {
	text := t.text
	if i == start || !t.chars.IsLetter(text[i-1]) || i+2 >= len(text) ||
		text[i+1] != ' ' || !t.chars.IsLower(text[i+2]) {
		return 0, false
	}
	j := i + 2
	for j < len(text) && t.chars.IsLetter(text[j]) {
		j++
	}
	next := lowerString(text[i+2 : j])
	for _, w := range suspendedHyphenWords {
		if next == w {
			return 0, false
		}
	}
	return i + 2, true
}

// walkBackApostrophes excludes trailing apostrophes from the word ending at
// text[end] unless they are part of it. They are then logged as punctuation
// by the next call of Next.
func (t *Tokenizer) walkBackApostrophes(start, end int) int {
	text := t.text
	seg := t.state.lastSegment
	q := 0
	for end-q-1 >= seg && t.chars.IsSingleQuote(text[end-q-1]) {
		q++
	}
	if q == 0 || end-q <= start {
		return end
	}
	if q == 1 && t.endsWithDroppedG(end-1) {
		return end
	}
	if t.cfg.Spellings != nil && t.cfg.Spellings.Contains(string(t.wordText(end))) {
		return end
	}
	return end - q
}

// endsWithDroppedG reports whether the word before text[end] ends in "in"
// and is long enough to be a colloquial "-ing" ("nothin'").
func (t *Tokenizer) endsWithDroppedG(end int) bool {
	text := t.text
	seg := t.state.lastSegment
	suffix := []rune(droppedGSuffix)
	if end-seg+len(t.buf) <= len(suffix)+1 || end-len(suffix) < seg {
		return false
	}
	for k, r := range suffix {
		if t.chars.ToLower(text[end-len(suffix)+k]) != r {
			return false
		}
	}
	return true
}

// decideTerminator asks the oracle about a terminator directly after the
// word ending at text[end]. A period closing an abbreviation or a dotted
// acronym is folded into the word; the returned index includes it.
func (t *Tokenizer) decideTerminator(start, end int) int {
	s := &t.state
	text := t.text
	if end >= len(text) || !t.isCandidate(text[end]) {
		return end
	}
	d := t.oracle.Decide(text, end, start, s.sentencePosition)
	s.checkedThrough = d.RunEnd
	if d.End {
		s.atSentenceEnd = true
		s.terminator = d.Terminator
	}
	if !t.chars.IsPeriod(text[end]) || (end+1 < len(text) && t.chars.IsPeriod(text[end+1])) {
		return end
	}
	withPeriod := t.wordText(end + 1)
	if t.cfg.Abbreviations.IsAbbreviation(withPeriod) || IsDottedAcronym(withPeriod) {
		return end + 1
	}
	return end
}

// isCandidate reports whether r may end a sentence.
func (t *Tokenizer) isCandidate(r rune) bool {
	return t.punct.IsStrictTerminator(r) || t.punct.IsPassiveTerminator(r)
}

// wordText returns the current word up to text[end]: the collected segments
// of a split word followed by the last segment.
func (t *Tokenizer) wordText(end int) []rune {
	seg := t.state.lastSegment
	word := make([]rune, 0, len(t.buf)+end-seg)
	word = append(word, t.buf...)
	if end > seg {
		word = append(word, t.text[seg:end]...)
	}
	return word
}

// lengthWithoutPunctuation counts the code points of word, trailing
// punctuation excluded.
func (t *Tokenizer) lengthWithoutPunctuation(word []rune) int {
	n := len(word)
	for n > 0 && t.chars.IsPunctuation(word[n-1]) && !t.chars.CanEndWord(word[n-1]) {
		n--
	}
	return n
}

// hasLetters reports whether text[from:to] contains a letter.
func (t *Tokenizer) hasLetters(from, to int) bool {
	for _, r := range t.text[from:to] {
		if t.chars.IsLetter(r) {
			return true
		}
	}
	return false
}

// atEndOfLine reports whether only punctuation and whitespace follow
// text[end] on its line.
func (t *Tokenizer) atEndOfLine(end int) bool {
	text := t.text
	for i := end; i < len(text); i++ {
		if t.chars.IsSpaceVertical(text[i]) {
			return true
		}
		if t.startsWord(i) {
			return false
		}
	}
	return true
}
