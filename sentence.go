package docseg

// Sentence boundary detection.
//
// The oracle decides whether a punctuation mark ends a sentence. The decision
// is made by an ordered list of rules. Each rule either accepts the mark as a
// sentence end, rejects it, or passes the decision on to the next rule. The
// last rule always decides. Earlier rules may also refine what later rules
// see: the run-on rule moves the mark under test to the last mark of a run
// ("?!", "..."), and the citation rule skips footnote markers.

// verdict is the outcome of a single boundary rule.
type verdict int

const (
	inconclusive verdict = iota // Let the next rule decide.
	accept                      // The mark ends the sentence.
	reject                      // The mark does not end the sentence.
)

// Most periods in a row that still read as an ellipsis. Longer runs are dot
// leaders.
const maxEllipsisPeriods = 4

// Words that may precede a lowercase continuation without ending the
// sentence ("apples, pears, etc. and more").
var continuationWords = []string{"etc.", "usw."}

// Month abbreviations that are also ordinary words or names. They are only
// abbreviations when a number follows ("Jan. 5").
var ambiguousMonths = []string{"jan.", "mar."}

// Decision is the oracle's verdict on a terminator candidate.
type Decision struct {
	// End reports whether the candidate ends a sentence.
	End bool

	// Terminator is the mark that ends the sentence. For a run of marks
	// ("?!", "...") it is the last mark of the run.
	Terminator rune

	// RunEnd is the index after the run of marks that was examined. Marks
	// before RunEnd have been decided on and need not be examined again.
	RunEnd int

	// Rule names the rule that made the decision.
	Rule string
}

// Oracle decides where sentences end. It is safe for concurrent use as long
// as its abbreviation table is not modified.
type Oracle struct {
	chars     CharacterClassifier
	punct     PunctuationClassifier
	abbrev    *AbbreviationTable
	uppercase bool
}

// NewOracle returns an oracle configured from cfg. Only the classifiers, the
// abbreviation table and UppercaseSentenceStart are used.
func NewOracle(cfg Config) *Oracle {
	cfg = cfg.withDefaults()
	return &Oracle{
		chars:     cfg.Classifier,
		punct:     cfg.Punctuation,
		abbrev:    cfg.Abbreviations,
		uppercase: cfg.UppercaseSentenceStart,
	}
}

// boundaryCase is what the rules know about the candidate under test.
type boundaryCase struct {
	text      []rune
	mark      int // the candidate as passed in
	pos       int // the candidate; after the run-on rule, the last mark of the run
	wordStart int // start of the word preceding the candidate
	wordPos   int // that word's position within its sentence

	runEnd   int  // index after the run of marks
	ellipsis bool // the run reads as an ellipsis
	fourDots bool // the ellipsis has four periods
	next     int  // index after the run, closers and citation markers
	follow   int  // first non-space index at or after next
	word     int  // start of the following word, or len(text)
	gap      bool // punctuation other than one opening mark precedes the following word

	ignoreAbbreviation bool
}

// boundaryRule is one step of the decision procedure.
type boundaryRule struct {
	name  string
	check func(o *Oracle, c *boundaryCase) verdict
}

// boundaryRules are applied in order until one of them decides.
var boundaryRules = []boundaryRule{
	{"bullet-number", (*Oracle).ruleBulletNumber},
	{"candidate", (*Oracle).ruleCandidate},
	{"end-of-text", (*Oracle).ruleEndOfText},
	{"after-comma", (*Oracle).ruleAfterComma},
	{"colon", (*Oracle).ruleColon},
	{"dash", (*Oracle).ruleDash},
	{"table-of-contents", (*Oracle).ruleTableOfContents},
	{"run-on", (*Oracle).ruleRunOn},
	{"parenthetical", (*Oracle).ruleParenthetical},
	{"citation", (*Oracle).ruleCitation},
	{"nothing-follows", (*Oracle).ruleNothingFollows},
	{"back-reference", (*Oracle).ruleBackReference},
	{"ellipsis-adjacent", (*Oracle).ruleEllipsisAdjacent},
	{"spacing", (*Oracle).ruleSpacing},
	{"continuation", (*Oracle).ruleContinuation},
	{"line-break", (*Oracle).ruleLineBreak},
	{"initial", (*Oracle).ruleInitial},
	{"number-abbreviation", (*Oracle).ruleNumberAbbreviation},
	{"versus", (*Oracle).ruleVersus},
	{"month", (*Oracle).ruleMonth},
	{"abbreviation", (*Oracle).ruleAbbreviation},
	{"quoted-continuation", (*Oracle).ruleQuotedContinuation},
	{"ellipsis", (*Oracle).ruleEllipsis},
	{"sentence-start", (*Oracle).ruleSentenceStart},
}

// IsEndOfSentence reports whether the mark at text[pos] ends a sentence.
// wordStart is the start of the word preceding the mark and wordPos that
// word's position within its sentence (0 for the first word).
func (o *Oracle) IsEndOfSentence(text []rune, pos, wordStart, wordPos int) bool {
	return o.Decide(text, pos, wordStart, wordPos).End
}

// Decide is like IsEndOfSentence but returns the full decision.
func (o *Oracle) Decide(text []rune, pos, wordStart, wordPos int) Decision {
	if pos < 0 || pos >= len(text) {
		return Decision{RunEnd: max(pos+1, 0), Rule: "out-of-range"}
	}
	if wordStart < 0 || wordStart > pos {
		wordStart = pos
	}
	c := boundaryCase{
		text:      text,
		mark:      pos,
		pos:       pos,
		wordStart: wordStart,
		wordPos:   wordPos,
		runEnd:    pos + 1,
		next:      pos + 1,
		word:      len(text),
	}
	for _, rule := range boundaryRules {
		switch rule.check(o, &c) {
		case accept:
			return Decision{End: true, Terminator: text[c.pos], RunEnd: c.runEnd, Rule: rule.name}
		case reject:
			return Decision{Terminator: text[c.pos], RunEnd: c.runEnd, Rule: rule.name}
		}
	}
	// ruleSentenceStart always decides; this is unreachable.
	return Decision{Terminator: text[c.pos], RunEnd: c.runEnd}
}

// CanBeginSentence reports whether a sentence may start with r.
func (o *Oracle) CanBeginSentence(r rune) bool {
	if o.uppercase {
		if o.chars.CanBeginWordUppercase(r) {
			return true
		}
	} else if o.chars.CanBeginWord(r) {
		return true
	}
	return fold(r) == '(' || o.chars.IsDash(r) || o.chars.IsHyphen(r) || o.chars.IsQuote(r)
}

// CanBeginSentence reports whether a sentence may start with r. If uppercase
// is set, letters must be uppercase.
func CanBeginSentence(r rune, uppercase bool) bool {
	o := Oracle{chars: Characters{}, uppercase: uppercase}
	return o.CanBeginSentence(r)
}

// precedingWord returns the word before the candidate including the
// candidate itself ("Mr.").
func (c *boundaryCase) precedingWord() []rune {
	return c.text[c.wordStart : c.mark+1]
}

// precedingWordIs reports whether the preceding word, including the
// candidate, is one of the given lowercase words.
func (o *Oracle) precedingWordIs(c *boundaryCase, words ...string) bool {
	if !o.chars.IsPeriod(c.text[c.mark]) {
		return false
	}
	word := lowerString(c.precedingWord())
	for _, w := range words {
		if word == w {
			return true
		}
	}
	return false
}

// Rule 1: a number that starts a sentence followed by a period is a list
// item number ("1.", "2.3.").
func (o *Oracle) ruleBulletNumber(c *boundaryCase) verdict {
	if c.wordPos != 0 || c.wordStart >= c.mark {
		return inconclusive
	}
	for _, r := range c.text[c.wordStart : c.mark+1] {
		if !o.chars.IsNumeric(r) && !o.chars.IsPeriod(r) {
			return inconclusive
		}
	}
	return reject
}

// Rule 2: only terminators are candidates.
func (o *Oracle) ruleCandidate(c *boundaryCase) verdict {
	r := c.text[c.pos]
	if o.punct.IsStrictTerminator(r) || o.punct.IsPassiveTerminator(r) {
		return inconclusive
	}
	return reject
}

// Rule 3: the last character of the text ends the sentence.
func (o *Oracle) ruleEndOfText(c *boundaryCase) verdict {
	if c.pos+1 >= len(c.text) {
		return accept
	}
	return inconclusive
}

// Rule 4: a terminator after a comma is a malformed quote (`"Hi,." he said`).
func (o *Oracle) ruleAfterComma(c *boundaryCase) verdict {
	if c.pos > 0 && fold(c.text[c.pos-1]) == ',' {
		return reject
	}
	return inconclusive
}

// Rule 5: a colon ends a sentence only at the end of a line, where it
// usually introduces a list.
func (o *Oracle) ruleColon(c *boundaryCase) verdict {
	if fold(c.text[c.pos]) != ':' {
		return inconclusive
	}
	i := c.pos + 1
	for i < len(c.text) && o.chars.IsSpaceHorizontal(c.text[i]) {
		i++
	}
	if i >= len(c.text) || o.chars.IsSpaceVertical(c.text[i]) {
		return accept
	}
	return reject
}

// Rule 6: a dash ends a sentence only when closing interrupted dialogue at
// the end of a line (`"Wait—"`).
func (o *Oracle) ruleDash(c *boundaryCase) verdict {
	r := c.text[c.pos]
	if !o.punct.IsPassiveTerminator(r) || o.punct.IsStrictTerminator(r) {
		return inconclusive
	}
	i := c.pos + 1
	if i < len(c.text) && o.chars.IsDoubleQuote(c.text[i]) &&
		(i+1 >= len(c.text) || o.chars.IsSpaceVertical(c.text[i+1])) {
		return accept
	}
	return reject
}

// Rule 7: a lone period after a space followed by a page number at the end
// of the line is the tail of a table of contents entry.
func (o *Oracle) ruleTableOfContents(c *boundaryCase) verdict {
	text := c.text
	if !o.chars.IsPeriod(text[c.pos]) || c.pos == 0 || !o.chars.IsSpaceHorizontal(text[c.pos-1]) {
		return inconclusive
	}
	i := c.pos + 1
	for i < len(text) && o.chars.IsSpaceHorizontal(text[i]) {
		i++
	}
	digits := i
	for i < len(text) && o.chars.IsNumeric(text[i]) {
		i++
	}
	if i > digits && (i >= len(text) || o.chars.IsSpaceVertical(text[i])) {
		return reject
	}
	return inconclusive
}

// Rule 8: a run of terminators ("!!!", "?!", ". ?", "...") is decided on as
// a whole, using its last mark. Long runs of periods are dot leaders.
func (o *Oracle) ruleRunOn(c *boundaryCase) verdict {
	text := c.text
	var periods, ellipses, others int
	last := c.pos
	i := c.pos
	for i < len(text) {
		r := text[i]
		if o.punct.IsStrictTerminator(r) && fold(r) != ':' {
			switch {
			case o.chars.IsPeriod(r):
				periods++
			case o.punct.IsEllipsis(r):
				ellipses++
			default:
				others++
			}
			last = i
			i++
			continue
		}
		// ". . ." and ". ?"
		if o.chars.IsSpaceHorizontal(r) {
			j := i
			for j < len(text) && o.chars.IsSpaceHorizontal(text[j]) {
				j++
			}
			if j < len(text) && o.punct.IsStrictTerminator(text[j]) && fold(text[j]) != ':' {
				i = j
				continue
			}
		}
		break
	}
	c.runEnd = last + 1
	if periods > maxEllipsisPeriods || ellipses > 1 {
		return reject
	}
	c.pos = last
	c.next = last + 1
	if others == 0 {
		c.ellipsis = periods >= 3 || (ellipses == 1 && periods <= 1)
		c.fourDots = periods == 4 || (ellipses == 1 && periods == 1)
	}
	return inconclusive
}

// Rule 9: "word. (word2" ends the sentence unless the word is an
// abbreviation, an acronym or an initial.
func (o *Oracle) ruleParenthetical(c *boundaryCase) verdict {
	text := c.text
	if !o.chars.IsPeriod(text[c.pos]) || c.pos+2 >= len(text) ||
		!o.chars.IsSpaceHorizontal(text[c.pos+1]) || fold(text[c.pos+2]) != '(' {
		return inconclusive
	}
	word := c.precedingWord()
	if o.abbrev.IsAbbreviation(word) || IsAcronym(word[:len(word)-1]) || o.isInitial(c) {
		return reject
	}
	return accept
}

// Rule 10: closing quotes and brackets after the terminator belong to the
// sentence; superscript footnote numbers and trademark signs are skipped.
func (o *Oracle) ruleCitation(c *boundaryCase) verdict {
	i := c.next
	for i < len(c.text) {
		r := c.text[i]
		if isCitationNumeral(r) || r == trademarkSign || r == registeredSign ||
			isClosingBracket(r) || o.isClosingQuote(c, i) {
			i++
			continue
		}
		break
	}
	c.next = i
	return inconclusive
}

// Rule 11: nothing but closers follows.
func (o *Oracle) ruleNothingFollows(c *boundaryCase) verdict {
	if c.next >= len(c.text) {
		return accept
	}
	return inconclusive
}

// Rule 12: a footnote back-reference arrow follows the sentence.
func (o *Oracle) ruleBackReference(c *boundaryCase) verdict {
	if isBackReference(c.text[c.next]) {
		return accept
	}
	return inconclusive
}

// Rule 13a: an ellipsis glued to the following word joins it ("wait...what").
func (o *Oracle) ruleEllipsisAdjacent(c *boundaryCase) verdict {
	if !c.ellipsis || c.runEnd >= len(c.text) {
		return inconclusive
	}
	r := c.text[c.runEnd]
	if o.chars.IsLetter(r) || o.chars.IsNumeric(r) {
		return reject
	}
	return inconclusive
}

// Rule 13b: a sentence end must be followed by whitespace or an opening
// bracket or quote. From here on the following word is located.
func (o *Oracle) ruleSpacing(c *boundaryCase) verdict {
	r := c.text[c.next]
	if !IsSpace(r) && !isOpeningBracket(r) && !o.chars.IsQuote(r) {
		return reject
	}
	text := c.text
	i := c.next
	for i < len(text) && IsSpace(text[i]) {
		i++
	}
	c.follow = i
	openers := 0
	for i < len(text) {
		r := text[i]
		if isLetterOrDigit(r) || (o.chars.CanBeginWord(r) && i+1 < len(text) && isLetterOrDigit(text[i+1])) {
			break
		}
		if !IsSpace(r) {
			openers++
		}
		i++
	}
	c.word = i
	c.gap = openers > 1 || (openers == 1 && !(c.word == c.follow+1 && o.isOpener(text[c.follow])))
	return inconclusive
}

// Rule 13c: "etc." and "usw." followed by a lowercase word continue the
// sentence.
func (o *Oracle) ruleContinuation(c *boundaryCase) verdict {
	if !o.precedingWordIs(c, continuationWords...) {
		return inconclusive
	}
	if c.follow < len(c.text) && o.chars.IsLower(c.text[c.follow]) {
		return reject
	}
	return inconclusive
}

// Rule 13d: a line break after the terminator ends the sentence.
func (o *Oracle) ruleLineBreak(c *boundaryCase) verdict {
	i := c.next
	for i < len(c.text) && o.chars.IsSpaceHorizontal(c.text[i]) {
		i++
	}
	if i >= len(c.text) || o.chars.IsSpaceVertical(c.text[i]) {
		return accept
	}
	return inconclusive
}

// Rule 13e: a single letter followed by a period is an initial ("J. Smith").
func (o *Oracle) ruleInitial(c *boundaryCase) verdict {
	if o.isInitial(c) {
		return reject
	}
	return inconclusive
}

// Rule 13f: "No." followed by "of", a digit or "#" abbreviates "number".
func (o *Oracle) ruleNumberAbbreviation(c *boundaryCase) verdict {
	if !o.precedingWordIs(c, "no.") || c.gap || c.word >= len(c.text) {
		return inconclusive
	}
	text := c.text
	r := text[c.word]
	if o.chars.IsNumeric(r) || fold(r) == '#' {
		return reject
	}
	if c.word+2 < len(text) && o.chars.ToLower(text[c.word]) == 'o' &&
		o.chars.ToLower(text[c.word+1]) == 'f' && IsSpace(text[c.word+2]) {
		return reject
	}
	return inconclusive
}

// Rule 13g: "Vs." never starts a sentence ("Kramer. Vs. Kramer").
func (o *Oracle) ruleVersus(c *boundaryCase) verdict {
	text := c.text
	if c.word+2 < len(text) && o.chars.ToLower(text[c.word]) == 'v' &&
		o.chars.ToLower(text[c.word+1]) == 's' && o.chars.IsPeriod(text[c.word+2]) {
		return reject
	}
	return inconclusive
}

// Rule 13h: "Jan." and "Mar." are month abbreviations only when a number
// follows. Otherwise they are treated as ordinary words.
func (o *Oracle) ruleMonth(c *boundaryCase) verdict {
	if !o.precedingWordIs(c, ambiguousMonths...) {
		return inconclusive
	}
	if c.word < len(c.text) && !c.gap && o.chars.IsNumeric(c.text[c.word]) {
		return reject
	}
	c.ignoreAbbreviation = true
	return inconclusive
}

// Rule 13i: a period closing a known abbreviation or a dotted acronym does
// not end the sentence.
func (o *Oracle) ruleAbbreviation(c *boundaryCase) verdict {
	if c.ignoreAbbreviation || !o.chars.IsPeriod(c.text[c.mark]) {
		return inconclusive
	}
	word := c.precedingWord()
	if o.abbrev.IsAbbreviation(word) || IsDottedAcronym(word) {
		return reject
	}
	return inconclusive
}

// Rule 13j: an opening quote or bracket directly followed by a lowercase word
// continues the sentence.
func (o *Oracle) ruleQuotedContinuation(c *boundaryCase) verdict {
	if c.follow >= len(c.text) || !o.isOpener(c.text[c.follow]) || c.gap {
		return inconclusive
	}
	if c.word == c.follow+1 && c.word < len(c.text) && o.chars.IsLower(c.text[c.word]) {
		return reject
	}
	return inconclusive
}

// Rule 13k: after "!" or "?" following an ellipsis the sentence ends; after
// an ellipsis alone it ends only if a capitalized sentence start follows. A
// four-dot ellipsis is a period plus an ellipsis and only needs a valid
// sentence start.
func (o *Oracle) ruleEllipsis(c *boundaryCase) verdict {
	if !c.ellipsis {
		if c.runEnd-1 > c.mark && isExclamationOrQuestion(c.text[c.pos]) && o.precededByEllipsis(c) {
			return accept
		}
		return inconclusive
	}
	if c.follow >= len(c.text) || !o.CanBeginSentence(c.text[c.follow]) {
		return reject
	}
	if !c.fourDots && c.word < len(c.text) && o.chars.IsLower(c.text[c.word]) {
		return reject
	}
	return accept
}

// Rule 13l: the sentence ends if the next character can start one.
func (o *Oracle) ruleSentenceStart(c *boundaryCase) verdict {
	if c.follow < len(c.text) && o.CanBeginSentence(c.text[c.follow]) {
		return accept
	}
	return reject
}

// isInitial reports whether the preceding word is a single letter and the
// candidate a period.
func (o *Oracle) isInitial(c *boundaryCase) bool {
	return c.mark == c.wordStart+1 && o.chars.IsLetter(c.text[c.wordStart]) && o.chars.IsPeriod(c.text[c.mark])
}

// isOpener reports whether r opens a quotation or a parenthetical.
func (o *Oracle) isOpener(r rune) bool {
	return isOpeningBracket(r) || o.chars.IsQuote(r)
}

// isClosingQuote reports whether the quote at text[i] closes a quotation:
// it is not followed by a letter or digit.
func (o *Oracle) isClosingQuote(c *boundaryCase, i int) bool {
	if !o.chars.IsQuote(c.text[i]) {
		return false
	}
	return i+1 >= len(c.text) || !isLetterOrDigit(c.text[i+1])
}

// precededByEllipsis reports whether the run of marks ending in c.pos starts
// with three periods or an ellipsis character.
func (o *Oracle) precededByEllipsis(c *boundaryCase) bool {
	text := c.text
	if o.punct.IsEllipsis(text[c.mark]) {
		return true
	}
	periods := 0
	for i := c.mark; i < c.pos && o.chars.IsPeriod(text[i]); i++ {
		periods++
	}
	return periods >= 3
}
