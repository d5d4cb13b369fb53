package docseg

import "strings"

// Document is a segmented text: its words, the punctuation between them and
// the sentences and paragraphs they form.
type Document struct {
	Words       []Word          `yaml:"words"`
	Punctuation PunctuationLog  `yaml:"punctuation"`
	Sentences   []SentenceInfo  `yaml:"sentences"`
	Paragraphs  []ParagraphInfo `yaml:"paragraphs"`

	text []rune
}

// Stats summarizes a document.
type Stats struct {
	Words          int `yaml:"words"`
	NumericWords   int `yaml:"numeric_words"`
	Sentences      int `yaml:"sentences"`
	ValidSentences int `yaml:"valid_sentences"`
	Paragraphs     int `yaml:"paragraphs"`
	Punctuation    int `yaml:"punctuation"`
}

// Segment tokenizes text and groups its words into sentences and paragraphs.
func Segment(text []rune, cfg Config) *Document {
	cfg = cfg.withDefaults()
	t := NewTokenizer(text, cfg)
	d := &Document{text: text}

	// Terminator of each sentence, by sentence index.
	var endings []rune
	for {
		w, ok := t.Next()
		if ending, closed := t.ClosedSentence(); closed && len(endings) > 0 {
			endings[len(endings)-1] = ending
		}
		if !ok {
			break
		}
		if w.SentenceIndex == len(endings) {
			endings = append(endings, 0)
		}
		d.Words = append(d.Words, w)
	}
	d.Punctuation = t.Punctuation()
	d.buildSentences(endings, cfg.Classifier)
	d.buildParagraphs()
	return d
}

// SegmentString is like Segment but takes a string.
func SegmentString(s string, cfg Config) *Document {
	return Segment([]rune(s), cfg)
}

// buildSentences groups the words into sentences.
func (d *Document) buildSentences(endings []rune, chars CharacterClassifier) {
	d.Sentences = make([]SentenceInfo, 0, len(endings))
	for first := 0; first < len(d.Words); {
		index := d.Words[first].SentenceIndex
		last := first
		for last+1 < len(d.Words) && d.Words[last+1].SentenceIndex == index {
			last++
		}

		s := SentenceInfo{
			FirstWordIndex:    first,
			LastWordIndex:     last,
			WordCount:         last - first + 1,
			EndingPunctuation: endings[index],
			IsValid:           endings[index] != 0,
			UnitCount:         1,
			ParagraphIndex:    d.Words[first].ParagraphIndex,
		}
		for _, w := range d.Words[first : last+1] {
			if !w.Numeric {
				s.ValidWordCount++
			}
		}
		// Dashes between the words of the sentence separate its clauses.
		for _, m := range d.Punctuation.Between(first+1, last+1) {
			if chars.IsDash(m.Mark) || chars.IsHyphen(m.Mark) {
				s.UnitCount++
			}
		}
		d.Sentences = append(d.Sentences, s)
		first = last + 1
	}
}

// buildParagraphs groups the sentences into paragraphs and classifies both.
func (d *Document) buildParagraphs() {
	for first := 0; first < len(d.Sentences); {
		index := d.Sentences[first].ParagraphIndex
		last := first
		for last+1 < len(d.Sentences) && d.Sentences[last+1].ParagraphIndex == index {
			last++
		}

		p := ParagraphInfo{
			FirstSentenceIndex: first,
			LastSentenceIndex:  last,
			SentenceCount:      last - first + 1,
			LeadingEOLCount:    d.Words[d.Sentences[first].FirstWordIndex].LeadingEOLs,
			IsValid:            last > first || d.Sentences[first].IsValid,
		}
		for i := first; i <= last; i++ {
			d.Sentences[i].Kind = d.sentenceKind(i, p.SentenceCount == 1)
		}
		switch lead := d.Sentences[first].Kind; {
		case p.SentenceCount == 1:
			p.Kind = lead
		case lead == KindListItem:
			p.Kind = KindListItem
		case p.IsValid:
			p.Kind = KindComplete
		default:
			p.Kind = KindIncomplete
		}
		d.Paragraphs = append(d.Paragraphs, p)
		first = last + 1
	}
}

// sentenceKind classifies sentence i. A sentence without a terminator that
// makes up a whole line and a whole paragraph is a header.
func (d *Document) sentenceKind(i int, alone bool) Kind {
	s := d.Sentences[i]
	firstWord, lastWord := d.Words[s.FirstWordIndex], d.Words[s.LastWordIndex]
	switch {
	case firstWord.Bulleted:
		return KindListItem
	case !s.IsValid && alone && firstWord.StartsLine && lastWord.EndOfLine:
		return KindHeader
	case s.IsValid:
		return KindComplete
	}
	return KindIncomplete
}

// Stats counts the document's parts.
func (d *Document) Stats() Stats {
	st := Stats{
		Words:       len(d.Words),
		Sentences:   len(d.Sentences),
		Paragraphs:  len(d.Paragraphs),
		Punctuation: len(d.Punctuation),
	}
	for _, w := range d.Words {
		if w.Numeric {
			st.NumericWords++
		}
	}
	for _, s := range d.Sentences {
		if s.IsValid {
			st.ValidSentences++
		}
	}
	return st
}

// SentenceText returns the text of sentence i: everything from its first
// word up to the next sentence, surrounding whitespace removed.
func (d *Document) SentenceText(i int) string {
	if i < 0 || i >= len(d.Sentences) {
		return ""
	}
	start := d.Words[d.Sentences[i].FirstWordIndex].Start
	end := len(d.text)
	if i+1 < len(d.Sentences) {
		end = d.Words[d.Sentences[i+1].FirstWordIndex].Start
	}
	return strings.TrimSpace(string(d.text[start:end]))
}

// SentenceWords returns the words of sentence i.
func (d *Document) SentenceWords(i int) []Word {
	if i < 0 || i >= len(d.Sentences) {
		return nil
	}
	s := d.Sentences[i]
	return d.Words[s.FirstWordIndex : s.LastWordIndex+1]
}
