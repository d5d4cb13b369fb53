package docseg

// WordsInString returns the words of str in order. Split words are returned
// joined ("pump-\nkin" yields "pumpkin").
//
// Given an empty string, it returns nil.
func WordsInString(str string, cfg Config) []string {
	if len(str) == 0 {
		return nil
	}
	var words []string
	t := NewTokenizer([]rune(str), cfg)
	for {
		w, ok := t.Next()
		if !ok {
			return words
		}
		words = append(words, w.Text)
	}
}

// SentencesInString returns the sentences of str in order. Each sentence runs
// from its first word to the first word of the next sentence, so it includes
// its terminator and any closing quotes. Surrounding whitespace is removed.
//
// Given an empty string, it returns nil.
func SentencesInString(str string, cfg Config) []string {
	if len(str) == 0 {
		return nil
	}
	doc := SegmentString(str, cfg)
	sentences := make([]string, 0, len(doc.Sentences))
	for i := range doc.Sentences {
		sentences = append(sentences, doc.SentenceText(i))
	}
	return sentences
}
