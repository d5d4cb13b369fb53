package docseg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

func sentenceKinds(d *Document) []Kind {
	kinds := make([]Kind, len(d.Sentences))
	for i, s := range d.Sentences {
		kinds[i] = s.Kind
	}
	return kinds
}

func TestSegment_HeaderAndParagraphs(t *testing.T) {
	doc := SegmentString("Introduction\n\nThe engine splits text. It works well.", Config{})

	require.Equal(t, []Kind{KindHeader, KindComplete, KindComplete}, sentenceKinds(doc))
	require.Equal(t, '.', doc.Sentences[1].EndingPunctuation)
	require.Zero(t, doc.Sentences[0].EndingPunctuation)
	require.False(t, doc.Sentences[0].IsValid)

	require.Len(t, doc.Paragraphs, 2)
	intro, body := doc.Paragraphs[0], doc.Paragraphs[1]
	require.Equal(t, KindHeader, intro.Kind)
	require.False(t, intro.IsValid)
	require.Equal(t, 0, intro.LeadingEOLCount)
	require.Equal(t, ParagraphInfo{
		FirstSentenceIndex: 1,
		LastSentenceIndex:  2,
		SentenceCount:      2,
		LeadingEOLCount:    2,
		IsValid:            true,
		Kind:               KindComplete,
	}, body)

	require.Equal(t, Stats{
		Words:          8,
		Sentences:      3,
		ValidSentences: 2,
		Paragraphs:     2,
		Punctuation:    2,
	}, doc.Stats())
}

func TestSegment_ListItems(t *testing.T) {
	doc := SegmentString("Shopping:\n- eggs\n- milk", Config{})
	require.Equal(t, []Kind{KindComplete, KindListItem, KindListItem}, sentenceKinds(doc))
	require.Equal(t, ':', doc.Sentences[0].EndingPunctuation)
	require.Len(t, doc.Paragraphs, 3)
	require.Equal(t, KindListItem, doc.Paragraphs[2].Kind)

	doc = SegmentString("- Buy eggs. Then milk.", Config{})
	require.Equal(t, []Kind{KindListItem, KindComplete}, sentenceKinds(doc))
	require.Len(t, doc.Paragraphs, 1)
	require.Equal(t, KindListItem, doc.Paragraphs[0].Kind)
}

func TestSegment_IncompleteSentence(t *testing.T) {
	doc := SegmentString("First one. second part", Config{})
	require.Equal(t, []Kind{KindComplete, KindIncomplete}, sentenceKinds(doc))
	require.Len(t, doc.Paragraphs, 1)
	require.True(t, doc.Paragraphs[0].IsValid)
	require.Equal(t, KindComplete, doc.Paragraphs[0].Kind)
}

func TestSegment_SentenceCounts(t *testing.T) {
	doc := SegmentString("He paused — then left.", Config{})
	require.Len(t, doc.Sentences, 1)
	require.Equal(t, 4, doc.Sentences[0].WordCount)
	require.Equal(t, 2, doc.Sentences[0].UnitCount)

	doc = SegmentString("In 1999 it rained.", Config{})
	s := doc.Sentences[0]
	require.Equal(t, 4, s.WordCount)
	require.Equal(t, 3, s.ValidWordCount)
	require.Equal(t, 1, s.UnitCount)
	require.Equal(t, 1, doc.Stats().NumericWords)
}

func TestDocument_SentenceText(t *testing.T) {
	doc := SegmentString("Mr. Smith left. He came\nback.", Config{})
	require.Equal(t, "Mr. Smith left.", doc.SentenceText(0))
	require.Equal(t, "He came\nback.", doc.SentenceText(1))
	require.Empty(t, doc.SentenceText(2))
	require.Empty(t, doc.SentenceText(-1))

	require.Equal(t, []string{"He", "came", "back"}, texts(doc.SentenceWords(1)))
	require.Nil(t, doc.SentenceWords(5))
}

func TestSegment_Empty(t *testing.T) {
	doc := SegmentString("", Config{})
	require.Empty(t, doc.Words)
	require.Empty(t, doc.Sentences)
	require.Empty(t, doc.Paragraphs)
	require.Equal(t, Stats{}, doc.Stats())
}

func TestDocument_YAML(t *testing.T) {
	doc := SegmentString("Introduction\n\nIt works.", Config{})
	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(out), "kind: header")
	require.Contains(t, string(out), "text: Introduction")
}

func TestStringHelpers(t *testing.T) {
	require.Nil(t, WordsInString("", Config{}))
	require.Nil(t, SentencesInString("", Config{}))

	require.Equal(t, []string{"It's", "a", "pumpkin", "pie"}, WordsInString("It's a pump-\nkin pie", Config{}))
	require.Equal(t, []string{"Stop.\"", "He left."}, SentencesInString("\"Stop.\" He left.", Config{}))
	require.Equal(t,
		[]string{"Mr. Smith went to Washington.", "He arrived on Jan. 5 at 5:07p.m. and left."},
		SentencesInString("Mr. Smith went to Washington. He arrived on Jan. 5 at 5:07p.m. and left.", Config{UppercaseSentenceStart: true}),
	)
}

func TestSegment_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.SliceOfN(rapid.SampledFrom(tokenizerAlphabet), 0, 80).Draw(t, "text")
		doc := Segment(text, Config{IgnoreIndentation: rapid.Bool().Draw(t, "indent")})

		next := 0
		for i, s := range doc.Sentences {
			if s.FirstWordIndex != next || s.LastWordIndex < s.FirstWordIndex {
				t.Fatalf("sentence %d covers words [%d,%d], want start %d", i, s.FirstWordIndex, s.LastWordIndex, next)
			}
			if s.WordCount != s.LastWordIndex-s.FirstWordIndex+1 || s.ValidWordCount > s.WordCount {
				t.Fatalf("sentence %d has inconsistent counts", i)
			}
			if s.IsValid != (s.EndingPunctuation != 0) || s.UnitCount < 1 {
				t.Fatalf("sentence %d: valid=%v ending=%q units=%d", i, s.IsValid, s.EndingPunctuation, s.UnitCount)
			}
			next = s.LastWordIndex + 1
		}
		if next != len(doc.Words) {
			t.Fatalf("sentences cover %d of %d words", next, len(doc.Words))
		}

		next = 0
		for i, p := range doc.Paragraphs {
			if p.FirstSentenceIndex != next || p.SentenceCount != p.LastSentenceIndex-p.FirstSentenceIndex+1 {
				t.Fatalf("paragraph %d covers sentences [%d,%d], want start %d", i, p.FirstSentenceIndex, p.LastSentenceIndex, next)
			}
			next = p.LastSentenceIndex + 1
		}
		if next != len(doc.Sentences) {
			t.Fatalf("paragraphs cover %d of %d sentences", next, len(doc.Sentences))
		}
	})
}
