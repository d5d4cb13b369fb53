// Package report renders segmented documents for the command line.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/docseg"
)

// Options controls rendering.
type Options struct {
	// MaxWordWidth truncates word and sentence cells to this many columns.
	// 0 means no limit.
	MaxWordWidth int

	// Styled enables terminal styling of headers and kinds.
	Styled bool
}

const ellipsis = "…"

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

var kindStyles = map[docseg.Kind]lipgloss.Style{
	docseg.KindComplete:   lipgloss.NewStyle(),
	docseg.KindIncomplete: lipgloss.NewStyle().Italic(true),
	docseg.KindHeader:     lipgloss.NewStyle().Bold(true),
	docseg.KindListItem:   lipgloss.NewStyle().Faint(true),
}

// table is a column-aligned text table. Cell widths are measured in
// terminal columns.
type table struct {
	opts   Options
	header []string
	rows   [][]string
	styles []*lipgloss.Style // optional per-row style
}

func (t *table) add(style *lipgloss.Style, cells ...string) {
	t.rows = append(t.rows, cells)
	t.styles = append(t.styles, style)
}

func (t *table) write(w io.Writer) error {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = uniseg.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], uniseg.StringWidth(cell))
		}
	}

	line := func(cells []string, style *lipgloss.Style) string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				padded[i] = cell
			} else {
				padded[i] = runewidth.FillRight(cell, widths[i])
			}
		}
		s := strings.TrimRight(strings.Join(padded, "  "), " ")
		if t.opts.Styled && style != nil {
			s = style.Render(s)
		}
		return s + "\n"
	}

	if _, err := io.WriteString(w, line(t.header, &headerStyle)); err != nil {
		return err
	}
	for i, row := range t.rows {
		if _, err := io.WriteString(w, line(row, t.styles[i])); err != nil {
			return err
		}
	}
	return nil
}

// truncate shortens s to the configured width.
func (o Options) truncate(s string) string {
	if o.MaxWordWidth <= 0 || uniseg.StringWidth(s) <= o.MaxWordWidth {
		return s
	}
	return runewidth.Truncate(s, o.MaxWordWidth, ellipsis)
}

// Words writes one row per word.
func Words(w io.Writer, doc *docseg.Document, opts Options) error {
	t := table{opts: opts, header: []string{"#", "WORD", "LEN", "SENT", "PARA", "POS", "FLAGS"}}
	for _, word := range doc.Words {
		t.add(nil,
			fmt.Sprint(word.Index),
			opts.truncate(printable(word.Text)),
			fmt.Sprint(word.Length),
			fmt.Sprint(word.SentenceIndex),
			fmt.Sprint(word.ParagraphIndex),
			fmt.Sprint(word.SentencePosition),
			wordFlags(word),
		)
	}
	return t.write(w)
}

// Sentences writes one row per sentence.
func Sentences(w io.Writer, doc *docseg.Document, opts Options) error {
	t := table{opts: opts, header: []string{"#", "PARA", "KIND", "WORDS", "UNITS", "END", "TEXT"}}
	for i, s := range doc.Sentences {
		style := kindStyles[s.Kind]
		t.add(&style,
			fmt.Sprint(i),
			fmt.Sprint(s.ParagraphIndex),
			s.Kind.String(),
			fmt.Sprint(s.WordCount),
			fmt.Sprint(s.UnitCount),
			runeString(s.EndingPunctuation),
			opts.truncate(printable(doc.SentenceText(i))),
		)
	}
	return t.write(w)
}

// Summary writes the document's counts and kind breakdown.
func Summary(w io.Writer, doc *docseg.Document, opts Options) error {
	st := doc.Stats()
	sentenceKinds := map[docseg.Kind]int{}
	graphemes := 0
	for i, s := range doc.Sentences {
		sentenceKinds[s.Kind]++
		graphemes += uniseg.GraphemeClusterCount(doc.SentenceText(i))
	}
	paragraphKinds := map[docseg.Kind]int{}
	for _, p := range doc.Paragraphs {
		paragraphKinds[p.Kind]++
	}

	t := table{opts: opts, header: []string{"METRIC", "VALUE"}}
	t.add(nil, "words", fmt.Sprint(st.Words))
	t.add(nil, "numeric words", fmt.Sprint(st.NumericWords))
	t.add(nil, "punctuation", fmt.Sprint(st.Punctuation))
	t.add(nil, "sentences", fmt.Sprint(st.Sentences))
	t.add(nil, "valid sentences", fmt.Sprint(st.ValidSentences))
	t.add(nil, "paragraphs", fmt.Sprint(st.Paragraphs))
	if st.Sentences > 0 {
		t.add(nil, "words per sentence", fmt.Sprintf("%.1f", float64(st.Words)/float64(st.Sentences)))
		t.add(nil, "characters per sentence", fmt.Sprintf("%.1f", float64(graphemes)/float64(st.Sentences)))
	}
	for _, k := range []docseg.Kind{docseg.KindComplete, docseg.KindIncomplete, docseg.KindHeader, docseg.KindListItem} {
		style := kindStyles[k]
		t.add(&style, "sentences: "+k.String(), fmt.Sprint(sentenceKinds[k]))
	}
	for _, k := range []docseg.Kind{docseg.KindComplete, docseg.KindIncomplete, docseg.KindHeader, docseg.KindListItem} {
		style := kindStyles[k]
		t.add(&style, "paragraphs: "+k.String(), fmt.Sprint(paragraphKinds[k]))
	}
	return t.write(w)
}

// yamlMark is a punctuation mark with its character spelled out.
type yamlMark struct {
	Mark                string `yaml:"mark"`
	WordPosition        int    `yaml:"word_position"`
	ConnectedToPrevious bool   `yaml:"connected_to_previous,omitempty"`
}

type yamlSentence struct {
	FirstWord         int         `yaml:"first_word"`
	LastWord          int         `yaml:"last_word"`
	WordCount         int         `yaml:"word_count"`
	ValidWordCount    int         `yaml:"valid_word_count"`
	EndingPunctuation string      `yaml:"ending_punctuation,omitempty"`
	Valid             bool        `yaml:"valid"`
	Kind              docseg.Kind `yaml:"kind"`
	UnitCount         int         `yaml:"unit_count"`
	Paragraph         int         `yaml:"paragraph"`
	Text              string      `yaml:"text"`
}

type yamlDocument struct {
	Stats       docseg.Stats           `yaml:"stats"`
	Words       []docseg.Word          `yaml:"words"`
	Sentences   []yamlSentence         `yaml:"sentences"`
	Paragraphs  []docseg.ParagraphInfo `yaml:"paragraphs"`
	Punctuation []yamlMark             `yaml:"punctuation"`
}

// YAML writes the whole document as YAML.
func YAML(w io.Writer, doc *docseg.Document) error {
	out := yamlDocument{
		Stats:      doc.Stats(),
		Words:      doc.Words,
		Paragraphs: doc.Paragraphs,
	}
	for i, s := range doc.Sentences {
		out.Sentences = append(out.Sentences, yamlSentence{
			FirstWord:         s.FirstWordIndex,
			LastWord:          s.LastWordIndex,
			WordCount:         s.WordCount,
			ValidWordCount:    s.ValidWordCount,
			EndingPunctuation: runeString(s.EndingPunctuation),
			Valid:             s.IsValid,
			Kind:              s.Kind,
			UnitCount:         s.UnitCount,
			Paragraph:         s.ParagraphIndex,
			Text:              doc.SentenceText(i),
		})
	}
	for _, m := range doc.Punctuation {
		out.Punctuation = append(out.Punctuation, yamlMark{
			Mark:                string(m.Mark),
			WordPosition:        m.WordPosition,
			ConnectedToPrevious: m.ConnectedToPrevious,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return enc.Close()
}

func wordFlags(w docseg.Word) string {
	var flags []string
	if w.Numeric {
		flags = append(flags, "num")
	}
	if w.SplitWord {
		flags = append(flags, "split")
	}
	if w.Tabbed {
		flags = append(flags, "tab")
	}
	if w.Bulleted {
		flags = append(flags, "bullet")
	}
	if w.StartsLine {
		flags = append(flags, "bol")
	}
	if w.EndOfLine {
		flags = append(flags, "eol")
	}
	if w.LeadingEOLs > 0 {
		flags = append(flags, fmt.Sprintf("eols=%d", w.LeadingEOLs))
	}
	return strings.Join(flags, ",")
}

func runeString(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}

// printable replaces line breaks and tabs so a cell stays on one line.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', '\v', '\f', 0x2028, 0x2029:
			return ' '
		}
		return r
	}, s)
}
