package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/docseg"
)

func TestWords_Table(t *testing.T) {
	doc := docseg.SegmentString("Hello world.\n\n3 apples", docseg.Config{})

	var buf bytes.Buffer
	require.NoError(t, Words(&buf, doc, Options{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "#"))
	require.Contains(t, lines[1], "Hello")
	require.Contains(t, lines[3], "num")
	require.Contains(t, lines[3], "eols=2")
}

func TestWords_Truncates(t *testing.T) {
	doc := docseg.SegmentString("Donaudampfschifffahrtsgesellschaft", docseg.Config{})

	var buf bytes.Buffer
	require.NoError(t, Words(&buf, doc, Options{MaxWordWidth: 8}))
	require.Contains(t, buf.String(), "Donauda…")
	require.NotContains(t, buf.String(), "Donaudam")
}

func TestSentences_Table(t *testing.T) {
	doc := docseg.SegmentString("Introduction\n\nIt works. Does it?", docseg.Config{})

	var buf bytes.Buffer
	require.NoError(t, Sentences(&buf, doc, Options{}))

	out := buf.String()
	require.Contains(t, out, "header")
	require.Contains(t, out, "It works.")
	require.Contains(t, out, "Does it?")
}

func TestSummary(t *testing.T) {
	doc := docseg.SegmentString("One. Two three.", docseg.Config{})

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, doc, Options{}))

	out := buf.String()
	require.Contains(t, out, "words")
	require.Contains(t, out, "valid sentences")
	require.Contains(t, out, "1.5")
}

func TestYAML(t *testing.T) {
	doc := docseg.SegmentString("Hi, you.", docseg.Config{})

	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, doc))

	var parsed struct {
		Stats struct {
			Words int `yaml:"words"`
		} `yaml:"stats"`
		Sentences []struct {
			Ending string `yaml:"ending_punctuation"`
			Kind   string `yaml:"kind"`
			Text   string `yaml:"text"`
		} `yaml:"sentences"`
		Punctuation []struct {
			Mark string `yaml:"mark"`
		} `yaml:"punctuation"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))
	require.Equal(t, 2, parsed.Stats.Words)
	require.Len(t, parsed.Sentences, 1)
	require.Equal(t, ".", parsed.Sentences[0].Ending)
	require.Equal(t, "complete", parsed.Sentences[0].Kind)
	require.Equal(t, "Hi, you.", parsed.Sentences[0].Text)
	require.Len(t, parsed.Punctuation, 2)
	require.Equal(t, ",", parsed.Punctuation[0].Mark)
}

func TestDiff(t *testing.T) {
	before := []string{"One.", "Two three.", "Four."}
	after := []string{"One.", "Two", "three.", "Four."}

	changes := Diff(before, after)
	require.True(t, HasChanges(changes))
	require.Equal(t, Change{Unchanged, "One."}, changes[0])
	require.Equal(t, Change{Unchanged, "Four."}, changes[len(changes)-1])

	var removed, added []string
	for _, c := range changes {
		switch c.Type {
		case Removed:
			removed = append(removed, c.Sentence)
		case Added:
			added = append(added, c.Sentence)
		}
	}
	require.Equal(t, []string{"Two three."}, removed)
	require.Equal(t, []string{"Two", "three."}, added)

	var buf bytes.Buffer
	require.NoError(t, WriteDiff(&buf, changes))
	require.Contains(t, buf.String(), "- Two three.\n")
	require.Contains(t, buf.String(), "+ Two\n")
}

func TestDiff_NoChanges(t *testing.T) {
	changes := Diff([]string{"Same."}, []string{"Same."})
	require.False(t, HasChanges(changes))
	require.Len(t, changes, 1)
}
