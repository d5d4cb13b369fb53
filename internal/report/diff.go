package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangeType classifies a line of a sentence diff.
type ChangeType int

const (
	Unchanged ChangeType = iota
	Removed
	Added
)

// Change is one sentence of a diff.
type Change struct {
	Type     ChangeType
	Sentence string
}

// Diff compares two sentence lists, typically the same text segmented under
// two configurations, and returns the sentences of both in order, marked as
// unchanged, removed or added.
func Diff(before, after []string) []Change {
	dmp := diffmatchpatch.New()

	// One sentence per line, so the diff works on whole sentences.
	oldText := joinLines(before)
	newText := joinLines(after)
	oldChars, newChars, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var changes []Change
	for _, d := range diffs {
		var typ ChangeType
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			typ = Unchanged
		case diffmatchpatch.DiffDelete:
			typ = Removed
		case diffmatchpatch.DiffInsert:
			typ = Added
		}
		for _, s := range strings.SplitAfter(d.Text, "\n") {
			s = strings.TrimSuffix(s, "\n")
			if s == "" {
				continue
			}
			changes = append(changes, Change{Type: typ, Sentence: s})
		}
	}
	return changes
}

// HasChanges reports whether any sentence was added or removed.
func HasChanges(changes []Change) bool {
	for _, c := range changes {
		if c.Type != Unchanged {
			return true
		}
	}
	return false
}

// WriteDiff writes changes in unified style: "-" for removed sentences, "+"
// for added ones and two spaces for unchanged ones.
func WriteDiff(w io.Writer, changes []Change) error {
	for _, c := range changes {
		prefix := "  "
		switch c.Type {
		case Removed:
			prefix = "- "
		case Added:
			prefix = "+ "
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, c.Sentence); err != nil {
			return err
		}
	}
	return nil
}

func joinLines(sentences []string) string {
	var b strings.Builder
	for _, s := range sentences {
		b.WriteString(printable(s))
		b.WriteByte('\n')
	}
	return b.String()
}
