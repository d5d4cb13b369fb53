package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/docseg"
	"github.com/scalecode-solutions/docseg/internal/report"
)

// Segmentation switches that diff can toggle.
var toggles = map[string]func(*docseg.Config){
	"eol_is_paragraph":         func(c *docseg.Config) { c.EOLIsParagraph = !c.EOLIsParagraph },
	"ignore_blank_lines":       func(c *docseg.Config) { c.IgnoreBlankLines = !c.IgnoreBlankLines },
	"ignore_indentation":       func(c *docseg.Config) { c.IgnoreIndentation = !c.IgnoreIndentation },
	"uppercase_sentence_start": func(c *docseg.Config) { c.UppercaseSentenceStart = !c.UppercaseSentenceStart },
}

func newDiffCmd(a *app) *cobra.Command {
	var toggled []string
	cmd := &cobra.Command{
		Use:   "diff [file]",
		Short: "Show how a setting changes the sentences of a document",
		Long: `Segment a document twice, once with the current configuration and once with
the given segmentation settings flipped, and show the sentences that differ.

Settings: eol_is_paragraph, ignore_blank_lines, ignore_indentation,
uppercase_sentence_start.`,
		Example: `  docseg diff --toggle ignore_blank_lines report.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(toggled) == 0 {
				return fmt.Errorf("--toggle is required")
			}
			other := a.seg
			for _, name := range toggled {
				flip, ok := toggles[name]
				if !ok {
					return fmt.Errorf("unknown setting %q", name)
				}
				flip(&other)
			}

			text, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			before := sentenceList(docseg.SegmentString(text, a.seg))
			after := sentenceList(docseg.SegmentString(text, other))

			changes := report.Diff(before, after)
			out := cmd.OutOrStdout()
			if !report.HasChanges(changes) {
				_, err := fmt.Fprintf(out, "No differences (%d sentences)\n", len(before))
				return err
			}
			return report.WriteDiff(out, changes)
		},
	}
	cmd.Flags().StringSliceVar(&toggled, "toggle", nil, "segmentation setting to flip (repeatable)")
	return cmd
}

func sentenceList(doc *docseg.Document) []string {
	out := make([]string, len(doc.Sentences))
	for i := range doc.Sentences {
		out[i] = oneLine(doc.SentenceText(i))
	}
	return out
}

// oneLine collapses whitespace runs, line breaks included, into single
// spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
