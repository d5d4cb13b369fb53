package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/docseg/internal/config"
	"github.com/scalecode-solutions/docseg/internal/report"
)

func newSegmentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segment [file]",
		Short: "Segment a document and show its sentences",
		Long: `Segment a document (or standard input) and print its sentences with their
paragraph, kind and terminator. Use --format yaml for the full document
including words and punctuation, or --format summary for counts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.segment(cmd, args)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), doc)
		},
	}
}

func newWordsCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "words [file]",
		Short: "List the words of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.segment(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case plain:
				for _, w := range doc.Words {
					if _, err := fmt.Fprintln(out, w.Text); err != nil {
						return err
					}
				}
				return nil
			case a.cfg.Output.Format == config.FormatTable:
				return report.Words(out, doc, a.reportOptions(out))
			default:
				return a.render(out, doc)
			}
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print one word per line")
	return cmd
}

func newSentencesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sentences [file]",
		Short: "Print one sentence per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.segment(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := range doc.Sentences {
				if _, err := fmt.Fprintln(out, oneLine(doc.SentenceText(i))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
