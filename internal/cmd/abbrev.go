package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/docseg"
	"github.com/scalecode-solutions/docseg/internal/config"
	"github.com/scalecode-solutions/docseg/internal/log"
)

func newAbbrevCmd(a *app) *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "abbrev [word...]",
		Short: "Check words against the abbreviation and acronym rules",
		Long: `Check each word against the abbreviation table (including the words added
or excluded by the configuration) and the acronym rules. Include the trailing
period of abbreviations: "Mr." is an abbreviation, "Mr" is not.

With --export, write the configured additions and exclusions to an
abbreviation profile that other projects can load with abbreviations.file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if export != "" {
				return exportProfile(a, cmd, export)
			}
			if len(args) == 0 {
				return fmt.Errorf("at least one word is required")
			}

			table := a.seg.Abbreviations
			if table == nil {
				table = docseg.DefaultAbbreviations()
			}
			out := cmd.OutOrStdout()
			var acronym docseg.AcronymRecognizer
			for _, word := range args {
				span := []rune(word)
				isAcronym := acronym.IsAcronym(span)
				_, err := fmt.Fprintf(out, "%s\tabbreviation=%t\tacronym=%t\tdotted=%t\tperiods=%d\tplural=%t\n",
					word,
					table.IsAbbreviation(span),
					isAcronym,
					docseg.IsDottedAcronym(span),
					acronym.DotCount(),
					isAcronym && acronym.EndsWithLowerS(),
				)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "write the configured abbreviation changes to this profile")
	return cmd
}

func exportProfile(a *app, cmd *cobra.Command, path string) error {
	p := config.Profile{
		Abbreviations:    a.cfg.Abbreviations.Add,
		NonAbbreviations: a.cfg.Abbreviations.Exclude,
	}
	if a.cfg.Abbreviations.File != "" {
		existing, err := config.LoadProfile(a.cfg.Abbreviations.File)
		if err != nil {
			return err
		}
		p.Abbreviations = append(append([]string(nil), p.Abbreviations...), existing.Abbreviations...)
		p.NonAbbreviations = append(append([]string(nil), p.NonAbbreviations...), existing.NonAbbreviations...)
	}
	if err := config.SaveProfile(path, p); err != nil {
		return err
	}
	log.Info(log.CatCLI, "Exported abbreviation profile", "path", path,
		"abbreviations", len(p.Abbreviations), "non_abbreviations", len(p.NonAbbreviations))
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d abbreviations and %d exclusions to %s\n",
		len(p.Abbreviations), len(p.NonAbbreviations), path)
	return err
}
