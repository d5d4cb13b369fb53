package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/docseg/internal/log"
	"github.com/scalecode-solutions/docseg/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch file",
		Short: "Re-segment a document whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := watcher.DefaultConfig(args[0])
			if debounce > 0 {
				cfg.DebounceDur = debounce
			}
			w, err := watcher.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = w.Stop() }()

			changes, err := w.Start()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			show := func() error {
				doc, err := a.segment(cmd, args)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "== %s (%s)\n", args[0], time.Now().Format(time.TimeOnly)); err != nil {
					return err
				}
				return a.render(out, doc)
			}
			if err := show(); err != nil {
				return err
			}

			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-changes:
					log.Debug(log.CatWatch, "Document changed", "path", args[0])
					if err := show(); err != nil {
						// The file may be mid-save; wait for the next change.
						log.ErrorErr(log.CatWatch, "Re-segmentation failed", err, "path", args[0])
					}
				}
			}
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "wait this long after a change before re-segmenting")
	return cmd
}
