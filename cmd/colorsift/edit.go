package main

import (
	"github.com/jsvensson/colorsift"
	"github.com/jsvensson/colorsift/internal/palette"
	"github.com/jsvensson/colorsift/internal/tui"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var (
		flagFormat string
		flagOut    string
	)

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a color list interactively",
		Long: `Edit a color list interactively.

Without a file the editor starts on a paste screen. On quit the list is
written to --out, or printed to stdout in its original order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())

			kind, err := resolveKind(cmd, flagFormat)
			if err != nil {
				return err
			}

			// The editor owns the terminal, so stdin is never read as input here.
			var records []palette.Record
			if len(args) == 1 {
				records, err = colorsift.Load(args[0])
				if err != nil {
					return err
				}
			}

			opts := tui.Options{
				Mode:    cfg.Sort,
				Shifter: &palette.Shifter{Step: cfg.Step},
			}
			if cfg.Seed != nil {
				opts.Shifter.Rand = seededRand(*cfg.Seed)
			}

			logger.Debug("starting editor", "count", len(records), "mode", cfg.Sort)
			edited, err := tui.Run(records, opts)
			if err != nil {
				return err
			}
			if len(edited) == 0 {
				logger.Info("nothing to write")
				return nil
			}
			return writeRecords(cmd, edited, kind, flagOut)
		},
	}

	addOutputFlags(cmd, &flagFormat, &flagOut)
	return cmd
}
