package main

import (
	"github.com/jsvensson/colorsift/internal/palette"
	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	var (
		flagBy     string
		flagRef    int
		flagFormat string
		flagOut    string
	)

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Order colors by original position, hue or similarity to one color",
		Long: `Order colors by original position, hue or similarity to one color.

Modes:
  original   the order the colors were listed in
  hue        ascending hue, 0-360 degrees
  selected   most similar to the color at line --ref first`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())

			mode := cfg.Sort
			if flagBy != "" {
				m, err := palette.ParseMode(flagBy)
				if err != nil {
					return err
				}
				mode = m
			}
			kind, err := resolveKind(cmd, flagFormat)
			if err != nil {
				return err
			}

			records, err := readRecords(cmd, args)
			if err != nil {
				return err
			}
			sorted, err := palette.Sort(records, mode, flagRef)
			if err != nil {
				return err
			}
			logger.Debug("sorted", "mode", mode, "count", len(sorted))
			return writeRecords(cmd, sorted, kind, flagOut)
		},
	}

	cmd.Flags().StringVar(&flagBy, "by", "", "sort mode: original, hue or selected (default from config)")
	cmd.Flags().IntVar(&flagRef, "ref", palette.NoSelection, "index of the reference color for --by selected")
	addOutputFlags(cmd, &flagFormat, &flagOut)
	return cmd
}
