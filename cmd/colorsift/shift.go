package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/jsvensson/colorsift/internal/palette"
	"github.com/spf13/cobra"
)

func newShiftCmd() *cobra.Command {
	var (
		flagStep   int
		flagSeed   uint64
		flagTimes  int
		flagFormat string
		flagOut    string
	)

	cmd := &cobra.Command{
		Use:   "shift [file]",
		Short: "Move every color a step away from its nearest neighbor",
		Long: `Move every color a step away from its nearest neighbor.

Each pass finds the closest other color by RGB distance and moves every
channel --step units away from it. Channels that already match move up or
down at random; pass --seed for reproducible output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())

			if flagTimes < 1 {
				return fmt.Errorf("--times must be at least 1, got %d", flagTimes)
			}
			kind, err := resolveKind(cmd, flagFormat)
			if err != nil {
				return err
			}

			s := &palette.Shifter{Step: cfg.Step}
			if cmd.Flags().Changed("step") {
				s.Step = flagStep
			}
			if s.Step < 1 {
				return fmt.Errorf("--step must be at least 1, got %d", s.Step)
			}
			switch {
			case cmd.Flags().Changed("seed"):
				s.Rand = seededRand(flagSeed)
			case cfg.Seed != nil:
				s.Rand = seededRand(*cfg.Seed)
			}

			records, err := readRecords(cmd, args)
			if err != nil {
				return err
			}
			for i := range flagTimes {
				records, err = s.Shift(records)
				if err != nil {
					return err
				}
				logger.Debug("shift pass", "pass", i+1, "step", s.Step)
			}
			return writeRecords(cmd, records, kind, flagOut)
		},
	}

	cmd.Flags().IntVar(&flagStep, "step", 1, "channel units to move per pass (default from config)")
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed for tie-breaking")
	cmd.Flags().IntVar(&flagTimes, "times", 1, "number of passes")
	addOutputFlags(cmd, &flagFormat, &flagOut)
	return cmd
}

// seededRand returns a deterministic source for shift tie-breaking.
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
