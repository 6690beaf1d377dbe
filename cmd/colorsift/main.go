package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jsvensson/colorsift/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev" // Injected at build time via ldflags

func newRootCmd() *cobra.Command {
	var (
		flagConfig  string
		flagVerbose bool
	)

	root := &cobra.Command{
		Use:          "colorsift",
		Short:        "Sort, separate and export lists of labelled colors",
		Long:         "colorsift reads color lists (one \"color<TAB>label\" per line), orders them by hue or similarity, nudges near-duplicates apart and writes them back out.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log_level: %w", err)
			}
			if flagVerbose {
				level = log.DebugLevel
			}

			logger := newLogger(cmd.ErrOrStderr(), level)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withConfig(withLogger(ctx, logger), cfg))

			logger.Debug("config loaded", "sort", cfg.Sort, "step", cfg.Step, "export", cfg.Export)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to an HCL config file")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSortCmd())
	root.AddCommand(newShiftCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
