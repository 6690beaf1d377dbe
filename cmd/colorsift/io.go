package main

import (
	"fmt"
	"io"

	"github.com/jsvensson/colorsift"
	"github.com/jsvensson/colorsift/internal/format"
	"github.com/jsvensson/colorsift/internal/palette"
	"github.com/spf13/cobra"
)

// readRecords loads the file named by args[0], or palette text from stdin
// when no file or "-" is given.
func readRecords(cmd *cobra.Command, args []string) ([]palette.Record, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return palette.Parse(string(data)), nil
	}
	return colorsift.Load(args[0])
}

// resolveKind returns the --format value, or the configured default when unset.
func resolveKind(cmd *cobra.Command, flagValue string) (format.Kind, error) {
	if flagValue == "" {
		return configFromContext(cmd.Context()).Export, nil
	}
	return format.ParseKind(flagValue)
}

// writeRecords writes records to out, or to stdout when out is empty.
func writeRecords(cmd *cobra.Command, records []palette.Record, kind format.Kind, out string) error {
	logger := loggerFromContext(cmd.Context())
	if out != "" {
		if err := colorsift.Save(out, records, kind); err != nil {
			return err
		}
		logger.Info("wrote colors", "path", out, "format", kind, "count", len(records))
		return nil
	}

	data, err := format.Encode(records, kind)
	if err != nil {
		return fmt.Errorf("encoding colors: %w", err)
	}
	w := cmd.OutOrStdout()
	if _, err := w.Write(data); err != nil {
		return err
	}
	if kind == format.KindText && len(data) > 0 {
		fmt.Fprintln(w)
	}
	return nil
}

// addOutputFlags registers --format and --out on cmd.
func addOutputFlags(cmd *cobra.Command, kind, out *string) {
	cmd.Flags().StringVarP(kind, "format", "f", "", "output format: text, hcl or yaml (default from config)")
	cmd.Flags().StringVarP(out, "out", "o", "", "write to this file instead of stdout")
}
