package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/colorsift/internal/format"
	"github.com/spf13/cobra"
)

var errNeedsFormatting = errors.New("some files are not formatted")

func newFmtCmd() *cobra.Command {
	var flagCheck bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format color list files",
		Long:  "Format one or more color list files in-place. Prints the name of each file that was modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasErrors := false
			needsFormatting := false

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
					hasErrors = true
					continue
				}

				content := string(data)
				formatted, err := format.Format(content)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
					hasErrors = true
					continue
				}

				if formatted == content {
					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), path)
				needsFormatting = true

				if !flagCheck {
					if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
						hasErrors = true
					}
				}
			}

			if hasErrors {
				return errors.New("formatting failed")
			}
			if flagCheck && needsFormatting {
				return errNeedsFormatting
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	return cmd
}
