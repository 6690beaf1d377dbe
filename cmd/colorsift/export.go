package main

import "github.com/spf13/cobra"

func newExportCmd() *cobra.Command {
	var (
		flagFormat string
		flagOut    string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert a color list to text, HCL or YAML",
		Long:  "Convert a color list to text, HCL or YAML. Input may be palette text, a paletteswap theme (.pstheme, .hcl) or YAML.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resolveKind(cmd, flagFormat)
			if err != nil {
				return err
			}
			records, err := readRecords(cmd, args)
			if err != nil {
				return err
			}
			return writeRecords(cmd, records, kind, flagOut)
		},
	}

	addOutputFlags(cmd, &flagFormat, &flagOut)
	return cmd
}
