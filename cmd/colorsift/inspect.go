package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jsvensson/colorsift/internal/palette"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newInspectCmd() *cobra.Command {
	var flagBy string

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show each color with its HSV values and nearest neighbor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := configFromContext(cmd.Context()).Sort
			if flagBy != "" {
				m, err := palette.ParseMode(flagBy)
				if err != nil {
					return err
				}
				mode = m
			}
			if mode == palette.ModeSelected {
				return fmt.Errorf("inspect cannot sort by %q; use sort --by selected", mode)
			}

			records, err := readRecords(cmd, args)
			if err != nil {
				return err
			}
			records, err = palette.Sort(records, mode, palette.NoSelection)
			if err != nil {
				return err
			}
			stats, err := palette.Analyze(records)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), statsTable(records, stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagBy, "by", "", "row order: original or hue (default from config)")
	return cmd
}

func statsTable(records []palette.Record, stats []palette.Stats) string {
	labels := make(map[int]string, len(records))
	for _, r := range records {
		labels[r.Index] = r.Label
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "", "COLOR", "LABEL", "HSV", "NEAREST").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 {
				return cellStyle.Background(lipgloss.Color(stats[row].RGB.Hex()))
			}
			return cellStyle
		})

	for i, r := range records {
		nearest := "-"
		if n := stats[i].Nearest; n != palette.NoSelection {
			nearest = fmt.Sprintf("%d %s", n, labels[n])
		}
		t.Row(strconv.Itoa(r.Index), "  ", stats[i].RGB.Hex(), r.Label, stats[i].HSV.String(), nearest)
	}
	return t.String()
}
