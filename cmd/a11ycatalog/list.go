package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog screens",
		Long:  "List every screen in display order with the number of examples it holds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			store, err := a.catalog()
			if err != nil {
				return err
			}
			return writeSummaries(cmd.OutOrStdout(), output, store.Summaries())
		},
	}
	cmd.Flags().StringP("output", "o", "table", "Output format: table, yaml, json")
	return cmd
}

func writeSummaries(w io.Writer, format string, summaries []model.Summary) error {
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(summaries)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summaries)
	case "table":
		header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cell := lipgloss.NewStyle().Padding(0, 1)
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "ID", "TITLE", "EXAMPLES").
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return header
				}
				return cell
			})
		for _, summary := range summaries {
			t.Row(strconv.Itoa(summary.Order), summary.ID, summary.Title, strconv.Itoa(summary.Examples))
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unsupported output %q (use table, yaml or json)", format)
	}
}
