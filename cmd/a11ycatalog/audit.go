package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-a11ycatalog/pkg/audit"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
	"github.com/goliatone/go-a11ycatalog/pkg/orchestrator"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
)

// errGoodExamplesFailed is returned when an example meant to be accessible
// has findings.
var errGoodExamplesFailed = errors.New("good examples have accessibility findings")

// auditRow is one finding flattened for output.
type auditRow struct {
	Screen   string `json:"screen" yaml:"screen"`
	Section  string `json:"section" yaml:"section"`
	Example  string `json:"example,omitempty" yaml:"example,omitempty"`
	Source   string `json:"source" yaml:"source"`
	Rule     string `json:"rule" yaml:"rule"`
	Severity string `json:"severity" yaml:"severity"`
	Element  string `json:"element,omitempty" yaml:"element,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

func newAuditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [screen...]",
		Short: "Audit screens for accessibility problems",
		Long: `Audit the semantics tree of every example, and optionally the rendered
HTML. Bad examples are expected to produce findings; the command fails when a
good example does.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			withHTML, _ := flags.GetBool("html")
			output, _ := flags.GetString("output")

			orch, err := a.orchestrator(nil)
			if err != nil {
				return err
			}
			ids := args
			if len(ids) == 0 {
				ids = orch.Catalog().IDs()
			}

			var rows []auditRow
			for _, id := range ids {
				screenRows, err := auditScreen(cmd, orch, id, withHTML)
				if err != nil {
					return err
				}
				rows = append(rows, screenRows...)
			}
			if err := writeAuditRows(cmd.OutOrStdout(), output, rows); err != nil {
				return err
			}
			for _, row := range rows {
				if row.Section == string(model.SectionGood) {
					return errGoodExamplesFailed
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("html", false, "Also audit the rendered HTML of each section")
	cmd.Flags().StringP("output", "o", "table", "Output format: table, yaml, json")
	return cmd
}

func auditScreen(cmd *cobra.Command, orch *orchestrator.Orchestrator, id string, withHTML bool) ([]auditRow, error) {
	live, err := orch.Screen(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	findings, err := live.Audit()
	if err != nil {
		return nil, fmt.Errorf("audit %s: %w", id, err)
	}
	rows := make([]auditRow, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, auditRow{
			Screen:   f.Screen,
			Section:  string(f.Section),
			Example:  f.Example,
			Source:   "tree",
			Rule:     f.Rule,
			Severity: string(f.Severity),
			Element:  f.ElementID,
			Message:  f.Message,
		})
	}
	if !withHTML {
		return rows, nil
	}

	for _, kind := range []model.SectionKind{model.SectionGood, model.SectionBad} {
		out, err := orch.Generate(cmd.Context(), orchestrator.Request{
			Screen:        live,
			Renderer:      "vanilla",
			RenderOptions: render.RenderOptions{Subset: render.ParseSubset(string(kind))},
		})
		if err != nil {
			return nil, err
		}
		htmlFindings, err := audit.HTML(bytes.NewReader(out))
		if err != nil {
			return nil, fmt.Errorf("audit %s html: %w", id, err)
		}
		for _, f := range htmlFindings {
			rows = append(rows, auditRow{
				Screen:   id,
				Section:  string(kind),
				Source:   "html",
				Rule:     f.Rule,
				Severity: string(f.Severity),
				Element:  f.ElementID,
				Message:  f.Message,
			})
		}
	}
	return rows, nil
}

func writeAuditRows(w io.Writer, format string, rows []auditRow) error {
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(rows)
	case "json":
		if rows == nil {
			rows = []auditRow{}
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "table":
		if len(rows) == 0 {
			_, err := fmt.Fprintln(w, "no findings")
			return err
		}
		good := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600")).Padding(0, 1)
		bad := lipgloss.NewStyle().Foreground(lipgloss.Color("#DC143C")).Padding(0, 1)
		header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("SCREEN", "SECTION", "SOURCE", "RULE", "ELEMENT", "MESSAGE").
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return header
				}
				if rows[row].Section == string(model.SectionGood) {
					return good
				}
				return bad
			})
		for _, row := range rows {
			t.Row(row.Screen, row.Section, row.Source, row.Rule, row.Element, strings.TrimSpace(row.Message))
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unsupported output %q (use table, yaml or json)", format)
	}
}
