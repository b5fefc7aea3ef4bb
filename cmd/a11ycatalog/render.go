package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-a11ycatalog/pkg/orchestrator"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <screen>",
		Short: "Render a screen as HTML, JSON or YAML",
		Long: `Render one catalog screen. Taps are replayed in order first, so the
output shows the state a user would reach:

  a11ycatalog render checkboxes --tap accept-terms --renderer semantic --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			rendererName, _ := flags.GetString("renderer")
			format, _ := flags.GetString("format")
			taps, _ := flags.GetStringSlice("tap")
			subset, _ := flags.GetString("subset")
			locale, _ := flags.GetString("locale")
			withAudit, _ := flags.GetBool("audit")
			output, _ := flags.GetString("output")

			orch, err := a.orchestrator(nil, orchestrator.WithNavigation(nil))
			if err != nil {
				return err
			}
			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				ScreenID:     args[0],
				Renderer:     rendererName,
				ThemeName:    a.cfg.Theme,
				ThemeVariant: a.cfg.Variant,
				Taps:         taps,
				Audit:        withAudit,
				RenderOptions: render.RenderOptions{
					Locale: firstNonEmpty(locale, a.cfg.Locale),
					Subset: render.ParseSubset(subset),
					Format: format,
				},
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Screen written to %s\n", output)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringP("renderer", "r", "", "Renderer: vanilla (html) or semantic (default from A11Y_RENDERER)")
	flags.String("format", "", "Sub-format for the semantic renderer: json or yaml")
	flags.StringSlice("tap", nil, "Element ids to tap before rendering, in order")
	flags.String("subset", "", "Limit output to sections or examples, e.g. good or bad-single-checkbox")
	flags.String("locale", "", "Locale for page chrome")
	flags.Bool("audit", false, "Overlay audit findings")
	flags.StringP("output", "o", "", "Output file (stdout if empty)")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
