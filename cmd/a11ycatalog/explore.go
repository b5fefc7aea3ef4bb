package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-a11ycatalog/pkg/orchestrator"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/tui"
)

func newExploreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <screen>",
		Short: "Walk a screen the way a screen reader would",
		Long:  "Step through a screen's focus order in the terminal, hearing each announcement and tapping controls, then print the transcript.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			format, _ := flags.GetString("format")
			subset, _ := flags.GetString("subset")
			maxSteps, _ := flags.GetInt("max-steps")

			orch, err := a.orchestrator([]tui.Option{
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())),
				tui.WithOutputFormat(tui.OutputFormat(format)),
				tui.WithMaxSteps(maxSteps),
			})
			if err != nil {
				return err
			}
			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				ScreenID: args[0],
				Renderer: "tui",
				Audit:    true,
				RenderOptions: render.RenderOptions{
					Locale: a.cfg.Locale,
					Subset: render.ParseSubset(subset),
				},
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	flags := cmd.Flags()
	flags.String("format", string(tui.OutputFormatPrettyText), "Transcript format: pretty or json")
	flags.String("subset", "", "Limit the walk to sections or examples")
	flags.Int("max-steps", 200, "Stop after this many steps")
	return cmd
}
