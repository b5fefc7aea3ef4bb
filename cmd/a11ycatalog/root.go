package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-a11ycatalog"
	"github.com/goliatone/go-a11ycatalog/internal/config"
	"github.com/goliatone/go-a11ycatalog/pkg/catalog"
	"github.com/goliatone/go-a11ycatalog/pkg/orchestrator"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/semantic"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/tui"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/vanilla"
	"github.com/goliatone/go-a11ycatalog/pkg/theming"
)

// app carries settings resolved once per invocation.
type app struct {
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "a11ycatalog",
		Short:         "Browse good and bad accessibility examples",
		Long:          "Render, explore, audit and serve a catalog of accessible and inaccessible checkboxes, switches, toggle buttons, disclosure panels and groups.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "Load settings from this .env file (default .env)")
	flags.String("catalog-dir", "", "Load screens from this directory instead of the embedded catalog")
	flags.String("theme-dir", "", "Load theme manifests from this directory instead of the embedded themes")
	flags.String("theme", "", "Theme name")
	flags.String("variant", "", "Theme variant, e.g. dark or high-contrast")
	flags.String("log-level", "", "Log level: debug, info, warn, error")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		var files []string
		if a.envFile != "" {
			files = append(files, a.envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			return err
		}
		overrides := map[string]*string{
			"catalog-dir": &cfg.CatalogDir,
			"theme-dir":   &cfg.ThemeDir,
			"theme":       &cfg.Theme,
			"variant":     &cfg.Variant,
			"log-level":   &cfg.LogLevel,
		}
		for name, target := range overrides {
			if cmd.Flags().Changed(name) {
				*target, _ = cmd.Flags().GetString(name)
			}
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		a.cfg = cfg
		a.logger = cfg.NewLogger()
		return nil
	}

	root.AddCommand(
		newListCmd(a),
		newRenderCmd(a),
		newExploreCmd(a),
		newAuditCmd(a),
		newServeCmd(a),
	)
	return root
}

// orchestrator builds the pipeline from the resolved settings. tuiOptions,
// when non-nil, registers the interactive renderer too.
func (a *app) orchestrator(tuiOptions []tui.Option, extra ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	store, err := a.catalog()
	if err != nil {
		return nil, err
	}
	selector, err := a.themes()
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(html)
	registry.MustRegister(semantic.New())
	if err := registry.Alias("html", html.Name()); err != nil {
		return nil, err
	}
	if tuiOptions != nil {
		explorer, err := tui.New(tuiOptions...)
		if err != nil {
			return nil, err
		}
		registry.MustRegister(explorer)
	}

	options := []orchestrator.Option{
		orchestrator.WithCatalog(store),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(a.cfg.Renderer),
		orchestrator.WithThemeSelector(selector),
		orchestrator.WithLogger(a.logger),
	}
	return orchestrator.New(append(options, extra...)...), nil
}

func (a *app) catalog() (*catalog.Store, error) {
	if a.cfg.CatalogDir == "" {
		return catalog.Default()
	}
	store, err := a11ycatalog.LoadCatalogDir(a.cfg.CatalogDir, catalog.NumberScreens(), catalog.RequireSections())
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", a.cfg.CatalogDir, err)
	}
	return store, nil
}

func (a *app) themes() (*theming.Selector, error) {
	defaults := theming.WithDefaults(a.cfg.Theme, a.cfg.Variant)
	if a.cfg.ThemeDir == "" {
		return theming.Default(defaults)
	}
	selector, err := a11ycatalog.LoadThemes(os.DirFS(a.cfg.ThemeDir), defaults)
	if err != nil {
		return nil, fmt.Errorf("load themes %s: %w", a.cfg.ThemeDir, err)
	}
	return selector, nil
}
