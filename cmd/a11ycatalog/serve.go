package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-a11ycatalog/internal/server"
	"github.com/goliatone/go-a11ycatalog/pkg/orchestrator"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Long:  "Serve every screen as an HTML page whose controls work with or without script, plus semantics trees, runtime assets and Prometheus metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			orch, err := a.orchestrator(nil, orchestrator.WithNavigation(nil))
			if err != nil {
				return err
			}
			srv, err := server.New(orch,
				server.WithLogger(a.logger),
				server.WithMaxSessions(a.cfg.MaxSessions),
				server.WithDefaults(a.cfg.Renderer, a.cfg.Theme, a.cfg.Variant, a.cfg.Locale),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, a.cfg.Addr, a.cfg.ShutdownTimeout)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default from A11Y_ADDR)")
	return cmd
}
