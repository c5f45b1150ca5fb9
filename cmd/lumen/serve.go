package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"

	"github.com/lumen-ui/lumen/internal/config"
	"github.com/lumen-ui/lumen/pkg/dom"
	"github.com/lumen-ui/lumen/pkg/fixture"
	"github.com/lumen-ui/lumen/pkg/render"
	"github.com/lumen-ui/lumen/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		address    string
	)

	cmd := &cobra.Command{
		Use:   "serve [fixture]",
		Short: "Serve a live preview of a fixture tree",
		Long: `Serve renders the fixture on every request and pushes attribute
patches over /ws whenever /reload is hit, so an open preview never
shows a stale attribute.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			fixturePath := cfg.Fixture
			if len(args) > 0 {
				fixturePath = args[0]
			}
			if cmd.Flags().Changed("address") {
				cfg.Server.Address = address
			}

			provider := func() (*dom.VNode, error) {
				doc, err := fixture.Load(fixturePath)
				if err != nil {
					return nil, err
				}
				return doc.VNode(), nil
			}

			renderCfg := render.Config{Pretty: cfg.Pretty}
			if cfg.Sanitize {
				renderCfg.Sanitizer = bluemonday.UGCPolicy()
			}

			srv := server.New(server.Config{
				Address:          cfg.Server.Address,
				MetricsNamespace: cfg.Server.MetricsNamespace,
				ShutdownTimeout:  cfg.Server.ShutdownTimeout,
				Render:           renderCfg,
			}, provider)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			success("serving %s on %s", fixturePath, cfg.Server.Address)
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "lumen.yaml", "config file path")
	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address (overrides config)")
	return cmd
}
