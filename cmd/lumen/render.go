package main

import (
	"fmt"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"

	"github.com/lumen-ui/lumen/internal/config"
	"github.com/lumen-ui/lumen/pkg/fixture"
	"github.com/lumen-ui/lumen/pkg/reconcile"
	"github.com/lumen-ui/lumen/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		configPath string
		out        string
		pretty     bool
		sanitize   bool
	)

	cmd := &cobra.Command{
		Use:   "render [fixture]",
		Short: "Render a fixture tree to markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			for _, w := range cfg.Warnings() {
				warn("%s", w)
			}

			fixturePath := cfg.Fixture
			if len(args) > 0 {
				fixturePath = args[0]
			}
			if cmd.Flags().Changed("out") {
				cfg.Out = out
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Pretty = pretty
			}
			if cmd.Flags().Changed("sanitize") {
				cfg.Sanitize = sanitize
			}

			doc, err := fixture.Load(fixturePath)
			if err != nil {
				return err
			}

			renderCfg := render.Config{
				Pretty: cfg.Pretty,
				Warn:   reconcile.SlogWarner{},
			}
			if cfg.Sanitize {
				renderCfg.Sanitizer = bluemonday.UGCPolicy()
			}

			html, err := render.NewRenderer(renderCfg).RenderToString(doc.VNode())
			if err != nil {
				return err
			}

			if cfg.Out == "" {
				fmt.Println(html)
				return nil
			}
			if err := os.WriteFile(cfg.Out, []byte(html), 0o644); err != nil {
				return err
			}
			success("rendered %s → %s (%d bytes)", fixturePath, cfg.Out, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "lumen.yaml", "config file path")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print markup")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "sanitize raw markup nodes")
	return cmd
}
