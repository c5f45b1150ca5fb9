package main

import (
	"context"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"

	"github.com/lumen-ui/lumen/internal/config"
	"github.com/lumen-ui/lumen/internal/rerr"
	"github.com/lumen-ui/lumen/pkg/fixture"
	"github.com/lumen-ui/lumen/pkg/publish"
	"github.com/lumen-ui/lumen/pkg/render"
)

func publishCmd() *cobra.Command {
	var (
		configPath string
		bucket     string
		prefix     string
	)

	cmd := &cobra.Command{
		Use:   "publish [fixture...]",
		Short: "Render fixtures and upload the markup to S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("bucket") {
				cfg.Publish.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}
			if cfg.Publish.Bucket == "" {
				return rerr.Newf(rerr.CategoryPublish, "no bucket configured").
					WithSuggestion("set publish.bucket in lumen.yaml or pass --bucket")
			}

			fixtures := args
			if len(fixtures) == 0 {
				fixtures = []string{cfg.Fixture}
			}

			renderCfg := render.Config{Pretty: cfg.Pretty}
			if cfg.Sanitize {
				renderCfg.Sanitizer = bluemonday.UGCPolicy()
			}
			renderer := render.NewRenderer(renderCfg)

			pages := make(map[string][]byte, len(fixtures))
			for _, path := range fixtures {
				doc, err := fixture.Load(path)
				if err != nil {
					return err
				}
				html, err := renderer.RenderToString(doc.VNode())
				if err != nil {
					return err
				}
				pages[pageName(doc, path)] = []byte(html)
			}

			ctx := context.Background()
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Publish.Region))
			if err != nil {
				return rerr.New("L300").Wrap(err).WithSuggestion("check AWS credentials and region")
			}

			p := publish.New(s3.NewFromConfig(awsCfg), cfg.Publish.Bucket, cfg.Publish.Prefix)
			if err := p.Site(ctx, pages); err != nil {
				return err
			}

			success("published %d page(s) to s3://%s/%s", len(pages), cfg.Publish.Bucket, cfg.Publish.Prefix)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "lumen.yaml", "config file path")
	cmd.Flags().StringVar(&bucket, "bucket", "", "target S3 bucket (overrides config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix (overrides config)")
	return cmd
}

// pageName derives the published page name from the fixture's declared
// name or, failing that, its file name.
func pageName(doc *fixture.Document, path string) string {
	if doc.Name != "" {
		return doc.Name
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
