// Package publish uploads rendered markup to an object store so a
// rendered fixture set can be served as a static site.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/lumen-ui/lumen/internal/rerr"
)

// Uploader is the subset of the S3 client the publisher uses.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher writes rendered pages to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	p := publish.New(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	key, err := p.Page(ctx, "index", html)
type Publisher struct {
	client Uploader
	bucket string
	prefix string
	logger *slog.Logger
}

// New creates a publisher targeting the given bucket and key prefix.
func New(client Uploader, bucket, prefix string) *Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default().With("component", "publish"),
	}
}

// Page uploads one rendered page and returns its object key. The page
// name maps to "<prefix><name>.html".
func (p *Publisher) Page(ctx context.Context, name string, markup []byte) (string, error) {
	key := p.prefix + name + ".html"

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(markup),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"rendered-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", rerr.New("L300").Wrap(err).WithDetail(fmt.Sprintf("put s3://%s/%s", p.bucket, key))
	}

	p.logger.Info("published page", "bucket", p.bucket, "key", key, "bytes", len(markup))
	return key, nil
}

// Site uploads a set of rendered pages keyed by page name. The first
// failed upload aborts the publish.
func (p *Publisher) Site(ctx context.Context, pages map[string][]byte) error {
	for name, markup := range pages {
		if _, err := p.Page(ctx, name, markup); err != nil {
			return err
		}
	}
	return nil
}
