// Package config loads the lumen.yaml project file used by the CLI and
// the preview server.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lumen-ui/lumen/internal/rerr"
)

// Config is the project configuration.
type Config struct {
	// Fixture is the path of the tree to render.
	Fixture string `yaml:"fixture"`

	// Out is the output path for rendered markup ("" means stdout).
	Out string `yaml:"out"`

	// Pretty enables pretty-printed markup.
	Pretty bool `yaml:"pretty"`

	// Sanitize runs raw markup through the UGC sanitizer.
	Sanitize bool `yaml:"sanitize"`

	Server  ServerConfig  `yaml:"server"`
	Publish PublishConfig `yaml:"publish"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	// Address is the listen address (default ":8380").
	Address string `yaml:"address"`

	// MetricsNamespace is the Prometheus namespace (default "lumen").
	MetricsNamespace string `yaml:"metrics_namespace"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PublishConfig configures S3 publishing.
type PublishConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Fixture: "fixture.yaml",
		Server: ServerConfig{
			Address:          ":8380",
			MetricsNamespace: "lumen",
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// Load reads the config file at path, filling defaults for unset fields.
// A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, rerr.New("L200").Wrap(err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, rerr.New("L200").Wrap(err).WithSuggestion(fmt.Sprintf("check the YAML syntax in %s", path))
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Fixture == "" {
		c.Fixture = d.Fixture
	}
	if c.Server.Address == "" {
		c.Server.Address = d.Server.Address
	}
	if c.Server.MetricsNamespace == "" {
		c.Server.MetricsNamespace = d.Server.MetricsNamespace
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
}

// Validate checks config values that have allowed ranges.
func (c *Config) Validate() error {
	if c.Server.ShutdownTimeout < 0 {
		return rerr.New("L201").WithDetail("server.shutdown_timeout must not be negative")
	}
	if c.Publish.Bucket == "" && c.Publish.Prefix != "" {
		return rerr.New("L201").WithDetail("publish.prefix is set but publish.bucket is empty").
			WithSuggestion("set publish.bucket to the target S3 bucket")
	}
	return nil
}

// Warnings returns non-fatal config observations.
func (c *Config) Warnings() []string {
	var out []string
	if c.Pretty {
		out = append(out, "pretty output increases markup size; intended for development")
	}
	return out
}
