package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-navgraph/pkg/logging"
	"github.com/dd0wney/cluso-navgraph/pkg/metrics"
	"github.com/dd0wney/cluso-navgraph/pkg/navgraph"
	"github.com/dd0wney/cluso-navgraph/pkg/validation"
)

// File is the on-disk configuration of a navgraph process
type File struct {
	Network navgraph.Config `yaml:"network"`
	Log     LogConfig       `yaml:"log"`
	Metrics MetricsConfig   `yaml:"metrics"`
}

// LogConfig selects the logger built by NewLogger
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// MetricsConfig controls the Prometheus registry
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when no file is given
func Default() File {
	return File{
		Network: navgraph.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: string(logging.FormatJSON),
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: metrics.DefaultNamespace,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path yields the defaults.
func Load(path string) (File, error) {
	if path == "" {
		cfg := Default()
		cfg.ApplyEnv(os.LookupEnv)
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, applies environment overrides and validates
func Parse(data []byte) (File, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Network = cfg.Network.WithDefaults()
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return File{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment
func (f *File) ApplyEnv(lookup func(string) (string, bool)) {
	if level, ok := lookup(logging.LevelEnv); ok && level != "" {
		f.Log.Level = strings.ToLower(level)
	}
}

// Validate checks every section
func (f File) Validate() error {
	return validation.NewConfigValidator("config").
		Struct(f.Log).
		Custom("network", f.Network.Validate).
		When(f.Metrics.Enabled, func(cv *validation.ConfigValidator) {
			cv.Custom("metrics.namespace", func() error {
				if f.Metrics.Namespace == "" {
					return fmt.Errorf("required when metrics are enabled")
				}
				return nil
			})
		}).
		Validate()
}

// Marshal encodes the configuration as YAML
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// NewLogger builds the configured logger writing to w
func (f File) NewLogger(w io.Writer) logging.Logger {
	return logging.New(w, logging.ParseLevel(f.Log.Level), logging.Format(f.Log.Format))
}

// NewRegistry returns a metrics registry, or nil when metrics are disabled
func (f File) NewRegistry() *metrics.Registry {
	if !f.Metrics.Enabled {
		return nil
	}
	return metrics.NewRegistryWithNamespace(f.Metrics.Namespace)
}

// NewNetwork builds a network from the configuration with logging and metrics wired in
func (f File) NewNetwork(logger logging.Logger, registry *metrics.Registry) (*navgraph.Network, error) {
	n, err := navgraph.NewNetworkWithConfig(f.Network)
	if err != nil {
		return nil, err
	}
	n.SetLogger(logger)
	if registry != nil {
		n.SetMetrics(registry)
	}
	return n, nil
}
