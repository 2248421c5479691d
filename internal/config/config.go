// Package config loads run settings from an optional YAML file followed by
// GOSOLRAD_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "GOSOLRAD"

type Config struct {
	// Directory receiving data files, plot scripts and images
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`

	// YAML dataset; the built-in reference dataset is used when empty
	DatasetFile string `yaml:"dataset_file" envconfig:"DATASET_FILE"`

	// gnuplot, native or none
	Renderer    string `yaml:"renderer" envconfig:"RENDERER"`
	GnuplotPath string `yaml:"gnuplot_path" envconfig:"GNUPLOT_PATH"`

	ChartWidth int  `yaml:"chart_width" envconfig:"CHART_WIDTH"`
	Debug      bool `yaml:"debug" envconfig:"DEBUG"`
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	return &Config{
		OutputDir:   ".",
		Renderer:    "gnuplot",
		GnuplotPath: "gnuplot",
		ChartWidth:  60,
	}
}

// Load applies the YAML file at path (if any) and then the environment on
// top of the defaults. The result is not validated; callers apply their own
// overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings for values no command can work with
func (c *Config) Validate() error {
	var errs []error
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is required"))
	}
	if c.ChartWidth <= 0 {
		errs = append(errs, fmt.Errorf("chart_width must be positive, got %d", c.ChartWidth))
	}
	switch c.Renderer {
	case "gnuplot", "native", "none":
	default:
		errs = append(errs, fmt.Errorf("renderer must be gnuplot, native or none, got %q", c.Renderer))
	}
	return errors.Join(errs...)
}
