package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "gnuplot", cfg.Renderer)
	assert.Equal(t, "gnuplot", cfg.GnuplotPath)
	assert.Equal(t, 60, cfg.ChartWidth)
	assert.Empty(t, cfg.DatasetFile)
	assert.False(t, cfg.Debug)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosolrad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir: plots
renderer: native
chart_width: 40
dataset_file: site.yaml
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "plots", cfg.OutputDir)
	assert.Equal(t, "native", cfg.Renderer)
	assert.Equal(t, 40, cfg.ChartWidth)
	assert.Equal(t, "site.yaml", cfg.DatasetFile)
	// untouched keys keep their defaults
	assert.Equal(t, "gnuplot", cfg.GnuplotPath)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosolrad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: plots\nchart_width: 40\n"), 0o644))

	t.Setenv("GOSOLRAD_OUTPUT_DIR", "/tmp/elsewhere")
	t.Setenv("GOSOLRAD_CHART_WIDTH", "72")
	t.Setenv("GOSOLRAD_GNUPLOT_PATH", "/opt/gnuplot/bin/gnuplot")
	t.Setenv("GOSOLRAD_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere", cfg.OutputDir)
	assert.Equal(t, 72, cfg.ChartWidth)
	assert.Equal(t, "/opt/gnuplot/bin/gnuplot", cfg.GnuplotPath)
	assert.True(t, cfg.Debug)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart_width: [1"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv("GOSOLRAD_CHART_WIDTH", "wide")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv("GOSOLRAD_CHART_WIDTH", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ChartWidth)
	assert.Error(t, cfg.Validate())

	cfg.ChartWidth = 10
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.ChartWidth = 0
	cfg.Renderer = "excel"
	cfg.OutputDir = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chart_width must be positive")
	assert.Contains(t, err.Error(), "renderer must be")
	assert.Contains(t, err.Error(), "output_dir is required")
}
