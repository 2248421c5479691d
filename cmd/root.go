package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosolrad/internal/config"
	"github.com/alexiusacademia/gosolrad/internal/dataset"
	"github.com/alexiusacademia/gosolrad/internal/log"
	"github.com/alexiusacademia/gosolrad/internal/radiation"
	"github.com/alexiusacademia/gosolrad/internal/version"
)

var (
	// Global options
	configFile  string
	datasetFile string
	outputDir   string
	debug       bool

	// Resolved in PersistentPreRunE
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gosolrad",
	Short: "Monthly solar radiation calculator",
	Long: `gosolrad - Go Solar Radiation Calculator

Estimates the monthly global (G), diffuse (D) and direct-beam (B = G - D)
solar radiation of a site from extraterrestrial radiation (G0), bright
sunshine hours (h), maximum sunshine duration (N) and absolute humidity (W):

  G = G0 * (0.394 + 0.364 * h/N² * 0.0035 * W)
  D = G0 * (0.306 - 0.165 * h/N² + 0.0025 * W)

Running gosolrad without a subcommand prints the monthly table and the
radiation bar chart, then writes data files and gnuplot scripts and renders
the charts.

Examples:
  # Built-in reference dataset, output in the current directory
  gosolrad

  # Own site data, charts drawn without gnuplot
  gosolrad --dataset site.yaml --out plots export --renderer native`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
	RunE: runAll,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&datasetFile, "dataset", "d", "", "YAML dataset file (default: built-in reference dataset)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out", "o", "", "Output directory for data files, scripts and images")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.Flags().IntVarP(&chartWidth, "width", "w", 0, "Bar length of the largest month (default 60)")
	rootCmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "Chart renderer: gnuplot, native or none")
}

// setup resolves the configuration: defaults, config file, environment, then flags
func setup(cmd *cobra.Command) error {
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		c.DatasetFile = datasetFile
	}
	if flags.Changed("out") {
		c.OutputDir = outputDir
	}
	if flags.Changed("debug") {
		c.Debug = debug
	}
	if flags.Changed("width") {
		c.ChartWidth = chartWidth
	}
	if flags.Changed("renderer") {
		c.Renderer = rendererName
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := log.Init(c.Debug); err != nil {
		return err
	}
	log.Debugw("configuration resolved",
		"version", version.Version,
		"output_dir", c.OutputDir,
		"dataset", c.DatasetFile,
		"renderer", c.Renderer,
	)

	cfg = c
	return nil
}

// loadCalculator builds the calculator for the configured dataset
func loadCalculator() (*radiation.Calculator, error) {
	ds, err := dataset.Load(cfg.DatasetFile)
	if err != nil {
		return nil, err
	}

	calc, err := radiation.New(ds)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", ds.Name, err)
	}
	log.Debugf("derived radiation for %q", calc.Name())
	return calc, nil
}

func runAll(cmd *cobra.Command, args []string) error {
	calc, err := loadCalculator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "SOLAR RADIATION ANALYSIS")
	printReport(out, calc)
	if err := printBarChart(out, calc, cfg.ChartWidth); err != nil {
		return err
	}
	if err := runExport(cmd.Context(), out, calc); err != nil {
		return err
	}

	printBox(out, []string{"Analysis complete. Check " + cfg.OutputDir + " for the generated files."})
	return nil
}
