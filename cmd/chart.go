package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosolrad/internal/diagram"
)

var (
	// Chart options
	chartWidth  int
	chartLines  bool
	chartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw the monthly global radiation as an ASCII chart",
	Long: `Draw one bar per month, scaled so that the month with the highest
global radiation (G) spans the full chart width. With --lines, G, D and B
are also drawn as an overlaid terminal line chart.

Examples:
  gosolrad chart
  gosolrad chart --width 40 --lines`,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().IntVarP(&chartWidth, "width", "w", 0, "Bar length of the largest month (default 60)")
	chartCmd.Flags().BoolVarP(&chartLines, "lines", "l", false, "Also draw G, D and B as a line chart")
	chartCmd.Flags().IntVar(&chartHeight, "height", 15, "Line chart height in rows")
}

func runChart(cmd *cobra.Command, args []string) error {
	calc, err := loadCalculator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "ASCII RADIATION CHART")
	if err := printBarChart(out, calc, cfg.ChartWidth); err != nil {
		return err
	}

	if chartLines {
		printSection(out, "G, D AND B")
		fmt.Fprintln(out, diagram.DrawLineChart(calc, chartHeight))
		fmt.Fprintln(out)
	}
	return nil
}
