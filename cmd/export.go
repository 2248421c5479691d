package cmd

import (
	"github.com/spf13/cobra"
)

var rendererName string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write data files and gnuplot scripts, then render the charts",
	Long: `Write one two-column data file per series (data_G.txt, data_D.txt,
data_B.txt, data_R.txt, data_h.txt, data_N.txt, data_W.txt) and two gnuplot
scripts (plot_radiation.gnu, plot_variables.gnu) to the output directory,
then render radiation.png and variables.png.

Renderers:
  gnuplot  - run gnuplot on each script (default)
  native   - draw the charts with gonum/plot, gnuplot not required
  none     - only write data files and scripts

A rendering failure is reported as a warning; the data files and scripts
are still written.

Examples:
  gosolrad export --out plots
  gosolrad export --renderer native`,
	RunE: runExportCmd,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "Chart renderer: gnuplot, native or none")
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	calc, err := loadCalculator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "SOLAR RADIATION EXPORT")
	return runExport(cmd.Context(), out, calc)
}
