package cmd

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the monthly radiation table",
	Long: `Print the monthly inputs (G0, h, N, W, R) together with the derived
global (G), diffuse (D) and direct-beam (B) radiation, followed by annual
statistics of G, D and B.

Examples:
  gosolrad report
  gosolrad report --dataset site.yaml`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	calc, err := loadCalculator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "SOLAR RADIATION REPORT")
	printReport(out, calc)
	return nil
}
