package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosolrad/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosolrad",
	// version needs no configuration, so a bad setting must not stop it
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gosolrad v%s\n", version.Version)
		fmt.Fprintln(out, "Monthly Solar Radiation Calculator")
		fmt.Fprintf(out, "Built %s from %s\n", version.BuildTime, version.GitCommit)
		fmt.Fprintf(out, "Copyright © %s %s\n", version.Year, version.Author)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
