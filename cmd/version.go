package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosdm/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosdm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosdm v%s\n", version.Version)
		fmt.Println("Continuous Beam and Planar Frame Analysis Tool")
		fmt.Printf("Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
