package cmd

import (
	"github.com/spf13/cobra"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Planar frame analysis by the direct stiffness method",
	Long: `Analyze planar frames built from prismatic members joined at
nodes. Each node has three degrees of freedom (ux, uy, rz) that may be
restrained individually, and each member end may be released (hinged).

Subcommands:
  analyze  - Solve nodal displacements, member end forces and reactions

Sign convention: global x to the right, y up, rotations and moments
counter-clockwise positive.`,
}

func init() {
	rootCmd.AddCommand(frameCmd)
}
