package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Continuous beam analysis by the slope-deflection method",
	Long: `Analyze continuous beams of one or more spans resting on
FIXED, PINNED or ROLLER supports.

Subcommands:
  analyze  - Solve joint rotations, end moments, shears and reactions

Sign convention: loads are positive downward, moments and rotations
are positive clockwise, reactions are positive upward.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
