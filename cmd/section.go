package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Polygonal cross-section properties",
	Long: `Compute the geometric properties of cross-sections defined in
JSON or YAML files as a closed polygon of vertices.

This allows the use of complex shapes like T-beams, L-beams,
or any arbitrary polygonal section. Beam spans and frame members
may embed the same section definition instead of giving the moment
of inertia and area directly.

Subcommands:
  props  - Area, centroid, second moments of area and bounding box

Example JSON file structure:
{
  "name": "T-Beam Section",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": 0, "y": 500}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
