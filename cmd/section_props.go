package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile       string
	sectionDepths     []float64
	sectionResultFile string
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Calculate properties of a polygonal section",
	Long: `Calculate the area, centroid and centroidal second moments of
area of a section defined in a JSON or YAML file.

Ix is taken about the horizontal centroidal axis and is the value used
for bending of beam spans and frame members.

Examples:
  gosdm section props --file t-beam.json
  gosdm section props -f t-beam.yaml --depth 50,100,450`,
	RunE: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section JSON or YAML file [required]")
	sectionPropsCmd.MarkFlagRequired("file")
	sectionPropsCmd.Flags().Float64SliceVar(&sectionDepths, "depth", nil, "Report the section width at these depths from the top")
	sectionPropsCmd.Flags().StringVarP(&sectionResultFile, "result", "r", "", "Write the properties to file (json, yaml)")
}

func runSectionProps(cmd *cobra.Command, args []string) error {
	sec, err := section.LoadFromFile(sectionFile)
	if err != nil {
		return err
	}
	props := sec.CalculateProperties()

	printTitle("SECTION PROPERTIES")

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	printSection("SECTION GEOMETRY")
	w := newTable()
	fmt.Fprintf(w, "  Width (max):\t%.4g\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.4g\n", props.Height)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	fmt.Fprintf(w, "  Bounding box:\tx %.4g … %.4g, y %.4g … %.4g\n", props.MinX, props.MaxX, props.MinY, props.MaxY)
	w.Flush()
	fmt.Println()

	printSection("AREA PROPERTIES")
	w = newTable()
	fmt.Fprintf(w, "  Area (A):\t%.6g\n", props.Area)
	fmt.Fprintf(w, "  Centroid (x̄, ȳ):\t(%.6g, %.6g)\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Distance to top fibre:\t%.6g\n", props.MaxY-props.CentroidY)
	fmt.Fprintf(w, "  Distance to bottom fibre:\t%.6g\n", props.CentroidY-props.MinY)
	w.Flush()
	fmt.Println()

	if len(sectionDepths) > 0 {
		printSection("WIDTH AT DEPTH")
		w = newTable()
		fmt.Fprintf(w, "  Depth\tWidth\n")
		fmt.Fprintf(w, "  ─────\t─────\n")
		for _, d := range sectionDepths {
			fmt.Fprintf(w, "  %.4g\t%.4g\n", d, sec.WidthAtDepth(d))
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Print(diagram.DrawSummaryBox("SECOND MOMENTS OF AREA (centroidal)", []string{
		fmt.Sprintf("Ix = %.6g", props.Ix),
		fmt.Sprintf("Iy = %.6g", props.Iy),
	}))
	fmt.Println()

	writeResult(sectionResultFile, props)
	return nil
}
