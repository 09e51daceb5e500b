package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/frame"
	"github.com/spf13/cobra"
)

var (
	frameFile        string
	frameCombination string
	frameShowDiagram bool
	frameExportFile  string
	frameResultFile  string
	frameWatch       bool
)

var frameAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a planar frame defined in a JSON or YAML file",
	Long: `Solve a planar frame with the direct stiffness method.

The frame is defined in a JSON or YAML file with nodes, members and
loads. Node loads act in global axes at a node; member point loads and
uniform loads act in the member's local axes (x' from start to end node,
y' rotated 90° counter-clockwise).

Example YAML file structure:
  nodes:
    - {id: A, x: 0, y: 0, fixX: true, fixY: true, fixRotation: true}
    - {id: B, x: 0, y: 4}
    - {id: C, x: 6, y: 4}
    - {id: D, x: 6, y: 0, fixX: true, fixY: true}
  members:
    - {id: M1, startNodeId: A, endNodeId: B, elasticModulus: 200e6, momentOfInertia: 1e-4, crossSectionArea: 0.01}
    - {id: M2, startNodeId: B, endNodeId: C, elasticModulus: 200e6, momentOfInertia: 1e-4, crossSectionArea: 0.01}
    - {id: M3, startNodeId: C, endNodeId: D, elasticModulus: 200e6, momentOfInertia: 1e-4, crossSectionArea: 0.01, releaseEnd: true}
  pointLoads:
    - {type: NODE_LOAD, targetId: B, magnitudeX: 10}
  uniformLoads:
    - {memberId: M2, magnitudeY: -12, case: D}

Examples:
  gosdm frame analyze --file portal.yaml
  gosdm frame analyze -f portal.json --diagram -o plots/portal.png
  gosdm frame analyze -f portal.yaml --result portal-result.json --watch`,
	RunE: runFrameAnalyze,
}

func init() {
	frameCmd.AddCommand(frameAnalyzeCmd)

	frameAnalyzeCmd.Flags().StringVarP(&frameFile, "file", "f", "", "Path to frame JSON or YAML file [required]")
	frameAnalyzeCmd.MarkFlagRequired("file")
	frameAnalyzeCmd.Flags().StringVarP(&frameCombination, "combination", "c", "", "NSCP load combination to apply (overrides the file)")

	// Output options
	frameAnalyzeCmd.Flags().BoolVar(&frameShowDiagram, "diagram", false, "Show ASCII shear, moment and axial diagrams")
	frameAnalyzeCmd.Flags().StringVarP(&frameExportFile, "output", "o", "", "Export diagrams to file (png, svg, pdf)")
	frameAnalyzeCmd.Flags().StringVarP(&frameResultFile, "result", "r", "", "Write the full result to file (json, yaml)")
	frameAnalyzeCmd.Flags().BoolVarP(&frameWatch, "watch", "w", false, "Re-run the analysis whenever the file changes")
}

func runFrameAnalyze(cmd *cobra.Command, args []string) error {
	if frameWatch {
		return watchFile(cmd, frameFile, analyzeFrameFile)
	}
	return analyzeFrameFile()
}

func analyzeFrameFile() error {
	req, err := frame.LoadFromFile(frameFile)
	if err != nil {
		return err
	}
	if frameCombination != "" {
		req.Combination = frameCombination
	}

	result, err := frame.Analyze(req, frameOptions())
	if err != nil {
		return err
	}

	printFrameResult(req, result)

	if frameShowDiagram {
		for _, m := range result.Members {
			showDiagrams(m.ID, m.Diagrams)
		}
	}
	if frameExportFile != "" {
		for _, m := range result.Members {
			exportDiagrams(m.ID, m.Diagrams, frameExportFile, len(result.Members) > 1)
		}
	}
	writeResult(frameResultFile, result)
	return nil
}

func printFrameResult(req *frame.Request, result *frame.Result) {
	printTitle("PLANAR FRAME ANALYSIS - DIRECT STIFFNESS METHOD")

	fmt.Printf("  Analysis ID: %s\n", result.AnalysisID)
	if result.Combination != "" {
		fmt.Printf("  Load Combination: %s\n", result.Combination)
	}
	fmt.Printf("  Nodes: %d   Members: %d   Point loads: %d   Uniform loads: %d\n",
		len(req.Nodes), len(req.Members), len(req.PointLoads), len(req.UniformLoads))
	fmt.Println()

	// Geometry
	printSection("MEMBERS")
	w := newTable()
	fmt.Fprintf(w, "  Member\tStart\tEnd\tLength\tAngle (°)\tReleases\n")
	fmt.Fprintf(w, "  ──────\t─────\t───\t──────\t─────────\t────────\n")
	for i, m := range req.Members {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.3f\t%.2f\t%s\n", m.ID, m.StartNodeID, m.EndNodeID,
			result.Members[i].Length, result.Members[i].Angle, describeReleases(m))
	}
	w.Flush()
	fmt.Println()

	// Displacements
	printSection("NODAL DISPLACEMENTS")
	w = newTable()
	fmt.Fprintf(w, "  Node\tux\tuy\trz (rad)\n")
	fmt.Fprintf(w, "  ────\t──\t──\t────────\n")
	for _, n := range result.Nodes {
		fmt.Fprintf(w, "  %s\t%.6e\t%.6e\t%.6e\n", n.ID, n.UX, n.UY, n.RZ)
	}
	w.Flush()
	fmt.Println()

	// Reactions
	printSection("SUPPORT REACTIONS")
	w = newTable()
	fmt.Fprintf(w, "  Node\tRx\tRy\tMz\n")
	fmt.Fprintf(w, "  ────\t──\t──\t──\n")
	for i, n := range result.Nodes {
		node := req.Nodes[i]
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", n.ID,
			reactionCell(node.FixX, n.ReactionX),
			reactionCell(node.FixY, n.ReactionY),
			reactionCell(node.FixRotation, n.ReactionMoment))
	}
	w.Flush()
	fmt.Println()

	// Member forces
	printSection("MEMBER END FORCES (local axes)")
	w = newTable()
	fmt.Fprintf(w, "  Member\tN start\tV start\tM start\tN end\tV end\tM end\n")
	fmt.Fprintf(w, "  ──────\t───────\t───────\t───────\t─────\t─────\t─────\n")
	for _, m := range result.Members {
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			m.ID, m.AxialStart, m.ShearStart, m.MomentStart, m.AxialEnd, m.ShearEnd, m.MomentEnd)
	}
	w.Flush()
	fmt.Println()

	printSection("MAXIMUM BENDING MOMENTS")
	w = newTable()
	for _, m := range result.Members {
		fmt.Fprintf(w, "  %s:\t%.4f\tat x = %.3f\n", m.ID, m.MaxMoment, m.MaxMomentAt)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("EQUILIBRIUM CHECK", []string{
		fmt.Sprintf("ΣFx residual = %.3e", result.Equilibrium.Fx),
		fmt.Sprintf("ΣFy residual = %.3e", result.Equilibrium.Fy),
		fmt.Sprintf("ΣM residual  = %.3e", result.Equilibrium.Moment),
	}))
	fmt.Println()

	printWarnings(result.Warnings)
}

func reactionCell(restrained bool, v float64) string {
	if !restrained {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}

func describeReleases(m frame.Member) string {
	switch {
	case m.ReleaseStart && m.ReleaseEnd:
		return "both"
	case m.ReleaseStart:
		return "start"
	case m.ReleaseEnd:
		return "end"
	default:
		return "-"
	}
}
