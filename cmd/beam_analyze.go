package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosdm/internal/beam"
	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/spf13/cobra"
)

var (
	beamFile        string
	beamCombination string
	beamShowSteps   bool
	beamShowDiagram bool
	beamExportFile  string
	beamResultFile  string
	beamWatch       bool
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a continuous beam defined in a JSON or YAML file",
	Long: `Solve a continuous beam with the slope-deflection method.

The beam is defined in a JSON or YAML file with its spans (length,
E, I and loads) and one support per joint. Joints are numbered from
0 at the left end.

Load types:
  UDL              - Uniform load over the whole span
  POINT_CENTER     - Point load at midspan
  POINT_ARBITRARY  - Point load at loadPosition from the left end
  TRIANGULAR       - Zero at the left end, loadMagnitude at the right
                     (peakAtStart: true mirrors it)
  MOMENT           - Clockwise couple at loadPosition

Example JSON file structure:
{
  "spans": [
    {"length": 6, "elasticModulus": 200e6, "momentOfInertia": 1e-4,
     "loadType": "UDL", "loadMagnitude": 10},
    {"length": 6, "elasticModulus": 200e6, "momentOfInertia": 1e-4,
     "loads": [{"loadType": "POINT_ARBITRARY", "loadMagnitude": 20, "loadPosition": 2, "case": "L"}]}
  ],
  "supports": [
    {"jointIndex": 0, "supportType": "PINNED"},
    {"jointIndex": 1, "supportType": "ROLLER"},
    {"jointIndex": 2, "supportType": "ROLLER"}
  ],
  "combination": "2"
}

Examples:
  gosdm beam analyze --file beam.json
  gosdm beam analyze -f beam.yaml --diagram --steps
  gosdm beam analyze -f beam.json -o plots/beam.svg --result beam-result.yaml
  gosdm beam analyze -f beam.json --watch`,
	RunE: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	beamAnalyzeCmd.Flags().StringVarP(&beamFile, "file", "f", "", "Path to beam JSON or YAML file [required]")
	beamAnalyzeCmd.MarkFlagRequired("file")
	beamAnalyzeCmd.Flags().StringVarP(&beamCombination, "combination", "c", "", "NSCP load combination to apply (overrides the file)")

	// Output options
	beamAnalyzeCmd.Flags().BoolVar(&beamShowSteps, "steps", false, "Show the solution steps")
	beamAnalyzeCmd.Flags().BoolVar(&beamShowDiagram, "diagram", false, "Show ASCII shear and moment diagrams")
	beamAnalyzeCmd.Flags().StringVarP(&beamExportFile, "output", "o", "", "Export diagrams to file (png, svg, pdf)")
	beamAnalyzeCmd.Flags().StringVarP(&beamResultFile, "result", "r", "", "Write the full result to file (json, yaml)")
	beamAnalyzeCmd.Flags().BoolVarP(&beamWatch, "watch", "w", false, "Re-run the analysis whenever the file changes")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) error {
	if beamWatch {
		return watchFile(cmd, beamFile, analyzeBeamFile)
	}
	return analyzeBeamFile()
}

func analyzeBeamFile() error {
	req, err := beam.LoadFromFile(beamFile)
	if err != nil {
		return err
	}
	if beamCombination != "" {
		req.Combination = beamCombination
	}

	result, err := beam.Analyze(req, beamOptions())
	if err != nil {
		return err
	}

	printBeamResult(req, result)

	if beamShowDiagram {
		for _, s := range result.Spans {
			showDiagrams(beamSpanName(s), s.Diagrams)
		}
	}
	if beamExportFile != "" {
		for _, s := range result.Spans {
			exportDiagrams(beamSpanName(s), s.Diagrams, beamExportFile, len(result.Spans) > 1)
		}
	}
	writeResult(beamResultFile, result)
	return nil
}

func beamSpanName(s beam.SpanResult) string {
	if s.ID != "" {
		return s.ID
	}
	return fmt.Sprintf("Span %d", s.Index+1)
}

func printBeamResult(req *beam.Request, result *beam.Result) {
	printTitle("CONTINUOUS BEAM ANALYSIS - SLOPE-DEFLECTION METHOD")

	fmt.Printf("  Analysis ID: %s\n", result.AnalysisID)
	if result.Combination != "" {
		fmt.Printf("  Load Combination: %s\n", result.Combination)
	}
	fmt.Println()

	// Input summary
	printSection("INPUT DATA")
	w := newTable()
	fmt.Fprintf(w, "  Span\tLength\tE\tI\tLoads\n")
	fmt.Fprintf(w, "  ────\t──────\t─\t─\t─────\n")
	for i, s := range req.Spans {
		inertia := fmt.Sprintf("%.4g", s.MomentOfInertia)
		if s.MomentOfInertia == 0 && s.Section != nil {
			inertia = "from section"
		}
		fmt.Fprintf(w, "  %s\t%.3f\t%.4g\t%s\t%s\n", beamSpanName(result.Spans[i]), s.Length, s.ElasticModulus, inertia, describeBeamLoads(s))
	}
	w.Flush()
	fmt.Println()

	// Fixed-end moments
	printSection("FIXED-END MOMENTS (clockwise positive)")
	w = newTable()
	fmt.Fprintf(w, "  Span\tFEM left\tFEM right\n")
	fmt.Fprintf(w, "  ────\t────────\t─────────\n")
	for _, s := range result.Spans {
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\n", beamSpanName(s), s.FixedEndStart, s.FixedEndEnd)
	}
	w.Flush()
	fmt.Println()

	if beamShowSteps && len(result.Steps) > 0 {
		printSection("SOLUTION STEPS")
		for _, st := range result.Steps {
			fmt.Printf("  %2d. %s\n", st.Number, st.Description)
			if st.Equation != "" {
				fmt.Printf("      %s\n", st.Equation)
			}
			if st.Result != "" {
				fmt.Printf("      → %s\n", st.Result)
			}
		}
		fmt.Println()
	}

	// Joints
	printSection("JOINT ROTATIONS AND REACTIONS")
	w = newTable()
	fmt.Fprintf(w, "  Joint\tSupport\tθ (rad)\tRy\tM\n")
	fmt.Fprintf(w, "  ─────\t───────\t───────\t──\t─\n")
	for _, j := range result.Joints {
		moment := "-"
		if j.MomentReaction != nil {
			moment = fmt.Sprintf("%.4f", *j.MomentReaction)
		}
		fmt.Fprintf(w, "  %d\t%s\t%.6e\t%.4f\t%s\n", j.Index, j.Support, j.Rotation, j.Reaction, moment)
	}
	w.Flush()
	fmt.Println()

	// Spans
	printSection("MEMBER END FORCES")
	w = newTable()
	fmt.Fprintf(w, "  Span\tM left\tM right\tV left\tV right\tM max\tat x\n")
	fmt.Fprintf(w, "  ────\t──────\t───────\t──────\t───────\t─────\t────\n")
	for _, s := range result.Spans {
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.3f\n",
			beamSpanName(s), s.MomentStart, s.MomentEnd, s.ShearStart, s.ShearEnd, s.MaxMoment, s.MaxMomentAt)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("EQUILIBRIUM CHECK", []string{
		fmt.Sprintf("ΣFy residual = %.3e", result.Equilibrium.Force),
		fmt.Sprintf("ΣM residual  = %.3e", result.Equilibrium.Moment),
	}))
	fmt.Println()

	printWarnings(result.Warnings)
}

func describeBeamLoads(s beam.Span) string {
	var parts []string
	add := func(l beam.LoadSpec) {
		if l.Type == "" || l.Type == load.KindNone {
			return
		}
		desc := fmt.Sprintf("%s %.4g", l.Type, l.Magnitude)
		if l.Position != nil {
			desc += fmt.Sprintf(" @ %.3g", *l.Position)
		}
		if l.Case != "" {
			desc += " (" + l.Case + ")"
		}
		parts = append(parts, desc)
	}
	add(s.LoadSpec)
	for _, l := range s.Loads {
		add(l)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
