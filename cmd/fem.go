package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosdm/internal/beam"
	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	femLength      float64
	femType        string
	femPosition    float64
	femPeakAtStart bool

	// Load magnitudes per case
	femDead       float64
	femLive       float64
	femRoof       float64
	femWind       float64
	femEarthquake float64
	femRain       float64

	// Options
	femCombination string
	femShowAll     bool
)

var femCmd = &cobra.Command{
	Use:   "fem",
	Short: "Calculate fixed-end moments and reactions for a span load",
	Long: `Calculate the fixed-end moments (FEM) and reactions of a single
clamped-clamped span carrying one type of load.

Give the load magnitude per load case; without a combination the
cases are simply added. Moments are clockwise positive and loads
are positive downward.

Load Types:
  UDL              - Uniform load (force per length)
  POINT_CENTER     - Point load at midspan
  POINT_ARBITRARY  - Point load at --position from the left end
  TRIANGULAR       - Zero at the left end, peak at the right (--peak-at-start mirrors it)
  MOMENT           - Clockwise couple at --position

Examples:
  # Uniform dead and live load on a 6 m span
  gosdm fem --length 6 --dead 10 --live 5

  # Point load 2 m from the left, factored with combination 2
  gosdm fem -L 6 -t POINT_ARBITRARY -p 2 --dead 20 --live 10 -c 2

  # Show all NSCP combinations
  gosdm fem -L 6 --dead 10 --live 5 --wind 2 --all`,
	RunE: runFEM,
}

func init() {
	rootCmd.AddCommand(femCmd)

	// Span and load shape
	femCmd.Flags().Float64VarP(&femLength, "length", "L", 0, "Span length [required]")
	femCmd.Flags().StringVarP(&femType, "type", "t", string(load.KindUniform), "Load type")
	femCmd.Flags().Float64VarP(&femPosition, "position", "p", 0, "Load position from the left end (POINT_ARBITRARY, MOMENT)")
	femCmd.Flags().BoolVar(&femPeakAtStart, "peak-at-start", false, "Triangular load peaks at the left end")
	femCmd.MarkFlagRequired("length")

	// Load magnitude flags
	femCmd.Flags().Float64VarP(&femDead, "dead", "d", 0, "Dead load magnitude")
	femCmd.Flags().Float64VarP(&femLive, "live", "l", 0, "Live load magnitude")
	femCmd.Flags().Float64VarP(&femRoof, "roof", "r", 0, "Roof live load magnitude")
	femCmd.Flags().Float64VarP(&femWind, "wind", "w", 0, "Wind load magnitude")
	femCmd.Flags().Float64VarP(&femEarthquake, "earthquake", "e", 0, "Earthquake load magnitude")
	femCmd.Flags().Float64VarP(&femRain, "rain", "R", 0, "Rain load magnitude")

	// Options
	femCmd.Flags().StringVarP(&femCombination, "combination", "c", "", "NSCP load combination to apply")
	femCmd.Flags().BoolVarP(&femShowAll, "all", "a", false, "Show results for all NSCP load combinations")
}

func femSpecs() []beam.LoadSpec {
	kind := load.Kind(femType)
	var pos *float64
	if kind == load.KindPoint || kind == load.KindCouple {
		pos = &femPosition
	}

	var specs []beam.LoadSpec
	for _, c := range []struct {
		c nscp.Case
		v float64
	}{
		{nscp.Dead, femDead},
		{nscp.Live, femLive},
		{nscp.Roof, femRoof},
		{nscp.Wind, femWind},
		{nscp.Earthquake, femEarthquake},
		{nscp.Rain, femRain},
	} {
		if c.v == 0 {
			continue
		}
		specs = append(specs, beam.LoadSpec{
			Type:        kind,
			Magnitude:   c.v,
			Position:    pos,
			PeakAtStart: femPeakAtStart,
			Case:        string(c.c),
		})
	}
	return specs
}

func runFEM(cmd *cobra.Command, args []string) error {
	specs := femSpecs()
	if len(specs) == 0 {
		fmt.Println("Error: Please provide at least one load magnitude.")
		fmt.Println("Use 'gosdm fem --help' for usage information.")
		return nil
	}

	unfactored, err := beam.FixedEndEffects(femLength, "", specs...)
	if err != nil {
		return err
	}

	printTitle("FIXED-END MOMENTS AND REACTIONS")

	printSection("INPUT DATA")
	w := newTable()
	fmt.Fprintf(w, "  Span Length (L):\t%.3f\n", femLength)
	fmt.Fprintf(w, "  Load Type:\t%s\n", femType)
	if specs[0].Position != nil {
		fmt.Fprintf(w, "  Position (a):\t%.3f\n", femPosition)
	}
	for _, s := range specs {
		fmt.Fprintf(w, "  %s:\t%.3f\n", caseName(nscp.Case(s.Case)), s.Magnitude)
	}
	w.Flush()
	fmt.Println()

	printSection("UNFACTORED (all cases added)")
	printFixedEnd(unfactored)

	if femShowAll {
		printSection("LOAD COMBINATIONS (NSCP 2015 Section 203.3)")
		w = newTable()
		fmt.Fprintf(w, "  #\tCombination\tFEM left\tFEM right\tR left\tR right\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\t─────────\t──────\t───────\n")

		var governing string
		var worst float64
		results := make([]beam.FixedEnd, len(nscp.LoadCombinations))
		for i, lc := range nscp.LoadCombinations {
			fe, err := beam.FixedEndEffects(femLength, lc.ID, specs...)
			if err != nil {
				return err
			}
			results[i] = fe
			if m := math.Max(math.Abs(fe.MomentStart), math.Abs(fe.MomentEnd)); m > worst {
				worst, governing = m, lc.ID
			}
		}
		for i, lc := range nscp.LoadCombinations {
			fe := results[i]
			marker := ""
			if lc.ID == governing {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.4f\t%.4f\t%.4f\t%.4f%s\n", lc.ID, lc.Description,
				fe.MomentStart, fe.MomentEnd, fe.ReactionStart, fe.ReactionEnd, marker)
		}
		w.Flush()
		fmt.Println()
	}

	if femCombination != "" {
		fe, err := beam.FixedEndEffects(femLength, femCombination, specs...)
		if err != nil {
			return err
		}
		lc, _ := nscp.Lookup(femCombination)
		fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("COMBINATION %s: %s", lc.ID, lc.Description), []string{
			fmt.Sprintf("FEM left  = %.4f", fe.MomentStart),
			fmt.Sprintf("FEM right = %.4f", fe.MomentEnd),
			fmt.Sprintf("R left    = %.4f", fe.ReactionStart),
			fmt.Sprintf("R right   = %.4f", fe.ReactionEnd),
		}))
		fmt.Println()
	}
	return nil
}

func printFixedEnd(fe beam.FixedEnd) {
	w := newTable()
	fmt.Fprintf(w, "  FEM left (clockwise +):\t%.4f\n", fe.MomentStart)
	fmt.Fprintf(w, "  FEM right (clockwise +):\t%.4f\n", fe.MomentEnd)
	fmt.Fprintf(w, "  Reaction left (upward +):\t%.4f\n", fe.ReactionStart)
	fmt.Fprintf(w, "  Reaction right (upward +):\t%.4f\n", fe.ReactionEnd)
	w.Flush()
	fmt.Println()
}

func caseName(c nscp.Case) string {
	switch c {
	case nscp.Dead:
		return "Dead Load (D)"
	case nscp.Live:
		return "Live Load (L)"
	case nscp.Roof:
		return "Roof Live Load (Lr)"
	case nscp.Wind:
		return "Wind Load (W)"
	case nscp.Earthquake:
		return "Earthquake Load (E)"
	case nscp.Rain:
		return "Rain Load (R)"
	}
	return string(c)
}
