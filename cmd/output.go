package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosdm/internal/beam"
	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/frame"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

func beamOptions() beam.Options {
	return beam.Options{
		Stations:             cfg.Stations,
		MaxCondition:         cfg.Tolerance.Condition,
		EquilibriumTolerance: cfg.Tolerance.Equilibrium,
		Logger:               logger,
	}
}

func frameOptions() frame.Options {
	return frame.Options{
		Stations:             cfg.Stations,
		MaxCondition:         cfg.Tolerance.Condition,
		EquilibriumTolerance: cfg.Tolerance.Equilibrium,
		Logger:               logger,
	}
}

func printTitle(title string) {
	fmt.Println()
	fmt.Println(heavyRule)
	fmt.Printf("     %s\n", title)
	fmt.Println(heavyRule)
	fmt.Println()
}

func printSection(title string) {
	fmt.Printf("%s:\n", title)
	fmt.Println(lightRule)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func printWarnings(warnings []structure.Warning) {
	if len(warnings) == 0 {
		return
	}
	printSection("WARNINGS")
	for _, w := range warnings {
		fmt.Printf("  ⚠ %s\n", w)
	}
	fmt.Println()
}

// showDiagrams prints the terminal plots for one member.
func showDiagrams(name string, d diagram.Diagrams) {
	opts := diagram.PlotOptions{}
	fmt.Println(diagram.ASCIIShear(d, name, opts))
	fmt.Println(diagram.ASCIIMoment(d, name, opts))
	if d.HasAxial() {
		fmt.Println(diagram.ASCIIAxial(d, name, opts))
	}
}

// exportDiagrams writes the image plots for one member. When the structure
// has several members the member name is added to the file name.
func exportDiagrams(name string, d diagram.Diagrams, output string, several bool) {
	if several {
		ext := filepath.Ext(output)
		output = strings.TrimSuffix(output, ext) + "-" + fileSafe(name) + ext
	}
	files, err := diagram.Export(d, name, output)
	if err != nil {
		fmt.Printf("Error exporting diagrams: %v\n", err)
		return
	}
	for _, f := range files {
		fmt.Printf("Diagram exported to: %s\n", f)
	}
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, s)
}

// writeResult saves the full result as JSON or YAML, chosen by extension.
func writeResult(path string, v any) {
	if path == "" {
		return
	}
	if err := structure.EncodeFile(path, v); err != nil {
		fmt.Printf("Error writing result: %v\n", err)
		return
	}
	fmt.Printf("Result written to: %s\n", path)
}
