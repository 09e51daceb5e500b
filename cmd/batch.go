package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexiusacademia/gosdm/internal/batch"
	"github.com/spf13/cobra"
)

var batchResultDir string

var batchCmd = &cobra.Command{
	Use:   "batch [files or globs...]",
	Short: "Analyze many beam and frame files concurrently",
	Long: `Analyze every given request file, telling beams ("spans") from
frames ("nodes") by their content. Files are solved concurrently by
--workers analyses at a time; a failing file does not stop the others.

Examples:
  gosdm batch beams/*.json frames/*.yaml
  gosdm batch 'models/*.yaml' --workers 8 --result-dir results`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchResultDir, "result-dir", "", "Write each result as <name>-result.json into this directory")
}

func expandPaths(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	outcomes, err := batch.Run(cmd.Context(), paths, batch.Options{
		Workers: cfg.Workers,
		Beam:    beamOptions(),
		Frame:   frameOptions(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	printTitle("BATCH ANALYSIS")

	w := newTable()
	fmt.Fprintf(w, "  File\tKind\tStatus\tTime\tDetail\n")
	fmt.Fprintf(w, "  ────\t────\t──────\t────\t──────\n")
	failed := 0
	for _, o := range outcomes {
		status, detail := "✓", o.AnalysisID()
		switch {
		case o.Err != nil:
			failed++
			status, detail = "✗", o.Err.Error()
		case len(o.Warnings()) > 0:
			status, detail = "⚠", o.Warnings()[0].Message
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", o.Path, o.Kind, status, o.Duration.Round(time.Microsecond), detail)
	}
	w.Flush()
	fmt.Println()

	if batchResultDir != "" {
		for _, o := range outcomes {
			if o.Err != nil {
				continue
			}
			name := strings.TrimSuffix(filepath.Base(o.Path), filepath.Ext(o.Path)) + "-result.json"
			var v any = o.Beam
			if o.Frame != nil {
				v = o.Frame
			}
			writeResult(filepath.Join(batchResultDir, name), v)
		}
		fmt.Println()
	}

	fmt.Printf("  %d analysed, %d failed\n", len(outcomes)-failed, failed)
	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
	}
	return nil
}
