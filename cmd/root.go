package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexiusacademia/gosdm/internal/config"
	"github.com/alexiusacademia/gosdm/internal/linsolve"
	"github.com/alexiusacademia/gosdm/internal/logging"
	"github.com/alexiusacademia/gosdm/internal/structure"
	"github.com/alexiusacademia/gosdm/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile string

	// Resolved in PersistentPreRunE and shared by every subcommand.
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gosdm",
	Short: "Continuous beam and planar frame analysis tool",
	Long: `gosdm - Go Slope-Deflection & Matrix analysis

A CLI tool for the linear static analysis of continuous beams
(slope-deflection method) and planar frames (direct stiffness method).

This tool helps structural engineers compute:
  - Fixed-end moments for common member loads
  - Joint rotations, member end moments and support reactions
  - Nodal displacements and member end forces of planar frames
  - Shear, bending moment and axial force diagrams
  - Section properties of polygonal cross-sections

Loads may be grouped into cases (D, L, Lr, W, E, R) and factored
with NSCP 2015 (Volume 1) strength load combinations.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cmd.Root().PersistentFlags(), configFile)
		if err != nil {
			return err
		}
		l, err := logging.New(os.Stderr, c.Log.Level, c.Log.Format)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosdm v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Slope-Deflection & Matrix Structural Analysis        ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the analysis of continuous beams and")
		fmt.Println("  planar frames under static loads.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Continuous beams by the slope-deflection method")
		fmt.Println("    • Planar frames by the direct stiffness method")
		fmt.Println("    • Member end releases (hinges)")
		fmt.Println("    • Shear, moment and axial diagrams (terminal, PNG, SVG, PDF)")
		fmt.Println("    • NSCP 2015 load combinations")
		fmt.Println("    • Batch and watch modes")
		fmt.Println()
		fmt.Println("  Use 'gosdm --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Configuration file
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default ./"+config.DefaultFile+" if present)")

	// Solver settings, also settable in the config file or as GOSDM_* variables
	rootCmd.PersistentFlags().Int("stations", 51, "Number of evenly spaced diagram stations per member")
	rootCmd.PersistentFlags().Int("workers", 4, "Number of files analysed concurrently by batch")
	rootCmd.PersistentFlags().Float64("max-condition", linsolve.DefaultMaxCondition, "Largest accepted condition number of the reduced stiffness matrix")
	rootCmd.PersistentFlags().Float64("equilibrium-tol", 1e-6, "Relative equilibrium residual above which a warning is raised")

	// Logging
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json, compact)")
}

// reportError prints err with a hint matching its kind.
func reportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var singular *linsolve.SingularSystemError
	switch {
	case structure.IsValidation(err):
		fmt.Fprintln(os.Stderr, "Please check your inputs.")
	case errors.As(err, &singular):
		fmt.Fprintln(os.Stderr, "The structure is unstable. Please check your supports and member releases.")
	}
}
