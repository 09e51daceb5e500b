package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexiusacademia/gosdm/internal/watch"
	"github.com/spf13/cobra"
)

// watchFile runs analyze now and after every change to path until the
// command is interrupted. Analysis errors are printed, not returned.
func watchFile(cmd *cobra.Command, path string, analyze func() error) error {
	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", path)
	err := watch.Run(cmd.Context(), logger, path, func() error {
		if err := analyze(); err != nil {
			reportError(err)
		}
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
