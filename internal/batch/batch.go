// Package batch solves many request files concurrently.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gosdm/internal/beam"
	"github.com/alexiusacademia/gosdm/internal/frame"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

// Kind tells which solver a request file is meant for.
type Kind string

const (
	Beam  Kind = "beam"
	Frame Kind = "frame"
)

// DefaultWorkers bounds concurrency when Options.Workers is not set.
const DefaultWorkers = 4

// Options configure a batch run. Beam and Frame are passed to every
// analysis; each file still gets its own analysis ID.
type Options struct {
	Workers int
	Beam    beam.Options
	Frame   frame.Options
	Logger  *slog.Logger
}

// Outcome is the result of one file. Exactly one of Beam, Frame or Err is set.
type Outcome struct {
	Path     string
	Kind     Kind
	Beam     *beam.Result
	Frame    *frame.Result
	Err      error
	Duration time.Duration
}

// Warnings returns the warnings of whichever result is present.
func (o Outcome) Warnings() []structure.Warning {
	switch {
	case o.Beam != nil:
		return o.Beam.Warnings
	case o.Frame != nil:
		return o.Frame.Warnings
	}
	return nil
}

// AnalysisID returns the ID of whichever result is present.
func (o Outcome) AnalysisID() string {
	switch {
	case o.Beam != nil:
		return o.Beam.AnalysisID
	case o.Frame != nil:
		return o.Frame.AnalysisID
	}
	return ""
}

// Detect reads path and reports whether it holds a beam request (has
// "spans") or a frame request (has "nodes").
func Detect(path string) (Kind, error) {
	var probe map[string]any
	if err := structure.DecodeFile(path, &probe); err != nil {
		return "", err
	}
	_, spans := probe["spans"]
	_, nodes := probe["nodes"]
	switch {
	case spans && !nodes:
		return Beam, nil
	case nodes && !spans:
		return Frame, nil
	default:
		return "", fmt.Errorf("%s: cannot tell beam from frame request (want either \"spans\" or \"nodes\")", path)
	}
}

// Run analyses every path with at most Workers files in flight. Failures of
// individual files are reported in their Outcome; the returned error is
// only set when ctx is cancelled, and files skipped because of it carry
// ctx.Err(). Outcomes keep the order of paths.
func Run(ctx context.Context, paths []string, opts Options) ([]Outcome, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	outcomes := make([]Outcome, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		outcomes[i].Path = path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				outcomes[i].Err = err
				return err
			}
			start := time.Now()
			outcomes[i] = analyze(path, opts, logger)
			outcomes[i].Duration = time.Since(start)
			if outcomes[i].Err != nil {
				logger.Warn("batch item failed", "path", path, "error", outcomes[i].Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

func analyze(path string, opts Options, logger *slog.Logger) Outcome {
	out := Outcome{Path: path}
	kind, err := Detect(path)
	if err != nil {
		out.Err = err
		return out
	}
	out.Kind = kind

	switch kind {
	case Beam:
		req, err := beam.LoadFromFile(path)
		if err != nil {
			out.Err = err
			return out
		}
		o := opts.Beam
		o.AnalysisID = ""
		if o.Logger == nil {
			o.Logger = logger
		}
		out.Beam, out.Err = beam.Analyze(req, o)
	case Frame:
		req, err := frame.LoadFromFile(path)
		if err != nil {
			out.Err = err
			return out
		}
		o := opts.Frame
		o.AnalysisID = ""
		if o.Logger == nil {
			o.Logger = logger
		}
		out.Frame, out.Err = frame.Analyze(req, o)
	}
	return out
}
