package frame

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gosdm/internal/linsolve"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

// DefaultEquilibriumTolerance is the relative residual above which a
// result carries a warning.
const DefaultEquilibriumTolerance = 1e-6

// Options tune an analysis. The zero value uses the package defaults.
type Options struct {
	Stations             int
	MaxCondition         float64
	EquilibriumTolerance float64
	Logger               *slog.Logger

	// AnalysisID labels the result and every log line; a random UUID is
	// used when empty.
	AnalysisID string
}

// Analyze solves a planar frame. Validation failures are returned as
// *structure.ValidationError and unstable structures as
// *linsolve.SingularSystemError; no partial result is returned with an error.
func Analyze(req *Request, opts Options) (*Result, error) {
	if opts.AnalysisID == "" {
		opts.AnalysisID = uuid.NewString()
	}
	if opts.EquilibriumTolerance <= 0 {
		opts.EquilibriumTolerance = DefaultEquilibriumTolerance
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("analysisID", opts.AnalysisID, "solver", "frame")

	m, err := build(req)
	if err != nil {
		logger.Debug("request rejected", "error", err)
		return nil, err
	}

	els := elements(m)
	k, p := assemble(m, els)
	logger.Debug("assembled frame system", "nodes", len(m.nodes), "members", len(m.members),
		"dofs", m.dofs.size, "free", len(m.dofs.free))

	kff, pf := linsolve.Reduce(k, p, m.dofs.free)
	uf, err := linsolve.Solve(kff, pf, linsolve.Options{MaxCondition: opts.MaxCondition})
	if err != nil {
		logger.Warn("frame system is singular", "error", err)
		return nil, fmt.Errorf("frame: %w", err)
	}
	u := linsolve.Expand(m.dofs.size, m.dofs.free, uf)

	res := &Result{
		AnalysisID:    opts.AnalysisID,
		Displacements: u,
		Reactions:     reactions(m.dofs, k, u, p),
	}
	if m.combination != nil {
		res.Combination = m.combination.ID
	}

	for n, node := range m.nodes {
		i := m.dofs.node(n, UX)
		res.Nodes = append(res.Nodes, NodeResult{
			ID:             node.ID,
			UX:             u[i],
			UY:             u[i+1],
			RZ:             u[i+2],
			ReactionX:      res.Reactions[i],
			ReactionY:      res.Reactions[i+1],
			ReactionMoment: res.Reactions[i+2],
		})
	}
	for e, mem := range m.members {
		res.Members = append(res.Members, memberResult(mem, els[e], m.dofs.gather(e, u), opts.Stations))
	}

	res.Equilibrium = equilibrium(m, res.Reactions)
	limit := opts.EquilibriumTolerance * loadScale(m)
	if w, ok := toleranceWarning(res.Equilibrium, limit); ok {
		res.Warnings = append(res.Warnings, w)
		logger.Warn("equilibrium check failed", "residual", w.Residual, "limit", limit)
	}

	logger.Debug("frame analysis complete", "warnings", len(res.Warnings))
	return res, nil
}

// toleranceWarning reports a residual larger than limit.
func toleranceWarning(r Residual, limit float64) (structure.Warning, bool) {
	worst := math.Max(math.Abs(r.Fx), math.Max(math.Abs(r.Fy), math.Abs(r.Moment)))
	if worst <= limit {
		return structure.Warning{}, false
	}
	msg := fmt.Sprintf("equilibrium residual exceeds %.3g (ΣFx = %.3e, ΣFy = %.3e, ΣM = %.3e)",
		limit, r.Fx, r.Fy, r.Moment)
	return structure.Warning{Kind: structure.NumericalTolerance, Message: msg, Residual: worst}, true
}
