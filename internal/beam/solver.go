package beam

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gosdm/internal/linsolve"
	"github.com/alexiusacademia/gosdm/internal/stiffness"
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

// Analyze solves a continuous beam. Validation failures are returned as
// *structure.ValidationError and unstable systems as
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
	logger = logger.With("analysisID", opts.AnalysisID, "solver", "beam")

	m, err := build(req)
	if err != nil {
		logger.Debug("request rejected", "error", err)
		return nil, err
	}

	res := &Result{AnalysisID: opts.AnalysisID}
	if m.combination != nil {
		res.Combination = m.combination.ID
	}
	st := &stepper{on: m.steps}

	// Fixed-end moments
	st.add("Calculate Fixed End Moments (FEMs) for each span", "", "")
	fem := make([][2]float64, len(m.spans))
	for i, s := range m.spans {
		fem[i][0], fem[i][1] = fixedEndMoments(s)
		st.add(fmt.Sprintf("Span %d: L = %g, EI = %.4g", i+1, s.length, s.e*s.i),
			fmt.Sprintf("FEM_left = %.4f, FEM_right = %.4f", fem[i][0], fem[i][1]), "")
	}

	// Assembly and solve
	st.add("Assemble joint equilibrium equations from the slope-deflection equations", "M_ab = (2EI/L)(2θa + θb) + FEM_ab", "")
	k, p := assemble(m, fem)
	free, fixed := linsolve.Partition(restrained(m))
	logger.Debug("assembled beam system", "joints", m.joints(), "free", len(free), "restrained", len(fixed))

	st.add("Apply boundary conditions (zero rotation at FIXED supports)", "", fmt.Sprintf("%d unknown rotation(s)", len(free)))
	kff, pf := linsolve.Reduce(k, p, free)
	uf, err := linsolve.Solve(kff, pf, linsolve.Options{MaxCondition: opts.MaxCondition})
	if err != nil {
		logger.Warn("beam system is singular", "error", err)
		return nil, fmt.Errorf("beam: %w", err)
	}
	theta := linsolve.Expand(m.joints(), free, uf)

	st.add("Solve system of equations for unknown rotations", "", "")
	for _, j := range free {
		st.add(fmt.Sprintf("Joint %d: θ = %.6e rad", j, theta[j]), "", "")
	}

	// Recovery
	st.add("Calculate final end moments using the slope-deflection equation", "", "")
	forces := make([]spanForces, len(m.spans))
	for i, s := range m.spans {
		f := recoverSpan(s, fem[i], theta[i], theta[i+1])
		forces[i] = f

		d := spanDiagrams(s, f, opts.Stations)
		res.Spans = append(res.Spans, SpanResult{
			Index:         i,
			ID:            s.id,
			Length:        s.length,
			FixedEndStart: fem[i][0],
			FixedEndEnd:   fem[i][1],
			MomentStart:   f.mab,
			MomentEnd:     f.mba,
			ShearStart:    f.ra,
			ShearEnd:      -f.rb,
			MaxMoment:     d.MaxMoment.Value,
			MaxMomentAt:   d.MaxMoment.X,
			Diagrams:      d,
		})

		near, far := stiffness.BeamCoefficients(s.e, s.i, s.length)
		st.add(fmt.Sprintf("Span %d analysis", i+1),
			fmt.Sprintf("M_AB = %.4g(%.6e) + %.4g(%.6e) + %.4f", near, theta[i], far, theta[i+1], fem[i][0]),
			fmt.Sprintf("M_AB = %.4f, M_BA = %.4f, R_left = %.4f, R_right = %.4f", f.mab, f.mba, f.ra, f.rb))
	}

	st.add("Calculate support reactions using equilibrium", "", "")
	fy, mr := reactions(m, forces)
	res.Rotations = theta
	res.Reactions = make([]float64, 2*m.joints())
	for j := range fy {
		jr := JointResult{Index: j, Support: m.supports[j], Rotation: theta[j], Reaction: fy[j]}
		res.Reactions[2*j] = fy[j]
		if m.supports[j] == Fixed {
			mj := mr[j]
			jr.MomentReaction = &mj
			res.Reactions[2*j+1] = mj
		}
		res.Joints = append(res.Joints, jr)
	}

	res.Equilibrium = equilibrium(m, fy, mr)
	limit := opts.EquilibriumTolerance * loadScale(m)
	if w, ok := toleranceWarning(res.Equilibrium, limit); ok {
		res.Warnings = append(res.Warnings, w)
		logger.Warn("equilibrium check failed", "residualForce", res.Equilibrium.Force, "residualMoment", res.Equilibrium.Moment)
	}

	res.Steps = st.steps
	logger.Debug("beam analysis complete", "spans", len(m.spans), "warnings", len(res.Warnings))
	return res, nil
}

// toleranceWarning reports a residual larger than limit.
func toleranceWarning(r Residual, limit float64) (structure.Warning, bool) {
	worst := math.Max(math.Abs(r.Force), math.Abs(r.Moment))
	if worst <= limit {
		return structure.Warning{}, false
	}
	return structure.Warning{
		Kind:     structure.NumericalTolerance,
		Message:  fmt.Sprintf("equilibrium residual exceeds %.3g (ΣFy = %.3e, ΣM = %.3e)", limit, r.Force, r.Moment),
		Residual: worst,
	}, true
}

// stepper numbers solution steps when enabled.
type stepper struct {
	on    bool
	steps []Step
}

func (s *stepper) add(description, equation, result string) {
	if !s.on {
		return
	}
	s.steps = append(s.steps, Step{
		Number:      len(s.steps) + 1,
		Description: description,
		Equation:    equation,
		Result:      result,
	})
}
