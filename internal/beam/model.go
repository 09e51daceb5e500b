package beam

import (
	"fmt"

	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/nscp"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

// model is a validated request with loads converted to the member-local
// convention of package load.
type model struct {
	spans        []span
	supports     []SupportType // one per joint
	jointMoments []float64     // clockwise, one per joint
	combination  *nscp.LoadCombination
	steps        bool
}

type span struct {
	id     string
	name   string
	x0     float64 // position of the start joint from joint 0
	length float64
	e, i   float64
	loads  []load.Load
}

func (m *model) joints() int { return len(m.spans) + 1 }

// build validates req and converts it. Every check runs before any matrix
// is allocated.
func build(req *Request) (*model, error) {
	if req == nil {
		return nil, &structure.ValidationError{Msg: "empty request"}
	}
	if err := structure.CheckTags(req); err != nil {
		return nil, err
	}

	m := &model{steps: req.IncludeSteps == nil || *req.IncludeSteps}

	if req.Combination != "" {
		lc, ok := nscp.Lookup(req.Combination)
		if !ok {
			return nil, structure.Invalid("request", "combination", "unknown NSCP load combination %q", req.Combination)
		}
		m.combination = &lc
	}

	var x float64
	for i := range req.Spans {
		s, err := m.buildSpan(i, &req.Spans[i])
		if err != nil {
			return nil, err
		}
		s.x0 = x
		x += s.length
		m.spans = append(m.spans, s)
	}

	n := m.joints()
	m.supports = make([]SupportType, n)
	for _, sup := range req.Supports {
		entity := fmt.Sprintf("support at joint %d", sup.JointIndex)
		if sup.JointIndex < 0 || sup.JointIndex >= n {
			return nil, structure.Invalid(entity, "jointIndex", "must be between 0 and %d", n-1)
		}
		if m.supports[sup.JointIndex] != "" {
			return nil, structure.Invalid(entity, "jointIndex", "is listed more than once")
		}
		m.supports[sup.JointIndex] = sup.SupportType
	}
	axial := false
	for j, st := range m.supports {
		if st == "" {
			return nil, structure.Invalid(fmt.Sprintf("joint %d", j), "supportType", "is missing; every joint 0..%d needs a support", n-1)
		}
		axial = axial || st != Roller
	}
	if !axial {
		return nil, structure.Invalid("supports", "supportType", "no PINNED or FIXED support restrains axial movement")
	}

	m.jointMoments = make([]float64, n)
	for _, jm := range req.JointMoments {
		if jm.JointIndex < 0 || jm.JointIndex >= n {
			return nil, structure.Invalid(fmt.Sprintf("joint moment at joint %d", jm.JointIndex), "jointIndex", "must be between 0 and %d", n-1)
		}
		m.jointMoments[jm.JointIndex] += jm.Moment
	}
	return m, nil
}

func (m *model) buildSpan(idx int, in *Span) (span, error) {
	s := span{
		id:     in.ID,
		name:   spanName(idx, in.ID),
		length: in.Length,
		e:      in.ElasticModulus,
		i:      in.MomentOfInertia,
	}

	if s.i == 0 {
		if in.Section == nil {
			return s, structure.Invalid(s.name, "momentOfInertia", "must be positive (or give a section)")
		}
		if err := in.Section.Validate(); err != nil {
			return s, fmt.Errorf("%s: %w", s.name, err)
		}
		s.i = in.Section.CalculateProperties().Ix
	}

	specs := in.Loads
	if in.Type != "" {
		specs = append([]LoadSpec{in.LoadSpec}, in.Loads...)
	}
	for k := range specs {
		l, err := m.convert(s, &specs[k])
		if err != nil {
			return s, err
		}
		if l != nil {
			s.loads = append(s.loads, l)
		}
	}
	return s, nil
}

// convert turns a request load into a member-local load, factored by the
// request's combination. It returns nil for NONE.
func (m *model) convert(s span, spec *LoadSpec) (load.Load, error) {
	mag := spec.Magnitude
	if spec.Case != "" {
		c, err := nscp.ParseCase(spec.Case)
		if err != nil {
			return nil, structure.Invalid(s.name, "case", "%v", err)
		}
		if m.combination != nil {
			mag *= m.combination.Factor(c)
		}
	}

	var l load.Load
	switch spec.Type {
	case load.KindNone:
		return nil, nil
	case load.KindUniform:
		l = load.Uniform{W: mag}
	case load.KindMidspan:
		l = load.Midspan{P: mag}
	case load.KindPoint:
		if spec.Position == nil {
			return nil, structure.Invalid(s.name, "loadPosition", "is required for %s", load.KindPoint)
		}
		l = load.Point{P: mag, A: *spec.Position}
	case load.KindTriangular:
		l = load.Triangular{W: mag, PeakAtStart: spec.PeakAtStart}
	case load.KindCouple:
		var a float64
		if spec.Position != nil {
			a = *spec.Position
		}
		l = load.Couple{M: mag, A: a}
	default:
		return nil, structure.Invalid(s.name, "loadType", "unknown load type %q", spec.Type)
	}

	if err := load.Validate(s.name, l, s.length); err != nil {
		return nil, err
	}
	// gravity-positive, clockwise-positive to member-local
	return load.Negate(l), nil
}

func spanName(idx int, id string) string {
	if id != "" {
		return fmt.Sprintf("span %d (%s)", idx+1, id)
	}
	return fmt.Sprintf("span %d", idx+1)
}
