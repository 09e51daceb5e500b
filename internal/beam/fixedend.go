package beam

import (
	"math"

	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/nscp"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

// FixedEnd holds the clamped-clamped end effects of one span in the beam
// convention: moments clockwise positive, reactions upward.
type FixedEnd struct {
	MomentStart   float64 `json:"momentStart" yaml:"momentStart"`
	MomentEnd     float64 `json:"momentEnd" yaml:"momentEnd"`
	ReactionStart float64 `json:"reactionStart" yaml:"reactionStart"`
	ReactionEnd   float64 `json:"reactionEnd" yaml:"reactionEnd"`
}

// FixedEndEffects computes the fixed-end effects of specs on a span of the
// given length. A non-empty combination factors loads that name a case.
func FixedEndEffects(length float64, combination string, specs ...LoadSpec) (FixedEnd, error) {
	if !(length > 0) || math.IsInf(length, 0) {
		return FixedEnd{}, structure.Invalid("span", "length", "must be positive and finite, got %g", length)
	}
	m := &model{}
	if combination != "" {
		lc, ok := nscp.Lookup(combination)
		if !ok {
			return FixedEnd{}, structure.Invalid("request", "combination", "unknown NSCP load combination %q", combination)
		}
		m.combination = &lc
	}

	s := span{name: "span", length: length}
	for k := range specs {
		l, err := m.convert(s, &specs[k])
		if err != nil {
			return FixedEnd{}, err
		}
		if l != nil {
			s.loads = append(s.loads, l)
		}
	}

	eff := load.FixedEnd(s.length, s.loads...)
	return FixedEnd{
		MomentStart:   -eff.MomentStart,
		MomentEnd:     -eff.MomentEnd,
		ReactionStart: eff.ShearStart,
		ReactionEnd:   eff.ShearEnd,
	}, nil
}
