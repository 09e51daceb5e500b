package beam

import (
	"math"

	"github.com/alexiusacademia/gosdm/internal/diagram"
	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/stiffness"
)

// spanForces are the recovered end actions of one span. Ra and Rb are the
// upward forces the supports exert on the span ends.
type spanForces struct {
	mab, mba float64
	ra, rb   float64
}

// recoverSpan substitutes the joint rotations into the slope-deflection
// equations and takes statics on the span free body for the end shears.
func recoverSpan(s span, fem [2]float64, thetaA, thetaB float64) spanForces {
	near, far := stiffness.BeamCoefficients(s.e, s.i, s.length)
	f := spanForces{
		mab: near*thetaA + far*thetaB + fem[0],
		mba: far*thetaA + near*thetaB + fem[1],
	}

	// moments about the end joint, counter-clockwise positive; clockwise end
	// moments enter negated
	t := load.Total(s.length, s.loads...)
	f.ra = (-t.Force*(s.length-t.Centroid) + t.Couple - f.mab - f.mba) / s.length
	f.rb = -t.Force - f.ra
	return f
}

// spanDiagrams converts the clockwise end moments to sagging values.
func spanDiagrams(s span, f spanForces, stations int) diagram.Diagrams {
	return diagram.Generate(s.length, s.loads, diagram.Ends{
		MomentStart: f.mab,
		MomentEnd:   -f.mba,
	}, diagram.Options{Stations: stations})
}

// reactions stitches span end forces into joint reactions. The moment
// reaction at a FIXED joint balances the end moments of the adjoining spans
// and any applied joint moment.
func reactions(m *model, forces []spanForces) (fy, mr []float64) {
	n := m.joints()
	fy = make([]float64, n)
	mr = make([]float64, n)

	for i, f := range forces {
		fy[i] += f.ra
		fy[i+1] += f.rb
		if m.supports[i] == Fixed {
			mr[i] += f.mab
		}
		if m.supports[i+1] == Fixed {
			mr[i+1] += f.mba
		}
	}
	for j := range mr {
		if m.supports[j] == Fixed {
			mr[j] -= m.jointMoments[j]
		}
	}
	return fy, mr
}

// equilibrium sums loads and reactions over the whole beam. The moment is
// taken about joint 0, counter-clockwise positive.
func equilibrium(m *model, fy, mr []float64) Residual {
	var r Residual
	x := 0.0
	for j := range fy {
		if j > 0 {
			x += m.spans[j-1].length
		}
		r.Force += fy[j]
		r.Moment += fy[j]*x - mr[j] - m.jointMoments[j]
	}
	for _, s := range m.spans {
		t := load.Total(s.length, s.loads...)
		r.Force += t.Force
		r.Moment += t.Force*(s.x0+t.Centroid) + t.Couple
	}
	return r
}

// loadScale is the magnitude the equilibrium tolerance is measured against.
func loadScale(m *model) float64 {
	scale := 1.0
	for _, s := range m.spans {
		for _, l := range s.loads {
			r := load.Resultant(s.length, l)
			scale = math.Max(scale, math.Abs(r.Force)*math.Max(1, s.x0+s.length)+math.Abs(r.Couple))
		}
	}
	for _, mo := range m.jointMoments {
		scale = math.Max(scale, math.Abs(mo))
	}
	return scale
}
