package beam

import (
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gosdm/internal/load"
	"github.com/alexiusacademia/gosdm/internal/stiffness"
)

// fixedEndMoments returns the clamped end moments of s, clockwise positive.
func fixedEndMoments(s span) (start, end float64) {
	eff := load.FixedEnd(s.length, s.loads...)
	return -eff.MomentStart, -eff.MomentEnd
}

// assemble writes joint equilibrium ΣM_jk = M_ext at every joint using the
// slope-deflection equation M_ab = (2EI/L)(2θa + θb) + FEM_ab. Unknowns are
// the joint rotations, one per joint.
func assemble(m *model, fem [][2]float64) (*mat.Dense, []float64) {
	n := m.joints()
	k := mat.NewDense(n, n, nil)
	p := make([]float64, n)

	for i, s := range m.spans {
		near, far := stiffness.BeamCoefficients(s.e, s.i, s.length)
		a, b := i, i+1

		k.Set(a, a, k.At(a, a)+near)
		k.Set(a, b, k.At(a, b)+far)
		k.Set(b, a, k.At(b, a)+far)
		k.Set(b, b, k.At(b, b)+near)

		p[a] -= fem[i][0]
		p[b] -= fem[i][1]
	}
	for j, mo := range m.jointMoments {
		p[j] += mo
	}
	return k, p
}

// restrained marks the joints whose rotation is held at zero.
func restrained(m *model) []bool {
	r := make([]bool, m.joints())
	for j, st := range m.supports {
		r[j] = st == Fixed
	}
	return r
}
