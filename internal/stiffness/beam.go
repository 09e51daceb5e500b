// Package stiffness builds member stiffness relations: the slope-deflection
// coefficients of a beam span and the 6×6 matrices of a planar frame member.
package stiffness

// BeamCoefficients returns the slope-deflection stiffness terms of a span:
// near = 4EI/L multiplies the rotation of the end being evaluated, far =
// 2EI/L the rotation of the opposite end.
func BeamCoefficients(e, i, length float64) (near, far float64) {
	return 4 * e * i / length, 2 * e * i / length
}
