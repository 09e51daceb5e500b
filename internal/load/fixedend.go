package load

import (
	"fmt"
	"math"
)

// Effects are the forces a pair of rigid clamps exert on a loaded member,
// in local axes with CCW moments positive.
type Effects struct {
	AxialStart  float64 `json:"axialStart" yaml:"axialStart"`
	ShearStart  float64 `json:"shearStart" yaml:"shearStart"`
	MomentStart float64 `json:"momentStart" yaml:"momentStart"`
	AxialEnd    float64 `json:"axialEnd" yaml:"axialEnd"`
	ShearEnd    float64 `json:"shearEnd" yaml:"shearEnd"`
	MomentEnd   float64 `json:"momentEnd" yaml:"momentEnd"`
}

// Add returns the sum of two effects.
func (e Effects) Add(o Effects) Effects {
	return Effects{
		AxialStart:  e.AxialStart + o.AxialStart,
		ShearStart:  e.ShearStart + o.ShearStart,
		MomentStart: e.MomentStart + o.MomentStart,
		AxialEnd:    e.AxialEnd + o.AxialEnd,
		ShearEnd:    e.ShearEnd + o.ShearEnd,
		MomentEnd:   e.MomentEnd + o.MomentEnd,
	}
}

// Vector returns the effects in element DOF order [N1 V1 M1 N2 V2 M2].
func (e Effects) Vector() []float64 {
	return []float64{e.AxialStart, e.ShearStart, e.MomentStart, e.AxialEnd, e.ShearEnd, e.MomentEnd}
}

// FixedEnd computes the clamped-clamped end forces of a member of the given
// length carrying loads. Loads must already be validated; a non-positive
// length is a programming error and panics.
func FixedEnd(length float64, loads ...Load) Effects {
	if !(length > 0) || math.IsInf(length, 0) {
		panic(fmt.Sprintf("load: fixed-end effects need a positive length, got %g", length))
	}
	var total Effects
	for _, l := range loads {
		total = total.Add(fixedEnd(length, l))
	}
	return total
}

func fixedEnd(L float64, l Load) Effects {
	var e Effects
	L2 := L * L

	switch v := l.(type) {
	case None:
		return e
	case Uniform:
		e.MomentStart = -v.W * L2 / 12
		e.MomentEnd = v.W * L2 / 12
		e.AxialStart = -v.Axial * L / 2
		e.AxialEnd = -v.Axial * L / 2
	case Midspan:
		return fixedEnd(L, Point{P: v.P, A: L / 2})
	case Point:
		a, b := v.A, L-v.A
		e.MomentStart = -v.P * a * b * b / L2
		e.MomentEnd = v.P * a * a * b / L2
		e.AxialStart = -v.Axial * b / L
		e.AxialEnd = -v.Axial * a / L
	case Triangular:
		// zero at the start, peak at the end; mirrored otherwise
		e.MomentStart = -v.W * L2 / 30
		e.MomentEnd = v.W * L2 / 20
		if v.PeakAtStart {
			e.MomentStart = -v.W * L2 / 20
			e.MomentEnd = v.W * L2 / 30
		}
	case Couple:
		a, b := v.A, L-v.A
		e.MomentStart = v.M * b * (2*a - b) / L2
		e.MomentEnd = v.M * a * (2*b - a) / L2
	default:
		panic(fmt.Sprintf("load: unhandled load %T", l))
	}

	// Moments about the start: V2·L + M1 + M2 + couple + F·x̄ = 0.
	r := Resultant(L, l)
	e.ShearEnd = -(e.MomentStart + e.MomentEnd + r.Couple + r.Force*r.Centroid) / L
	e.ShearStart = -r.Force - e.ShearEnd
	return e
}
