// Package load describes the loads a member can carry and computes their
// fixed-end effects.
//
// All values use the member-local convention: x' runs from the start joint
// to the end joint, y' is x' rotated 90° counter-clockwise. Transverse
// magnitudes are signed along +y', axial magnitudes along +x', and couples
// are counter-clockwise positive. Positions are measured from the start.
package load

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosdm/internal/structure"
)

// Kind names a load variant using the identifiers of the request format.
type Kind string

const (
	KindNone       Kind = "NONE"
	KindUniform    Kind = "UDL"
	KindMidspan    Kind = "POINT_CENTER"
	KindPoint      Kind = "POINT_ARBITRARY"
	KindTriangular Kind = "TRIANGULAR"
	KindCouple     Kind = "MOMENT"
)

// Load is one of None, Uniform, Midspan, Point, Triangular or Couple.
type Load interface {
	Kind() Kind
	isLoad()
}

// None carries nothing.
type None struct{}

// Uniform is a load of constant intensity over the whole member.
type Uniform struct {
	W     float64 // transverse force per unit length
	Axial float64 // axial force per unit length
}

// Midspan is a transverse point load at L/2.
type Midspan struct {
	P float64
}

// Point is a concentrated force at distance A from the start.
type Point struct {
	P     float64 // transverse
	Axial float64
	A     float64
}

// Triangular varies linearly from zero at one end to W at the other.
type Triangular struct {
	W           float64
	PeakAtStart bool
}

// Couple is a concentrated moment at distance A from the start.
type Couple struct {
	M float64
	A float64
}

func (None) Kind() Kind       { return KindNone }
func (Uniform) Kind() Kind    { return KindUniform }
func (Midspan) Kind() Kind    { return KindMidspan }
func (Point) Kind() Kind      { return KindPoint }
func (Triangular) Kind() Kind { return KindTriangular }
func (Couple) Kind() Kind     { return KindCouple }

func (None) isLoad()       {}
func (Uniform) isLoad()    {}
func (Midspan) isLoad()    {}
func (Point) isLoad()      {}
func (Triangular) isLoad() {}
func (Couple) isLoad()     {}

// Validate checks that every magnitude is finite and every position lies
// within [0, length]. Entity is used to label the error.
func Validate(entity string, l Load, length float64) error {
	var mags []float64
	pos := math.NaN()

	switch v := l.(type) {
	case None:
	case Uniform:
		mags = []float64{v.W, v.Axial}
	case Midspan:
		mags = []float64{v.P}
	case Point:
		mags = []float64{v.P, v.Axial}
		pos = v.A
	case Triangular:
		mags = []float64{v.W}
	case Couple:
		mags = []float64{v.M}
		pos = v.A
	default:
		return structure.Invalid(entity, "loadType", "unsupported load %T", l)
	}

	for _, m := range mags {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return structure.Invalid(entity, "magnitude", "must be finite, got %g", m)
		}
	}
	if l.Kind() == KindPoint || l.Kind() == KindCouple {
		if math.IsNaN(pos) || pos < 0 || pos > length {
			return structure.Invalid(entity, "position", "%g is outside the member length [0, %g]", pos, length)
		}
	}
	return nil
}

// Scale returns a copy of l with every magnitude multiplied by f.
func Scale(l Load, f float64) Load {
	switch v := l.(type) {
	case None:
		return v
	case Uniform:
		return Uniform{W: v.W * f, Axial: v.Axial * f}
	case Midspan:
		return Midspan{P: v.P * f}
	case Point:
		return Point{P: v.P * f, Axial: v.Axial * f, A: v.A}
	case Triangular:
		return Triangular{W: v.W * f, PeakAtStart: v.PeakAtStart}
	case Couple:
		return Couple{M: v.M * f, A: v.A}
	default:
		panic(fmt.Sprintf("load: unhandled load %T", l))
	}
}

// Negate flips the sign of every magnitude. The beam solver uses it to move
// between its gravity-positive inputs and the member-local convention.
func Negate(l Load) Load { return Scale(l, -1) }

// Position returns where a concentrated load acts, and false for
// distributed loads.
func Position(l Load, length float64) (float64, bool) {
	switch v := l.(type) {
	case Point:
		return v.A, true
	case Midspan:
		return length / 2, true
	case Couple:
		return v.A, true
	default:
		return 0, false
	}
}
