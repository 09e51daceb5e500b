package stiffness

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Local DOF order of a frame member: axial, transverse and rotation at the
// start, then the same at the end.
const (
	AxialStart = iota
	ShearStart
	RotationStart
	AxialEnd
	ShearEnd
	RotationEnd

	Size = 6
)

// Properties are the section and material constants of a member.
type Properties struct {
	E float64 // elastic modulus
	A float64 // cross-sectional area
	I float64 // second moment of area
}

// Local returns the Euler-Bernoulli stiffness matrix of a 2-node planar
// beam-column in local axes.
func Local(p Properties, length float64) *mat.Dense {
	L := length
	ea := p.E * p.A / L
	k1 := 12 * p.E * p.I / (L * L * L)
	k2 := 6 * p.E * p.I / (L * L)
	k3 := 4 * p.E * p.I / L
	k4 := 2 * p.E * p.I / L

	return mat.NewDense(Size, Size, []float64{
		ea, 0, 0, -ea, 0, 0,
		0, k1, k2, 0, -k1, k2,
		0, k2, k3, 0, -k2, k4,
		-ea, 0, 0, ea, 0, 0,
		0, -k1, -k2, 0, k1, -k2,
		0, k2, k4, 0, -k2, k3,
	})
}

// Rotation returns the 6×6 matrix R with u_local = R·u_global for a member
// running along (dx, dy).
func Rotation(dx, dy float64) *mat.Dense {
	theta := math.Atan2(dy, dx)
	c, s := math.Cos(theta), math.Sin(theta)

	r := mat.NewDense(Size, Size, nil)
	for _, o := range []int{0, 3} {
		r.Set(o, o, c)
		r.Set(o, o+1, s)
		r.Set(o+1, o, -s)
		r.Set(o+1, o+1, c)
		r.Set(o+2, o+2, 1)
	}
	return r
}

// Global returns Rᵀ·k·R.
func Global(k, r *mat.Dense) *mat.Dense {
	var g mat.Dense
	g.Product(r.T(), k, r)
	return &g
}

// Element is a frame member ready for assembly.
type Element struct {
	Length   float64
	Local    *mat.Dense // condensed for end releases
	Rotation *mat.Dense
	Global   *mat.Dense
	FixedEnd []float64 // local fixed-end forces, condensed like Local
}

// NewElement builds the stiffness of a member running along (dx, dy).
// fixedEnd holds its clamped-clamped end forces in local DOF order and may
// be nil for an unloaded member.
func NewElement(p Properties, dx, dy float64, releaseStart, releaseEnd bool, fixedEnd []float64) *Element {
	length := math.Hypot(dx, dy)
	if fixedEnd == nil {
		fixedEnd = make([]float64, Size)
	}
	k, f := Release(Local(p, length), fixedEnd, releaseStart, releaseEnd)
	r := Rotation(dx, dy)

	return &Element{
		Length:   length,
		Local:    k,
		Rotation: r,
		Global:   Global(k, r),
		FixedEnd: f,
	}
}

// EndForces returns k·(R·u) + f, the local forces the joints exert on the
// member for global end displacements u.
func (e *Element) EndForces(u []float64) []float64 {
	var local, force mat.VecDense
	local.MulVec(e.Rotation, mat.NewVecDense(Size, append([]float64(nil), u...)))
	force.MulVec(e.Local, &local)

	out := make([]float64, Size)
	for i := range out {
		out[i] = force.AtVec(i) + e.FixedEnd[i]
	}
	return out
}

// GlobalFixedEnd returns Rᵀ·f, the fixed-end forces in global axes.
func (e *Element) GlobalFixedEnd() []float64 {
	var g mat.VecDense
	g.MulVec(e.Rotation.T(), mat.NewVecDense(Size, append([]float64(nil), e.FixedEnd...)))

	out := make([]float64, Size)
	for i := range out {
		out[i] = g.AtVec(i)
	}
	return out
}
