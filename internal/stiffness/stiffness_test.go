package stiffness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gosdm/internal/load"
)

const tol = 1e-9

var steel = Properties{E: 200e6, A: 0.01, I: 1e-4}

func TestBeamCoefficients(t *testing.T) {
	near, far := BeamCoefficients(200, 3, 6)
	assert.InDelta(t, 400, near, tol)
	assert.InDelta(t, 200, far, tol)
}

func TestLocalIsSymmetric(t *testing.T) {
	k := Local(steel, 4)
	assert.True(t, mat.EqualApprox(k, k.T(), tol))
	assert.InDelta(t, steel.E*steel.A/4, k.At(AxialStart, AxialStart), tol)
	assert.InDelta(t, 4*steel.E*steel.I/4, k.At(RotationEnd, RotationEnd), tol)
}

func TestCondenseStartRelease(t *testing.T) {
	const L = 5.0
	ei := steel.E * steel.I
	k, f := Condense(Local(steel, L), make([]float64, Size), RotationStart)

	for i := 0; i < Size; i++ {
		assert.Zero(t, k.At(RotationStart, i))
		assert.Zero(t, k.At(i, RotationStart))
	}
	assert.InDelta(t, 3*ei/L, k.At(RotationEnd, RotationEnd), 1e-6)
	assert.InDelta(t, 3*ei/(L*L*L), k.At(ShearStart, ShearStart), 1e-6)
	assert.InDelta(t, -3*ei/(L*L), k.At(ShearEnd, RotationEnd), 1e-6)
	assert.Equal(t, make([]float64, Size), f)
	assert.True(t, mat.EqualApprox(k, k.T(), 1e-6))
}

func TestCondenseRedistributesFixedEndForces(t *testing.T) {
	const L, w = 6.0, -10.0
	fe := load.FixedEnd(L, load.Uniform{W: w}).Vector()

	_, f := Condense(Local(steel, L), fe, RotationStart)
	assert.InDelta(t, 0, f[RotationStart], tol)
	assert.InDelta(t, w*L*L/8, f[RotationEnd], 1e-6)
	assert.InDelta(t, -3*w*L/8, f[ShearStart], 1e-6)
	assert.InDelta(t, -5*w*L/8, f[ShearEnd], 1e-6)

	_, f = Condense(Local(steel, L), fe, RotationEnd)
	assert.InDelta(t, -w*L*L/8, f[RotationStart], 1e-6)
	assert.InDelta(t, 0, f[RotationEnd], tol)
}

func TestReleaseBothEndsLeavesAxialOnly(t *testing.T) {
	k, f := Release(Local(steel, 3), load.FixedEnd(3, load.Uniform{W: -2}).Vector(), true, true)

	ea := steel.E * steel.A / 3
	want := mat.NewDense(Size, Size, nil)
	want.Set(AxialStart, AxialStart, ea)
	want.Set(AxialStart, AxialEnd, -ea)
	want.Set(AxialEnd, AxialStart, -ea)
	want.Set(AxialEnd, AxialEnd, ea)
	assert.True(t, mat.EqualApprox(want, k, 1e-6))

	// simply supported shears remain
	assert.InDelta(t, 3, f[ShearStart], 1e-9)
	assert.InDelta(t, 3, f[ShearEnd], 1e-9)
	assert.InDelta(t, 0, f[RotationStart], 1e-9)
	assert.InDelta(t, 0, f[RotationEnd], 1e-9)
}

func TestCondenseDoesNotModifyInput(t *testing.T) {
	k := Local(steel, 2)
	before := mat.DenseCopyOf(k)
	f := []float64{1, 2, 3, 4, 5, 6}

	Condense(k, f, RotationEnd)
	assert.True(t, mat.Equal(before, k))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, f)
}

func TestRotationOfVerticalMember(t *testing.T) {
	r := Rotation(0, 3)
	// global +y is local +x for a member pointing up
	var u mat.VecDense
	u.MulVec(r, mat.NewVecDense(Size, []float64{0, 1, 0, 0, 0, 0}))
	assert.InDelta(t, 1, u.AtVec(AxialStart), tol)
	assert.InDelta(t, 0, u.AtVec(ShearStart), tol)

	g := Global(Local(steel, 3), r)
	assert.True(t, mat.EqualApprox(g, g.T(), 1e-3))
	assert.InDelta(t, steel.E*steel.A/3, g.At(1, 1), 1e-3)
}

func TestElementRigidBodyMotionIsForceFree(t *testing.T) {
	e := NewElement(steel, 3, 4, false, false, nil)
	require.InDelta(t, 5, e.Length, tol)

	// rigid translation
	f := e.EndForces([]float64{0.01, -0.02, 0, 0.01, -0.02, 0})
	for i, v := range f {
		assert.InDelta(t, 0, v, 1e-6, "dof %d", i)
	}

	// rigid rotation θ about the start joint
	const theta = 1e-3
	f = e.EndForces([]float64{0, 0, theta, -4 * theta, 3 * theta, theta})
	for i, v := range f {
		assert.InDelta(t, 0, v, 1e-6, "dof %d", i)
	}
}

func TestGlobalFixedEndOfInclinedMember(t *testing.T) {
	fe := load.FixedEnd(5, load.Uniform{W: -2}).Vector()
	e := NewElement(steel, 3, 4, false, false, fe)
	g := e.GlobalFixedEnd()

	c, s := 0.6, 0.8
	assert.InDelta(t, -s*fe[ShearStart], g[0], tol)
	assert.InDelta(t, c*fe[ShearStart], g[1], tol)
	assert.InDelta(t, fe[RotationStart], g[2], tol)
	assert.InDelta(t, -s*fe[ShearEnd], g[3], tol)
	assert.InDelta(t, c*fe[ShearEnd], g[4], tol)
}
