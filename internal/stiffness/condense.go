package stiffness

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Condense statically eliminates local DOF dof from the stiffness k and the
// load vector f, so the eliminated DOF carries zero force:
//
//	k'ij = kij − kid·kdj / kdd
//	f'i  = fi − kid·fd / kdd
//
// Stiffness moves to the remaining DOFs; row and column dof of the result
// are zero. Inputs are not modified. A DOF that already has no stiffness is
// simply zeroed.
func Condense(k *mat.Dense, f []float64, dof int) (*mat.Dense, []float64) {
	r, c := k.Dims()
	if r != c || len(f) != r {
		panic(fmt.Sprintf("stiffness: cannot condense %dx%d matrix with %d loads", r, c, len(f)))
	}
	if dof < 0 || dof >= r {
		panic(fmt.Sprintf("stiffness: dof %d out of range", dof))
	}

	out := mat.DenseCopyOf(k)
	fo := append([]float64(nil), f...)
	kdd := k.At(dof, dof)

	if kdd != 0 {
		for i := 0; i < r; i++ {
			kid := k.At(i, dof)
			if kid == 0 {
				continue
			}
			for j := 0; j < r; j++ {
				out.Set(i, j, k.At(i, j)-kid*k.At(dof, j)/kdd)
			}
			fo[i] = f[i] - kid*f[dof]/kdd
		}
	}

	for i := 0; i < r; i++ {
		out.Set(i, dof, 0)
		out.Set(dof, i, 0)
	}
	fo[dof] = 0
	return out, fo
}

// Release applies moment releases (pins) at the member ends.
func Release(k *mat.Dense, f []float64, start, end bool) (*mat.Dense, []float64) {
	if start {
		k, f = Condense(k, f, RotationStart)
	}
	if end {
		k, f = Condense(k, f, RotationEnd)
	}
	if !start && !end {
		k, f = mat.DenseCopyOf(k), append([]float64(nil), f...)
	}
	return k, f
}
