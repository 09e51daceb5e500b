// Package linsolve partitions an assembled equilibrium system into free and
// restrained degrees of freedom and solves the reduced dense system.
package linsolve

import "gonum.org/v1/gonum/mat"

// Partition splits DOF indices into free and restrained sets, both in
// ascending order.
func Partition(restrained []bool) (free, fixed []int) {
	for i, r := range restrained {
		if r {
			fixed = append(fixed, i)
		} else {
			free = append(free, i)
		}
	}
	return free, fixed
}

// Reduce extracts K_FF and P_F. Restrained displacements are zero, so the
// reduced system is K_FF·u_F = P_F. It returns a nil matrix when no DOF is
// free.
func Reduce(k *mat.Dense, p []float64, free []int) (*mat.Dense, []float64) {
	if len(free) == 0 {
		return nil, nil
	}
	kff := mat.NewDense(len(free), len(free), nil)
	pf := make([]float64, len(free))
	for i, gi := range free {
		pf[i] = p[gi]
		for j, gj := range free {
			kff.Set(i, j, k.At(gi, gj))
		}
	}
	return kff, pf
}

// Expand scatters the free solution back into a vector of length n, with
// zeros at restrained DOFs.
func Expand(n int, free []int, uf []float64) []float64 {
	u := make([]float64, n)
	for i, g := range free {
		u[g] = uf[i]
	}
	return u
}

// Residual returns K·u − p.
func Residual(k *mat.Dense, u, p []float64) []float64 {
	var ku mat.VecDense
	ku.MulVec(k, mat.NewVecDense(len(u), append([]float64(nil), u...)))

	r := make([]float64, len(p))
	for i := range r {
		r[i] = ku.AtVec(i) - p[i]
	}
	return r
}
