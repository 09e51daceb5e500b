package linsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultMaxCondition is the largest condition number accepted before a
// system is reported as singular.
const DefaultMaxCondition = 1e12

// Options tune the solver.
type Options struct {
	MaxCondition float64
}

// SingularSystemError reports a reduced system that is singular or too
// ill-conditioned to trust: the structure is unstable or under-restrained.
type SingularSystemError struct {
	Size      int
	Condition float64
	Err       error
}

func (e *SingularSystemError) Error() string {
	msg := fmt.Sprintf("singular system: %d unknowns, condition number %.3g; the structure is unstable or under-restrained", e.Size, e.Condition)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SingularSystemError) Unwrap() error { return e.Err }

// Solve solves k·u = p by LU factorisation with partial pivoting. An empty
// system yields an empty solution.
func Solve(k *mat.Dense, p []float64, opts Options) ([]float64, error) {
	n := len(p)
	if n == 0 {
		return nil, nil
	}
	if r, c := k.Dims(); r != n || c != n {
		return nil, fmt.Errorf("linsolve: %dx%d matrix with %d right-hand side rows", r, c, n)
	}

	maxCond := opts.MaxCondition
	if maxCond <= 0 {
		maxCond = DefaultMaxCondition
	}

	var lu mat.LU
	lu.Factorize(k)
	cond := lu.Cond()
	if math.IsNaN(cond) || math.IsInf(cond, 0) || cond > maxCond {
		return nil, &SingularSystemError{Size: n, Condition: cond}
	}

	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, mat.NewVecDense(n, append([]float64(nil), p...))); err != nil {
		return nil, &SingularSystemError{Size: n, Condition: cond, Err: err}
	}

	u := make([]float64, n)
	for i := range u {
		v := x.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &SingularSystemError{Size: n, Condition: cond}
		}
		u[i] = v
	}
	return u, nil
}
