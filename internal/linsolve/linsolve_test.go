package linsolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPartition(t *testing.T) {
	free, fixed := Partition([]bool{true, false, false, true, false})
	assert.Equal(t, []int{1, 2, 4}, free)
	assert.Equal(t, []int{0, 3}, fixed)
}

func TestReduceAndExpand(t *testing.T) {
	k := mat.NewDense(3, 3, []float64{
		4, 1, 0,
		1, 3, 2,
		0, 2, 5,
	})
	p := []float64{7, 8, 9}

	kff, pf := Reduce(k, p, []int{0, 2})
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{4, 0, 0, 5}), kff))
	assert.Equal(t, []float64{7, 9}, pf)

	assert.Equal(t, []float64{1.5, 0, -2}, Expand(3, []int{0, 2}, []float64{1.5, -2}))

	kff, pf = Reduce(k, p, nil)
	assert.Nil(t, kff)
	assert.Nil(t, pf)
}

func TestSolve(t *testing.T) {
	k := mat.NewDense(2, 2, []float64{4, 2, 2, 4})
	u, err := Solve(k, []float64{6, 6}, Options{})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1}, u, 1e-12)

	assert.InDeltaSlice(t, []float64{0, 0}, Residual(k, u, []float64{6, 6}), 1e-12)
}

func TestSolveEmpty(t *testing.T) {
	u, err := Solve(nil, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, u)
}

func TestSolveSingular(t *testing.T) {
	k := mat.NewDense(2, 2, []float64{1, 2, 2, 4})
	_, err := Solve(k, []float64{1, 1}, Options{})
	require.Error(t, err)

	var se *SingularSystemError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Size)

	_, err = Solve(mat.NewDense(2, 2, nil), []float64{0, 1}, Options{})
	assert.True(t, errors.As(err, &se))
}

func TestSolveIllConditioned(t *testing.T) {
	k := mat.NewDense(2, 2, []float64{1, 1, 1, 1 + 1e-10})
	_, err := Solve(k, []float64{1, 2}, Options{MaxCondition: 1e8})

	var se *SingularSystemError
	require.True(t, errors.As(err, &se))
	assert.Greater(t, se.Condition, 1e8)
}
