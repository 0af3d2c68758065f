package simplex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

const testTol = 1e-9

func newProblem(t testing.TB, a [][]float64, b, c []float64, z float64) *model.Problem {
	t.Helper()
	p, err := model.NewProblem(a, b, c, z)
	require.NoError(t, err)
	return p
}

// twoVariable is max 3x + 2y s.t. x + y <= 4, x - y <= 2 in slack form.
func twoVariable(t testing.TB) *model.Problem {
	return newProblem(t,
		[][]float64{{1, 1, 1, 0}, {1, -1, 0, 1}},
		[]float64{4, 2},
		[]float64{3, 2, 0, 0},
		0,
	)
}

// unboundedLine is max x s.t. -x + y <= 1 in slack form.
func unboundedLine(t testing.TB) *model.Problem {
	return newProblem(t,
		[][]float64{{-1, 1, 1}},
		[]float64{1},
		[]float64{1, 0, 0},
		0,
	)
}

// ratioTie has equal ratios in both rows on the first pivot.
// max x+y s.t. x <= 4, 50000y <= 100000 in slack form.
func badlyScaled(t testing.TB) *model.Problem {
	return newProblem(t,
		[][]float64{{1, 0, 1, 0}, {0, 50000, 0, 1}},
		[]float64{4, 100000},
		[]float64{1, 1, 0, 0},
		0,
	)
}

func ratioTie(t testing.TB) *model.Problem {
	return newProblem(t,
		[][]float64{{1, 1, 0}, {2, 0, 1}},
		[]float64{2, 4},
		[]float64{1, 0, 0},
		0,
	)
}

func vec(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
