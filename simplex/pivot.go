package simplex

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance absorbs the rounding noise of inverting the basis.
const DefaultTolerance = 1e-5

// NoEntering is returned by EnteringVariable when the basis is optimal.
const NoEntering = -1

// CheckFeasible returns ErrInfeasible if any entry of b is below -tol.
func CheckFeasible(b mat.Vector, tol float64) error {
	for i := range b.Len() {
		if v := b.AtVec(i); v < -tol {
			return errors.Wrapf(ErrInfeasible, "row %d has value %g", i, v)
		}
	}
	return nil
}

// EnteringVariable returns the first column whose reduced cost exceeds
// tol, or NoEntering.
func EnteringVariable(c mat.Vector, tol float64) int {
	for j := range c.Len() {
		if c.AtVec(j) > tol {
			return j
		}
	}
	return NoEntering
}

// LeavingVariable runs the ratio test on column k of a. It returns the
// row whose basic variable leaves, and false if no entry of the column
// exceeds tol, in which case the problem is unbounded along k.
//
// Ratios within tol of each other are ties and the lowest row wins.
func LeavingVariable(a mat.Matrix, b mat.Vector, k int, tol float64) (int, bool) {
	m, _ := a.Dims()
	minimalRatio := math.Inf(1)
	leaving := -1
	for i := range m {
		u := a.At(i, k)
		if u <= tol {
			continue
		}
		v := b.AtVec(i)
		if math.Abs(v) <= tol {
			v = 0
		}
		if ratio := v / u; leaving == -1 || ratio < minimalRatio-tol {
			minimalRatio = ratio
			leaving = i
		}
	}
	return leaving, leaving != -1
}
