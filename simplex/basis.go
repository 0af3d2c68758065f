package simplex

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

// Basis holds the column indices of the basic variables in ascending
// order. Row i of a tableau belongs to column Basis[i].
type Basis []int

// NewBasis returns a sorted copy of idx.
func NewBasis(idx []int) Basis {
	b := slices.Clone(idx)
	slices.Sort(b)
	return Basis(b)
}

// Replace returns a new basis where the column of the given row is
// swapped for col. The receiver is left untouched.
func (b Basis) Replace(row, col int) Basis {
	next := slices.Clone(b)
	next[row] = col
	slices.Sort(next)
	return next
}

// Contains reports whether col is basic.
func (b Basis) Contains(col int) bool {
	return slices.Contains(b, col)
}

// BasisMatrix validates idx against p and returns the m x m matrix made
// of the selected columns of A, in ascending column order.
//
// The checks run in order: size, index range, rank. The rank counts the
// singular values above the largest one scaled by m and the machine
// epsilon, so badly scaled but nonsingular bases are accepted.
func BasisMatrix(p *model.Problem, idx []int) (*mat.Dense, error) {
	if len(idx) != p.NumRows {
		return nil, errors.Wrapf(ErrInvalidBasisSize, "got %d indices, want %d", len(idx), p.NumRows)
	}
	if err := checkRange(idx, p.NumCols); err != nil {
		return nil, err
	}

	sorted := NewBasis(idx)
	basis := mat.NewDense(p.NumRows, p.NumRows, nil)
	for i, j := range sorted {
		basis.SetCol(i, mat.Col(nil, j, p.A))
	}

	if r := rank(basis); r != p.NumRows {
		return nil, errors.Wrapf(ErrSingularBasis, "columns %v have rank %d, want %d", []int(sorted), r, p.NumRows)
	}
	return basis, nil
}

func checkRange(idx []int, n int) error {
	for _, j := range idx {
		if j < 0 || j >= n {
			return errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0, %d)", j, n)
		}
	}
	return nil
}

// eps is the float64 machine epsilon.
var eps = math.Nextafter(1, 2) - 1

func rank(a *mat.Dense) int {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0
	}
	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 {
		return 0
	}
	r, _ := a.Dims()
	cutoff := values[0] * float64(r) * eps
	n := 0
	for _, s := range values {
		if s > cutoff {
			n++
		}
	}
	return n
}
