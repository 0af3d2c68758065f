package model

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidDimensions is returned when b or c does not match the shape of A.
var ErrInvalidDimensions = errors.New("model: invalid dimensions")

// Problem is a linear program in standard form:
//
//	max  c'x + z
//	s.t. Ax = b, x >= 0
//
// A Problem is never modified after NewProblem returns it.
type Problem struct {
	//A constraints matrix
	A *mat.Dense

	//B constraints rhs
	B *mat.VecDense

	//C objective function coefficients
	C *mat.VecDense

	//Z objective constant
	Z float64

	NumRows int
	NumCols int
}

// NewProblem copies a, b and c into a new Problem. It returns
// ErrInvalidDimensions if the shapes are inconsistent or n < m.
func NewProblem(a [][]float64, b, c []float64, z float64) (*Problem, error) {
	m := len(a)
	if m == 0 || m != len(b) {
		return nil, errors.Wrapf(ErrInvalidDimensions, "A has %d rows, b has %d entries", m, len(b))
	}
	n := len(a[0])
	if n == 0 || n != len(c) {
		return nil, errors.Wrapf(ErrInvalidDimensions, "A has %d columns, c has %d entries", n, len(c))
	}
	if n < m {
		return nil, errors.Wrapf(ErrInvalidDimensions, "A is %dx%d, need at least as many columns as rows", m, n)
	}

	aVec := make([]float64, 0, m*n)
	for r, row := range a {
		if len(row) != n {
			return nil, errors.Wrapf(ErrInvalidDimensions, "row %d of A has %d entries, want %d", r, len(row), n)
		}
		aVec = append(aVec, row...)
	}

	return &Problem{
		A:       mat.NewDense(m, n, aVec),
		B:       mat.NewVecDense(m, append([]float64(nil), b...)),
		C:       mat.NewVecDense(n, append([]float64(nil), c...)),
		Z:       z,
		NumRows: m,
		NumCols: n,
	}, nil
}

// Objective returns c'x + z.
func (p *Problem) Objective(x mat.Vector) float64 {
	return mat.Dot(p.C, x) + p.Z
}

// Residual returns Ax - b.
func (p *Problem) Residual(x mat.Vector) *mat.VecDense {
	r := mat.NewVecDense(p.NumRows, nil)
	r.MulVec(p.A, x)
	r.SubVec(r, p.B)
	return r
}

// Rows returns a copy of A as a slice of rows.
func (p *Problem) Rows() [][]float64 {
	rows := make([][]float64, p.NumRows)
	for r := range p.NumRows {
		rows[r] = mat.Row(nil, r, p.A)
	}
	return rows
}

// Default returns the problem used when no input file is given.
func Default() *Problem {
	p, err := NewProblem(
		[][]float64{
			{1, -1, 0, 1, -1, 1, 0, 0},
			{1, -1, -2, 0, 2, 0, 1, 0},
			{1, -1, 1, -1, 0, 0, 0, 1},
			{0, 0, 1, 1, 1, 0, 0, 0},
		},
		[]float64{0, 0, 0, 1},
		[]float64{1, -1, 0, 0, 0, 0, 0, 0},
		0,
	)
	if err != nil {
		panic(err)
	}
	return p
}
