package simplex

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

// Tableau is a problem rewritten relative to a basis. Every field is
// freshly allocated by Transform.
type Tableau struct {
	Basis Basis

	//A B^-1 A
	A *mat.Dense

	//B B^-1 b, the values of the basic variables in Basis order
	B *mat.VecDense

	//C reduced costs c - A'y
	C *mat.VecDense

	//Y dual vector (B^-1)' c_B
	Y *mat.VecDense

	//X basic solution
	X *mat.VecDense

	//Z objective value at X
	Z float64
}

// Transform computes the canonical form of p relative to basis. The
// basis must already have passed BasisMatrix.
func Transform(p *model.Problem, basis Basis) (*Tableau, error) {
	basis = NewBasis(basis)
	m, n := p.NumRows, p.NumCols
	if len(basis) != m {
		return nil, errors.Wrapf(ErrInvalidBasisSize, "got %d indices, want %d", len(basis), m)
	}
	if err := checkRange(basis, n); err != nil {
		return nil, err
	}

	currentBasis := mat.NewDense(m, m, nil)
	basisCoefs := mat.NewVecDense(m, nil)
	for i, j := range basis {
		currentBasis.SetCol(i, mat.Col(nil, j, p.A))
		basisCoefs.SetVec(i, p.C.AtVec(j))
	}

	//compute B^-1
	var inverseBasis mat.Dense
	if err := inverseBasis.Inverse(currentBasis); err != nil {
		return nil, errors.Wrapf(ErrSingularBasis, "columns %v: %v", []int(basis), err)
	}

	t := &Tableau{
		Basis: basis,
		A:     mat.NewDense(m, n, nil),
		B:     mat.NewVecDense(m, nil),
		C:     mat.NewVecDense(n, nil),
		Y:     mat.NewVecDense(m, nil),
		X:     mat.NewVecDense(n, nil),
	}

	t.B.MulVec(&inverseBasis, p.B)
	for i, j := range basis {
		t.X.SetVec(j, t.B.AtVec(i))
	}

	t.A.Mul(&inverseBasis, p.A)

	//y = (B^-1)' c_B
	t.Y.MulVec(inverseBasis.T(), basisCoefs)

	//c' = c - A'y
	t.C.MulVec(p.A.T(), t.Y)
	t.C.SubVec(p.C, t.C)

	t.Z = p.Z + mat.Dot(t.Y, p.B)
	return t, nil
}

// Problem returns the tableau as a standalone problem. Transforming it
// again with the same basis yields the same tableau.
func (t *Tableau) Problem() *model.Problem {
	m, n := t.A.Dims()
	return &model.Problem{
		A:       mat.DenseCopyOf(t.A),
		B:       mat.VecDenseCopyOf(t.B),
		C:       mat.VecDenseCopyOf(t.C),
		Z:       t.Z,
		NumRows: m,
		NumCols: n,
	}
}

