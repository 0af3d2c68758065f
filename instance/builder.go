package instance

import (
	"github.com/pkg/errors"
	"q.log/tableau/model"
)

// Sense is the relation of a constraint row to its right-hand side.
type Sense int

const (
	LessEqual Sense = iota
	GreaterEqual
	Equal
)

// ParseSense accepts "<=", ">=" and "=".
func ParseSense(s string) (Sense, error) {
	switch s {
	case "<=":
		return LessEqual, nil
	case ">=":
		return GreaterEqual, nil
	case "=", "==":
		return Equal, nil
	default:
		return 0, errors.Wrapf(ErrSyntax, "unknown constraint sense %q", s)
	}
}

func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	default:
		return "="
	}
}

// Builder turns general constraints into standard form. Inequality rows
// receive a slack (<=) or surplus (>=) column with zero cost, and rows
// with a negative right-hand side are negated.
type Builder struct {
	c      []float64
	z      float64
	rows   [][]float64
	rhs    []float64
	senses []Sense
}

// NewBuilder starts a problem maximizing c'x + z.
func NewBuilder(c []float64, z float64) *Builder {
	return &Builder{c: append([]float64(nil), c...), z: z}
}

// AddRow appends the constraint coefs'x (sense) rhs.
func (b *Builder) AddRow(coefs []float64, sense Sense, rhs float64) error {
	if len(coefs) != len(b.c) {
		return errors.Wrapf(model.ErrInvalidDimensions, "row has %d coefficients, want %d", len(coefs), len(b.c))
	}
	b.rows = append(b.rows, append([]float64(nil), coefs...))
	b.rhs = append(b.rhs, rhs)
	b.senses = append(b.senses, sense)
	return nil
}

// NumRows returns the number of constraints added so far.
func (b *Builder) NumRows() int {
	return len(b.rows)
}

// Build returns the standard-form instance. When every row ends up with
// a +1 slack column, those columns are suggested as the initial basis;
// it is feasible because every right-hand side is nonnegative.
func (b *Builder) Build() (*Instance, error) {
	m, n := len(b.rows), len(b.c)

	slackIndexes := make([]int, m)
	numSlacks := 0
	for r, s := range b.senses {
		slackIndexes[r] = -1
		if s != Equal {
			slackIndexes[r] = n + numSlacks
			numSlacks++
		}
	}

	a := make([][]float64, m)
	rhs := make([]float64, m)
	for r := range m {
		row := make([]float64, n+numSlacks)
		copy(row, b.rows[r])
		switch b.senses[r] {
		case LessEqual:
			row[slackIndexes[r]] = 1
		case GreaterEqual:
			row[slackIndexes[r]] = -1
		}
		rhs[r] = b.rhs[r]
		if rhs[r] < 0 {
			for j := range row {
				row[j] = -row[j]
			}
			rhs[r] = -rhs[r]
		}
		a[r] = row
	}

	c := make([]float64, n+numSlacks)
	copy(c, b.c)
	p, err := model.NewProblem(a, rhs, c, b.z)
	if err != nil {
		return nil, err
	}

	basis := make([]int, 0, m)
	for r, j := range slackIndexes {
		if j < 0 || a[r][j] != 1 {
			basis = nil
			break
		}
		basis = append(basis, j)
	}
	return &Instance{Problem: p, Basis: basis}, nil
}
