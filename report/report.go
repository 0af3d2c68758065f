// Package report prints problems and tableaux with values shown as
// fractions.
package report

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
	"q.log/tableau/simplex"
)

const defaultWidth = 8

// Printer writes human readable output to w. The first write error is
// kept and later writes are skipped; see Err.
type Printer struct {
	w     io.Writer
	width int
	err   error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, width: defaultWidth}
}

// Err returns the first write error.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) row(v []float64) {
	cells := make([]string, len(v))
	for i, x := range v {
		cells[i] = fmt.Sprintf("%-*s", p.width, Rational(x))
	}
	p.printf("[ %s ]\n", strings.Join(cells, " "))
}

func (p *Printer) vec(name string, v mat.Vector) {
	p.printf("%s =\n", name)
	p.row(mat.Col(nil, 0, v))
}

func (p *Printer) matrix(name string, a mat.Matrix) {
	r, _ := a.Dims()
	p.printf("%s = [\n", name)
	for i := range r {
		p.row(mat.Row(nil, i, a))
	}
	p.printf("]\n")
}

func (p *Printer) system(a mat.Matrix, b, c mat.Vector, z float64) {
	p.printf("max (c*x + z)\nsubjected to:\nAx = b\nwhere:\n")
	p.matrix("A", a)
	p.vec("b", b)
	p.vec("c", c)
	p.printf("z = %s\n", Rational(z))
}

// Problem prints the original system.
func (p *Printer) Problem(pr *model.Problem) {
	p.system(pr.A, pr.B, pr.C, pr.Z)
}

// Snapshot prints a tableau computed by the solver. It has the
// signature of simplex.Solver.OnSnapshot.
func (p *Printer) Snapshot(s simplex.Snapshot) {
	t := s.Tableau
	p.printf("-------------------- ITERATION %d, BASIS %v --------------------\n", s.Iteration, []int(t.Basis))
	p.system(t.A, t.B, t.C, t.Z)
	p.vec("yt", t.Y)
	p.vec("basic solution: bx", t.X)
}

// Result prints the terminal outcome.
func (p *Printer) Result(r *simplex.Result) {
	switch r.Status {
	case simplex.Optimal:
		t := r.Tableau
		p.printf("final stage:\n")
		p.system(t.A, t.B, t.C, t.Z)
		p.vec("basic solution: bx", t.X)
		p.printf("is optimal\n")
	case simplex.Unbounded:
		p.printf("unbounded solution (column %d)\n", r.Entering)
	default:
		p.printf("no solution: %s\n", r.Status)
	}
}

// Basis prints a basis matrix.
func (p *Printer) Basis(bm mat.Matrix) {
	p.printf("B = %v\n", mat.Formatted(bm, mat.Prefix("    "), mat.Squeeze()))
}
