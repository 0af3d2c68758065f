// Package mps reads fixed MPS files through GLPK. Importing it registers
// the reader for the ".mps" extension with instance.Load.
package mps

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"q.log/tableau/instance"
)

func init() {
	instance.Register(".mps", Read)
}

// Read converts the MPS file at filename to standard form. Minimization
// problems are negated since the solver maximizes. Column bounds other
// than x >= 0 become extra constraint rows.
func Read(filename string) (*instance.Instance, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, filename); err != nil {
		return nil, errors.Wrapf(err, "mps: read %s", filename)
	}

	numCols := lp.NumCols()
	if lp.NumRows() == 0 || numCols == 0 {
		return nil, errors.Wrapf(instance.ErrSyntax, "mps: %s has no constraints or no columns", filename)
	}

	sign := 1.0
	if lp.ObjDir() == glpk.MIN {
		sign = -1
	}

	//populate obj function, coefficient 0 is the constant term
	cVec := make([]float64, numCols)
	for c := range numCols {
		cVec[c] = sign * lp.ObjCoef(c+1)
	}
	b := instance.NewBuilder(cVec, sign*lp.ObjCoef(0))

	//populate constraints
	for r := range lp.NumRows() {
		rowVec := make([]float64, numCols)
		idxs, row := lp.MatRow(r + 1)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = row[i]
		}
		if err := addBounded(b, rowVec, lp.RowLB(r+1), lp.RowUB(r+1)); err != nil {
			return nil, errors.Wrapf(err, "mps: row %d", r+1)
		}
	}

	//column bounds beyond x >= 0
	for c := range numCols {
		rowVec := make([]float64, numCols)
		rowVec[c] = 1
		lb, ub := lp.ColLB(c+1), lp.ColUB(c+1)
		if lb <= 0 {
			lb = -math.MaxFloat64
		}
		if err := addBounded(b, rowVec, lb, ub); err != nil {
			return nil, errors.Wrapf(err, "mps: column %d", c+1)
		}
	}

	return b.Build()
}

// addBounded adds lb <= row'x <= ub, where ±math.MaxFloat64 stands for
// a missing bound.
func addBounded(b *instance.Builder, row []float64, lb, ub float64) error {
	hasLB, hasUB := lb > -math.MaxFloat64, ub < math.MaxFloat64
	switch {
	case hasLB && hasUB && lb == ub:
		return b.AddRow(row, instance.Equal, lb)
	case hasLB && hasUB:
		if err := b.AddRow(row, instance.GreaterEqual, lb); err != nil {
			return err
		}
		return b.AddRow(row, instance.LessEqual, ub)
	case hasLB:
		return b.AddRow(row, instance.GreaterEqual, lb)
	case hasUB:
		return b.AddRow(row, instance.LessEqual, ub)
	}
	return nil
}
