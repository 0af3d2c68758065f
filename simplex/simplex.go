// Package simplex solves linear programs in standard form with the
// tableau simplex method. Each iteration inverts the basis matrix and
// rebuilds the canonical form from the original problem.
package simplex

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"q.log/tableau/model"
)

// Snapshot is passed to Solver.OnSnapshot after every transformation.
type Snapshot struct {
	// Iteration is the number of pivots performed so far.
	Iteration int
	Tableau   *Tableau
}

// Step is the outcome of one pivot from a given basis.
type Step struct {
	Tableau *Tableau

	// Entering is the entering column, or NoEntering when Outcome is Optimal.
	Entering int

	// Leaving is the row whose basic variable leaves, or -1.
	Leaving int

	// Next is the basis to continue from when Outcome is UpdatingBasis.
	Next Basis

	// Outcome is Optimal, Unbounded or UpdatingBasis.
	Outcome State
}

// Pivot transforms p relative to basis and picks the entering and
// leaving variables. It keeps no state between calls.
func Pivot(p *model.Problem, basis Basis, tol float64) (Step, error) {
	t, err := Transform(p, basis)
	if err != nil {
		return Step{}, err
	}
	return advance(t, tol), nil
}

func advance(t *Tableau, tol float64) Step {
	s := Step{Tableau: t, Entering: EnteringVariable(t.C, tol), Leaving: -1}
	if s.Entering == NoEntering {
		s.Outcome = Optimal
		return s
	}
	row, ok := LeavingVariable(t.A, t.B, s.Entering, tol)
	if !ok {
		s.Outcome = Unbounded
		return s
	}
	s.Leaving = row
	s.Next = t.Basis.Replace(row, s.Entering)
	s.Outcome = UpdatingBasis
	return s
}

// Result is the terminal outcome of Solve.
type Result struct {
	// Status is Optimal or Unbounded.
	Status State

	// Tableau is the last tableau computed.
	Tableau *Tableau

	// X is the optimal solution, nil when unbounded.
	X []float64

	Objective float64

	// Iterations counts the pivots performed.
	Iterations int

	// Rejections counts candidate bases that were turned down.
	Rejections int

	// Entering is the unbounded column, or NoEntering.
	Entering int
}

// Solver runs the simplex loop. The zero value is usable.
type Solver struct {
	// Tolerance defaults to DefaultTolerance.
	Tolerance float64

	// MaxIterations bounds the number of pivots. Zero means no limit.
	MaxIterations int

	// Confirmer, if set, is asked once about the initial feasible tableau.
	Confirmer Confirmer

	// OnSnapshot, if set, receives every tableau computed.
	OnSnapshot func(Snapshot)

	Logger *slog.Logger
}

func (s *Solver) tolerance() float64 {
	if s.Tolerance > 0 {
		return s.Tolerance
	}
	return DefaultTolerance
}

func (s *Solver) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Solve asks provider for an initial basis until one is valid and
// feasible, then pivots until the problem is found optimal or
// unbounded. The context is checked between iterations only.
func (s *Solver) Solve(ctx context.Context, p *model.Problem, provider BasisProvider) (*Result, error) {
	tol := s.tolerance()
	log := s.logger()

	var (
		state     = SelectingBasis
		res       = &Result{Entering: NoEntering}
		candidate []int
		basis     Basis
		t         *Tableau
		step      Step
		rejection error
		accepted  bool
	)

	for {
		log.Debug("simplex state", "state", state, "iteration", res.Iterations)

		switch state {
		case SelectingBasis:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			idx, err := provider.NextBasis(ctx, rejection)
			if err != nil {
				return nil, errors.Wrap(err, "simplex: selecting basis")
			}
			candidate = idx
			state = Validating

		case Validating:
			if _, err := BasisMatrix(p, candidate); err != nil {
				rejection = err
				state = Rejected
				continue
			}
			basis = NewBasis(candidate)
			state = Transforming

		case Transforming:
			next, err := Transform(p, basis)
			if err != nil {
				if !accepted {
					rejection = err
					state = Rejected
					continue
				}
				return nil, errors.Wrapf(err, "simplex: iteration %d", res.Iterations)
			}
			t = next
			if s.OnSnapshot != nil {
				s.OnSnapshot(Snapshot{Iteration: res.Iterations, Tableau: t})
			}
			if accepted {
				state = CheckingOptimality
			} else {
				state = CheckingFeasibility
			}

		case CheckingFeasibility:
			if err := CheckFeasible(t.B, tol); err != nil {
				rejection = err
				state = Rejected
				continue
			}
			state = Confirming

		case Confirming:
			if s.Confirmer != nil {
				ok, err := s.Confirmer.Confirm(ctx, t)
				if err != nil {
					return nil, errors.Wrap(err, "simplex: confirming basis")
				}
				if !ok {
					rejection = errors.Wrapf(ErrBasisDeclined, "basis %v", []int(basis))
					state = Rejected
					continue
				}
			}
			accepted = true
			rejection = nil
			log.Info("basis accepted", "basis", []int(basis), "z", t.Z)
			state = CheckingOptimality

		case CheckingOptimality:
			step = advance(t, tol)
			if step.Outcome == Optimal {
				state = Optimal
			} else {
				state = SelectingLeaving
			}

		case SelectingLeaving:
			if step.Outcome == Unbounded {
				state = Unbounded
			} else {
				state = UpdatingBasis
			}

		case UpdatingBasis:
			if s.MaxIterations > 0 && res.Iterations >= s.MaxIterations {
				return nil, errors.Wrapf(ErrIterationLimit, "%d pivots at basis %v", res.Iterations, []int(basis))
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res.Iterations++
			log.Info("base change",
				"iteration", res.Iterations,
				"leaving", basis[step.Leaving],
				"entering", step.Entering,
			)
			basis = step.Next
			state = Transforming

		case Rejected:
			res.Rejections++
			log.Warn("basis rejected", "basis", candidate, "err", rejection)
			state = SelectingBasis

		case Optimal:
			res.Status = Optimal
			res.Tableau = t
			res.X = append([]float64(nil), t.X.RawVector().Data...)
			res.Objective = t.Z
			log.Info("optimal", "z", t.Z, "iterations", res.Iterations)
			return res, nil

		case Unbounded:
			res.Status = Unbounded
			res.Tableau = t
			res.Entering = step.Entering
			log.Info("unbounded", "column", step.Entering, "iterations", res.Iterations)
			return res, nil
		}
	}
}
