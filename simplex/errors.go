package simplex

import "github.com/pkg/errors"

// Basis rejections. These are recoverable: the driver asks the
// BasisProvider for another candidate.
var (
	ErrInvalidBasisSize = errors.New("simplex: invalid basis size")
	ErrIndexOutOfRange  = errors.New("simplex: basis index out of range")
	ErrSingularBasis    = errors.New("simplex: singular basis")
	ErrInfeasible       = errors.New("simplex: basic solution is not feasible")
	ErrBasisDeclined    = errors.New("simplex: basis declined")
)

// ErrIterationLimit is returned when Solver.MaxIterations pivots were
// performed without reaching a terminal state.
var ErrIterationLimit = errors.New("simplex: iteration limit reached")

// IsRejection reports whether err rejects a candidate basis, as opposed
// to aborting the solve.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidBasisSize) ||
		errors.Is(err, ErrIndexOutOfRange) ||
		errors.Is(err, ErrSingularBasis) ||
		errors.Is(err, ErrInfeasible) ||
		errors.Is(err, ErrBasisDeclined)
}
