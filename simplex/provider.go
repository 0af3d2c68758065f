package simplex

import (
	"context"
	"slices"

	"github.com/pkg/errors"
)

// BasisProvider supplies candidate initial bases. rejection is nil on
// the first call and otherwise holds the reason the previous candidate
// was turned down. Returning an error aborts the solve.
type BasisProvider interface {
	NextBasis(ctx context.Context, rejection error) ([]int, error)
}

// BasisProviderFunc adapts a function to BasisProvider.
type BasisProviderFunc func(ctx context.Context, rejection error) ([]int, error)

func (f BasisProviderFunc) NextBasis(ctx context.Context, rejection error) ([]int, error) {
	return f(ctx, rejection)
}

// Confirmer is asked whether to continue from the first feasible
// tableau. Answering false sends the driver back to basis selection.
type Confirmer interface {
	Confirm(ctx context.Context, t *Tableau) (bool, error)
}

// FixedBasis yields idx once. If that candidate is rejected, the next
// call returns the rejection and the solve stops.
func FixedBasis(idx ...int) BasisProvider {
	idx = slices.Clone(idx)
	return BasisProviderFunc(func(_ context.Context, rejection error) ([]int, error) {
		if rejection != nil {
			return nil, rejection
		}
		return idx, nil
	})
}

// Candidates yields each basis in turn and fails once they run out.
func Candidates(bases ...[]int) BasisProvider {
	next := 0
	return BasisProviderFunc(func(_ context.Context, rejection error) ([]int, error) {
		if next == len(bases) {
			if rejection != nil {
				return nil, errors.Wrap(rejection, "no candidates left")
			}
			return nil, errors.New("simplex: no candidates left")
		}
		idx := bases[next]
		next++
		return idx, nil
	})
}
