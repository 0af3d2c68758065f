package simplex

// State is a step of the driver loop.
type State int

const (
	SelectingBasis State = iota
	Validating
	Transforming
	CheckingFeasibility
	Confirming
	CheckingOptimality
	SelectingLeaving
	UpdatingBasis
	Rejected
	Optimal
	Unbounded
)

var stateNames = [...]string{
	SelectingBasis:      "selecting-basis",
	Validating:          "validating",
	Transforming:        "transforming",
	CheckingFeasibility: "checking-feasibility",
	Confirming:          "confirming",
	CheckingOptimality:  "checking-optimality",
	SelectingLeaving:    "selecting-leaving",
	UpdatingBasis:       "updating-basis",
	Rejected:            "rejected",
	Optimal:             "optimal",
	Unbounded:           "unbounded",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether the driver stops in s.
func (s State) Terminal() bool {
	return s == Optimal || s == Unbounded
}
