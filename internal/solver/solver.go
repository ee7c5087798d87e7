package solver

import (
	"fmt"

	"knapsack/internal/domain"
	"knapsack/internal/solver/dynamic"
	"knapsack/internal/solver/exhaustive"
	"knapsack/internal/solver/heuristic"
	"knapsack/internal/solver/recursive"
)

// Solver names as used in config files and on the command line.
const (
	Exhaustive = "exhaustive"
	Heuristic  = "heuristic"
	Recursive  = "recursive"
	Dynamic    = "dynamic"
)

// Limits carries the resource bounds handed to the solvers that need one.
// Zero values select each solver's default.
type Limits struct {
	ExhaustiveItems int
	RecursiveItems  int
	TableCells      int
}

// Names lists every solver in the order the benchmark runs them.
func Names() []string {
	return []string{Exhaustive, Heuristic, Recursive, Dynamic}
}

// New creates the named solver.
func New(name string, limits Limits) (domain.Solver, error) {
	switch name {
	case Exhaustive:
		return exhaustive.NewSolver(limits.ExhaustiveItems), nil
	case Heuristic:
		return heuristic.NewSolver(), nil
	case Recursive:
		return recursive.NewSolver(limits.RecursiveItems), nil
	case Dynamic, "dp":
		return dynamic.NewSolver(limits.TableCells), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSolver, name)
	}
}

// NewAll creates the named solvers in order. An empty list means all of them.
func NewAll(names []string, limits Limits) ([]domain.Solver, error) {
	if len(names) == 0 {
		names = Names()
	}
	out := make([]domain.Solver, 0, len(names))
	for _, name := range names {
		s, err := New(name, limits)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
