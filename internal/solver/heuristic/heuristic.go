package heuristic

import (
	"cmp"
	"context"
	"slices"

	"knapsack/internal/domain"
)

// Solver is the greedy value-density approximation. It is fast and usually
// close, but not guaranteed optimal.
type Solver struct{}

// NewSolver creates a greedy solver.
func NewSolver() *Solver { return &Solver{} }

// Name returns the identifier of this solver implementation.
func (s *Solver) Name() string { return "heuristic" }

// Solve packs items in priority order while they fit. Items heavier than the
// remaining capacity are skipped, never rejected. Selected holds indexes in pick order.
func (s *Solver) Solve(ctx context.Context, capacity int, items domain.ItemSet) (domain.Solution, error) {
	if err := domain.ValidateCapacity(capacity); err != nil {
		return domain.Solution{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Solution{}, err
	}

	remaining := capacity
	sol := domain.Solution{Selected: []int{}}
	for _, it := range Order(items) {
		if it.Weight > remaining {
			continue
		}
		remaining -= it.Weight
		sol.Value += it.Value
		sol.Selected = append(sol.Selected, it.Index)
	}
	return sol, nil
}

// Order returns a copy of items in greedy priority: ratio descending, then
// value descending, then original order. Zero-weight items rank first.
// This is the same order a stable sort by value followed by a stable sort by
// ratio would give.
func Order(items domain.ItemSet) domain.ItemSet {
	sorted := items.Clone()
	slices.SortStableFunc(sorted, func(a, b domain.Item) int {
		if c := b.CompareRatio(a); c != 0 {
			return c
		}
		return cmp.Compare(b.Value, a.Value)
	})
	return sorted
}
