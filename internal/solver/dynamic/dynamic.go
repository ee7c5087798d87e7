package dynamic

import (
	"context"
	"fmt"
	"slices"

	"knapsack/internal/domain"
)

// DefaultMaxTableCells caps the value row and the keep-bitmap used to recover
// the selected items.
const DefaultMaxTableCells = 50_000_000

// Solver is the bottom-up tabulation solver. Only the previous row of the
// (n+1) x (capacity+1) table is ever read, so the value table is rolled into a
// single row; a bitmap of include decisions is kept to recover the selection
// while it stays under maxTableCells.
type Solver struct {
	maxTableCells int
}

// NewSolver creates a DP solver. A non-positive maxTableCells selects DefaultMaxTableCells.
func NewSolver(maxTableCells int) *Solver {
	if maxTableCells <= 0 {
		maxTableCells = DefaultMaxTableCells
	}
	return &Solver{maxTableCells: maxTableCells}
}

// Name returns the identifier of this solver implementation.
func (s *Solver) Name() string { return "dynamic" }

// Solve returns T[n][capacity]. A capacity whose row alone exceeds the cell
// budget is refused with ErrTableTooLarge. Selected is nil when the decision
// table would exceed the budget.
func (s *Solver) Solve(ctx context.Context, capacity int, items domain.ItemSet) (domain.Solution, error) {
	if err := domain.ValidateCapacity(capacity); err != nil {
		return domain.Solution{}, err
	}
	n := len(items)
	if n == 0 {
		return domain.Solution{Value: 0, Selected: []int{}}, nil
	}

	cols := capacity + 1
	if cols > s.maxTableCells {
		return domain.Solution{}, fmt.Errorf("dynamic: capacity %d exceeds cell budget %d: %w", capacity, s.maxTableCells, domain.ErrTableTooLarge)
	}
	var keep []bool
	if int64(n)*int64(cols) <= int64(s.maxTableCells) {
		keep = make([]bool, n*cols)
	}
	row := make([]int, cols)
	for a := 1; a <= n; a++ {
		if err := ctx.Err(); err != nil {
			return domain.Solution{}, err
		}
		it := items[a-1]
		for b := capacity; b >= it.Weight; b-- {
			if take := row[b-it.Weight] + it.Value; take > row[b] {
				row[b] = take
				if keep != nil {
					keep[(a-1)*cols+b] = true
				}
			}
		}
	}

	sol := domain.Solution{Value: row[capacity]}
	if keep == nil {
		return sol, nil
	}
	sol.Selected = []int{}
	b := capacity
	for a := n; a >= 1; a-- {
		if keep[(a-1)*cols+b] {
			sol.Selected = append(sol.Selected, items[a-1].Index)
			b -= items[a-1].Weight
		}
	}
	slices.Reverse(sol.Selected)
	return sol, nil
}

// Value computes T[n][capacity] over the first n items in O(capacity) memory.
// It has no cell budget; callers own the allocation.
func Value(capacity, n int, items domain.ItemSet) int {
	if capacity < 0 || n <= 0 {
		return 0
	}
	row := make([]int, capacity+1)
	for a := 1; a <= n; a++ {
		it := items[a-1]
		for b := capacity; b >= it.Weight; b-- {
			row[b] = max(row[b], row[b-it.Weight]+it.Value)
		}
	}
	return row[capacity]
}
