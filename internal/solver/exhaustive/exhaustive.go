package exhaustive

import (
	"context"
	"fmt"

	"knapsack/internal/domain"
)

const (
	// DefaultMaxItems bounds the power set at 2^22 subsets.
	DefaultMaxItems = 22
	// maxSupported keeps the subset mask inside a uint64.
	maxSupported = 62
	pollMask     = 1<<16 - 1
)

// Solver enumerates the power set of the items, treating every subset as a
// bitmask over item positions. Weight and value are accumulated per mask, so no
// subset is ever materialized.
type Solver struct {
	maxItems int
}

// NewSolver creates an exhaustive solver refusing item sets larger than maxItems.
// A non-positive maxItems selects DefaultMaxItems.
func NewSolver(maxItems int) *Solver {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if maxItems > maxSupported {
		maxItems = maxSupported
	}
	return &Solver{maxItems: maxItems}
}

// Name returns the identifier of this solver implementation.
func (s *Solver) Name() string { return "exhaustive" }

// MaxItems returns the largest item count the solver accepts.
func (s *Solver) MaxItems() int { return s.maxItems }

// Solve returns the best feasible subset. The empty subset is always feasible,
// so the result is never worse than zero.
func (s *Solver) Solve(ctx context.Context, capacity int, items domain.ItemSet) (domain.Solution, error) {
	if err := domain.ValidateCapacity(capacity); err != nil {
		return domain.Solution{}, err
	}
	n := len(items)
	if n > s.maxItems {
		return domain.Solution{}, fmt.Errorf("exhaustive: %d items exceeds limit %d: %w", n, s.maxItems, domain.ErrTooManyItems)
	}

	var bestMask uint64
	bestValue := 0
	total := uint64(1) << n
	for mask := uint64(0); mask < total; mask++ {
		if mask&pollMask == 0 {
			if err := ctx.Err(); err != nil {
				return domain.Solution{}, err
			}
		}
		weight, value := 0, 0
		feasible := true
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			weight += items[j].Weight
			if weight > capacity {
				feasible = false
				break
			}
			value += items[j].Value
		}
		if feasible && value > bestValue {
			bestValue = value
			bestMask = mask
		}
	}
	return domain.Solution{Value: bestValue, Selected: maskIndexes(bestMask, items)}, nil
}

func maskIndexes(mask uint64, items domain.ItemSet) []int {
	selected := []int{}
	for j := range items {
		if mask&(1<<j) != 0 {
			selected = append(selected, items[j].Index)
		}
	}
	return selected
}
