package recursive

import (
	"context"
	"fmt"

	"knapsack/internal/domain"
)

const (
	// DefaultMaxItems bounds the recursion tree at roughly 2^27 calls.
	DefaultMaxItems = 27
	maxSupported    = 62
	pollMask        = 1<<16 - 1
)

// Solver evaluates the include/exclude recurrence top-down without memoization.
type Solver struct {
	maxItems int
}

// NewSolver creates a recursive solver refusing item sets larger than maxItems.
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
func (s *Solver) Name() string { return "recursive" }

// MaxItems returns the largest item count the solver accepts.
func (s *Solver) MaxItems() int { return s.maxItems }

// Solve runs the recurrence over all items and reports the chosen subset.
func (s *Solver) Solve(ctx context.Context, capacity int, items domain.ItemSet) (domain.Solution, error) {
	if err := domain.ValidateCapacity(capacity); err != nil {
		return domain.Solution{}, err
	}
	n := len(items)
	if n > s.maxItems {
		return domain.Solution{}, fmt.Errorf("recursive: %d items exceeds limit %d: %w", n, s.maxItems, domain.ErrTooManyItems)
	}

	w := walker{ctx: ctx, items: items}
	value, mask := w.best(capacity, n)
	if w.err != nil {
		return domain.Solution{}, w.err
	}
	selected := []int{}
	for j := 0; j < n; j++ {
		if mask&(1<<j) != 0 {
			selected = append(selected, items[j].Index)
		}
	}
	return domain.Solution{Value: value, Selected: selected}, nil
}

type walker struct {
	ctx   context.Context
	items domain.ItemSet
	calls uint64
	err   error
}

// best returns the optimum over the first n items and the mask of items taken.
func (w *walker) best(capacity, n int) (int, uint64) {
	if w.err != nil {
		return 0, 0
	}
	w.calls++
	if w.calls&pollMask == 0 {
		if err := w.ctx.Err(); err != nil {
			w.err = err
			return 0, 0
		}
	}
	if n == 0 {
		return 0, 0
	}
	it := w.items[n-1]
	if it.Weight > capacity {
		return w.best(capacity, n-1)
	}
	inValue, inMask := w.best(capacity-it.Weight, n-1)
	inValue += it.Value
	inMask |= 1 << (n - 1)
	exValue, exMask := w.best(capacity, n-1)
	if inValue >= exValue {
		return inValue, inMask
	}
	return exValue, exMask
}

// Value evaluates the bare recurrence over the first n items.
// It has no item limit and no cancellation; callers own the cost.
func Value(capacity, n int, items domain.ItemSet) int {
	if n <= 0 {
		return 0
	}
	it := items[n-1]
	if it.Weight > capacity {
		return Value(capacity, n-1, items)
	}
	return max(it.Value+Value(capacity-it.Weight, n-1, items), Value(capacity, n-1, items))
}
