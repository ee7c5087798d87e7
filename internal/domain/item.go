package domain

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"
)

// Pair is a raw (weight, value) record as read from input, before indexing.
type Pair struct {
	Weight int
	Value  int
}

// Item is a single knapsack candidate. Index is the 1-based position of the item
// in the original input and survives every reordering a solver performs.
type Item struct {
	Weight int
	Value  int
	Index  int
	Ratio  float64
}

// NewItem builds an item and derives its value/weight ratio.
// A zero-weight item has an infinite ratio.
func NewItem(weight, value, index int) (Item, error) {
	if weight < 0 || value < 0 {
		return Item{}, fmt.Errorf("%w: item %d has weight %d, value %d", ErrInvalidItem, index, weight, value)
	}
	if index < 1 {
		return Item{}, fmt.Errorf("%w: item index %d is not 1-based", ErrInvalidItem, index)
	}
	ratio := math.Inf(1)
	if weight > 0 {
		ratio = float64(value) / float64(weight)
	}
	return Item{Weight: weight, Value: value, Index: index, Ratio: ratio}, nil
}

// CompareRatio orders two items by value/weight without floating point.
// It returns -1, 0 or +1 as its ratio is lower, equal or higher than o's.
func (it Item) CompareRatio(o Item) int {
	switch {
	case it.Weight == 0 && o.Weight == 0:
		return 0
	case it.Weight == 0:
		return 1
	case o.Weight == 0:
		return -1
	}
	// Weights and values are non-negative, so the products fit in 128 unsigned bits.
	lhsHi, lhsLo := bits.Mul64(uint64(it.Value), uint64(o.Weight))
	rhsHi, rhsLo := bits.Mul64(uint64(o.Value), uint64(it.Weight))
	if c := cmp.Compare(lhsHi, rhsHi); c != 0 {
		return c
	}
	return cmp.Compare(lhsLo, rhsLo)
}

// ItemSet is the ordered item collection every solver works on.
type ItemSet []Item

// NewItemSet indexes raw pairs in input order.
func NewItemSet(pairs []Pair) (ItemSet, error) {
	items := make(ItemSet, 0, len(pairs))
	for i, p := range pairs {
		it, err := NewItem(p.Weight, p.Value, i+1)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// MustItemSet is NewItemSet for literals known to be valid. It panics otherwise.
func MustItemSet(pairs ...Pair) ItemSet {
	items, err := NewItemSet(pairs)
	if err != nil {
		panic(err)
	}
	return items
}

// Len returns the item count.
func (s ItemSet) Len() int { return len(s) }

// TotalValue sums the value of every item.
func (s ItemSet) TotalValue() int {
	total := 0
	for _, it := range s {
		total += it.Value
	}
	return total
}

// TotalWeight sums the weight of every item.
func (s ItemSet) TotalWeight() int {
	total := 0
	for _, it := range s {
		total += it.Weight
	}
	return total
}

// Clone returns a copy that can be reordered without touching s.
func (s ItemSet) Clone() ItemSet {
	out := make(ItemSet, len(s))
	copy(out, s)
	return out
}

// Pairs strips indexes and ratios, giving back the raw records.
func (s ItemSet) Pairs() []Pair {
	out := make([]Pair, len(s))
	for i, it := range s {
		out[i] = Pair{Weight: it.Weight, Value: it.Value}
	}
	return out
}

// ValidateCapacity rejects a negative capacity.
func ValidateCapacity(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return nil
}
