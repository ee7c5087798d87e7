package input

import (
	"fmt"
	"math/rand/v2"

	"knapsack/internal/domain"
)

// Generator produces random problems with weights in [1, ceil(capacity/5)] and
// values in [1, ceil(capacity/3)], so a typical knapsack holds a handful of items.
type Generator struct {
	seed uint64
	rng  *rand.Rand
}

// NewGenerator creates a generator. A zero seed picks a random one; Seed reports it.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	return &Generator{seed: seed, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Seed returns the seed the generator was built from.
func (g *Generator) Seed() uint64 { return g.seed }

// Generate returns a problem with count random items.
func (g *Generator) Generate(capacity, count int) (Problem, error) {
	if err := domain.ValidateCapacity(capacity); err != nil {
		return Problem{}, err
	}
	if count < 0 {
		return Problem{}, fmt.Errorf("%w: item count %d", domain.ErrInvalidInput, count)
	}
	maxWeight := max(1, ceilDiv(capacity, 5))
	maxValue := max(1, ceilDiv(capacity, 3))
	pairs := make([]domain.Pair, count)
	for i := range pairs {
		pairs[i] = domain.Pair{
			Weight: 1 + g.rng.IntN(maxWeight),
			Value:  1 + g.rng.IntN(maxValue),
		}
	}
	items, err := domain.NewItemSet(pairs)
	if err != nil {
		return Problem{}, err
	}
	return Problem{Capacity: capacity, Items: items, Seed: g.seed}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
