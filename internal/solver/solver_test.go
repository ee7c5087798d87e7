package solver

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knapsack/internal/domain"
)

func randomProblem(t *testing.T, r *rand.Rand, n int) (int, domain.ItemSet) {
	t.Helper()
	capacity := r.IntN(60)
	pairs := make([]domain.Pair, n)
	for i := range pairs {
		pairs[i] = domain.Pair{Weight: 1 + r.IntN(20), Value: 1 + r.IntN(30)}
	}
	items, err := domain.NewItemSet(pairs)
	require.NoError(t, err)
	return capacity, items
}

func solve(t *testing.T, name string, capacity int, items domain.ItemSet) domain.Solution {
	t.Helper()
	s, err := New(name, Limits{})
	require.NoError(t, err)
	sol, err := s.Solve(context.Background(), capacity, items)
	require.NoError(t, err)
	return sol
}

func TestNew_KnownAndUnknown(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name, Limits{})
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	s, err := New("dp", Limits{})
	require.NoError(t, err)
	assert.Equal(t, Dynamic, s.Name())

	_, err = New("simplex", Limits{})
	assert.ErrorIs(t, err, domain.ErrUnknownSolver)
}

func TestNewAll(t *testing.T) {
	all, err := NewAll(nil, Limits{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	some, err := NewAll([]string{Dynamic, Heuristic}, Limits{})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, Dynamic, some[0].Name())

	_, err = NewAll([]string{Dynamic, "bogus"}, Limits{})
	assert.ErrorIs(t, err, domain.ErrUnknownSolver)
}

func TestSolvers_AgreeOnSmallInputs(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n <= 20; n++ {
		capacity, items := randomProblem(t, r, n)

		dp := solve(t, Dynamic, capacity, items)
		ex := solve(t, Exhaustive, capacity, items)
		rec := solve(t, Recursive, capacity, items)
		greedy := solve(t, Heuristic, capacity, items)

		assert.Equal(t, ex.Value, dp.Value, "n=%d capacity=%d", n, capacity)
		assert.Equal(t, rec.Value, dp.Value, "n=%d capacity=%d", n, capacity)
		assert.LessOrEqual(t, greedy.Value, dp.Value, "n=%d capacity=%d", n, capacity)

		for _, sol := range []domain.Solution{dp, ex, rec, greedy} {
			assert.LessOrEqual(t, sol.Value, items.TotalValue())
			assert.NoError(t, sol.Validate(capacity, items))
			assert.LessOrEqual(t, sol.Weight(items), capacity)
		}
	}
}

func TestDynamic_MonotoneInCapacity(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	_, items := randomProblem(t, r, 15)

	prev := 0
	for capacity := 0; capacity <= 120; capacity++ {
		got := solve(t, Dynamic, capacity, items).Value
		assert.GreaterOrEqual(t, got, prev, "capacity=%d", capacity)
		prev = got
	}
}

func TestDynamic_MonotoneInItemValue(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	capacity, items := randomProblem(t, r, 12)
	base := solve(t, Dynamic, capacity, items).Value

	for i := range items {
		pairs := items.Pairs()
		pairs[i].Value += 1 + r.IntN(10)
		raised, err := domain.NewItemSet(pairs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, solve(t, Dynamic, capacity, raised).Value, base, "item %d", i+1)
	}
}

func TestSolvers_ZeroCapacityYieldsZero(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 3, Value: 4}, domain.Pair{Weight: 1, Value: 9}, domain.Pair{Weight: 7, Value: 2})
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0, solve(t, name, 0, items).Value)
		})
	}
}

func TestSolvers_SingleOversizedItemYieldsZero(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 11, Value: 50})
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0, solve(t, name, 10, items).Value)
		})
	}
}

func TestSolvers_RejectNegativeCapacity(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 1, Value: 1})
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, Limits{})
			require.NoError(t, err)
			_, err = s.Solve(context.Background(), -1, items)
			assert.ErrorIs(t, err, domain.ErrInvalidCapacity)
		})
	}
}
