package heuristic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knapsack/internal/domain"
)

func TestSolve_PacksByRatio(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 5, Value: 10}, domain.Pair{Weight: 4, Value: 40}, domain.Pair{Weight: 6, Value: 30}, domain.Pair{Weight: 3, Value: 50})

	sol, err := NewSolver().Solve(context.Background(), 10, items)
	require.NoError(t, err)
	// ratios 2, 10, 5, 16.7: takes 4 then 2, after which neither 3 nor 1 fits
	assert.Equal(t, 90, sol.Value)
	assert.Equal(t, []int{4, 2}, sol.Selected)
	assert.NoError(t, sol.Validate(10, items))
}

func TestSolve_NotAlwaysOptimal(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 10, Value: 60}, domain.Pair{Weight: 20, Value: 100}, domain.Pair{Weight: 30, Value: 120})

	sol, err := NewSolver().Solve(context.Background(), 50, items)
	require.NoError(t, err)
	assert.Equal(t, 160, sol.Value)
	assert.Equal(t, []int{1, 2}, sol.Selected)
}

func TestSolve_TieBreaksOnValue(t *testing.T) {
	// same ratio 2; only one fits
	items := domain.MustItemSet(domain.Pair{Weight: 3, Value: 6}, domain.Pair{Weight: 5, Value: 10})

	sol, err := NewSolver().Solve(context.Background(), 5, items)
	require.NoError(t, err)
	assert.Equal(t, 10, sol.Value)
	assert.Equal(t, []int{2}, sol.Selected)
}

func TestSolve_SkipsItemsHeavierThanCapacity(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 4, Value: 100})

	sol, err := NewSolver().Solve(context.Background(), 3, items)
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Value)
	assert.Empty(t, sol.Selected)
}

func TestSolve_ZeroCapacity(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 1, Value: 5}, domain.Pair{Weight: 2, Value: 7})

	sol, err := NewSolver().Solve(context.Background(), 0, items)
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Value)
}

func TestSolve_ZeroWeightRanksFirst(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 1, Value: 100}, domain.Pair{Weight: 0, Value: 1})

	sol, err := NewSolver().Solve(context.Background(), 1, items)
	require.NoError(t, err)
	assert.Equal(t, 101, sol.Value)
	assert.Equal(t, []int{2, 1}, sol.Selected)
}

func TestSolve_RejectsNegativeCapacity(t *testing.T) {
	_, err := NewSolver().Solve(context.Background(), -5, domain.MustItemSet(domain.Pair{Weight: 1, Value: 1}))
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)
}

func TestOrder_StableOnFullTies(t *testing.T) {
	items := domain.MustItemSet(domain.Pair{Weight: 2, Value: 4}, domain.Pair{Weight: 1, Value: 2}, domain.Pair{Weight: 2, Value: 4}, domain.Pair{Weight: 1, Value: 5})

	order := Order(items)
	got := make([]int, len(order))
	for i, it := range order {
		got[i] = it.Index
	}
	assert.Equal(t, []int{4, 1, 3, 2}, got)
	// input untouched
	assert.Equal(t, 1, items[0].Index)
}
