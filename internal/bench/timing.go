package bench

import (
	"slices"
	"time"

	"knapsack/internal/domain"
)

// Measure calls fn reps times and aggregates the wall-clock duration of each call.
// It stops at the first error and returns the timings collected so far with it.
func Measure(reps int, fn func() error) (domain.Timing, error) {
	return measure(reps, time.Now, fn)
}

func measure(reps int, now func() time.Time, fn func() error) (domain.Timing, error) {
	if reps <= 0 {
		reps = 1
	}
	runs := make([]time.Duration, 0, reps)
	for i := 0; i < reps; i++ {
		start := now()
		err := fn()
		runs = append(runs, now().Sub(start))
		if err != nil {
			return summarize(runs), err
		}
	}
	return summarize(runs), nil
}

func summarize(runs []time.Duration) domain.Timing {
	t := domain.Timing{Runs: runs}
	if len(runs) == 0 {
		return t
	}
	sorted := slices.Clone(runs)
	slices.Sort(sorted)
	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	t.Mean = total / time.Duration(len(sorted))
	t.Min = sorted[0]
	t.Max = sorted[len(sorted)-1]
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		t.Median = sorted[mid]
	} else {
		t.Median = (sorted[mid-1] + sorted[mid]) / 2
	}
	return t
}
