package domain

import (
	"fmt"
	"time"
)

// Solution is what a solver returns: the best value found and, when the
// solver tracks it, the 1-based indexes of the items that produce it.
type Solution struct {
	Value    int   `json:"value"`
	Selected []int `json:"selected,omitempty"`
}

// Weight sums the weight of the selected items. Unknown indexes are ignored;
// use Validate to detect them.
func (s Solution) Weight(items ItemSet) int {
	byIndex := indexItems(items)
	total := 0
	for _, idx := range s.Selected {
		if it, ok := byIndex[idx]; ok {
			total += it.Weight
		}
	}
	return total
}

// Validate checks the selection against the item set and capacity.
// A solution without a selection is valid as long as its value is not negative.
func (s Solution) Validate(capacity int, items ItemSet) error {
	if s.Value < 0 {
		return fmt.Errorf("%w: negative value %d", ErrInvalidInput, s.Value)
	}
	if s.Selected == nil {
		return nil
	}
	byIndex := indexItems(items)
	seen := make(map[int]struct{}, len(s.Selected))
	weight, value := 0, 0
	for _, idx := range s.Selected {
		it, ok := byIndex[idx]
		if !ok {
			return fmt.Errorf("%w: index %d not in item set", ErrIndexMismatch, idx)
		}
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: index %d selected twice", ErrIndexMismatch, idx)
		}
		seen[idx] = struct{}{}
		weight += it.Weight
		value += it.Value
	}
	if weight > capacity {
		return fmt.Errorf("%w: weight %d > capacity %d", ErrOverCapacity, weight, capacity)
	}
	if value != s.Value {
		return fmt.Errorf("%w: selected value %d, reported %d", ErrIndexMismatch, value, s.Value)
	}
	return nil
}

func indexItems(items ItemSet) map[int]Item {
	m := make(map[int]Item, len(items))
	for _, it := range items {
		m[it.Index] = it
	}
	return m
}

// Status is the outcome of one solver inside a benchmark run.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusTimeout Status = "timeout"
	StatusFailed  Status = "failed"
)

// Timing aggregates the wall-clock durations of repeated runs.
type Timing struct {
	Runs   []time.Duration `json:"runs"`
	Mean   time.Duration   `json:"mean"`
	Median time.Duration   `json:"median"`
	Min    time.Duration   `json:"min"`
	Max    time.Duration   `json:"max"`
}

// Measurement is one row of a benchmark report.
type Measurement struct {
	Solver   string    `json:"solver"`
	Status   Status    `json:"status"`
	Solution *Solution `json:"solution,omitempty"`
	Timing   *Timing   `json:"timing,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}

// Report is the result of running every configured solver against one problem.
type Report struct {
	ID          string        `json:"id"`
	Capacity    int           `json:"capacity"`
	ItemCount   int           `json:"item_count"`
	Repetitions int           `json:"repetitions"`
	StartedAt   time.Time     `json:"started_at"`
	Results     []Measurement `json:"results"`
}

// Best returns the highest value among successful measurements, and false when none succeeded.
func (r Report) Best() (int, bool) {
	best, found := 0, false
	for _, m := range r.Results {
		if m.Status != StatusOK || m.Solution == nil {
			continue
		}
		if !found || m.Solution.Value > best {
			best = m.Solution.Value
			found = true
		}
	}
	return best, found
}

// Lookup returns the measurement for the named solver.
func (r Report) Lookup(name string) (Measurement, bool) {
	for _, m := range r.Results {
		if m.Solver == name {
			return m, true
		}
	}
	return Measurement{}, false
}
