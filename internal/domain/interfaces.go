package domain

import "context"

// Solver computes a 0/1 knapsack solution for a capacity and an item set.
// Implementations are stateless between calls and must not reorder items in place.
type Solver interface {
	Name() string
	Solve(ctx context.Context, capacity int, items ItemSet) (Solution, error)
}

// Summarizer produces a short human readable account of a benchmark report.
type Summarizer interface {
	Summarize(report Report) string
}

// ReportStore keeps benchmark reports for later browsing.
type ReportStore interface {
	Add(report Report) error
	Get(id string) (Report, error)
	List() ([]Report, error)
	Clear() error
}

// BenchService defines the operations exposed by the application core.
type BenchService interface {
	Run(ctx context.Context, capacity int, items ItemSet) (Report, error)
}
