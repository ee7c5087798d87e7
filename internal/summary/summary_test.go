package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"knapsack/internal/domain"
)

func ok(name string, value int, median time.Duration) domain.Measurement {
	return domain.Measurement{
		Solver:   name,
		Status:   domain.StatusOK,
		Solution: &domain.Solution{Value: value},
		Timing:   &domain.Timing{Median: median},
	}
}

func TestSummarize_FullReport(t *testing.T) {
	r := domain.Report{Results: []domain.Measurement{
		ok("exhaustive", 220, 3*time.Millisecond),
		ok("heuristic", 160, 2*time.Microsecond),
		ok("dynamic", 220, 40*time.Microsecond),
		{Solver: "recursive", Status: domain.StatusSkipped, Reason: "30 items exceeds limit 27"},
	}}

	got := NewReportSummarizer("heuristic").Summarize(r)

	assert.Equal(t,
		"Best value 220 found by exhaustive, dynamic. heuristic reached 160 (72.7% of best). "+
			"Fastest: heuristic (median 2µs). Not finished: recursive skipped (30 items exceeds limit 27).",
		got)
}

func TestSummarize_GreedyOptimalHasNoGapSentence(t *testing.T) {
	r := domain.Report{Results: []domain.Measurement{
		ok("heuristic", 90, time.Microsecond),
		ok("dynamic", 90, 2*time.Microsecond),
	}}

	got := NewReportSummarizer("heuristic").Summarize(r)

	assert.Equal(t, "Best value 90 found by heuristic, dynamic. Fastest: heuristic (median 1µs).", got)
}

func TestSummarize_NothingCompleted(t *testing.T) {
	r := domain.Report{Results: []domain.Measurement{
		{Solver: "dynamic", Status: domain.StatusFailed, Reason: "boom"},
	}}

	got := NewReportSummarizer("heuristic").Summarize(r)

	assert.Equal(t, "No solver completed. Not finished: dynamic failed (boom).", got)
}
