package summary

import (
	"fmt"
	"strings"

	"knapsack/internal/domain"
)

// ReportSummarizer describes a benchmark report in a few sentences: the best
// value and who found it, how close the greedy solver came, the fastest solver
// and which solvers did not finish.
type ReportSummarizer struct {
	greedy string
}

// NewReportSummarizer creates a summarizer that reports the optimality gap of
// the solver named greedy.
func NewReportSummarizer(greedy string) *ReportSummarizer {
	return &ReportSummarizer{greedy: greedy}
}

// Summarize returns the summary text.
func (s *ReportSummarizer) Summarize(r domain.Report) string {
	best, ok := r.Best()
	if !ok {
		return "No solver completed." + s.notFinished(r)
	}

	var finders []string
	var fastest *domain.Measurement
	for i := range r.Results {
		m := &r.Results[i]
		if m.Status != domain.StatusOK {
			continue
		}
		if m.Solution.Value == best {
			finders = append(finders, m.Solver)
		}
		if m.Timing != nil && (fastest == nil || m.Timing.Median < fastest.Timing.Median) {
			fastest = m
		}
	}

	var out []string
	out = append(out, fmt.Sprintf("Best value %d found by %s.", best, strings.Join(finders, ", ")))
	if g, ok := r.Lookup(s.greedy); ok && g.Status == domain.StatusOK && best > 0 && g.Solution.Value < best {
		pct := 100 * float64(g.Solution.Value) / float64(best)
		out = append(out, fmt.Sprintf("%s reached %d (%.1f%% of best).", s.greedy, g.Solution.Value, pct))
	}
	if fastest != nil {
		out = append(out, fmt.Sprintf("Fastest: %s (median %s).", fastest.Solver, fastest.Timing.Median))
	}
	return strings.Join(out, " ") + s.notFinished(r)
}

func (s *ReportSummarizer) notFinished(r domain.Report) string {
	var parts []string
	for _, m := range r.Results {
		if m.Status == domain.StatusOK {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s (%s)", m.Solver, m.Status, m.Reason))
	}
	if len(parts) == 0 {
		return ""
	}
	return " Not finished: " + strings.Join(parts, "; ") + "."
}
