package cli

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"knapsack/internal/domain"
)

func mixedReport() domain.Report {
	return domain.Report{
		Capacity:  10,
		ItemCount: 30,
		Results: []domain.Measurement{
			{Solver: "exhaustive", Status: domain.StatusSkipped, Reason: "30 items exceeds limit 22"},
			{
				Solver:   "dynamic",
				Status:   domain.StatusOK,
				Solution: &domain.Solution{Value: 90, Selected: []int{2, 4}},
				Timing:   &domain.Timing{Runs: []time.Duration{time.Millisecond}, Mean: time.Millisecond, Median: time.Millisecond},
			},
		},
	}
}

func TestReportRowStyle(t *testing.T) {
	r := mixedReport()

	assert.True(t, reportRowStyle(r, 0).GetBold(), "header row")
	assert.Equal(t, lipgloss.Color("8"), reportRowStyle(r, 1).GetForeground(), "skipped solver is dimmed")
	assert.Equal(t, lipgloss.NoColor{}, reportRowStyle(r, 2).GetForeground(), "ok solver is not dimmed")
	assert.Equal(t, lipgloss.NoColor{}, reportRowStyle(r, 3).GetForeground(), "rows past the results")
}

func TestRenderReportTable(t *testing.T) {
	out := renderReportTable(mixedReport())

	assert.Contains(t, out, "SOLVER")
	assert.Contains(t, out, "exhaustive")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "dynamic")
	assert.Contains(t, out, "90")
}

func TestReportRow(t *testing.T) {
	r := mixedReport()

	assert.Equal(t, []string{"exhaustive", "skipped", "-", "-", "-", "-", "30 items exceeds limit 22"}, reportRow(r.Results[0]))
	assert.Equal(t, []string{"dynamic", "ok", "90", "2", "1ms", "1ms", ""}, reportRow(r.Results[1]))
}
