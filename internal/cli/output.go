package cli

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"knapsack/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = cellStyle.Copy().Foreground(lipgloss.Color("8"))
)

func renderReportTable(r domain.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SOLVER", "STATUS", "VALUE", "ITEMS", "MEDIAN", "MEAN", "NOTE").
		StyleFunc(func(row, _ int) lipgloss.Style { return reportRowStyle(r, row) })
	for _, m := range r.Results {
		t.Row(reportRow(m)...)
	}
	return t.String()
}

// reportRowStyle styles a table row: row 0 is the header, data rows start at 1.
func reportRowStyle(r domain.Report, row int) lipgloss.Style {
	if row == 0 {
		return headerStyle
	}
	if i := row - 1; i < len(r.Results) && r.Results[i].Status != domain.StatusOK {
		return dimStyle
	}
	return cellStyle
}

func reportRow(m domain.Measurement) []string {
	value, count, median, mean := "-", "-", "-", "-"
	if m.Solution != nil {
		value = strconv.Itoa(m.Solution.Value)
		if m.Solution.Selected != nil {
			count = strconv.Itoa(len(m.Solution.Selected))
		}
	}
	if m.Timing != nil && m.Status == domain.StatusOK {
		median = formatDuration(m.Timing.Median)
		mean = formatDuration(m.Timing.Mean)
	}
	return []string{m.Solver, string(m.Status), value, count, median, mean, m.Reason}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
