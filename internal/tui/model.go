package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"knapsack/internal/domain"
	"knapsack/internal/input"
)

// reportMsg carries the outcome of a benchmark run back into Update.
type reportMsg struct {
	report domain.Report
	err    error
}

// Model is the Bubble Tea model for the benchmark browser.
type Model struct {
	ctx        context.Context
	service    domain.BenchService
	store      domain.ReportStore
	summarizer domain.Summarizer
	items      domain.ItemSet
	capacity   int
	seed       uint64

	input    textinput.Model
	viewport viewport.Model
	reports  []domain.Report
	current  int
	cursor   int
	status   string
	running  bool
	ready    bool
}

// New creates a new TUI model. The first benchmark starts from Init.
func New(ctx context.Context, service domain.BenchService, store domain.ReportStore, summarizer domain.Summarizer, problem input.Problem) Model {
	ti := textinput.New()
	ti.Prompt = "capacity> "
	ti.Placeholder = "Type a capacity and press Enter to re-run"
	ti.Focus()
	ti.CharLimit = 18
	vp := viewport.New(0, 0)
	return Model{
		ctx:        ctx,
		service:    service,
		store:      store,
		summarizer: summarizer,
		items:      problem.Items,
		capacity:   problem.Capacity,
		seed:       problem.Seed,
		input:      ti,
		viewport:   vp,
		status:     "Running benchmark...",
		running:    true,
	}
}

// Init starts the first benchmark and the text input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.run(m.capacity))
}

func (m Model) run(capacity int) tea.Cmd {
	ctx, service, items := m.ctx, m.service, m.items
	return func() tea.Msg {
		r, err := service.Run(ctx, capacity, items)
		return reportMsg{report: r, err: err}
	}
}

// Update handles key, window and benchmark events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, dh := detailBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 3 + len(m.currentResults()) + 4 + ih + 1 // header, summary, table, input, status
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-reserved-dh)
		m.viewport.SetContent(m.renderDetail())
		return m, nil
	case reportMsg:
		m.running = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		if err := m.store.Add(msg.report); err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		reports, err := m.store.List()
		if err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		m.reports = reports
		m.current = len(m.reports) - 1
		m.cursor = 0
		m.status = fmt.Sprintf("Finished run %d (capacity %d).", len(m.reports), msg.report.Capacity)
		m.viewport.SetContent(m.renderDetail())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if m.running {
				return m, nil
			}
			v := strings.TrimSpace(m.input.Value())
			if v == "" {
				return m, nil
			}
			capacity, err := strconv.Atoi(v)
			if err != nil || capacity < 0 {
				m.status = fmt.Sprintf("Not a valid capacity: %q", v)
				return m, nil
			}
			m.input.SetValue("")
			m.running = true
			m.status = fmt.Sprintf("Running benchmark at capacity %d...", capacity)
			return m, m.run(capacity)
		case "down":
			if n := len(m.currentResults()); n > 0 {
				m.cursor = (m.cursor + 1) % n
				m.viewport.SetContent(m.renderDetail())
			}
			return m, nil
		case "up":
			if n := len(m.currentResults()); n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
				m.viewport.SetContent(m.renderDetail())
			}
			return m, nil
		case "pgup":
			if m.current > 0 {
				m.current--
				m.cursor = 0
				m.viewport.SetContent(m.renderDetail())
			}
			return m, nil
		case "pgdown":
			if m.current < len(m.reports)-1 {
				m.current++
				m.cursor = 0
				m.viewport.SetContent(m.renderDetail())
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the layout: results of the current run, the detail of the
// highlighted solver, the capacity prompt and the status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	title := fmt.Sprintf("Knapsack Benchmark  %d items", m.items.Len())
	if m.seed != 0 {
		title += fmt.Sprintf("  seed %d", m.seed)
	}
	if len(m.reports) > 0 {
		r := m.reports[m.current]
		title += fmt.Sprintf("  capacity %d  run %d/%d", r.Capacity, m.current+1, len(m.reports))
	}
	header := titleStyle.Render(title)
	summary := summaryStyle.Width(max(20, m.viewport.Width)).Render(m.summary())
	results := m.renderResults()
	detail := detailBoxStyle.Render(m.viewport.View())
	in := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status + "  (↑/↓ solver, PgUp/PgDn run, Esc quit)")
	return header + "\n" + summary + "\n" + results + "\n" + detail + "\n" + in + "\n" + status
}

func (m Model) currentResults() []domain.Measurement {
	if len(m.reports) == 0 {
		return nil
	}
	return m.reports[m.current].Results
}

func (m Model) summary() string {
	if len(m.reports) == 0 {
		return "No results yet."
	}
	return m.summarizer.Summarize(m.reports[m.current])
}

func (m Model) renderResults() string {
	results := m.currentResults()
	if len(results) == 0 {
		return ""
	}
	lines := []string{headerRowStyle.Render(fmt.Sprintf("  %-11s %-8s %10s %12s", "solver", "status", "value", "median"))}
	for i, r := range results {
		value, median := "-", "-"
		if r.Solution != nil {
			value = strconv.Itoa(r.Solution.Value)
		}
		if r.Timing != nil && r.Status == domain.StatusOK {
			median = r.Timing.Median.Round(time.Microsecond).String()
		}
		line := fmt.Sprintf("%-11s %-8s %10s %12s", r.Solver, r.Status, value, median)
		if i == m.cursor {
			lines = append(lines, selectedRowStyle.Render("> "+line))
			continue
		}
		style := rowStyle
		if r.Status != domain.StatusOK {
			style = mutedRowStyle
		}
		lines = append(lines, style.Render("  "+line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	results := m.currentResults()
	if len(results) == 0 {
		return "No results yet."
	}
	r := results[m.cursor]
	var b strings.Builder
	fmt.Fprintf(&b, "%s  (%s)\n\n", r.Solver, r.Status)
	if r.Reason != "" {
		fmt.Fprintf(&b, "%s\n", r.Reason)
	}
	if r.Solution != nil {
		fmt.Fprintf(&b, "value %d\n", r.Solution.Value)
		if r.Solution.Selected == nil {
			b.WriteString("selection not tracked\n")
		} else {
			fmt.Fprintf(&b, "weight %d, %d items selected\n", r.Solution.Weight(m.items), len(r.Solution.Selected))
			b.WriteString(highlightSelected(r.Solution.Selected))
			b.WriteString("\n")
		}
	}
	if r.Timing != nil {
		runs := make([]string, len(r.Timing.Runs))
		for i, d := range r.Timing.Runs {
			runs[i] = d.String()
		}
		fmt.Fprintf(&b, "\nruns: %s\nmean %s  median %s  min %s  max %s\n",
			strings.Join(runs, ", "), r.Timing.Mean, r.Timing.Median, r.Timing.Min, r.Timing.Max)
	}
	return b.String()
}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	summaryStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerRowStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	rowStyle         = lipgloss.NewStyle()
	mutedRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	highlightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	detailBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func highlightSelected(indexes []int) string {
	if len(indexes) == 0 {
		return "(empty knapsack)"
	}
	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = highlightStyle.Render("#" + strconv.Itoa(idx))
	}
	return strings.Join(parts, " ")
}
