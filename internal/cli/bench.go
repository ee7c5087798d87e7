package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"knapsack/internal/bench"
	"knapsack/internal/domain"
	"knapsack/internal/history/memory"
	"knapsack/internal/input"
	"knapsack/internal/solver"
	"knapsack/internal/summary"
	"knapsack/internal/tui"
)

var (
	benchProblem problemFlags
	benchReps    int
	benchTimeout time.Duration
	benchSolvers []string
	benchJSON    bool
	benchTUI     bool
)

// isTerminal reports whether stdout can host the interactive UI.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

var benchCmd = &cobra.Command{
	Use:   "bench [file]",
	Short: "Run every solver on a problem and compare value and time",
	Long: `Runs each configured solver several times on the same problem and reports
its value, the number of selected items and the mean/median wall-clock time.

The exhaustive and recursive solvers are skipped above their item limits
(config limits.exhaustive_items and limits.recursive_items); a solver that
exceeds --timeout is reported as timed out and the run continues.

With --tui the results open in an interactive view where the problem can be
re-run at other capacities.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

func init() {
	benchProblem.bind(benchCmd)
	benchCmd.Flags().IntVarP(&benchReps, "reps", "r", 0, "repetitions per solver (default from config)")
	benchCmd.Flags().DurationVar(&benchTimeout, "timeout", 0, "per-repetition solver timeout, e.g. 5s (default from config)")
	benchCmd.Flags().StringSliceVar(&benchSolvers, "solvers", nil, "comma separated solvers to run (default from config)")
	benchCmd.Flags().BoolVar(&benchJSON, "json", false, "output the report as JSON")
	benchCmd.Flags().BoolVar(&benchTUI, "tui", false, "browse results in the interactive terminal UI")
	rootCmd.AddCommand(benchCmd)
}

type benchOutput struct {
	domain.Report
	Seed    uint64 `json:"seed,omitempty"`
	Summary string `json:"summary"`
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchTUI && benchJSON {
		return errors.New("--tui and --json cannot be combined")
	}
	problem, err := benchProblem.load(cmd, args, appConfig)
	if err != nil {
		return err
	}
	harness, err := newHarness(cmd)
	if err != nil {
		return err
	}
	summarizer := summary.NewReportSummarizer(solver.Heuristic)

	if benchTUI {
		return runTUI(cmd, harness, summarizer, problem)
	}

	report, err := harness.Run(cmd.Context(), problem.Capacity, problem.Items)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	text := summarizer.Summarize(report)
	if benchJSON || appConfig.Output.Format == "json" {
		return writeJSON(cmd, benchOutput{Report: report, Seed: problem.Seed, Summary: text})
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "capacity %d, %d items", report.Capacity, report.ItemCount)
	if problem.Seed != 0 {
		fmt.Fprintf(w, ", seed %d", problem.Seed)
	}
	fmt.Fprintf(w, ", %d repetitions\n", report.Repetitions)
	fmt.Fprintln(w, renderReportTable(report))
	fmt.Fprintln(w, text)
	return nil
}

func newHarness(cmd *cobra.Command) (*bench.Harness, error) {
	names := appConfig.Bench.Solvers
	if cmd.Flags().Changed("solvers") {
		names = benchSolvers
	}
	solvers, err := solver.NewAll(names, solverLimits(appConfig))
	if err != nil {
		return nil, err
	}
	cfg := bench.Config{
		Repetitions: appConfig.Bench.Repetitions,
		Timeout:     time.Duration(appConfig.Bench.TimeoutSecs) * time.Second,
		MaxItems:    benchGuards(appConfig),
	}
	if cmd.Flags().Changed("reps") {
		cfg.Repetitions = benchReps
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = benchTimeout
	}
	return bench.NewHarness(solvers, cfg), nil
}

func runTUI(cmd *cobra.Command, harness domain.BenchService, summarizer domain.Summarizer, problem input.Problem) error {
	if !isTerminal() {
		return errors.New("--tui requires an interactive terminal")
	}
	store := memory.NewStorage(appConfig.History.Limit)
	m := tui.New(cmd.Context(), harness, store, summarizer, problem)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		return err
	}
	return nil
}
