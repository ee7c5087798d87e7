package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"knapsack/internal/domain"
	"knapsack/internal/input"
	"knapsack/internal/solver"
)

var (
	solveProblem problemFlags
	solveSolver  string
	solveJSON    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a problem with one solver",
	Long: `Solves a knapsack problem with a single solver and prints the value and
the 1-based indexes of the selected items. Without a file, a random problem
is generated from the config defaults and the --capacity/--items/--seed flags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveProblem.bind(solveCmd)
	solveCmd.Flags().StringVarP(&solveSolver, "solver", "s", solver.Dynamic, "solver: "+strings.Join(solver.Names(), ", "))
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "output the solution as JSON")
	rootCmd.AddCommand(solveCmd)
}

type solveOutput struct {
	Solver    string          `json:"solver"`
	Capacity  int             `json:"capacity"`
	ItemCount int             `json:"item_count"`
	Seed      uint64          `json:"seed,omitempty"`
	Weight    int             `json:"weight"`
	Solution  domain.Solution `json:"solution"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	problem, err := solveProblem.load(cmd, args, appConfig)
	if err != nil {
		return err
	}
	s, err := solver.New(solveSolver, solverLimits(appConfig))
	if err != nil {
		return err
	}
	sol, err := s.Solve(cmd.Context(), problem.Capacity, problem.Items)
	if err != nil {
		return fmt.Errorf("%s failed: %w", s.Name(), err)
	}

	out := solveOutput{
		Solver:    s.Name(),
		Capacity:  problem.Capacity,
		ItemCount: problem.Items.Len(),
		Seed:      problem.Seed,
		Weight:    sol.Weight(problem.Items),
		Solution:  sol,
	}
	if solveJSON || appConfig.Output.Format == "json" {
		return writeJSON(cmd, out)
	}
	return writeSolution(cmd, out, problem)
}

func writeSolution(cmd *cobra.Command, out solveOutput, problem input.Problem) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "solver:   %s\n", out.Solver)
	fmt.Fprintf(w, "capacity: %d\n", out.Capacity)
	fmt.Fprintf(w, "items:    %d\n", out.ItemCount)
	if problem.Seed != 0 {
		fmt.Fprintf(w, "seed:     %d\n", problem.Seed)
	}
	fmt.Fprintf(w, "value:    %d\n", out.Solution.Value)
	if out.Solution.Selected == nil {
		fmt.Fprintln(w, "selected: (not tracked)")
		return nil
	}
	fmt.Fprintf(w, "weight:   %d\n", out.Weight)
	fmt.Fprintf(w, "selected: %s\n", joinInts(out.Solution.Selected))
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
