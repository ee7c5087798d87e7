// Package cli implements the knapsack command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"knapsack/internal/config"
	"knapsack/internal/logger"
	"knapsack/internal/solver"
)

var (
	version = "dev"

	cfgPath     string
	verboseFlag bool

	// appConfig is loaded before any subcommand runs.
	appConfig *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "knapsack",
	Short: "Solve and benchmark 0/1 knapsack problems",
	Long: `knapsack solves the 0/1 knapsack problem with four strategies and compares them:

  exhaustive  enumerate every subset (optimal, exponential)
  heuristic   greedy by value/weight ratio (fast, not always optimal)
  recursive   naive include/exclude recursion (optimal, exponential)
  dynamic     bottom-up tabulation (optimal, pseudo-polynomial)

Problems are read from a text file (capacity, item count, then one
"weight value" pair per line) or generated at random.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML or TOML config (default $KNAPSACK_CONFIG, ./knapsack.yaml, ~/.config/knapsack/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log solver progress to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	var err error
	var used string
	if cfgPath == "" {
		appConfig, used, err = config.LoadDefault()
	} else {
		appConfig, err = config.Load(cfgPath)
		used = cfgPath
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("config: %s", used)
	return nil
}

func solverLimits(cfg *config.AppConfig) solver.Limits {
	return solver.Limits{
		ExhaustiveItems: cfg.Limits.ExhaustiveItems,
		RecursiveItems:  cfg.Limits.RecursiveItems,
		TableCells:      cfg.Limits.TableCells,
	}
}

func benchGuards(cfg *config.AppConfig) map[string]int {
	return map[string]int{
		solver.Exhaustive: cfg.Limits.ExhaustiveItems,
		solver.Recursive:  cfg.Limits.RecursiveItems,
	}
}
