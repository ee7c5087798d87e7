package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"knapsack/internal/config"
	"knapsack/internal/input"
	"knapsack/internal/logger"
)

// problemFlags selects where a command's problem comes from: a file, or the
// generator with config defaults overridden by flags.
type problemFlags struct {
	file     string
	capacity int
	items    int
	seed     uint64
}

func (pf *problemFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&pf.file, "file", "f", "", "problem file (capacity, item count, then \"weight value\" lines)")
	cmd.Flags().IntVarP(&pf.capacity, "capacity", "c", 0, "capacity of a generated problem")
	cmd.Flags().IntVarP(&pf.items, "items", "n", 0, "item count of a generated problem")
	cmd.Flags().Uint64Var(&pf.seed, "seed", 0, "seed of a generated problem (0 picks one)")
}

func (pf *problemFlags) load(cmd *cobra.Command, args []string, cfg *config.AppConfig) (input.Problem, error) {
	file := pf.file
	if len(args) > 0 {
		if file != "" {
			return input.Problem{}, errors.New("give the problem file either as argument or with --file, not both")
		}
		file = args[0]
	}
	if file != "" {
		if cmd.Flags().Changed("capacity") || cmd.Flags().Changed("items") || cmd.Flags().Changed("seed") {
			return input.Problem{}, errors.New("--capacity, --items and --seed only apply to generated problems")
		}
		logger.Info("reading %s", file)
		return input.ParseFile(file)
	}

	capacity, items, seed := cfg.Generator.Capacity, cfg.Generator.Items, cfg.Generator.Seed
	if cmd.Flags().Changed("capacity") {
		capacity = pf.capacity
	}
	if cmd.Flags().Changed("items") {
		items = pf.items
	}
	if cmd.Flags().Changed("seed") {
		seed = pf.seed
	}
	gen := input.NewGenerator(seed)
	logger.Info("generating capacity=%d items=%d seed=%d", capacity, items, gen.Seed())
	return gen.Generate(capacity, items)
}
