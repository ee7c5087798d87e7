package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"knapsack/internal/input"
)

var (
	genCapacity int
	genItems    int
	genSeed     uint64
	genOut      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a random problem in the text input format",
	Long: `Generates a random problem with weights in [1, ceil(capacity/5)] and values
in [1, ceil(capacity/3)] and writes it in the format read by solve and bench.
The seed is printed to stderr so the problem can be regenerated.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&genCapacity, "capacity", "c", 0, "knapsack capacity (default from config)")
	generateCmd.Flags().IntVarP(&genItems, "items", "n", 0, "number of items (default from config)")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "random seed (0 picks one)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	capacity, items, seed := appConfig.Generator.Capacity, appConfig.Generator.Items, appConfig.Generator.Seed
	if cmd.Flags().Changed("capacity") {
		capacity = genCapacity
	}
	if cmd.Flags().Changed("items") {
		items = genItems
	}
	if cmd.Flags().Changed("seed") {
		seed = genSeed
	}

	gen := input.NewGenerator(seed)
	problem, err := gen.Generate(capacity, items)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "seed %d\n", gen.Seed())

	if genOut == "" {
		return input.Write(cmd.OutOrStdout(), problem)
	}
	f, err := os.Create(genOut)
	if err != nil {
		return err
	}
	if err := input.Write(f, problem); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
