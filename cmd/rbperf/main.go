// Package main provides rbperf, a performance and soak driver for the
// intrusive red-black tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	count int
	seed  uint64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rbperf",
		Short: "Benchmark and soak the intrusive red-black tree",
		Long: `rbperf drives the tree the way a caller would and reports per-op timings.

Commands:
  bench      Time insertion, search, deletion, mixed and cached workloads
  validate   Run a randomized insert/remove soak with invariant checks`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().IntVarP(&count, "count", "n", 50000, "number of nodes per workload")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "PRNG seed for workload generation")

	rootCmd.AddCommand(newBenchCommand())
	rootCmd.AddCommand(newValidateCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
