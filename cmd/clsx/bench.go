package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vangoframework/clsx/internal/bench"
)

func newBenchCmd() *cobra.Command {
	var opts bench.Options
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the resolver against the legacy generation",
		Long: `Bench first checks that the current and legacy generations agree on the
complex scenario, then measures every scenario with both and prints
ns/op, allocations and the speedup over the legacy generation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			logger := cliLogger(cmd, level)

			start := time.Now()
			results, err := bench.Run(opts)
			if err != nil {
				return err
			}
			logger.Info("benchmarks finished", "results", len(results), "duration", time.Since(start))

			return bench.Write(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().DurationVar(&opts.BenchTime, "benchtime", time.Second, "target duration of each measurement")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only run scenarios whose name contains this")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	return cmd
}
