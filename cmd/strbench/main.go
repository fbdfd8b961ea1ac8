// Command strbench runs the string-primitive benchmark-and-validate harness.
//
// With a dataset path it benchmarks real tokens, lines, and the whole text;
// without one it generates a synthetic corpus of random tokens.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/strbench/strbench"
	"github.com/strbench/strbench/internal/dataset"
	"github.com/strbench/strbench/internal/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seconds  int
		lengths  []int
		tokens   int
		seed     int64
		asJSON   bool
		verbose  bool
		failHard bool
	)

	cmd := &cobra.Command{
		Use:   "strbench [dataset]",
		Short: "Benchmark and cross-validate string-primitive operations",
		Long: "strbench times checksum, hashing, equality, ordering, and randomized-fill\n" +
			"implementations over a shared corpus, validating each candidate against its\n" +
			"category baseline while it runs. Given a dataset file it benchmarks real\n" +
			"tokens and lines; without one it generates a synthetic corpus.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
			}))

			var (
				ds  *dataset.Dataset
				err error
			)
			if len(args) == 1 {
				ds, err = dataset.Load(args[0])
				if err != nil {
					return err
				}
				log.Info("dataset loaded", "path", args[0],
					"tokens", len(ds.Tokens), "lines", len(ds.Lines), "bytes", len(ds.Text))
			} else {
				ds = dataset.Synthetic(tokens, seed)
				log.Info("synthetic dataset generated", "tokens", len(ds.Tokens), "seed", seed)
			}

			cfg := strbench.DefaultConfig()
			cfg.Duration = time.Duration(seconds) * time.Second
			if len(lengths) > 0 {
				cfg.TokenLengths = lengths
			}

			log.Info("starting token-level benchmarks",
				"seconds_per_benchmark", seconds, "cpu_features", strbench.Features())

			suites := strbench.RunAll(ds, cfg, log)

			if err := report.New(os.Stdout, asJSON).Write(suites); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			if n := report.Mismatches(suites); n > 0 {
				log.Warn("validation mismatches detected", "count", n)
				if failHard {
					return fmt.Errorf("%d validation mismatches", n)
				}
			} else {
				log.Info("all benchmarks passed")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&seconds, "seconds", 5, "wall-clock budget per tracked function")
	cmd.Flags().IntSliceVar(&lengths, "lengths", nil, "exact token lengths to sweep (default 1-8,16,32)")
	cmd.Flags().IntVar(&tokens, "tokens", 10000, "token count for the synthetic dataset")
	cmd.Flags().Int64Var(&seed, "seed", 42, "seed for the synthetic dataset")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit results as JSON instead of the table")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVar(&failHard, "fail-on-mismatch", false, "exit non-zero when any candidate disagrees with its baseline")

	return cmd
}
