// Package strbench benchmarks and cross-validates string-primitive operations.
//
// # Overview
//
// strbench runs families of interchangeable string operations - checksum,
// hashing, equality, three-way ordering, and randomized fill - over a shared
// corpus. Each family mixes several candidate implementations; one entry may
// be flagged as the baseline. Every candidate is validated against the
// baseline on every input while it is being timed, so a fast-but-wrong kernel
// is caught in the same pass that measures it.
//
// # Architecture
//
// The package components:
//
//   - registry.go     - Tracked function sets per operation category
//   - corpus.go       - Corpus views and exact-length filtering
//   - bench.go        - Unary and binary fixed-budget runners
//   - orchestrator.go - Drives all categories across all corpora
//   - capability.go   - CPU feature probe gating wide kernel variants
//   - assertions.go   - Test helpers for result correctness
//
// # Quick Start
//
// Benchmark the checksum family over a token corpus:
//
//	corpus := strbench.Corpus{"cat", "dog", "cat"}
//	results := strbench.BenchUnary(corpus, strbench.ChecksumFuncs(), strbench.DefaultConfig())
//
//	for _, r := range results {
//	    fmt.Printf("%s: %.1f MB/s, %d mismatches\n", r.Name, r.Throughput/1e6, r.Mismatches)
//	}
//
// # Measurement discipline
//
// Runners are strictly single-threaded. Each tracked function spins over the
// corpus - wrapping around when it reaches the end - until a wall-clock
// budget expires; the clock is checked once every Config.CheckEvery
// iterations to bound timing overhead. When a baseline exists it is invoked
// inline inside the candidate's timed window, so validation cost contaminates
// the candidate's throughput. Every candidate pays the same tax, which keeps
// the numbers comparable across runs and across machines.
//
// Mismatches are counted, never fatal. Empty corpora produce zero-activity
// results and are skipped. Kernel variants that need CPU features absent on
// the current machine are omitted at registry construction time.
package strbench
