package strbench

import "time"

// Config controls benchmark execution.
type Config struct {
	Duration     time.Duration // Wall-clock budget per tracked function
	CheckEvery   int           // Iterations between monotonic clock checks
	TokenLengths []int         // Exact-length token buckets the orchestrator sweeps
}

// DefaultConfig returns sensible defaults. CheckEvery trades budget overshoot
// against clock-call overhead in the hot loop; 1024 keeps the overhead well
// under a percent for even the cheapest kernels.
func DefaultConfig() Config {
	return Config{
		Duration:     5 * time.Second,
		CheckEvery:   1024,
		TokenLengths: []int{1, 2, 3, 4, 5, 6, 7, 8, 16, 32},
	}
}

// maxSamples bounds the per-result window-latency history so long budgets do
// not accumulate unbounded sample slices. The first maxSamples windows are
// plenty for percentile stats.
const maxSamples = 1024

// Result contains measurements for a single tracked function.
type Result struct {
	Name       string          `json:"name"`
	Bytes      int64           `json:"bytes"`      // Total input bytes processed
	Operations int64           `json:"operations"` // Total invocations completed
	Mismatches int64           `json:"mismatches"` // Disagreements with the baseline
	Duration   time.Duration   `json:"duration"`   // Elapsed wall-clock time
	Throughput float64         `json:"throughput"` // Bytes per second
	Validated  bool            `json:"validated"`  // Whether a baseline was compared against
	Samples    []time.Duration `json:"-"`          // Per-check-window latencies (for percentiles)
}

// BenchUnary times and validates each tracked function over the corpus.
// Each function independently loops over the corpus - wrapping around at the
// end - until the budget expires. When the set contains a baseline, every
// non-baseline function's output is compared against the baseline's output
// on the same element, inside the timed window. An empty corpus yields
// zero-activity results.
func BenchUnary(c Corpus, fns []TrackedUnary, cfg Config) []Result {
	var baseline UnaryFn
	for _, tf := range fns {
		if tf.Baseline {
			baseline = tf.Fn
			break
		}
	}

	results := make([]Result, 0, len(fns))
	for _, tf := range fns {
		results = append(results, runUnary(c, tf, baseline, cfg))
	}
	return results
}

func runUnary(c Corpus, tf TrackedUnary, baseline UnaryFn, cfg Config) Result {
	res := Result{Name: tf.Name}
	if len(c) == 0 {
		return res
	}

	validate := baseline != nil && !tf.Baseline
	res.Validated = validate
	checkEvery := cfg.CheckEvery
	if checkEvery <= 0 {
		checkEvery = DefaultConfig().CheckEvery
	}

	start := time.Now()
	deadline := start.Add(cfg.Duration)
	lastCheck := start
	idx, sinceCheck := 0, 0
	var sink uint64

	for {
		s := c[idx]
		got := tf.Fn(s)
		sink ^= got
		if validate && got != baseline(s) {
			res.Mismatches++
		}
		res.Bytes += int64(len(s))
		res.Operations++

		idx++
		if idx == len(c) {
			idx = 0
		}
		sinceCheck++
		if sinceCheck >= checkEvery {
			sinceCheck = 0
			now := time.Now()
			if len(res.Samples) < maxSamples {
				res.Samples = append(res.Samples, now.Sub(lastCheck))
			}
			lastCheck = now
			if !now.Before(deadline) {
				break
			}
		}
	}

	finish(&res, start)
	_ = sink
	return res
}

// BenchBinary is the two-input counterpart of BenchUnary.
//
// Pairing policy, fixed for comparability: trial t draws element j (advancing
// through the corpus with wraparound) and pairs it with itself when t is
// even, or with its successor c[(j+1)%len(c)] when t is odd. Self-pairs
// exercise the equal/Equal identity case on every other trial; neighbor
// pairs exercise general comparison. Both inputs count toward bytes
// processed.
func BenchBinary(c Corpus, fns []TrackedBinary, cfg Config) []Result {
	var baseline BinaryFn
	for _, tf := range fns {
		if tf.Baseline {
			baseline = tf.Fn
			break
		}
	}

	results := make([]Result, 0, len(fns))
	for _, tf := range fns {
		results = append(results, runBinary(c, tf, baseline, cfg))
	}
	return results
}

func runBinary(c Corpus, tf TrackedBinary, baseline BinaryFn, cfg Config) Result {
	res := Result{Name: tf.Name}
	if len(c) == 0 {
		return res
	}

	validate := baseline != nil && !tf.Baseline
	res.Validated = validate
	checkEvery := cfg.CheckEvery
	if checkEvery <= 0 {
		checkEvery = DefaultConfig().CheckEvery
	}

	start := time.Now()
	deadline := start.Add(cfg.Duration)
	lastCheck := start
	idx, sinceCheck := 0, 0
	var trial int64
	var sink uint64

	for {
		a := c[idx]
		b := a
		if trial%2 == 1 {
			b = c[(idx+1)%len(c)]
		}
		got := tf.Fn(a, b)
		sink ^= got
		if validate && got != baseline(a, b) {
			res.Mismatches++
		}
		res.Bytes += int64(len(a) + len(b))
		res.Operations++
		trial++

		idx++
		if idx == len(c) {
			idx = 0
		}
		sinceCheck++
		if sinceCheck >= checkEvery {
			sinceCheck = 0
			now := time.Now()
			if len(res.Samples) < maxSamples {
				res.Samples = append(res.Samples, now.Sub(lastCheck))
			}
			lastCheck = now
			if !now.Before(deadline) {
				break
			}
		}
	}

	finish(&res, start)
	_ = sink
	return res
}

func finish(res *Result, start time.Time) {
	res.Duration = time.Since(start)
	if res.Duration > 0 {
		res.Throughput = float64(res.Bytes) / res.Duration.Seconds()
	}
}
