package strbench

import "testing"

// AssertNoMismatches fails the test if any tracked function disagreed with
// its baseline. This is the correctness contract: for every validated
// candidate f with baseline b, f(s) == b(s) on every processed element.
func AssertNoMismatches(t *testing.T, results []Result) {
	t.Helper()

	for _, r := range results {
		if r.Mismatches > 0 {
			t.Errorf("%s: %d mismatches against baseline over %d operations",
				r.Name, r.Mismatches, r.Operations)
		}
	}
}

// AssertAllValidated verifies that every non-baseline entry in a validated
// category was actually compared against a baseline. Catches registry sets
// that were meant to carry a baseline but lost the flag.
func AssertAllValidated(t *testing.T, results []Result, baselineName string) {
	t.Helper()

	for _, r := range results {
		if r.Name == baselineName {
			continue
		}
		if !r.Validated {
			t.Errorf("%s: not validated (baseline %q missing from set?)", r.Name, baselineName)
		}
	}
}

// AssertNonZeroActivity verifies each result processed at least one element
// and recorded positive throughput. Use on non-empty corpora only.
func AssertNonZeroActivity(t *testing.T, results []Result) {
	t.Helper()

	for _, r := range results {
		if r.Operations == 0 {
			t.Errorf("%s: no operations recorded", r.Name)
		}
		if r.Throughput <= 0 {
			t.Errorf("%s: throughput %.2f, expected > 0", r.Name, r.Throughput)
		}
	}
}

// AssertZeroActivity verifies the empty-corpus contract: zero bytes, zero
// operations, zero mismatches, no looping.
func AssertZeroActivity(t *testing.T, results []Result) {
	t.Helper()

	for _, r := range results {
		if r.Operations != 0 || r.Bytes != 0 || r.Mismatches != 0 {
			t.Errorf("%s: expected zero-activity result, got ops=%d bytes=%d mismatches=%d",
				r.Name, r.Operations, r.Bytes, r.Mismatches)
		}
	}
}

// PrintResults outputs a per-function summary to the test log.
func PrintResults(t *testing.T, results []Result) {
	t.Helper()

	t.Logf("%-28s %12s %12s %10s %10s", "name", "ops", "bytes", "MB/s", "mismatches")
	for _, r := range results {
		t.Logf("%-28s %12d %12d %10.1f %10d",
			r.Name, r.Operations, r.Bytes, r.Throughput/1e6, r.Mismatches)
	}
}
