package strbench

import "testing"

func countUnaryBaselines(fns []TrackedUnary) int {
	n := 0
	for _, tf := range fns {
		if tf.Baseline {
			n++
		}
	}
	return n
}

func countBinaryBaselines(fns []TrackedBinary) int {
	n := 0
	for _, tf := range fns {
		if tf.Baseline {
			n++
		}
	}
	return n
}

// TestRegistry_BaselineFlags verifies each validated category carries exactly
// one baseline and the timing-only categories carry none.
func TestRegistry_BaselineFlags(t *testing.T) {
	if n := countUnaryBaselines(ChecksumFuncs()); n != 1 {
		t.Errorf("checksum: expected 1 baseline, got %d", n)
	}
	if n := countBinaryBaselines(EqualityFuncs()); n != 1 {
		t.Errorf("equality: expected 1 baseline, got %d", n)
	}
	if n := countBinaryBaselines(OrderingFuncs()); n != 1 {
		t.Errorf("ordering: expected 1 baseline, got %d", n)
	}
	if n := countUnaryBaselines(DereferenceFuncs()); n != 1 {
		t.Errorf("dereference: expected 1 baseline, got %d", n)
	}

	if n := countUnaryBaselines(HashFuncs()); n != 0 {
		t.Errorf("hash: expected no baseline (timing only), got %d", n)
	}
	buf := make([]byte, 32)
	if n := countUnaryBaselines(RandomGenerationFuncs(buf, 8)); n != 0 {
		t.Errorf("random: expected no baseline (randomized output), got %d", n)
	}
}

// TestRegistry_CallablesWired verifies every entry carries a name and a
// non-nil callable.
func TestRegistry_CallablesWired(t *testing.T) {
	buf := make([]byte, 32)
	for _, fns := range [][]TrackedUnary{
		ChecksumFuncs(), HashFuncs(), RandomGenerationFuncs(buf, 16), DereferenceFuncs(),
	} {
		for _, tf := range fns {
			if tf.Name == "" {
				t.Error("unary entry with empty name")
			}
			if tf.Fn == nil {
				t.Errorf("%s: nil callable", tf.Name)
			}
		}
	}
	for _, fns := range [][]TrackedBinary{EqualityFuncs(), OrderingFuncs()} {
		for _, tf := range fns {
			if tf.Name == "" {
				t.Error("binary entry with empty name")
			}
			if tf.Fn == nil {
				t.Errorf("%s: nil callable", tf.Name)
			}
		}
	}
}

// TestRegistry_WideVariantsGated verifies the wide kernels appear iff the
// CPU probe reports vector extensions. Unsupported variants are omitted,
// never present-but-broken.
func TestRegistry_WideVariantsGated(t *testing.T) {
	hasWide := func(fns []TrackedUnary, name string) bool {
		for _, tf := range fns {
			if tf.Name == name {
				return true
			}
		}
		return false
	}

	want := hasWideLoads()
	if got := hasWide(ChecksumFuncs(), "checksum/wide"); got != want {
		t.Errorf("checksum/wide present=%v, cpu features=%v", got, Features())
	}

	foundEqualWide := false
	for _, tf := range EqualityFuncs() {
		if tf.Name == "equal/wide" {
			foundEqualWide = true
		}
	}
	if foundEqualWide != want {
		t.Errorf("equal/wide present=%v, cpu features=%v", foundEqualWide, Features())
	}
}

// TestRandomGenerationFuncs_ShortBuffer verifies the guard against an
// undersized scratch buffer.
func TestRandomGenerationFuncs_ShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undersized scratch buffer")
		}
	}()
	RandomGenerationFuncs(make([]byte, 4), 8)
}
