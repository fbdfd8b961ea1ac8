package strbench

import "testing"

var comparePairs = []struct {
	a, b  string
	equal bool
	order uint64
}{
	{"", "", true, OrderEqual},
	{"cat", "cat", true, OrderEqual},
	{"cat", "dog", false, OrderLess},
	{"dog", "cat", false, OrderGreater},
	{"ab", "abc", false, OrderLess}, // prefix orders first
	{"abc", "ab", false, OrderGreater},
	{"", "a", false, OrderLess},
	{"abcdefghij", "abcdefghik", false, OrderLess},               // differs inside the second word
	{"aaaaaaaabbbbbbbbc", "aaaaaaaabbbbbbbbd", false, OrderLess}, // differs in the tail after two words
	{"aaaaaaaaX", "aaaaaaaaY", false, OrderLess},                 // first word equal, tail decides
}

// TestEquality_VariantsAgree checks every equality candidate against the
// expected truth on every pair, including the f(s, s) identity cases.
func TestEquality_VariantsAgree(t *testing.T) {
	for _, tf := range EqualityFuncs() {
		for _, p := range comparePairs {
			if got := tf.Fn(p.a, p.b); got != boolWord(p.equal) {
				t.Errorf("%s(%q, %q) = %d, expected %d", tf.Name, p.a, p.b, got, boolWord(p.equal))
			}
		}
		for _, s := range []string{"", "x", "cat", "aaaaaaaabbbbbbbb"} {
			if tf.Fn(s, s) != 1 {
				t.Errorf("%s(%q, %q) is not true", tf.Name, s, s)
			}
		}
	}
}

// TestOrdering_VariantsAgree checks every ordering candidate yields the
// lexicographic tri-state on every pair, plus self-equality and
// antisymmetry.
func TestOrdering_VariantsAgree(t *testing.T) {
	for _, tf := range OrderingFuncs() {
		for _, p := range comparePairs {
			if got := tf.Fn(p.a, p.b); got != p.order {
				t.Errorf("%s(%q, %q) = %d, expected %d", tf.Name, p.a, p.b, got, p.order)
			}
		}
		for _, s := range []string{"", "x", "cat"} {
			if tf.Fn(s, s) != OrderEqual {
				t.Errorf("%s(%q, %q) is not equal", tf.Name, s, s)
			}
		}
		// Antisymmetry: less one way implies greater the other.
		for _, p := range comparePairs {
			if tf.Fn(p.a, p.b) == OrderLess && tf.Fn(p.b, p.a) != OrderGreater {
				t.Errorf("%s: (%q < %q) but reverse is not greater", tf.Name, p.a, p.b)
			}
		}
	}
}
