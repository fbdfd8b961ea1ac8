package strbench

import (
	"math/rand"
	"testing"
)

// TestChecksum_KnownValue pins the baseline: sum of byte values of "cat" is
// 99+97+116 = 312.
func TestChecksum_KnownValue(t *testing.T) {
	if got := checksumSerial("cat"); got != 312 {
		t.Errorf(`checksumSerial("cat") = %d, expected 312`, got)
	}
	if got := checksumSerial(""); got != 0 {
		t.Errorf("checksumSerial of empty string = %d, expected 0", got)
	}
}

// TestChecksum_VariantsAgree runs every candidate against the serial
// baseline over strings of every length crossing the unroll and word
// boundaries.
func TestChecksum_VariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	variants := map[string]UnaryFn{
		"unrolled": checksumUnrolled,
		"wide":     checksumWide,
	}

	for n := 0; n <= 70; n++ {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(rng.Intn(256))
		}
		s := string(buf)
		want := checksumSerial(s)

		for name, fn := range variants {
			if got := fn(s); got != want {
				t.Errorf("checksum/%s on %d bytes = %d, baseline = %d", name, n, got, want)
			}
		}
	}
}
