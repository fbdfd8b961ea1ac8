package strbench

import (
	"math/rand"
	"time"
)

// Randomized-fill kernels. Each constructor closes over the shared scratch
// buffer and the target length; the returned callable takes the alphabet as
// its input, overwrites buf[:n] with bytes drawn from the alphabet, and
// returns the number of bytes written. Bytes past n are left untouched.

// fillModulo indexes the alphabet with a raw 64-bit draw reduced by modulo.
// Biased for alphabet sizes that do not divide 2^64, but that is the point:
// it is the cheap variant.
func fillModulo(buf []byte, n int) UnaryFn {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func(alphabet string) uint64 {
		size := uint64(len(alphabet))
		for i := 0; i < n; i++ {
			buf[i] = alphabet[rng.Uint64()%size]
		}
		return uint64(n)
	}
}

// fillUniform draws unbiased indices via Intn.
func fillUniform(buf []byte, n int) UnaryFn {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func(alphabet string) uint64 {
		for i := 0; i < n; i++ {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return uint64(n)
	}
}

// fillXorshift runs an inline xorshift64 generator and spends one random
// word per 8 output bytes.
func fillXorshift(buf []byte, n int) UnaryFn {
	state := uint64(time.Now().UnixNano()) | 1
	return func(alphabet string) uint64 {
		size := uint64(len(alphabet))
		var w uint64
		for i := 0; i < n; i++ {
			if i%8 == 0 {
				state ^= state << 13
				state ^= state >> 7
				state ^= state << 17
				w = state
			}
			buf[i] = alphabet[(w&0xFF)%size]
			w >>= 8
		}
		return uint64(n)
	}
}
