package strbench

import "fmt"

// UnaryFn is the uniform call shape for single-input operations: checksum,
// hashing, dereference cost, and randomized fill (which receives the alphabet
// as its input and reports bytes written).
type UnaryFn func(s string) uint64

// BinaryFn is the uniform call shape for two-input operations. Boolean
// results are encoded as 0/1; ordering results use the Order* constants.
// Encoding both into uint64 lets one runner shape serve both categories.
type BinaryFn func(a, b string) uint64

// Three-way ordering results, lexicographic by byte. If one string is a
// prefix of the other, the shorter orders first.
const (
	OrderLess    uint64 = 0
	OrderEqual   uint64 = 1
	OrderGreater uint64 = 2
)

// TrackedUnary is a named candidate implementation of a unary operation.
// At most one entry per set should set Baseline; the runner validates every
// other entry against it. With no baseline the set is timed only.
type TrackedUnary struct {
	Name     string
	Fn       UnaryFn
	Baseline bool
}

// TrackedBinary is the binary-operation counterpart of TrackedUnary.
type TrackedBinary struct {
	Name     string
	Fn       BinaryFn
	Baseline bool
}

// ChecksumFuncs returns the checksum candidates: sum of byte values over the
// whole input. The serial loop is the baseline; the wide variant is included
// only when the CPU probe reports vector extensions.
func ChecksumFuncs() []TrackedUnary {
	fns := []TrackedUnary{
		{Name: "checksum/serial", Fn: checksumSerial, Baseline: true},
		{Name: "checksum/unrolled", Fn: checksumUnrolled},
	}
	if hasWideLoads() {
		fns = append(fns, TrackedUnary{Name: "checksum/wide", Fn: checksumWide})
	}
	return fns
}

// HashFuncs returns the hashing candidates. Hash values legitimately differ
// between algorithms, so no baseline is set and the set is timed only.
func HashFuncs() []TrackedUnary {
	return []TrackedUnary{
		{Name: "hash/fnv1a", Fn: hashFNV1a},
		{Name: "hash/maphash", Fn: hashMap},
		{Name: "hash/xxhash", Fn: hashXX},
	}
}

// EqualityFuncs returns the equality candidates. The native == operator is
// the baseline.
func EqualityFuncs() []TrackedBinary {
	fns := []TrackedBinary{
		{Name: "equal/native", Fn: equalNative, Baseline: true},
		{Name: "equal/serial", Fn: equalSerial},
	}
	if hasWideLoads() {
		fns = append(fns, TrackedBinary{Name: "equal/wide", Fn: equalWide})
	}
	return fns
}

// OrderingFuncs returns the three-way ordering candidates. The serial byte
// loop is the baseline: equal iff byte sequences are identical, otherwise
// ordered by the first differing byte, prefixes ordering first.
func OrderingFuncs() []TrackedBinary {
	return []TrackedBinary{
		{Name: "order/serial", Fn: orderSerial, Baseline: true},
		{Name: "order/native", Fn: orderNative},
		{Name: "order/bytes", Fn: orderBytes},
	}
}

// RandomGenerationFuncs returns the randomized-fill candidates. Each callable
// takes the alphabet as its input, writes exactly tokenLength bytes drawn
// from the alphabet into buf, and returns the number of bytes written. The
// buffer is shared across candidates and calls; nothing may assume its prior
// contents. Randomized output cannot be byte-compared, so no baseline is set.
//
// Panics if buf is shorter than tokenLength: the scratch buffer is the
// caller's to size, and a silent short fill would corrupt the measurement.
func RandomGenerationFuncs(buf []byte, tokenLength int) []TrackedUnary {
	if len(buf) < tokenLength {
		panic(fmt.Sprintf("strbench: scratch buffer %d bytes, need %d", len(buf), tokenLength))
	}
	suffix := fmt.Sprintf(", %d chars", tokenLength)
	return []TrackedUnary{
		{Name: "random/modulo" + suffix, Fn: fillModulo(buf, tokenLength)},
		{Name: "random/uniform" + suffix, Fn: fillUniform(buf, tokenLength)},
		{Name: "random/xorshift" + suffix, Fn: fillXorshift(buf, tokenLength)},
	}
}

// DereferenceFuncs returns the storage-strategy micro-check: the cost of
// getting from a stored element to usable bytes. The zero-copy string view
// is the baseline; the copy variant materializes the element into a reused
// owned buffer first, the way a byte-slice-backed store would.
func DereferenceFuncs() []TrackedUnary {
	var scratch []byte
	return []TrackedUnary{
		{Name: "deref/view", Fn: func(s string) uint64 { return uint64(len(s)) }, Baseline: true},
		{Name: "deref/copy", Fn: func(s string) uint64 {
			scratch = append(scratch[:0], s...)
			return uint64(len(scratch))
		}},
	}
}

func boolWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
