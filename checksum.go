package strbench

// checksumSerial sums byte values one at a time. Baseline for the checksum
// category.
func checksumSerial(s string) uint64 {
	var sum uint64
	for i := 0; i < len(s); i++ {
		sum += uint64(s[i])
	}
	return sum
}

// checksumUnrolled sums byte values with four independent accumulators to
// break the loop-carried dependency chain.
func checksumUnrolled(s string) uint64 {
	var a, b, c, d uint64
	i := 0
	for ; i+4 <= len(s); i += 4 {
		a += uint64(s[i])
		b += uint64(s[i+1])
		c += uint64(s[i+2])
		d += uint64(s[i+3])
	}
	sum := a + b + c + d
	for ; i < len(s); i++ {
		sum += uint64(s[i])
	}
	return sum
}

// checksumWide sums byte values eight at a time: each 8-byte word is reduced
// to its byte sum with two SWAR folding steps. Registered only when the CPU
// probe reports vector extensions.
func checksumWide(s string) uint64 {
	const (
		maskBytes = 0x00FF00FF00FF00FF
		maskPairs = 0x0000FFFF0000FFFF
	)
	var sum uint64
	i := 0
	for ; i+8 <= len(s); i += 8 {
		w := loadWord(s, i)
		pairs := (w & maskBytes) + ((w >> 8) & maskBytes)
		quads := (pairs & maskPairs) + ((pairs >> 16) & maskPairs)
		sum += (quads & 0xFFFFFFFF) + (quads >> 32)
	}
	for ; i < len(s); i++ {
		sum += uint64(s[i])
	}
	return sum
}

// loadWord reads 8 bytes of s starting at i as a little-endian word. The
// compiler recognizes the pattern and emits a single load.
func loadWord(s string, i int) uint64 {
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}
