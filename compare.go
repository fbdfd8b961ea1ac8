package strbench

import (
	"bytes"
	"strings"
)

// equalNative is the == operator. Baseline for the equality category.
func equalNative(a, b string) uint64 {
	return boolWord(a == b)
}

// equalSerial compares lengths, then bytes one at a time.
func equalSerial(a, b string) uint64 {
	if len(a) != len(b) {
		return 0
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return 0
		}
	}
	return 1
}

// equalWide compares 8-byte words, falling back to bytes for the tail.
// Registered only when the CPU probe reports vector extensions.
func equalWide(a, b string) uint64 {
	if len(a) != len(b) {
		return 0
	}
	i := 0
	for ; i+8 <= len(a); i += 8 {
		if loadWord(a, i) != loadWord(b, i) {
			return 0
		}
	}
	for ; i < len(a); i++ {
		if a[i] != b[i] {
			return 0
		}
	}
	return 1
}

// orderSerial is lexicographic byte comparison: first differing byte decides,
// and if one string is a prefix of the other the shorter orders first.
// Baseline for the ordering category.
func orderSerial(a, b string) uint64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return OrderLess
			}
			return OrderGreater
		}
	}
	switch {
	case len(a) < len(b):
		return OrderLess
	case len(a) > len(b):
		return OrderGreater
	default:
		return OrderEqual
	}
}

func orderNative(a, b string) uint64 {
	return orderWord(strings.Compare(a, b))
}

// orderBytes measures the cost of the per-call string-to-byte-slice
// conversions on top of bytes.Compare.
func orderBytes(a, b string) uint64 {
	return orderWord(bytes.Compare([]byte(a), []byte(b)))
}

func orderWord(cmp int) uint64 {
	switch {
	case cmp < 0:
		return OrderLess
	case cmp > 0:
		return OrderGreater
	default:
		return OrderEqual
	}
}
