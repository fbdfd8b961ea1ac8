package strbench

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Process-wide seed so maphash values stay comparable within a run.
var mapSeed = maphash.MakeSeed()

const (
	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3
)

// hashFNV1a is 64-bit FNV-1a, inlined rather than going through hash/fnv so
// the loop is measured without the hash.Hash interface overhead.
func hashFNV1a(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

func hashMap(s string) uint64 {
	return maphash.String(mapSeed, s)
}

func hashXX(s string) uint64 {
	return xxhash.Sum64String(s)
}
