//go:build amd64

package strbench

import "golang.org/x/sys/cpu"

func cpuFeatures() []string {
	var fs []string
	if cpu.X86.HasSSE42 {
		fs = append(fs, "sse42")
	}
	if cpu.X86.HasAVX2 {
		fs = append(fs, "avx2")
	}
	if cpu.X86.HasAVX512F {
		fs = append(fs, "avx512f")
	}
	return fs
}
