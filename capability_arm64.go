//go:build arm64

package strbench

import "golang.org/x/sys/cpu"

func cpuFeatures() []string {
	var fs []string
	if cpu.ARM64.HasASIMD {
		fs = append(fs, "asimd")
	}
	if cpu.ARM64.HasSVE {
		fs = append(fs, "sve")
	}
	return fs
}
