//go:build !amd64 && !arm64

package strbench

func cpuFeatures() []string { return nil }
