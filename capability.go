package strbench

// Features returns the names of the vector extensions usable on this CPU,
// probed once at startup via golang.org/x/sys/cpu. Registry constructors
// consult the probe to decide whether wide (8-byte-word) kernel variants are
// registered; on machines without vector extensions those variants are
// silently omitted.
func Features() []string {
	return cpuFeatures()
}

func hasWideLoads() bool {
	return len(cpuFeatures()) > 0
}
