package strbench

// Corpus is an ordered sequence of string views over externally-owned,
// immutable storage. A Corpus never owns its bytes: elements are plain Go
// strings, typically sliced out of one backing buffer by the dataset loader,
// and are read-only for the duration of a benchmark run.
type Corpus []string

// FilterByLength returns the elements of c whose length is exactly n,
// preserving relative order. The result may be empty; runners treat an empty
// corpus as a no-op. Applying the filter to its own output is idempotent.
func FilterByLength(c Corpus, n int) Corpus {
	out := make(Corpus, 0, len(c))
	for _, s := range c {
		if len(s) == n {
			out = append(out, s)
		}
	}
	return out
}

// Bytes returns the total payload size of the corpus.
func Bytes(c Corpus) int64 {
	var total int64
	for _, s := range c {
		total += int64(len(s))
	}
	return total
}
