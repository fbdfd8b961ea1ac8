// Package dataset prepares the benchmark corpora: word-like tokens, lines,
// and the whole input as one element, all as views over a single immutable
// backing buffer.
package dataset

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// Dataset holds the three corpora over one backing buffer. Tokens and Lines
// are slices into Text; nothing is copied after construction and nothing may
// be mutated while a benchmark runs.
type Dataset struct {
	Tokens []string
	Lines  []string
	Text   string
}

// Load reads the file at path and splits it into corpora. Tokens are
// whitespace-separated fields, lines are newline-separated with empty lines
// dropped. I/O errors are fatal to the run and are returned wrapped.
func Load(path string) (*Dataset, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %s: %w", path, err)
	}
	return FromText(string(buf)), nil
}

// FromText splits an in-memory buffer into corpora.
func FromText(text string) *Dataset {
	return &Dataset{
		Tokens: strings.Fields(text),
		Lines:  splitLines(text),
		Text:   text,
	}
}

// Synthetic generates a dataset of random lowercase tokens so the harness
// can run without an input file. Token lengths are drawn from the same
// bucket set the orchestrator sweeps, so every filtered corpus is non-empty.
// The seed makes runs reproducible.
func Synthetic(tokenCount int, seed int64) *Dataset {
	lengths := []int{1, 2, 3, 4, 5, 6, 7, 8, 16, 32}
	rng := rand.New(rand.NewSource(seed))

	var b strings.Builder
	for i := 0; i < tokenCount; i++ {
		n := lengths[i%len(lengths)]
		for j := 0; j < n; j++ {
			b.WriteByte(byte('a' + rng.Intn(26)))
		}
		// ~10 tokens per line keeps the line corpus meaningful.
		if (i+1)%10 == 0 {
			b.WriteByte('\n')
		} else if i+1 < tokenCount {
			b.WriteByte(' ')
		}
	}
	return FromText(b.String())
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
