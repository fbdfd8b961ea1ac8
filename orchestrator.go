package strbench

import (
	"fmt"
	"log/slog"

	"github.com/strbench/strbench/internal/dataset"
)

// Alphabet is the byte set used by the randomized-fill benchmarks.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Suite is one (corpus, category) slice of the aggregated result stream.
type Suite struct {
	Corpus   string   `json:"corpus"`
	Category string   `json:"category"`
	Results  []Result `json:"results"`
}

// RunAll drives every operation category across every corpus source: the
// real tokens, the lines, the whole text as a single element, and the tokens
// filtered to each exact length in cfg.TokenLengths. Randomized-fill
// benchmarks run once per token length over the alphabet, with a scratch
// buffer scoped to this call. Categories within a corpus run in a fixed
// sequence so no category's timing window contends with another's.
//
// Execution is strictly single-threaded; total runtime is bounded by the
// number of tracked functions times cfg.Duration.
func RunAll(ds *dataset.Dataset, cfg Config, log *slog.Logger) []Suite {
	var suites []Suite

	suites = append(suites, benchCorpus("tokens", Corpus(ds.Tokens), cfg, log)...)
	suites = append(suites, benchCorpus("lines", Corpus(ds.Lines), cfg, log)...)
	suites = append(suites, benchCorpus("text", Corpus{ds.Text}, cfg, log)...)

	for _, n := range cfg.TokenLengths {
		name := fmt.Sprintf("tokens[len=%d]", n)
		suites = append(suites, benchCorpus(name, FilterByLength(Corpus(ds.Tokens), n), cfg, log)...)
	}

	suites = append(suites, benchGeneration(cfg, log)...)
	return suites
}

// benchCorpus runs the fixed category sequence over one corpus: checksum,
// hashing, equality, ordering, then the dereference micro-check for the two
// text-storage strategies. Empty corpora are skipped.
func benchCorpus(name string, c Corpus, cfg Config, log *slog.Logger) []Suite {
	if len(c) == 0 {
		log.Info("skipping empty corpus", "corpus", name)
		return nil
	}
	log.Info("benchmarking", "corpus", name, "elements", len(c), "bytes", Bytes(c))

	return []Suite{
		{Corpus: name, Category: "checksum", Results: BenchUnary(c, ChecksumFuncs(), cfg)},
		{Corpus: name, Category: "hash", Results: BenchUnary(c, HashFuncs(), cfg)},
		{Corpus: name, Category: "equality", Results: BenchBinary(c, EqualityFuncs(), cfg)},
		{Corpus: name, Category: "ordering", Results: BenchBinary(c, OrderingFuncs(), cfg)},
		{Corpus: name, Category: "dereference", Results: BenchUnary(c, DereferenceFuncs(), cfg)},
	}
}

// benchGeneration runs the randomized-fill candidates for every token length
// over a single-element corpus holding the alphabet. One scratch buffer,
// sized to the largest length, is shared by all candidates; no candidate may
// assume its prior contents.
func benchGeneration(cfg Config, log *slog.Logger) []Suite {
	maxLen := 0
	for _, n := range cfg.TokenLengths {
		if n > maxLen {
			maxLen = n
		}
	}
	if maxLen == 0 {
		return nil
	}
	buf := make([]byte, maxLen)
	alphabet := Corpus{Alphabet}

	var suites []Suite
	for _, n := range cfg.TokenLengths {
		log.Info("benchmarking", "corpus", "alphabet", "category", "random", "token_length", n)
		suites = append(suites, Suite{
			Corpus:   fmt.Sprintf("alphabet[len=%d]", n),
			Category: "random",
			Results:  BenchUnary(alphabet, RandomGenerationFuncs(buf, n), cfg),
		})
	}
	return suites
}
