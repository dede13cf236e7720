// Package normalize runs the Bambara normalization pipeline.
//
// A Config selects the passes; they always run in this order:
//
//  1. NFC composition and apostrophe canonicalization.
//  2. Orthography: legacy spellings, look-alike letters, French letters.
//  3. Tones: strip tone marks and/or non-tone diacritics.
//  4. Contractions, per Config.ContractionMode.
//  5. Dates, then times, then numbers, in Config.NumeralDirection.
//  6. Case folding, punctuation, repetitions, compounds, whitespace.
//
// Contractions are resolved before case folding and punctuation removal,
// on text whose apostrophes are already canonical.
//
// Normalize is idempotent for every Config: a second run changes nothing.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Texts larger than 1 MiB are returned unchanged.
//   - Legacy è and ò are read as ɛ and ɔ even when they mark tone.
package normalize

import (
	"context"
	"runtime"
	"sync"

	"github.com/sudoping01/bambara-text-normalization/contraction"
)

// maxInputBytes is the maximum input size for Normalize.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// Step is the text after one pass, as reported by Steps.
type Step struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Normalizer applies one Config. It is immutable and safe for concurrent use.
type Normalizer struct {
	cfg    Config
	passes []pass
}

// New builds the pass list for cfg.
func New(cfg Config) *Normalizer {
	return &Normalizer{cfg: cfg, passes: buildPasses(cfg, newEngine(cfg))}
}

// Normalize runs the pipeline for cfg on text.
func Normalize(text string, cfg Config) string {
	return New(cfg).Normalize(text)
}

// Config returns the configuration n was built with.
func (n *Normalizer) Config() Config { return n.cfg }

// Normalize runs every configured pass on text.
func (n *Normalizer) Normalize(text string) string {
	if text == "" || len(text) > maxInputBytes {
		return text
	}
	for _, p := range n.passes {
		text = p.fn(text)
	}
	return text
}

// Steps runs the pipeline and records the text after each pass that ran.
// The first step is the input itself.
func (n *Normalizer) Steps(text string) []Step {
	steps := []Step{{Name: "input", Text: text}}
	if text == "" || len(text) > maxInputBytes {
		return steps
	}
	for _, p := range n.passes {
		text = p.fn(text)
		steps = append(steps, Step{Name: p.name, Text: text})
	}
	return steps
}

// NormalizeBatch normalizes texts with up to workers goroutines and returns
// the results in input order. workers <= 0 means GOMAXPROCS. It stops
// scheduling new texts once ctx is done and returns ctx.Err().
func (n *Normalizer) NormalizeBatch(ctx context.Context, texts []string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]string, len(texts))

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case semaphore <- struct{}{}:
		}
		wg.Go(func() {
			defer func() { <-semaphore }()
			out[i] = n.Normalize(text)
		})
	}

	wg.Wait()
	return out, nil
}

// newEngine maps the contraction fields of cfg onto engine options.
func newEngine(cfg Config) *contraction.Engine {
	var opts []contraction.Option
	if !cfg.YeAsPostposition {
		opts = append(opts, contraction.WithoutRule(contraction.RulePostpositionYe))
	}
	if cfg.MaComplement {
		opts = append(opts, contraction.WithMaComplement())
	}
	return contraction.New(cfg.ContractionMode, opts...)
}
