// Package evaluate scores ASR hypotheses against reference transcriptions
// after Bambara normalization.
//
// Both sides go through the same normalize.Normalizer, then are aligned at
// word level (WER, MER, WIL, WIP) and at character level (CER). With
// WithDER the evaluator also aligns base letters of tone-preserving
// normalizations and reports the diacritic error rate.
//
// An Evaluator is immutable and safe for concurrent use.
package evaluate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/sudoping01/bambara-text-normalization/internal/align"
	"github.com/sudoping01/bambara-text-normalization/normalize"
)

// ErrLengthMismatch is returned by EvaluateBatch when the two lists differ
// in length.
var ErrLengthMismatch = errors.New("evaluate: reference and hypothesis counts differ")

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithDER enables the diacritic error rate.
func WithDER() Option {
	return func(e *Evaluator) { e.der = true }
}

// WithWorkers bounds the goroutines used by EvaluateBatch. n <= 0 means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Evaluator) { e.workers = n }
}

// Evaluator normalizes and scores reference/hypothesis pairs.
type Evaluator struct {
	norm    *normalize.Normalizer
	tones   *normalize.Normalizer
	der     bool
	workers int
}

// New returns an Evaluator that normalizes with cfg.
func New(cfg normalize.Config, opts ...Option) *Evaluator {
	e := &Evaluator{norm: normalize.New(cfg)}
	for _, opt := range opts {
		opt(e)
	}
	if e.der {
		toneCfg := cfg
		toneCfg.PreserveTones = true
		e.tones = normalize.New(toneCfg)
	}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

// Config returns the normalization config used for both sides.
func (e *Evaluator) Config() normalize.Config { return e.norm.Config() }

// Normalize applies the evaluator's normalization to text.
func (e *Evaluator) Normalize(text string) string {
	return e.norm.Normalize(text)
}

// Evaluate normalizes ref and hyp and scores hyp against ref.
func (e *Evaluator) Evaluate(ref, hyp string) Result {
	refNorm, hypNorm := e.norm.Normalize(ref), e.norm.Normalize(hyp)

	r := Result{
		Words:      countsOf(align.Align(strings.Fields(refNorm), strings.Fields(hypNorm))),
		Chars:      countsOf(align.Align(charsOf(refNorm), charsOf(hypNorm))),
		Reference:  refNorm,
		Hypothesis: hypNorm,
	}
	if e.der {
		tc := toneErrors(e.tones.Normalize(ref), e.tones.Normalize(hyp))
		r.Tones = &tc
	}
	r.score()
	return r
}

// EvaluateBatch scores each pair and returns the aggregate and the per-pair
// results in input order. The aggregate rates are computed from the summed
// counts, not averaged. It stops scheduling pairs once ctx is done and
// returns ctx.Err().
func (e *Evaluator) EvaluateBatch(ctx context.Context, refs, hyps []string) (Result, []Result, error) {
	if len(refs) != len(hyps) {
		return Result{}, nil, fmt.Errorf("%w: %d references, %d hypotheses", ErrLengthMismatch, len(refs), len(hyps))
	}

	results := make([]Result, len(refs))
	semaphore := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i := range refs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return Result{}, nil, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return Result{}, nil, ctx.Err()
		case semaphore <- struct{}{}:
		}
		wg.Go(func() {
			defer func() { <-semaphore }()
			results[i] = e.Evaluate(refs[i], hyps[i])
		})
	}
	wg.Wait()

	return aggregate(results, e.der), results, nil
}

func aggregate(results []Result, der bool) Result {
	var agg Result
	if der {
		agg.Tones = &ToneCounts{}
	}
	for _, r := range results {
		agg.Words = agg.Words.add(r.Words)
		agg.Chars = agg.Chars.add(r.Chars)
		if agg.Tones != nil && r.Tones != nil {
			agg.Tones.Errors += r.Tones.Errors
			agg.Tones.Letters += r.Tones.Letters
		}
	}
	agg.score()
	return agg
}

// charsOf returns the runes of s with whitespace runs collapsed to one space.
func charsOf(s string) []rune {
	return []rune(strings.Join(strings.Fields(s), " "))
}
