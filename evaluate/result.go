package evaluate

import (
	"fmt"
	"strings"

	"github.com/sudoping01/bambara-text-normalization/internal/align"
)

// Counts are the alignment counts at one level (words or characters).
type Counts struct {
	Hits          int `json:"hits"`
	Substitutions int `json:"substitutions"`
	Deletions     int `json:"deletions"`
	Insertions    int `json:"insertions"`
	Reference     int `json:"reference"`
}

func countsOf(a align.Alignment) Counts {
	return Counts{
		Hits:          a.Hits,
		Substitutions: a.Substitutions,
		Deletions:     a.Deletions,
		Insertions:    a.Insertions,
		Reference:     a.Hits + a.Substitutions + a.Deletions,
	}
}

// Errors returns S + D + I.
func (c Counts) Errors() int {
	return c.Substitutions + c.Deletions + c.Insertions
}

// Hypothesis returns the hypothesis length, H + S + I.
func (c Counts) Hypothesis() int {
	return c.Hits + c.Substitutions + c.Insertions
}

func (c Counts) add(o Counts) Counts {
	return Counts{
		Hits:          c.Hits + o.Hits,
		Substitutions: c.Substitutions + o.Substitutions,
		Deletions:     c.Deletions + o.Deletions,
		Insertions:    c.Insertions + o.Insertions,
		Reference:     c.Reference + o.Reference,
	}
}

// ToneCounts are the inputs of the diacritic error rate.
type ToneCounts struct {
	Errors  int `json:"errors"`
	Letters int `json:"letters"`
}

// Result holds the metrics for one pair or for a whole batch. Rates are
// fractions: 0.25 is 25%.
type Result struct {
	WER float64 `json:"wer"`
	CER float64 `json:"cer"`
	MER float64 `json:"mer"`
	WIL float64 `json:"wil"`
	WIP float64 `json:"wip"`

	// DER is nil unless the Evaluator was built WithDER.
	DER   *float64    `json:"der,omitempty"`
	Tones *ToneCounts `json:"tones,omitempty"`

	Words Counts `json:"words"`
	Chars Counts `json:"chars"`

	// Normalized texts. Empty on batch aggregates.
	Reference  string `json:"reference_normalized,omitempty"`
	Hypothesis string `json:"hypothesis_normalized,omitempty"`
}

// score derives every rate from the counts already in r.
func (r *Result) score() {
	w := r.Words
	r.WER = rate(w.Errors(), w.Reference)
	r.MER = rate(w.Errors(), w.Hits+w.Errors())
	r.WIP = wip(w)
	r.WIL = 1 - r.WIP
	r.CER = rate(r.Chars.Errors(), r.Chars.Reference)
	if r.Tones != nil {
		der := rate(r.Tones.Errors, r.Tones.Letters)
		r.DER = &der
	}
}

// rate is num/den with 0/0 = 0 and n/0 = 1 for n > 0.
func rate(num, den int) float64 {
	switch {
	case num == 0:
		return 0
	case den == 0:
		return 1
	}
	return float64(num) / float64(den)
}

// wip is the word information preserved, (H/N_ref)(H/N_hyp). Two empty
// sides preserve everything.
func wip(c Counts) float64 {
	nRef, nHyp := c.Reference, c.Hypothesis()
	if nRef == 0 && nHyp == 0 {
		return 1
	}
	if nRef == 0 || nHyp == 0 {
		return 0
	}
	h := float64(c.Hits)
	return h / float64(nRef) * h / float64(nHyp)
}

// String formats r as three or four report lines.
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "WER: %s (S=%d, D=%d, I=%d, H=%d, N=%d)\n",
		percent(r.WER), r.Words.Substitutions, r.Words.Deletions, r.Words.Insertions, r.Words.Hits, r.Words.Reference)
	fmt.Fprintf(&b, "CER: %s (S=%d, D=%d, I=%d, H=%d, N=%d)\n",
		percent(r.CER), r.Chars.Substitutions, r.Chars.Deletions, r.Chars.Insertions, r.Chars.Hits, r.Chars.Reference)
	fmt.Fprintf(&b, "MER: %s | WIL: %s | WIP: %s", percent(r.MER), percent(r.WIL), percent(r.WIP))
	if r.DER != nil {
		fmt.Fprintf(&b, "\nDER: %s", percent(*r.DER))
	}
	return b.String()
}

func percent(f float64) string {
	return fmt.Sprintf("%.2f%%", f*100)
}
