package evaluate

import (
	"github.com/sudoping01/bambara-text-normalization/internal/align"
	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/ortho"
)

// toneErrors aligns the base letters of ref and hyp and counts tone
// mismatches. A matched or substituted pair is an error when the tones
// differ; a deleted or inserted letter is an error when it carries a tone.
// Letters is the number of reference letters.
func toneErrors(ref, hyp string) ToneCounts {
	rl, hl := ortho.Letters(ref), ortho.Letters(hyp)
	a := align.Align(bases(rl), bases(hl))

	tc := ToneCounts{Letters: len(rl)}
	for _, op := range a.Ops {
		switch op.Kind {
		case align.Hit, align.Substitution:
			if rl[op.Ref].Tone != hl[op.Hyp].Tone {
				tc.Errors++
			}
		case align.Deletion:
			if rl[op.Ref].Tone != ortho.ToneNone {
				tc.Errors++
			}
		case align.Insertion:
			if hl[op.Hyp].Tone != ortho.ToneNone {
				tc.Errors++
			}
		}
	}
	return tc
}

func bases(letters []ortho.Letter) []rune {
	out := make([]rune, len(letters))
	for i, l := range letters {
		out[i] = bmcase.Lower(l.Base)
	}
	return out
}
