package evaluate

import (
	"strings"
	"unicode/utf8"

	"github.com/sudoping01/bambara-text-normalization/internal/align"
)

// Visualize normalizes ref and hyp and renders their word alignment as
// three lines: REF, HYP and the operation codes (S, D, I) under each
// column. Missing words are shown as asterisks.
func (e *Evaluator) Visualize(ref, hyp string) string {
	rw := strings.Fields(e.norm.Normalize(ref))
	hw := strings.Fields(e.norm.Normalize(hyp))
	a := align.Align(rw, hw)

	var refLine, hypLine, opLine strings.Builder
	refLine.WriteString("REF:")
	hypLine.WriteString("HYP:")
	opLine.WriteString("    ")

	for _, op := range a.Ops {
		r, h := "", ""
		if op.Ref >= 0 {
			r = rw[op.Ref]
		}
		if op.Hyp >= 0 {
			h = hw[op.Hyp]
		}
		width := max(utf8.RuneCountInString(r), utf8.RuneCountInString(h), 1)
		if r == "" {
			r = strings.Repeat("*", width)
		}
		if h == "" {
			h = strings.Repeat("*", width)
		}

		refLine.WriteByte(' ')
		hypLine.WriteByte(' ')
		opLine.WriteByte(' ')
		writePadded(&refLine, r, width)
		writePadded(&hypLine, h, width)
		writePadded(&opLine, op.Kind.String(), width)
	}

	return strings.TrimRight(refLine.String(), " ") + "\n" +
		strings.TrimRight(hypLine.String(), " ") + "\n" +
		strings.TrimRight(opLine.String(), " ") + "\n"
}

func writePadded(b *strings.Builder, s string, width int) {
	b.WriteString(s)
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
}
