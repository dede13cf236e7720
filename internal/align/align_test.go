package align

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		ref, hyp             string
		hits, subs, del, ins int
	}{
		{"identical", "a bɛ taa", "a bɛ taa", 3, 0, 0, 0},
		{"substitution", "a bɛ taa", "a ka taa", 2, 1, 0, 0},
		{"deletion", "a bɛ taa", "a taa", 2, 0, 1, 0},
		{"insertion", "a taa", "a bɛ taa", 2, 0, 0, 1},
		{"empty hypothesis", "a bɛ", "", 0, 0, 2, 0},
		{"empty reference", "", "a bɛ", 0, 0, 0, 2},
		{"both empty", "", "", 0, 0, 0, 0},
		{"mixed", "n bɛ taa so", "bɛ taa sugu kɔnɔ", 2, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, hyp := strings.Fields(tt.ref), strings.Fields(tt.hyp)
			a := Align(ref, hyp)

			assert.Equal(t, tt.hits, a.Hits, "hits")
			assert.Equal(t, tt.subs, a.Substitutions, "substitutions")
			assert.Equal(t, tt.del, a.Deletions, "deletions")
			assert.Equal(t, tt.ins, a.Insertions, "insertions")
			assert.Equal(t, Distance(ref, hyp), a.Errors())
			assert.Len(t, a.Ops, a.Hits+a.Substitutions+a.Deletions+a.Insertions)
		})
	}
}

func TestAlignOpsCoverBothSequences(t *testing.T) {
	t.Parallel()

	ref := []rune("kɛmɛ ni mugan")
	hyp := []rune("kɛmɛ mugan ni")
	a := Align(ref, hyp)

	nextRef, nextHyp := 0, 0
	for _, op := range a.Ops {
		switch op.Kind {
		case Hit, Substitution:
			require.Equal(t, nextRef, op.Ref)
			require.Equal(t, nextHyp, op.Hyp)
			if op.Kind == Hit {
				assert.Equal(t, ref[op.Ref], hyp[op.Hyp])
			}
			nextRef++
			nextHyp++
		case Deletion:
			require.Equal(t, nextRef, op.Ref)
			assert.Equal(t, -1, op.Hyp)
			nextRef++
		case Insertion:
			require.Equal(t, nextHyp, op.Hyp)
			assert.Equal(t, -1, op.Ref)
			nextHyp++
		}
	}
	assert.Equal(t, len(ref), nextRef)
	assert.Equal(t, len(hyp), nextHyp)
}

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"bɛlɛ", "bele", 2},
		{"ɲama", "ɲama", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance([]rune(tt.a), []rune(tt.b)), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ", Hit.String())
	assert.Equal(t, "S", Substitution.String())
	assert.Equal(t, "D", Deletion.String())
	assert.Equal(t, "I", Insertion.String())
	assert.Equal(t, "?", Kind(9).String())
}

func BenchmarkAlign(b *testing.B) {
	ref := []rune(strings.Repeat("a bɛ taa sugu la ", 10))
	hyp := []rune(strings.Repeat("a be ta sugu la ", 10))
	for b.Loop() {
		Align(ref, hyp)
	}
}
