// Package align computes minimum edit-distance alignments between two
// sequences, with the edit operations recovered by backtrace.
package align

import "slices"

// Kind is the edit operation applied at one alignment step.
type Kind int

const (
	Hit Kind = iota
	Substitution
	Deletion  // reference item missing from the hypothesis
	Insertion // hypothesis item absent from the reference
)

// String returns the one-letter code used in alignment displays.
func (k Kind) String() string {
	switch k {
	case Hit:
		return " "
	case Substitution:
		return "S"
	case Deletion:
		return "D"
	case Insertion:
		return "I"
	}
	return "?"
}

// Op is one alignment step. Ref is -1 for insertions, Hyp is -1 for deletions.
type Op struct {
	Kind Kind
	Ref  int
	Hyp  int
}

// Alignment is the operation sequence and its counts.
type Alignment struct {
	Ops           []Op
	Hits          int
	Substitutions int
	Deletions     int
	Insertions    int
}

// Errors returns S + D + I.
func (a Alignment) Errors() int {
	return a.Substitutions + a.Deletions + a.Insertions
}

// Align returns a minimum-cost alignment of hyp against ref with unit costs.
// Among equal-cost paths it prefers hits and substitutions, then deletions.
// Memory is O(len(ref) * len(hyp)).
func Align[T comparable](ref, hyp []T) Alignment {
	n, m := len(ref), len(hyp)
	cols := m + 1

	// dist[i*cols+j] is the distance between ref[:i] and hyp[:j].
	dist := make([]int, (n+1)*cols)
	for j := 0; j <= m; j++ {
		dist[j] = j
	}
	for i := 1; i <= n; i++ {
		dist[i*cols] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}

			best := dist[(i-1)*cols+j-1] + cost
			if del := dist[(i-1)*cols+j] + 1; del < best {
				best = del
			}
			if ins := dist[i*cols+j-1] + 1; ins < best {
				best = ins
			}
			dist[i*cols+j] = best
		}
	}

	a := Alignment{Ops: make([]Op, 0, max(n, m))}
	i, j := n, m
	for i > 0 || j > 0 {
		d := dist[i*cols+j]
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1] && d == dist[(i-1)*cols+j-1]:
			a.Ops = append(a.Ops, Op{Kind: Hit, Ref: i - 1, Hyp: j - 1})
			a.Hits++
			i, j = i-1, j-1
		case i > 0 && j > 0 && ref[i-1] != hyp[j-1] && d == dist[(i-1)*cols+j-1]+1:
			a.Ops = append(a.Ops, Op{Kind: Substitution, Ref: i - 1, Hyp: j - 1})
			a.Substitutions++
			i, j = i-1, j-1
		case i > 0 && d == dist[(i-1)*cols+j]+1:
			a.Ops = append(a.Ops, Op{Kind: Deletion, Ref: i - 1, Hyp: -1})
			a.Deletions++
			i--
		default:
			a.Ops = append(a.Ops, Op{Kind: Insertion, Ref: -1, Hyp: j - 1})
			a.Insertions++
			j--
		}
	}

	slices.Reverse(a.Ops)
	return a
}

// Distance returns the edit distance between ref and hyp without the
// backtrace, in O(len(hyp)) memory.
func Distance[T comparable](ref, hyp []T) int {
	prev := make([]int, len(hyp)+1)
	curr := make([]int, len(hyp)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ref); i++ {
		curr[0] = i
		for j := 1; j <= len(hyp); j++ {
			cost := 1
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(hyp)]
}
