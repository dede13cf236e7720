package contraction

import (
	"testing"
	"unicode/utf8"
)

func FuzzRewrite(f *testing.F) {
	seeds := []string{
		"",
		"k'a la",
		"K'ale t'a fɛ k'a kɛ",
		"N'ala son n'a ma",
		"ka a ta",
		"b'k'a",
		"k'a'b'",
		"(k’a ye).",
		"l'eau qu'il",
		"k'",
		"'a",
		"\xff'a",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	expand := New(Expand, WithMaComplement())
	contract := New(Contract)
	preserve := New(Preserve)

	f.Fuzz(func(t *testing.T, s string) {
		if got := preserve.Rewrite(s); got != s {
			t.Fatalf("Preserve changed %q to %q", s, got)
		}
		for _, e := range []*Engine{expand, contract} {
			got := e.Rewrite(s)
			if utf8.ValidString(s) && !utf8.ValidString(got) {
				t.Fatalf("%s: invalid UTF-8 output for %q", e.Mode(), s)
			}
			if !utf8.ValidString(s) && got != s {
				t.Fatalf("%s: invalid input %q was rewritten", e.Mode(), s)
			}
		}
	})
}
