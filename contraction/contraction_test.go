package contraction

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudoping01/bambara-text-normalization/tokenizer"
)

func TestExpandText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no particles", "a bɛ taa", "a bɛ taa"},
		{"be", "b'a fɔ", "bɛ a fɔ"},
		{"capital be", "B'a fɔ", "Bɛ a fɔ"},
		{"te", "t'a fɛ", "tɛ a fɛ"},
		{"ye", "a y'a ye", "a ye a ye"},
		{"ma", "m'a dɔn", "ma a dɔn"},
		{"sa", "s'a la", "sa a la"},
		{"k postposition", "k'a la", "kɛ a la"},
		{"k default", "k'a ta", "ka a ta"},
		{"k postposition ye", "k'a ye", "kɛ a ye"},
		{"k benefactive", "k'a ma hɛrɛ ye", "kɛ a ma hɛrɛ ye"},
		{"k reported speech", "k'anw ma ko", "ko anw ma ko"},
		{"k clause marker", "k'a bɛ na", "ko a bɛ na"},
		{"k clause marker variant", "k'a be na", "ko a be na"},
		{"k through nested particle", "K'ale t'a fɛ k'a kɛ", "Ko ale tɛ a fɛ ka a kɛ"},
		{"k ma alone", "k'a ma", "ka a ma"},
		{"k window too short", "k'a", "ka a"},
		{"n come-to", "n'a ma", "na a ma"},
		{"n default", "n'a fɔ", "ni a fɔ"},
		{"n conditional then come-to", "N'ala son n'a ma", "Ni ala son na a ma"},
		{"legacy spelling in window", "k'a kònò", "kɛ a kònò"},
		{"toned window word", "k'a là", "kɛ a là"},
		{"curly apostrophe", "k’a la", "kɛ a la"},
		{"leading punctuation", "(k'a la)", "(kɛ a la)"},
		{"trailing punctuation on pronoun", "b'a.", "bɛ a."},
		{"sentence end stops window", "k'a. La", "ka a. La"},
		{"french elision kept", "l'eau", "l'eau"},
		{"french qu kept", "qu'il", "qu'il"},
		{"word with inner apostrophe", "aujourd'hui", "aujourd'hui"},
		{"spacing preserved", "a  b'a\tfɔ", "a  bɛ a\tfɔ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExpandText(tt.input), "ExpandText(%q)", tt.input)
		})
	}
}

func TestContractText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"ka", "ka a ta", "k'a ta"},
		{"capital ke", "Kɛ a la", "K'a la"},
		{"be", "bɛ a fɔ", "b'a fɔ"},
		{"te an", "tɛ an", "t'an"},
		{"ni ale", "ni ale", "n'ale"},
		{"na a", "na a ma", "n'a ma"},
		{"ye", "a ye a ye", "a y'a ye"},
		{"inside sentence", "a ka a fɔ", "a k'a fɔ"},
		{"not a pronoun", "ka ala", "ka ala"},
		{"punctuation between", "ka, a", "ka, a"},
		{"pronoun with leading punctuation", "ka (a)", "ka (a)"},
		{"ma not contracted", "ma a dɔn", "ma a dɔn"},
		{"already contracted", "k'a ta", "k'a ta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ContractText(tt.input), "ContractText(%q)", tt.input)
		})
	}
}

func TestContractManyToOne(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"ka a", "kɛ a", "ko a"} {
		assert.Equal(t, "k'a", ContractText(s), "ContractText(%q)", s)
	}
	for _, s := range []string{"ni a", "na a"} {
		assert.Equal(t, "n'a", ContractText(s), "ContractText(%q)", s)
	}
}

func TestExpandIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"K'ale t'a fɛ k'a kɛ",
		"N'ala son n'a ma",
		"b'a fɔ, k'a la!",
		"l'eau k'a ye",
	}
	for _, s := range inputs {
		once := ExpandText(s)
		assert.Equal(t, once, ExpandText(once), "ExpandText not idempotent on %q", s)
	}
}

func TestContractExpandRoundTrip(t *testing.T) {
	t.Parallel()

	// Phrases whose particle reading the rules recover.
	inputs := []string{
		"ka a ta",
		"kɛ a la",
		"ko a tɛ na",
		"bɛ a fɔ",
		"tɛ a fɛ",
		"na a ma",
		"ni a fɔ",
	}
	for _, s := range inputs {
		assert.Equal(t, s, ExpandText(ContractText(s)), "round trip of %q", s)
	}
}

func TestPreserve(t *testing.T) {
	t.Parallel()

	e := New(Preserve)
	for _, s := range []string{"k'a la", "ka a ta", ""} {
		assert.Equal(t, s, e.Rewrite(s))
	}
}

func TestRewriteInvalidUTF8(t *testing.T) {
	t.Parallel()

	s := "k'a la \xff"
	assert.Equal(t, s, New(Expand).Rewrite(s))
	assert.Equal(t, s, New(Contract).Rewrite(s))
}

func TestWithoutRule(t *testing.T) {
	t.Parallel()

	e := New(Expand, WithoutRule(RulePostpositionYe))
	assert.Equal(t, "ka a ye", e.Rewrite("k'a ye"))
	assert.Equal(t, "kɛ a la", e.Rewrite("k'a la"), "other rules stay")

	assert.Equal(t, "kɛ a ye", New(Expand).Rewrite("k'a ye"), "default engine unaffected")
}

func TestWithMaComplement(t *testing.T) {
	t.Parallel()

	e := New(Expand, WithMaComplement())
	assert.Equal(t, "kɛ a ma", e.Rewrite("k'a ma"))
	assert.Equal(t, "ko anw ma ko", e.Rewrite("k'anw ma ko"), "reported speech has priority")

	twice := New(Expand, WithMaComplement(), WithMaComplement())
	rs := twice.sets["k"]
	n := 0
	for _, r := range rs.Rules {
		if r.Name == RuleMaComplement {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestWithRuleSet(t *testing.T) {
	t.Parallel()

	e := New(Expand, WithRuleSet(NewRuleSet("k", Ko)))
	assert.Equal(t, "ko a la", e.Rewrite("k'a la"))

	e = New(Expand, WithRuleSet(NewRuleSet("l", Ni)))
	assert.Equal(t, "ni eau", e.Rewrite("l'eau"))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tokens, err := tokenizer.Tokenize("k'a la b'a")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	e := New(Expand)

	f, ok := e.Resolve(tokens, 0)
	require.True(t, ok)
	assert.Equal(t, Ke, f)

	_, ok = e.Resolve(tokens, 1)
	assert.False(t, ok, "pronoun is not a particle")

	f, ok = e.Resolve(tokens, 3)
	require.True(t, ok)
	assert.Equal(t, Be, f)

	_, ok = e.Resolve(tokens, 4)
	assert.False(t, ok)
	_, ok = e.Resolve(tokens, -1)
	assert.False(t, ok)
	_, ok = e.Resolve(tokens, 99)
	assert.False(t, ok)
}

func TestExplain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		form  Form
		rule  string
	}{
		{"k'a la", Ke, RulePostposition},
		{"k'a ye", Ke, RulePostpositionYe},
		{"k'a ma hɛrɛ ye", Ke, RuleBenefactive},
		{"k'anw ma ko", Ko, RuleReportedSpeech},
		{"k'a tun", Ko, RuleClauseMarker},
		{"k'a ta", Ka, ""},
		{"n'a ma", Na, RuleComeTo},
		{"n'a", Ni, ""},
	}

	e := New(Expand)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			tokens, err := tokenizer.Tokenize(tt.input)
			require.NoError(t, err)
			f, rule, ok := e.Explain(tokens, 0)
			require.True(t, ok)
			assert.Equal(t, tt.form, f)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestRuleSetResolve(t *testing.T) {
	t.Parallel()

	rs := NewRuleSet("x", Ka,
		Rule{Name: "late", Priority: 50, MinLen: 1, Result: Ko, Match: func(Window) bool { return true }},
		Rule{Name: "early", Priority: 5, MinLen: 3, Result: Ke, Match: func(Window) bool { return true }},
	)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, "early", rs.Rules[0].Name, "sorted by priority")

	assert.Equal(t, Ke, rs.Resolve(Window{"a", "b", "c"}))
	assert.Equal(t, Ko, rs.Resolve(Window{"a"}), "short window skips early rule")
	assert.Equal(t, Ka, rs.Resolve(nil))
}

func TestKRulesCopy(t *testing.T) {
	t.Parallel()

	rs := KRules()
	rs.Rules[0].Result = Sa
	rs.Rules = rs.Rules[:1]

	fresh := KRules()
	assert.Len(t, fresh.Rules, 5)
	assert.Equal(t, Ke, fresh.Rules[0].Result)
	assert.Equal(t, Ka, fresh.Default)
	assert.Equal(t, Ni, NRules().Default)
}

func TestFormString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "kɛ", Ke.String())
	assert.Equal(t, "bɛ", Be.String())
	assert.Equal(t, "sa", Sa.String())
	assert.Equal(t, "?", Form(99).String())
}

func TestMode(t *testing.T) {
	t.Parallel()

	for _, m := range []Mode{Expand, Contract, Preserve} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	m, err := ParseMode(" Contract ")
	require.NoError(t, err)
	assert.Equal(t, Contract, m)

	_, err = ParseMode("shrink")
	assert.Error(t, err)

	assert.Equal(t, "Mode(7)", Mode(7).String())
	_, err = Mode(7).MarshalText()
	assert.Error(t, err)
}

func TestModeJSON(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		Mode Mode `json:"mode"`
	}

	data, err := json.Marshal(wrapper{Mode: Preserve})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"preserve"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"contract"}`), &w))
	assert.Equal(t, Contract, w.Mode)

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"bogus"}`), &w))
}

func TestConcurrentSafety(t *testing.T) {
	t.Parallel()

	e := New(Expand, WithMaComplement())
	input := "K'ale t'a fɛ k'a kɛ, n'a ma"
	want := e.Rewrite(input)

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			for range 100 {
				if got := e.Rewrite(input); got != want {
					t.Errorf("Rewrite = %q, want %q", got, want)
					return
				}
			}
		})
	}
	wg.Wait()
}

func ExampleExpandText() {
	fmt.Println(ExpandText("K'ale t'a fɛ k'a kɛ"))
	fmt.Println(ExpandText("k'a la"))
	// Output:
	// Ko ale tɛ a fɛ ka a kɛ
	// kɛ a la
}

func ExampleContractText() {
	fmt.Println(ContractText("a ka a fɔ"))
	// Output: a k'a fɔ
}

func ExampleNew() {
	e := New(Expand, WithoutRule(RulePostpositionYe))
	fmt.Println(e.Rewrite("k'a ye"))
	// Output: ka a ye
}

func BenchmarkExpandText(b *testing.B) {
	input := "K'ale t'a fɛ k'a kɛ, n'a ma. B'a fɔ k'a la."
	for b.Loop() {
		ExpandText(input)
	}
}

func BenchmarkContractText(b *testing.B) {
	input := "ko ale tɛ a fɛ ka a kɛ, na a ma. bɛ a fɔ kɛ a la."
	for b.Loop() {
		ContractText(input)
	}
}
