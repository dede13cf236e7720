package contraction

import (
	"slices"
	"strings"
	"unicode"

	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/ortho"
)

// Form is the full spelling a contracted particle resolves to.
type Form int

const (
	Ka Form = iota // infinitive marker
	Ke             // kɛ, "do, make"
	Ko             // "say"
	Na             // "come"
	Ni             // "if, and"
	Be             // bɛ, positive imperfective
	Te             // tɛ, negative imperfective
	Ye             // perfective, postposition
	Ma             // negative perfective, postposition
	Sa             // "die"
)

var formWords = [...]string{
	Ka: "ka",
	Ke: "kɛ",
	Ko: "ko",
	Na: "na",
	Ni: "ni",
	Be: "bɛ",
	Te: "tɛ",
	Ye: "ye",
	Ma: "ma",
	Sa: "sa",
}

// String returns the Bambara spelling of the form.
func (f Form) String() string {
	if f >= 0 && int(f) < len(formWords) {
		return formWords[f]
	}
	return "?"
}

// Window holds the base forms of the words following a particle.
// Window[0] is the word the particle is glued to, usually a pronoun.
type Window []string

// Rule maps a window pattern to a form. Rules whose MinLen exceeds the
// window length are skipped.
type Rule struct {
	Name     string
	Priority int
	MinLen   int
	Match    func(Window) bool
	Result   Form
}

// RuleSet is the ordered rule table of one particle.
type RuleSet struct {
	Particle string // particle letters without the apostrophe, e.g. "k"
	Rules    []Rule // ascending priority
	Default  Form
}

// NewRuleSet returns a rule set with rules sorted by ascending priority.
// Rules with equal priority keep their given order.
func NewRuleSet(particle string, def Form, rules ...Rule) RuleSet {
	rs := RuleSet{Particle: particle, Rules: slices.Clone(rules), Default: def}
	slices.SortStableFunc(rs.Rules, func(a, b Rule) int { return a.Priority - b.Priority })
	return rs
}

// Resolve returns the result of the first matching rule, or the default.
func (rs RuleSet) Resolve(w Window) Form {
	f, _ := rs.resolve(w)
	return f
}

// resolve also reports the name of the rule that fired; empty for the default.
func (rs RuleSet) resolve(w Window) (Form, string) {
	for _, r := range rs.Rules {
		if len(w) < r.MinLen {
			continue
		}
		if r.Match(w) {
			return r.Result, r.Name
		}
	}
	return rs.Default, ""
}

// without returns a copy of rs with the named rule removed.
func (rs RuleSet) without(name string) RuleSet {
	rs.Rules = slices.DeleteFunc(slices.Clone(rs.Rules), func(r Rule) bool { return r.Name == name })
	return rs
}

// with returns a copy of rs with r added in priority order.
func (rs RuleSet) with(r Rule) RuleSet {
	return NewRuleSet(rs.Particle, rs.Default, append(slices.Clone(rs.Rules), r)...)
}

// Rule names.
const (
	RuleBenefactive    = "benefactive"
	RuleReportedSpeech = "reported-speech"
	RuleMaComplement   = "ma-complement"
	RulePostposition   = "postposition"
	RulePostpositionYe = "postposition-ye"
	RuleClauseMarker   = "clause-marker"
	RuleComeTo         = "come-to"
)

var (
	postpositions = setOf(
		"la", "na", "fɛ", "kɔnɔ", "kɔ", "kɔrɔ", "kan", "kun", "ɲɛ", "bolo",
		"da", "daa", "ɲɛɛ", "ɲɛfɛ", "sɛmɛ", "cɛ", "cɛma", "kɔfɛ", "kosɔn", "kama",
	)

	speechMarkers = setOf(
		"ko", "ka", "kana", "bɛ", "tɛ", "bɛna", "tɛna", "tun", "mana",
		"be", "te", "bena", "tena",
	)

	clauseMarkers = setOf(
		"ka", "kana", "bɛ", "tɛ", "bɛna", "tɛna", "tun", "mana",
		"be", "te", "bena", "tena", "yɛrɛ", "de", "dɛ",
	)
)

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func in(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}

// KRules returns a copy of the default k' rule set (ka, kɛ, ko).
func KRules() RuleSet {
	return NewRuleSet("k", Ka,
		Rule{
			Name: RuleBenefactive, Priority: 10, MinLen: 4, Result: Ke,
			Match: func(w Window) bool { return w[1] == "ma" && w[3] == "ye" },
		},
		Rule{
			Name: RuleReportedSpeech, Priority: 20, MinLen: 3, Result: Ko,
			Match: func(w Window) bool { return w[1] == "ma" && in(speechMarkers, w[2]) },
		},
		Rule{
			Name: RulePostposition, Priority: 30, MinLen: 2, Result: Ke,
			Match: func(w Window) bool { return in(postpositions, w[1]) },
		},
		Rule{
			Name: RulePostpositionYe, Priority: 31, MinLen: 2, Result: Ke,
			Match: func(w Window) bool { return w[1] == "ye" },
		},
		Rule{
			Name: RuleClauseMarker, Priority: 40, MinLen: 2, Result: Ko,
			Match: func(w Window) bool { return in(clauseMarkers, w[1]) },
		},
	)
}

// maComplementRule reads k' + pronoun + ma as kɛ.
func maComplementRule() Rule {
	return Rule{
		Name: RuleMaComplement, Priority: 25, MinLen: 2, Result: Ke,
		Match: func(w Window) bool { return w[1] == "ma" },
	}
}

// NRules returns a copy of the default n' rule set (na, ni).
func NRules() RuleSet {
	return NewRuleSet("n", Ni,
		Rule{
			Name: RuleComeTo, Priority: 10, MinLen: 2, Result: Na,
			Match: func(w Window) bool { return w[1] == "ma" },
		},
	)
}

// fixedRuleSets are the particles with a single reading.
func fixedRuleSets() []RuleSet {
	return []RuleSet{
		NewRuleSet("b", Be),
		NewRuleSet("t", Te),
		NewRuleSet("y", Ye),
		NewRuleSet("m", Ma),
		NewRuleSet("s", Sa),
	}
}

// baseForm reduces a word to its lookup form: modern spelling, lowercase,
// no tones, no punctuation. Legacy letters are mapped before tones go, so
// "kònò" reads as kɔnɔ.
func baseForm(w string) string {
	w = ortho.RemoveTones(bmcase.ToLower(ortho.Map(w)))
	return strings.TrimFunc(w, func(r rune) bool {
		return unicode.IsPunct(r) || bmcase.IsApostrophe(r)
	})
}
