// Package contraction expands and contracts elided Bambara particles.
//
// Bambara writes a particle and the pronoun after it as one unit: "b'a"
// for "bɛ a", "k'a" for "ka a", "kɛ a" or "ko a". Most particles have one
// reading. The k' and n' particles are resolved from the words that follow
// them with an ordered rule table (see KRules and NRules); the first
// matching rule wins and every table ends in a default, so resolution never
// fails.
//
// Elisions without a rule set, such as French l', d' or qu', are left as
// written.
//
// An Engine is immutable after New and safe for concurrent use.
package contraction

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/tokenizer"
)

// windowSize is the number of words read after a particle, the pronoun
// included.
const windowSize = 4

// Mode selects what Rewrite does with particles.
type Mode int

const (
	Expand   Mode = iota // k'a -> ka a
	Contract             // ka a -> k'a
	Preserve             // leave text unchanged
)

var modeNames = [...]string{
	Expand:   "expand",
	Contract: "contract",
	Preserve: "preserve",
}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "expand", "contract" or "preserve", case-insensitively.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if s == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("contraction: unknown mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("contraction: invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(data []byte) error {
	v, err := ParseMode(string(data))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Option configures an Engine.
type Option func(*Engine)

// WithRuleSet replaces the rule set of rs.Particle, or adds a new particle.
func WithRuleSet(rs RuleSet) Option {
	return func(e *Engine) {
		e.sets[rs.Particle] = NewRuleSet(rs.Particle, rs.Default, rs.Rules...)
	}
}

// WithoutRule removes the named rule from every rule set. Use it with
// RulePostpositionYe to read "k'a ye" as "ka a ye".
func WithoutRule(name string) Option {
	return func(e *Engine) {
		for p, rs := range e.sets {
			e.sets[p] = rs.without(name)
		}
	}
}

// WithMaComplement adds the rule reading "k'" + pronoun + "ma" as kɛ.
func WithMaComplement() Option {
	return func(e *Engine) {
		if rs, ok := e.sets["k"]; ok {
			e.sets["k"] = rs.without(RuleMaComplement).with(maComplementRule())
		}
	}
}

// Engine rewrites particles in one direction.
type Engine struct {
	mode Mode
	sets map[string]RuleSet
}

// New returns an engine for mode with the default rule sets, modified by opts.
func New(mode Mode, opts ...Option) *Engine {
	e := &Engine{mode: mode, sets: make(map[string]RuleSet)}
	for _, rs := range append(fixedRuleSets(), KRules(), NRules()) {
		e.sets[rs.Particle] = rs
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the engine's mode.
func (e *Engine) Mode() Mode { return e.mode }

var (
	defaultExpander   = New(Expand)
	defaultContractor = New(Contract)
)

// ExpandText expands every particle in text with the default rules.
func ExpandText(text string) string { return defaultExpander.Rewrite(text) }

// ContractText contracts every particle-pronoun pair in text.
func ContractText(text string) string { return defaultContractor.Rewrite(text) }

// Rewrite applies the engine's mode to text. Text that is not valid UTF-8
// is returned unchanged.
func (e *Engine) Rewrite(text string) string {
	if e.mode == Preserve || text == "" {
		return text
	}
	tokens, err := tokenizer.Tokenize(text)
	if err != nil {
		return text
	}
	if e.mode == Contract {
		return contract(text, tokens)
	}
	return e.expand(text, tokens)
}

// Resolve returns the form of the particle at tokens[i], where tokens come
// from tokenizer.Tokenize. It reports false when tokens[i] is not a particle
// the engine knows or is not glued to a following word.
func (e *Engine) Resolve(tokens []tokenizer.Token, i int) (Form, bool) {
	return e.resolve(tokens, i, min(len(tokens), i+1+windowSize))
}

// Explain is Resolve plus the name of the rule that fired, empty when the
// particle's default applied.
func (e *Engine) Explain(tokens []tokenizer.Token, i int) (Form, string, bool) {
	rs, ok := e.ruleSet(tokens, i)
	if !ok {
		return 0, "", false
	}
	f, name := rs.resolve(e.window(tokens, i, min(len(tokens), i+1+windowSize)))
	return f, name, true
}

func (e *Engine) resolve(tokens []tokenizer.Token, i, end int) (Form, bool) {
	rs, ok := e.ruleSet(tokens, i)
	if !ok {
		return 0, false
	}
	return rs.Resolve(e.window(tokens, i, end)), true
}

// ruleSet returns the rule set of the particle at tokens[i].
func (e *Engine) ruleSet(tokens []tokenizer.Token, i int) (RuleSet, bool) {
	if i < 0 || i+1 >= len(tokens) {
		return RuleSet{}, false
	}
	t := tokens[i]
	if t.Type != tokenizer.Elision || !t.Adjacent(tokens[i+1]) {
		return RuleSet{}, false
	}
	rs, ok := e.sets[particleKey(t.Text)]
	return rs, ok
}

// window collects the base forms of tokens[i+1:end]. A particle inside the
// window contributes its own resolved form, read within the same bound.
// The window stops after a word that ends a sentence.
func (e *Engine) window(tokens []tokenizer.Token, i, end int) Window {
	w := make(Window, 0, windowSize)
	for j := i + 1; j < end; j++ {
		if f, ok := e.resolve(tokens, j, end); ok {
			w = append(w, f.String())
			continue
		}
		w = append(w, baseForm(tokens[j].Text))
		if endsSentence(tokens[j].Text) {
			break
		}
	}
	return w
}

func (e *Engine) expand(text string, tokens []tokenizer.Token) string {
	var b strings.Builder
	last := 0
	for i, t := range tokens {
		f, ok := e.Resolve(tokens, i)
		if !ok {
			continue
		}
		lead, core := splitLead(t.Text)
		if b.Len() == 0 {
			b.Grow(len(text) + len(text)/4)
		}
		b.WriteString(text[last:t.Start])
		b.WriteString(lead)
		b.WriteString(bmcase.MatchCase(core, f.String()))
		b.WriteByte(' ')
		last = t.End
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// contractible maps full particle forms to their elided letter.
var contractible = map[string]string{
	"ka": "k", "kɛ": "k", "ko": "k",
	"ye": "y",
	"ni": "n", "na": "n",
	"bɛ": "b", "tɛ": "t",
}

var pronouns = setOf("a", "i", "u", "o", "e", "an", "aw", "anw", "ale", "alu", "olu")

// contract collapses "particle pronoun" pairs into "p'pronoun".
func contract(text string, tokens []tokenizer.Token) string {
	var b strings.Builder
	last := 0
	for i := 0; i+1 < len(tokens); i++ {
		t, next := tokens[i], tokens[i+1]
		if t.Type != tokenizer.Word || t.Adjacent(next) {
			continue
		}
		if i > 0 && tokens[i-1].Type == tokenizer.Elision && tokens[i-1].Adjacent(t) {
			continue
		}
		lead, core := splitLead(t.Text)
		letter, ok := contractible[baseForm(core)]
		if !ok || !unicode.IsLetter(lastRune(core)) {
			continue
		}
		if nl, _ := splitLead(next.Text); nl != "" || !in(pronouns, baseForm(next.Text)) {
			continue
		}
		b.WriteString(text[last:t.Start])
		b.WriteString(lead)
		b.WriteString(bmcase.MatchCase(core, letter))
		b.WriteByte(bmcase.Apostrophe)
		last = next.Start
		i++
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// particleKey returns the lowercase letters of an elision token, the key
// of its rule set.
func particleKey(text string) string {
	_, core := splitLead(text)
	core, _ = bmcase.TrimApostrophe(core)
	return bmcase.ToLower(core)
}

// splitLead splits off the non-letter runes at the start of s.
func splitLead(s string) (lead, rest string) {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func endsSentence(s string) bool {
	switch lastRune(s) {
	case '.', '!', '?', ';', ':':
		return true
	}
	return false
}
