// Text-to-number parsing for Bambara numeral phrases.
package numtext

import (
	"strconv"
	"strings"
)

// parser is a recursive-descent reader over the words of one phrase.
type parser struct {
	phrase string
	raw    []string // words as written, for error messages
	words  []string // folded words
	pos    int
}

// termInfo describes the last term read: its order and, for magnitude
// terms, the order of the last term of its multiplier.
type termInfo struct {
	order int
	tail  int
}

func newParser(s string) (*parser, error) {
	raw := strings.Fields(s)
	if len(raw) == 0 {
		return nil, &ParseError{Phrase: s, Reason: "empty input"}
	}
	words := make([]string, len(raw))
	for i, w := range raw {
		words[i] = foldWord(w)
	}
	return &parser{phrase: s, raw: raw, words: words}, nil
}

// parse converts a Bambara numeral phrase to int64.
func parse(s string) (int64, error) {
	p, err := newParser(s)
	if err != nil {
		return 0, err
	}
	n, err := p.number()
	if err != nil {
		return 0, err
	}
	if !p.done() {
		return 0, p.fail("unexpected word")
	}
	return n, nil
}

// parseDecimal converts a phrase with an optional "tomi" fraction to a
// digit string.
func parseDecimal(s string) (string, error) {
	p, err := newParser(s)
	if err != nil {
		return "", err
	}
	return p.decimal()
}

func (p *parser) decimal() (string, error) {
	n, err := p.number()
	if err != nil {
		return "", err
	}
	digits := strconv.FormatInt(n, 10)
	if p.done() {
		return digits, nil
	}

	if lx, ok := p.peek(); !ok || lx.kind != kindPoint {
		return "", p.fail("unexpected word")
	}
	p.pos++
	if p.done() {
		return "", p.fail("missing digits after tomi")
	}

	var b strings.Builder
	b.WriteString(digits)
	b.WriteByte('.')
	for !p.done() {
		lx, ok := p.peek()
		if !ok || (lx.kind != kindUnit && lx.kind != kindZero) {
			return "", p.fail("fraction digits must be single units")
		}
		b.WriteByte(byte('0' + lx.value))
		p.pos++
	}
	return b.String(), nil
}

// number reads a full integer phrase: "fu", or terms in strictly
// descending order joined by connectors. Stops before "tomi".
func (p *parser) number() (int64, error) {
	if lx, ok := p.peek(); ok && lx.kind == kindZero {
		p.pos++
		if !p.done() && !p.atPoint() {
			return 0, p.fail("fu cannot start a compound")
		}
		return 0, nil
	}

	total, last, err := p.term(orderMillion + 1)
	if err != nil {
		return 0, err
	}

	for !p.done() && !p.atPoint() {
		lx, ok := p.peek()
		if !ok {
			return 0, p.fail("unknown word")
		}
		switch lx.kind {
		case kindConnector:
		case kindJoin:
			if last.tail == 0 {
				return 0, p.fail("ani must follow a magnitude with a multiplier")
			}
		default:
			return 0, p.fail("expected ni between terms")
		}
		p.pos++
		if p.done() {
			p.pos--
			return 0, p.fail("dangling connector")
		}

		v, info, err := p.term(last.order)
		if err != nil {
			return 0, err
		}
		total += v
		last = info
	}

	return total, nil
}

// term reads one term whose order must be below ceiling.
func (p *parser) term(ceiling int) (int64, termInfo, error) {
	lx, ok := p.peek()
	if !ok {
		return 0, termInfo{}, p.fail("unknown word")
	}
	o := lx.order()
	if o == 0 {
		return 0, termInfo{}, p.fail("expected a number word")
	}
	if o >= ceiling {
		return 0, termInfo{}, p.fail("terms out of order")
	}
	p.pos++

	switch lx.kind {
	case kindUnit, kindTens:
		return lx.value, termInfo{order: o}, nil

	case kindTensOf:
		u, ok := p.peek()
		if !ok || u.kind != kindUnit || u.value < 3 {
			return 0, termInfo{}, p.fail("bi must be followed by saba .. kɔnɔntɔn")
		}
		p.pos++
		return 10 * u.value, termInfo{order: o}, nil

	case kindHundred:
		if u, ok := p.peek(); ok && u.kind == kindUnit {
			p.pos++
			return 100 * u.value, termInfo{order: o}, nil
		}
		return 100, termInfo{order: o}, nil

	default: // kindThousand, kindMillion
		mult, tail, err := p.multiplier()
		if err != nil {
			return 0, termInfo{}, err
		}
		return lx.value * mult, termInfo{order: o, tail: tail}, nil
	}
}

// multiplier reads the phrase after waa or miliyɔn. It extends over "ni"
// while each following term has a lower order than the previous one, and
// never across "ani". A magnitude word with no multiplier counts once.
func (p *parser) multiplier() (int64, int, error) {
	if p.done() {
		return 1, 0, nil
	}
	lx, ok := p.peek()
	if !ok {
		return 0, 0, p.fail("unknown word")
	}
	switch lx.kind {
	case kindConnector, kindJoin, kindPoint:
		return 1, 0, nil
	case kindThousand, kindMillion:
		return 0, 0, p.fail("magnitude word without multiplier")
	case kindZero:
		return 0, 0, p.fail("fu cannot be a multiplier")
	}

	val, last, err := p.term(orderThousand)
	if err != nil {
		return 0, 0, err
	}

	for !p.done() {
		if c, ok := p.peek(); !ok || c.kind != kindConnector {
			break
		}
		if p.pos+1 >= len(p.words) {
			break
		}
		next, ok := lexicon[p.words[p.pos+1]]
		if !ok || next.order() == 0 || next.order() >= last.order {
			break
		}
		p.pos++
		v, info, err := p.term(last.order)
		if err != nil {
			return 0, 0, err
		}
		val += v
		last = info
	}

	return val, last.order, nil
}

func (p *parser) peek() (lexeme, bool) {
	if p.done() {
		return lexeme{}, false
	}
	lx, ok := lexicon[p.words[p.pos]]
	return lx, ok
}

func (p *parser) atPoint() bool {
	lx, ok := p.peek()
	return ok && lx.kind == kindPoint
}

func (p *parser) done() bool {
	return p.pos >= len(p.words)
}

func (p *parser) fail(reason string) error {
	word := ""
	if p.pos < len(p.raw) {
		word = p.raw[p.pos]
	}
	return &ParseError{Phrase: p.phrase, Word: word, Reason: reason}
}
