// Unexported conversion functions for Bambara number-to-text conversion.
package numtext

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	growConvert = 64  // estimated bytes for a full conversion
	growDecimal = 128 // estimated bytes for a decimal conversion
)

// term is one band of a phrase: its text, its order and, for magnitude
// terms, the order of the last term of its multiplier.
type term struct {
	text  string
	order int
	tail  int
}

// convert converts n to a Bambara phrase using thousandWord for 10^3.
func convert(n int64, thousandWord string) (string, error) {
	if n < 0 || n > maxValue {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n == 0 {
		return wordZero, nil
	}
	return joinTerms(appendTerms(nil, n, thousandWord)), nil
}

// appendTerms appends the terms of n in descending order.
// Callers must ensure 0 < n <= maxValue.
func appendTerms(terms []term, n int64, thousandWord string) []term {
	if m := n / million; m > 0 {
		terms = append(terms, magnitudeTerm(wordMillion, orderMillion, m, thousandWord))
	}
	if t := n / thousand % thousand; t > 0 {
		terms = append(terms, magnitudeTerm(thousandWord, orderThousand, t, thousandWord))
	}

	if h := n / 100 % 10; h == 1 {
		terms = append(terms, term{text: wordHundred, order: orderHundred})
	} else if h > 1 {
		terms = append(terms, term{text: wordHundred + " " + units[h], order: orderHundred})
	}

	switch d := n / 10 % 10; d {
	case 0:
	case 1:
		terms = append(terms, term{text: wordTen, order: orderTens})
	case 2:
		terms = append(terms, term{text: wordTwenty, order: orderTens})
	default:
		terms = append(terms, term{text: wordTensOf + " " + units[d], order: orderTens})
	}

	if u := n % 10; u > 0 {
		terms = append(terms, term{text: units[u], order: orderUnit})
	}

	return terms
}

// magnitudeTerm builds "waa <mult>" or "miliyɔn <mult>" for 0 < mult < 1000.
func magnitudeTerm(word string, order int, mult int64, thousandWord string) term {
	sub := appendTerms(nil, mult, thousandWord)
	return term{
		text:  word + " " + joinTerms(sub),
		order: order,
		tail:  sub[len(sub)-1].order,
	}
}

// joinTerms joins terms with "ni", or with "ani" where a reader would
// otherwise fold the next term into the previous term's multiplier.
func joinTerms(terms []term) string {
	var b strings.Builder
	b.Grow(growConvert)

	for i, t := range terms {
		if i > 0 {
			b.WriteByte(' ')
			if terms[i-1].tail > t.order {
				b.WriteString(wordBandJoin)
			} else {
				b.WriteString(wordAnd)
			}
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}

	return b.String()
}

// convertDecimal converts a decimal number string to Bambara text.
func convertDecimal(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}

	intPart, frac, ok := splitDecimal(s)
	if !ok {
		return "", fmt.Errorf("numtext: invalid number %q", s)
	}

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	words, err := convert(n, wordThousand)
	if err != nil {
		return "", err
	}
	if frac == "" {
		return words, nil
	}

	var b strings.Builder
	b.Grow(growDecimal)
	b.WriteString(words)
	b.WriteByte(' ')
	b.WriteString(wordPoint)
	for i := 0; i < len(frac); i++ {
		b.WriteByte(' ')
		b.WriteString(units[frac[i]-'0'])
	}
	return b.String(), nil
}

// splitDecimal splits a digit string with . or , separators into integer
// digits and fraction digits. A single separator is a decimal point. With
// several separators, a final separator that differs from the others is the
// decimal point and the rest are grouping; otherwise all are grouping.
func splitDecimal(s string) (intPart, frac string, ok bool) {
	if s == "" || !isDigit(s[0]) || !isDigit(s[len(s)-1]) {
		return "", "", false
	}

	var seps []int
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
		case c == '.' || c == ',':
			if !isDigit(s[i-1]) {
				return "", "", false
			}
			seps = append(seps, i)
		default:
			return "", "", false
		}
	}

	switch len(seps) {
	case 0:
		return s, "", true
	case 1:
		return s[:seps[0]], s[seps[0]+1:], true
	}

	last := seps[len(seps)-1]
	grouping := s[seps[0]]
	point := len(s)
	if s[last] != grouping {
		point = last
	}
	for _, i := range seps {
		if i != point && s[i] != grouping {
			return "", "", false
		}
	}

	var b strings.Builder
	for i := 0; i < point; i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	if point < len(s) {
		return b.String(), s[point+1:], true
	}
	return b.String(), "", true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
