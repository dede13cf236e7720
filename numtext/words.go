// Word tables for Bambara number-to-text conversion.
package numtext

import (
	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/ortho"
)

const (
	maxValue int64 = 999_999_999

	thousand int64 = 1_000
	million  int64 = 1_000_000

	wordZero     = "fu"
	wordTen      = "tan"
	wordTwenty   = "mugan"
	wordTensOf   = "bi"
	wordHundred  = "kɛmɛ"
	wordThousand = "waa"
	wordMillion  = "miliyɔn"
	wordAnd      = "ni"
	wordBandJoin = "ani"
	wordPoint    = "tomi"
)

// units is indexed by digit.
var units = [10]string{
	"fu",
	"kelen",
	"fila",
	"saba",
	"naani",
	"duuru",
	"wɔɔrɔ",
	"wolonwula",
	"seegin",
	"kɔnɔntɔn",
}

// Term orders, highest first. A phrase lists terms in strictly descending order.
const (
	orderUnit = iota + 1
	orderTens
	orderHundred
	orderThousand
	orderMillion
)

type lexKind int

const (
	kindUnit      lexKind = iota // kelen .. kɔnɔntɔn
	kindZero                     // fu
	kindTens                     // tan, mugan, joined bisaba ...
	kindTensOf                   // bi, followed by a unit
	kindHundred                  // kɛmɛ
	kindThousand                 // waa, baa
	kindMillion                  // miliyɔn
	kindConnector                // ni
	kindJoin                     // ani
	kindPoint                    // tomi
)

type lexeme struct {
	kind  lexKind
	value int64
}

// lexicon maps every accepted spelling, lowercased and tone-stripped.
var lexicon = map[string]lexeme{
	"fu":        {kindZero, 0},
	"kelen":     {kindUnit, 1},
	"kelenn":    {kindUnit, 1},
	"fila":      {kindUnit, 2},
	"saba":      {kindUnit, 3},
	"naani":     {kindUnit, 4},
	"naanin":    {kindUnit, 4},
	"duuru":     {kindUnit, 5},
	"wɔɔrɔ":     {kindUnit, 6},
	"woro":      {kindUnit, 6},
	"wolonwula": {kindUnit, 7},
	"wolonfila": {kindUnit, 7},
	"seegin":    {kindUnit, 8},
	"segin":     {kindUnit, 8},
	"kɔnɔntɔn":  {kindUnit, 9},
	"kɔnɔtɔn":   {kindUnit, 9},
	"kononton":  {kindUnit, 9},

	"tan":          {kindTens, 10},
	"mugan":        {kindTens, 20},
	"bi":           {kindTensOf, 0},
	"bisaba":       {kindTens, 30},
	"binaani":      {kindTens, 40},
	"biduuru":      {kindTens, 50},
	"biwɔɔrɔ":      {kindTens, 60},
	"biwolonwula":  {kindTens, 70},
	"biwolonfila":  {kindTens, 70},
	"biseegin":     {kindTens, 80},
	"bisegin":      {kindTens, 80},
	"bikɔnɔntɔn":   {kindTens, 90},
	"bikɔnɔtɔn":    {kindTens, 90},

	"kɛmɛ": {kindHundred, 100},
	"keme": {kindHundred, 100},

	"waa": {kindThousand, thousand},
	"baa": {kindThousand, thousand},
	"wa":  {kindThousand, thousand},
	"ba":  {kindThousand, thousand},

	"miliyɔn": {kindMillion, million},
	"milyɔn":  {kindMillion, million},
	"miliyon": {kindMillion, million},
	"milyon":  {kindMillion, million},

	"ni":   {kindConnector, 0},
	"ani":  {kindJoin, 0},
	"tomi": {kindPoint, 0},
}

// particles are lexicon spellings that are far more often grammatical
// particles than numerals. Parse accepts them; running-text passes do not.
var particles = map[string]struct{}{
	"wa": {},
	"ba": {},
}

// lookup folds w and finds it in the lexicon, skipping particles.
func lookup(w string) (lexeme, bool) {
	return lookupFolded(foldWord(w))
}

func lookupFolded(f string) (lexeme, bool) {
	if _, ok := particles[f]; ok {
		return lexeme{}, false
	}
	lx, ok := lexicon[f]
	return lx, ok
}

// foldWord lowercases w, strips tones and maps legacy spellings.
func foldWord(w string) string {
	return ortho.Map(bmcase.ToLower(ortho.RemoveTones(w)))
}

// order returns the term order a lexeme starts, or 0 for non-term lexemes.
func (lx lexeme) order() int {
	switch lx.kind {
	case kindUnit:
		return orderUnit
	case kindTens, kindTensOf:
		return orderTens
	case kindHundred:
		return orderHundred
	case kindThousand:
		return orderThousand
	case kindMillion:
		return orderMillion
	}
	return 0
}
