package validate

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/ortho"
	"github.com/sudoping01/bambara-text-normalization/tokenizer"
)

// Analysis summarizes the letters, tones and contractions of a text.
type Analysis struct {
	Characters     int                `json:"characters"`
	Letters        int                `json:"letters"`
	Words          int                `json:"words"`
	Vowels         int                `json:"vowels"`
	Consonants     int                `json:"consonants"`
	SpecialLetters int                `json:"special_letters"` // ɛ ɔ ɲ ŋ
	Tones          map[ortho.Tone]int `json:"tones"`
	Contractions   []string           `json:"contractions"` // distinct elided particles, lowercase
	Valid          bool               `json:"valid"`
}

// Analyze counts the letters and tone marks of text and lists the elided
// particles it contains, in order of first appearance.
func Analyze(text string) Analysis {
	a := Analysis{
		Characters: utf8.RuneCountInString(text),
		Tones:      ortho.CountTones(text),
		Valid:      IsValid(text),
	}

	for _, r := range bmcase.DecomposeNFD(text) {
		if !unicode.IsLetter(r) || bmcase.IsApostrophe(r) {
			continue
		}
		a.Letters++
		switch {
		case ortho.IsVowel(r):
			a.Vowels++
		case ortho.IsBambaraLetter(r):
			a.Consonants++
		}
		if ortho.IsSpecialLetter(r) {
			a.SpecialLetters++
		}
	}

	for _, tok := range tokenizer.WordTokens(text) {
		switch tok.Type {
		case tokenizer.Word:
			a.Words++
		case tokenizer.Elision:
			p := bmcase.ToLower(bmcase.CanonicalApostrophes(tok.Text))
			if !slices.Contains(a.Contractions, p) {
				a.Contractions = append(a.Contractions, p)
			}
		}
	}

	return a
}
