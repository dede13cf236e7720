// Letter tables for Bambara orthography mapping.
package ortho

// alphabet lists the lowercase letters of the standard Bambara alphabet.
// q, v and x are absent from native words but accepted in loans.
const alphabet = "abcdeɛfghijklmnɲŋoɔprstuwyzqvx"

// legacyDigraphs are rewritten before single letters.
var legacyDigraphs = map[string]rune{
	"ny": 'ɲ',
	"Ny": 'Ɲ',
	"NY": 'Ɲ',
	"nY": 'ɲ',
	"ng": 'ŋ',
	"Ng": 'Ŋ',
	"NG": 'Ŋ',
	"nG": 'ŋ',
}

// legacyLetters covers the French-influenced spelling and the Senegalese ñ.
var legacyLetters = map[rune]rune{
	'è': 'ɛ',
	'È': 'Ɛ',
	'ê': 'ɛ',
	'Ê': 'Ɛ',
	'ò': 'ɔ',
	'Ò': 'Ɔ',
	'ô': 'ɔ',
	'Ô': 'Ɔ',
	'ε': 'ɛ', // greek small epsilon
	'Ε': 'Ɛ', // greek capital epsilon
	'э': 'ɛ', // cyrillic small e
	'Э': 'Ɛ', // cyrillic capital e
	'ñ': 'ɲ',
	'Ñ': 'Ɲ',
}

// legacyLetterSet holds the keys of legacyLetters for a fast pre-check.
const legacyLetterSet = "èÈêÊòÒôÔεΕэЭñÑ"

// specialChars maps look-alike code points onto Bambara letters.
var specialChars = map[rune]rune{
	'ε': 'ɛ', // greek small epsilon
	'Ε': 'Ɛ', // greek capital epsilon
	'є': 'ɛ', // cyrillic ukrainian ie
	'Є': 'Ɛ',
	'э': 'ɛ', // cyrillic e
	'Э': 'Ɛ',
	'ᴐ': 'ɔ', // latin letter small capital open o
	'ɳ': 'ŋ', // n with retroflex hook
}

// frenchLetters covers letters that appear only in French loans.
// Accents that double as Bambara tone marks (à, è, ù, â, ...) are left alone.
var frenchLetters = map[rune]rune{
	'ç': 's',
	'Ç': 'S',
	'œ': 'ɛ',
	'Œ': 'Ɛ',
	'æ': 'ɛ',
	'Æ': 'Ɛ',
	'ë': 'e',
	'Ë': 'E',
	'ï': 'i',
	'Ï': 'I',
	'ü': 'u',
	'Ü': 'U',
	'ÿ': 'i',
}

// digraphExceptions lists words where n+g is a consonant cluster.
var digraphExceptions = map[string]struct{}{
	"sanga": {},
}
