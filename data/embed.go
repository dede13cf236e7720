// Package data embeds a small Bambara corpus used by the corpus smoketest
// when no directory is given.
package data

import _ "embed"

// Sample is a few paragraphs of Bambara in mixed orthographies: elisions,
// legacy spellings, tone marks, numbers, dates and times.
//
//go:embed sample.txt
var Sample string
