// Package validate checks Bambara text against the standard orthography.
//
// The validator reports four categories of issues:
//
//   - Foreign letter: a letter outside the Bambara alphabet, or a letter
//     carrying a diacritic that is not a tone mark (ç, ü, є). When the
//     letter has a known Bambara equivalent the issue is a warning with a
//     suggestion; otherwise it is an error.
//   - Legacy spelling: pre-standard forms that ortho.Map rewrites
//     (ny, ng, è, ò, ñ, ...).
//   - Apostrophe variant: an elision written with a typographic quote or
//     modifier letter instead of U+0027.
//   - Mixed tone: a text where some words carry tone marks and others do
//     not. The words in the minority group are reported.
//
// Two API layers are provided:
//
//   - Structured: [Validate] returns a [Report] with a quality score
//     (0–100) and a positioned issue list sorted by byte offset.
//   - Convenience: [IsValid] returns true when no error-severity issues
//     exist.
//
// [Analyze] returns letter, vowel and tone counts for a text.
//
// The quality score starts at 100 and deducts points per issue:
// error −10, warning −3, info −1, with a floor of 0.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Legacy "ng" is flagged inside every word except the few where it is
//     a genuine cluster (sanga). French words such as "long" are flagged.
//   - q, v and x are accepted as letters of loanwords.
//   - Tone marking is checked for presence only, not for correctness.
package validate

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/sudoping01/bambara-text-normalization/tokenizer"
)

// IssueType classifies a validation issue.
type IssueType int

const (
	ForeignLetter     IssueType = iota // letter outside the Bambara alphabet
	LegacySpelling                     // pre-standard spelling
	ApostropheVariant                  // non-ASCII elision mark
	MixedTone                          // inconsistent tone marking
)

var issueTypeNames = [...]string{
	ForeignLetter:     "foreign_letter",
	LegacySpelling:    "legacy_spelling",
	ApostropheVariant: "apostrophe_variant",
	MixedTone:         "mixed_tone",
}

var issueTypeFromName = map[string]IssueType{
	"foreign_letter":     ForeignLetter,
	"legacy_spelling":    LegacySpelling,
	"apostrophe_variant": ApostropheVariant,
	"mixed_tone":         MixedTone,
}

// String returns the name of the issue type.
func (t IssueType) String() string {
	if int(t) >= 0 && int(t) < len(issueTypeNames) {
		return issueTypeNames[t]
	}
	return fmt.Sprintf("IssueType(%d)", int(t))
}

// MarshalJSON encodes the issue type as a JSON string (e.g. "legacy_spelling").
func (t IssueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a JSON string into an IssueType.
func (t *IssueType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	it, ok := issueTypeFromName[s]
	if !ok {
		return fmt.Errorf("validate: unknown issue type: %q", s)
	}
	*t = it
	return nil
}

// Severity indicates the severity of a validation issue.
// Higher numeric values mean higher severity.
type Severity int

const (
	Info    Severity = iota // informational
	Warning                 // should fix
	Error                   // must fix
)

var severityNames = [...]string{
	Info:    "info",
	Warning: "warning",
	Error:   "error",
}

var severityFromName = map[string]Severity{
	"info":    Info,
	"warning": Warning,
	"error":   Error,
}

// String returns the name of the severity.
func (s Severity) String() string {
	if int(s) >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalJSON encodes the severity as a JSON string (e.g. "error").
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string into a Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sv, ok := severityFromName[str]
	if !ok {
		return fmt.Errorf("validate: unknown severity: %q", str)
	}
	*s = sv
	return nil
}

// Issue is a single validation finding with position information.
type Issue struct {
	Text       string    `json:"text"`
	Start      int       `json:"start"` // byte offset, inclusive
	End        int       `json:"end"`   // byte offset, exclusive
	Type       IssueType `json:"type"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion"` // empty if no fix available
}

// Report contains the validation result: a quality score and issue list.
type Report struct {
	Score  int     `json:"score"`  // 0-100, higher is better
	Issues []Issue `json:"issues"` // sorted by byte offset, then severity desc
}

const (
	maxInputBytes = 1 << 20 // same limit as normalize
	maxIssues     = 1000
	deductError   = 10
	deductWarning = 3
	deductInfo    = 1
	maxScore      = 100
)

// Validate checks text for orthography issues.
// Empty or oversized (>1 MiB) input returns Report{Score: 100, Issues: nil}.
func Validate(text string) Report {
	if text == "" || len(text) > maxInputBytes {
		return Report{Score: maxScore}
	}

	tokens := tokenizer.WordTokens(text)
	if len(tokens) == 0 {
		return Report{Score: maxScore}
	}

	var issues []Issue
	issues = appendForeignLetterIssues(issues, tokens)
	issues = appendLegacyIssues(issues, tokens)
	issues = appendApostropheIssues(issues, tokens)
	issues = appendMixedToneIssues(issues, tokens)

	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}

	// Offset ascending, then Error first.
	slices.SortStableFunc(issues, func(a, b Issue) int {
		if a.Start != b.Start {
			if a.Start < b.Start {
				return -1
			}
			return 1
		}
		if a.Severity != b.Severity {
			if a.Severity > b.Severity {
				return -1
			}
			return 1
		}
		return 0
	})

	return Report{
		Score:  calculateScore(issues),
		Issues: issues,
	}
}

// IsValid reports whether text has no error-severity issues.
// Only unmappable foreign letters are errors, so only that check runs.
func IsValid(text string) bool {
	if text == "" || len(text) > maxInputBytes {
		return true
	}
	for _, issue := range appendForeignLetterIssues(nil, tokenizer.WordTokens(text)) {
		if issue.Severity == Error {
			return false
		}
	}
	return true
}

// calculateScore starts at 100, deducts per issue by severity and floors at 0.
func calculateScore(issues []Issue) int {
	score := maxScore
	for _, issue := range issues {
		switch issue.Severity {
		case Error:
			score -= deductError
		case Warning:
			score -= deductWarning
		case Info:
			score -= deductInfo
		}
	}
	return max(score, 0)
}
