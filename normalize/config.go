package normalize

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"

	"github.com/sudoping01/bambara-text-normalization/contraction"
)

// Direction selects which way the number, date and time passes convert.
type Direction int

const (
	ToWords  Direction = iota // 12 -> tan ni fila
	ToDigits                  // tan ni fila -> 12
)

var directionNames = [...]string{
	ToWords:  "to_words",
	ToDigits: "to_digits",
}

// String returns the configuration name of the direction.
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "to_words" or "to_digits".
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if s == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("normalize: unknown numeral direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(directionNames) {
		return nil, fmt.Errorf("normalize: invalid numeral direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(data []byte) error {
	v, err := ParseDirection(string(data))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Config selects the passes Normalize applies. It is a plain value: copy it,
// change fields, pass it on.
type Config struct {
	ContractionMode             contraction.Mode `yaml:"contraction_mode" json:"contraction_mode"`
	PreserveTones               bool             `yaml:"preserve_tones" json:"preserve_tones"`
	NormalizeLegacyOrthography  bool             `yaml:"normalize_legacy_orthography" json:"normalize_legacy_orthography"`
	Lowercase                   bool             `yaml:"lowercase" json:"lowercase"`
	RemovePunctuation           bool             `yaml:"remove_punctuation" json:"remove_punctuation"`
	NormalizeWhitespace         bool             `yaml:"normalize_whitespace" json:"normalize_whitespace"`
	NormalizeApostrophes        bool             `yaml:"normalize_apostrophes" json:"normalize_apostrophes"`
	NormalizeSpecialChars       bool             `yaml:"normalize_special_chars" json:"normalize_special_chars"`
	ExpandNumbers               bool             `yaml:"expand_numbers" json:"expand_numbers"`
	ExpandDates                 bool             `yaml:"expand_dates" json:"expand_dates"`
	ExpandTimes                 bool             `yaml:"expand_times" json:"expand_times"`
	NumeralDirection            Direction        `yaml:"numeral_direction" json:"numeral_direction"`
	IncludeKalo                 bool             `yaml:"include_kalo" json:"include_kalo"`
	RemoveDiacriticsExceptTones bool             `yaml:"remove_diacritics_except_tones" json:"remove_diacritics_except_tones"`
	HandleFrenchLoanwords       bool             `yaml:"handle_french_loanwords" json:"handle_french_loanwords"`
	StripRepetitions            bool             `yaml:"strip_repetitions" json:"strip_repetitions"`
	NormalizeCompounds          bool             `yaml:"normalize_compounds" json:"normalize_compounds"`
	YeAsPostposition            bool             `yaml:"ye_as_postposition" json:"ye_as_postposition"`
	MaComplement                bool             `yaml:"ma_complement" json:"ma_complement"`
}

// Default returns the standard configuration: contractions expanded, tones
// kept, legacy spellings mapped, lowercase, no punctuation.
func Default() Config {
	return Config{
		ContractionMode:            contraction.Expand,
		PreserveTones:              true,
		NormalizeLegacyOrthography: true,
		Lowercase:                  true,
		RemovePunctuation:          true,
		NormalizeWhitespace:        true,
		NormalizeApostrophes:       true,
		NormalizeSpecialChars:      true,
		HandleFrenchLoanwords:      true,
		YeAsPostposition:           true,
	}
}

// ForWEREvaluation returns the aggressive configuration used before word
// error rate scoring: tones and non-tone diacritics removed, numbers, dates
// and times spelled out, repetitions and compounds folded.
func ForWEREvaluation(mode contraction.Mode) Config {
	c := Default()
	c.ContractionMode = mode
	c.PreserveTones = false
	c.ExpandNumbers = true
	c.ExpandDates = true
	c.ExpandTimes = true
	c.RemoveDiacriticsExceptTones = true
	c.StripRepetitions = true
	c.NormalizeCompounds = true
	return c
}

// ForCEREvaluation is ForWEREvaluation without repetition stripping, since
// repeated letters count at character level.
func ForCEREvaluation(mode contraction.Mode) Config {
	c := ForWEREvaluation(mode)
	c.StripRepetitions = false
	return c
}

// PreservingTones keeps tone marks and leaves French letters alone.
func PreservingTones(mode contraction.Mode) Config {
	c := Default()
	c.ContractionMode = mode
	c.HandleFrenchLoanwords = false
	return c
}

// Minimal lowercases, canonicalizes apostrophes and collapses whitespace.
func Minimal() Config {
	return Config{
		ContractionMode:      contraction.Preserve,
		PreserveTones:        true,
		Lowercase:            true,
		NormalizeWhitespace:  true,
		NormalizeApostrophes: true,
		YeAsPostposition:     true,
	}
}

// Preset names accepted by Preset.
const (
	PresetStandard        = "standard"
	PresetWER             = "wer"
	PresetCER             = "cer"
	PresetPreservingTones = "preserving_tones"
	PresetMinimal         = "minimal"
)

// Presets lists the preset names in a stable order.
var Presets = []string{PresetStandard, PresetWER, PresetCER, PresetPreservingTones, PresetMinimal}

// Preset returns the named configuration. mode is ignored by "minimal",
// which never touches contractions.
func Preset(name string, mode contraction.Mode) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PresetStandard, "":
		c := Default()
		c.ContractionMode = mode
		return c, nil
	case PresetWER:
		return ForWEREvaluation(mode), nil
	case PresetCER:
		return ForCEREvaluation(mode), nil
	case PresetPreservingTones:
		return PreservingTones(mode), nil
	case PresetMinimal:
		return Minimal(), nil
	}
	return Config{}, fmt.Errorf("normalize: unknown preset %q (choose from %s)", name, strings.Join(Presets, ", "))
}

// ParseConfig applies YAML overrides in data on top of base. Unknown keys
// are an error.
func ParseConfig(data []byte, base Config) (Config, error) {
	c := base
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("normalize: parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads a YAML file and applies it on top of base.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("normalize: reading config: %w", err)
	}
	return ParseConfig(data, base)
}

// Validate reports every inconsistent field at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if _, err := c.ContractionMode.MarshalText(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.NumeralDirection.MarshalText(); err != nil {
		result = multierror.Append(result, err)
	}
	if c.IncludeKalo && (!c.ExpandDates || c.NumeralDirection != ToWords) {
		result = multierror.Append(result, fmt.Errorf("normalize: include_kalo requires expand_dates with numeral_direction %s", ToWords))
	}
	if c.MaComplement && c.ContractionMode != contraction.Expand {
		result = multierror.Append(result, fmt.Errorf("normalize: ma_complement requires contraction_mode %s", contraction.Expand))
	}

	return result.ErrorOrNil()
}
