package ortho

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveTones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no tones", "bɛ a fɔ", "bɛ a fɔ"},
		{"open o high", "fɔ́", "fɔ"},
		{"a grave", "bà", "ba"},
		{"e acute", "né", "ne"},
		{"rising", "kǎ", "ka"},
		{"falling", "kâ", "ka"},
		{"mid", "kā", "ka"},
		{"sentence", "ń t'à lɔ̀n", "n t'a lɔn"},
		{"non-tone diacritic kept", "\u00e7a", "\u00e7a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RemoveTones(tt.input))
		})
	}
}

func TestRemoveNonToneDiacritics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"ça", "ca"},
		{"naïve", "naive"},
		{"bà", "bà"},
		{"ɛ́", "ɛ́"},
		{"ñ", "n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RemoveNonToneDiacritics(tt.input), "RemoveNonToneDiacritics(%q)", tt.input)
	}
}

func TestGetTone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Tone
	}{
		{"ba", ToneNone},
		{"bá", ToneHigh},
		{"bà", ToneLow},
		{"bǎ", ToneRising},
		{"bâ", ToneFalling},
		{"bā", ToneMid},
		{"ɛ̀", ToneLow},
		{"", ToneNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetTone(tt.input), "GetTone(%q)", tt.input)
	}
}

func TestHasTonesAndCount(t *testing.T) {
	t.Parallel()

	assert.False(t, HasTones("bamanankan"))
	assert.True(t, HasTones("bá"))

	counts := CountTones("á à é ɔ̀")
	assert.Equal(t, map[Tone]int{ToneHigh: 2, ToneLow: 2}, counts)
	assert.Empty(t, CountTones("ka"))
}

func TestAddTone(t *testing.T) {
	t.Parallel()

	got, err := AddTone("a", ToneHigh)
	require.NoError(t, err)
	assert.Equal(t, "á", got)

	got, err = AddTone("ɛ", ToneLow)
	require.NoError(t, err)
	assert.Equal(t, "ɛ̀", got)

	got, err = AddTone("o", ToneNone)
	require.NoError(t, err)
	assert.Equal(t, "o", got)

	_, err = AddTone("k", ToneHigh)
	assert.Error(t, err)

	_, err = AddTone("á", ToneLow)
	assert.Error(t, err)

	_, err = AddTone("a", Tone(42))
	assert.Error(t, err)
}

func TestLetters(t *testing.T) {
	t.Parallel()

	got := Letters("bá ɛ̀!")
	want := []Letter{
		{Base: 'b'},
		{Base: 'a', Tone: ToneHigh},
		{Base: 'ɛ', Tone: ToneLow},
	}
	assert.Equal(t, want, got)
	assert.Empty(t, Letters("123 !?"))
}

func TestToneString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tone Tone
		want string
	}{
		{ToneNone, "none"},
		{ToneHigh, "high"},
		{ToneLow, "low"},
		{ToneRising, "rising"},
		{ToneFalling, "falling"},
		{ToneMid, "mid"},
		{Tone(99), "Tone(99)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tone.String())
	}
}

func TestToneJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Letter{Base: 'a', Tone: ToneRising})
	require.NoError(t, err)
	assert.JSONEq(t, `{"base":97,"tone":"rising"}`, string(data))

	var l Letter
	require.NoError(t, json.Unmarshal([]byte(`{"base":98,"tone":"low"}`), &l))
	assert.Equal(t, Letter{Base: 'b', Tone: ToneLow}, l)

	assert.Error(t, json.Unmarshal([]byte(`{"base":98,"tone":"loud"}`), &l))
}

func TestToneMarksRoundTrip(t *testing.T) {
	t.Parallel()

	for tone := ToneHigh; tone <= ToneMid; tone++ {
		assert.Equal(t, tone, ToneOf(tone.Mark()), "tone %v", tone)
	}
	assert.Equal(t, rune(0), ToneNone.Mark())
}

func BenchmarkRemoveTones(b *testing.B) {
	s := "ń t'à lɔ̀n ka à fɔ́"
	for b.Loop() {
		RemoveTones(s)
	}
}
