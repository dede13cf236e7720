package tokenizer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// verifyInvariants checks two invariants that must hold for every tokenization:
//   - Byte offset invariant: input[t.Start:t.End] == t.Text for every token.
//   - Reconstruction invariant: concatenating all token texts reproduces the input.
func verifyInvariants(t *testing.T, input string, tokens []Token) {
	t.Helper()
	for i, tok := range tokens {
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("token %d offset invariant broken: input[%d:%d]=%q, Text=%q",
				i, tok.Start, tok.End, got, tok.Text)
		}
	}
	var buf strings.Builder
	for _, tok := range tokens {
		buf.WriteString(tok.Text)
	}
	if buf.String() != input {
		t.Errorf("reconstruction invariant broken:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

// verifyOffsets checks only the byte offset invariant; Tokenize drops whitespace.
func verifyOffsets(t *testing.T, input string, tokens []Token) {
	t.Helper()
	for i, tok := range tokens {
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("token %d offset invariant broken: input[%d:%d]=%q, Text=%q",
				i, tok.Start, tok.End, got, tok.Text)
		}
	}
}

// ---------------------------------------------------------------------------
// Tokenize
// ---------------------------------------------------------------------------

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{"single word", "fɔ", []Token{
			{Text: "fɔ", Start: 0, End: 3, Type: Word},
		}},
		{"elision split", "b'a fɔ", []Token{
			{Text: "b'", Start: 0, End: 2, Type: Elision},
			{Text: "a", Start: 2, End: 3, Type: Word},
			{Text: "fɔ", Start: 4, End: 7, Type: Word},
		}},
		{"typographic apostrophe", "k’a", []Token{
			{Text: "k’", Start: 0, End: 4, Type: Elision},
			{Text: "a", Start: 4, End: 5, Type: Word},
		}},
		{"capital particle", "K'ale", []Token{
			{Text: "K'", Start: 0, End: 2, Type: Elision},
			{Text: "ale", Start: 2, End: 5, Type: Word},
		}},
		{"punctuation stays attached", "fɔ!", []Token{
			{Text: "fɔ!", Start: 0, End: 4, Type: Word},
		}},
		{"leading quote", "\"b'a", []Token{
			{Text: "\"b'", Start: 0, End: 3, Type: Elision},
			{Text: "a", Start: 3, End: 4, Type: Word},
		}},
		{"two elisions in a chunk", "k'a'a", []Token{
			{Text: "k'", Start: 0, End: 2, Type: Elision},
			{Text: "a'", Start: 2, End: 4, Type: Elision},
			{Text: "a", Start: 4, End: 5, Type: Word},
		}},
		{"standalone particle", "b' a", []Token{
			{Text: "b'", Start: 0, End: 2, Type: Elision},
			{Text: "a", Start: 3, End: 4, Type: Word},
		}},
		{"trailing apostrophe on long word", "dɔgɔtɔrɔ'", []Token{
			{Text: "dɔgɔtɔrɔ'", Start: 0, End: 13, Type: Word},
		}},
		{"number", "12:30", []Token{
			{Text: "12:30", Start: 0, End: 5, Type: Number},
		}},
		{"punctuation only", "!!!", []Token{
			{Text: "!!!", Start: 0, End: 3, Type: Punctuation},
		}},
		{"symbol", "€", []Token{
			{Text: "€", Start: 0, End: 3, Type: Symbol},
		}},
		{"mixed whitespace", "a \t\nb", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: "b", Start: 4, End: 5, Type: Word},
		}},
		{"toned word", "fɔ́", []Token{
			{Text: "fɔ́", Start: 0, End: 5, Type: Word, HasTone: true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			verifyOffsets(t, tt.input, got)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q): got %d tokens, want %d\ngot:  %v\nwant: %v",
					tt.input, len(got), len(tt.want), got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %v (tone=%v), want %v (tone=%v)",
						i, got[i], got[i].HasTone, tt.want[i], tt.want[i].HasTone)
				}
			}
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "   ", "\n\t"} {
		got, err := Tokenize(s)
		if err != nil {
			t.Errorf("Tokenize(%q) error: %v", s, err)
		}
		if len(got) != 0 {
			t.Errorf("Tokenize(%q) = %v, want no tokens", s, got)
		}
	}
}

func TestTokenizeInvalidEncoding(t *testing.T) {
	t.Parallel()

	_, err := Tokenize("ka\xffa")
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Tokenize invalid UTF-8: err = %v, want ErrInvalidEncoding", err)
	}
	if !strings.Contains(err.Error(), "byte 2") {
		t.Errorf("error %q does not report the offset", err)
	}
}

// ---------------------------------------------------------------------------
// WordTokens
// ---------------------------------------------------------------------------

func TestWordTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{"two words", "i ni ce", []Token{
			{Text: "i", Start: 0, End: 1, Type: Word},
			{Text: " ", Start: 1, End: 2, Type: Space},
			{Text: "ni", Start: 2, End: 4, Type: Word},
			{Text: " ", Start: 4, End: 5, Type: Space},
			{Text: "ce", Start: 5, End: 7, Type: Word},
		}},
		{"elision", "b'a", []Token{
			{Text: "b'", Start: 0, End: 2, Type: Elision},
			{Text: "a", Start: 2, End: 3, Type: Word},
		}},
		{"punctuation split", "fɔ!", []Token{
			{Text: "fɔ", Start: 0, End: 3, Type: Word},
			{Text: "!", Start: 3, End: 4, Type: Punctuation},
		}},
		{"hyphenated word", "Bamako-ka", []Token{
			{Text: "Bamako-ka", Start: 0, End: 9, Type: Word},
		}},
		{"double hyphen", "a--b", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: "--", Start: 1, End: 3, Type: Punctuation},
			{Text: "b", Start: 3, End: 4, Type: Word},
		}},
		{"clock", "7:30", []Token{
			{Text: "7:30", Start: 0, End: 4, Type: Number},
		}},
		{"decimal", "5,3", []Token{
			{Text: "5,3", Start: 0, End: 3, Type: Number},
		}},
		{"trailing separator", "5.", []Token{
			{Text: "5", Start: 0, End: 1, Type: Number},
			{Text: ".", Start: 1, End: 2, Type: Punctuation},
		}},
		{"date", "13-10-2024", []Token{
			{Text: "13", Start: 0, End: 2, Type: Number},
			{Text: "-", Start: 2, End: 3, Type: Punctuation},
			{Text: "10", Start: 3, End: 5, Type: Number},
			{Text: "-", Start: 5, End: 6, Type: Punctuation},
			{Text: "2024", Start: 6, End: 10, Type: Number},
		}},
		{"decomposed tone mark", "fɔ́", []Token{
			{Text: "fɔ́", Start: 0, End: 5, Type: Word, HasTone: true},
		}},
		{"invalid byte", "a\xffb", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: "\xff", Start: 1, End: 2, Type: Symbol},
			{Text: "b", Start: 2, End: 3, Type: Word},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := WordTokens(tt.input)
			verifyInvariants(t, tt.input, got)
			if len(got) != len(tt.want) {
				t.Fatalf("WordTokens(%q): got %d tokens, want %d\ngot:  %v\nwant: %v",
					tt.input, len(got), len(tt.want), got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWordTokensLargeInput(t *testing.T) {
	chunk := "An b'a fɔ ko ɲɛgɛn bɛ 1.000 dɔrɔmɛ sɔrɔ! "
	input := strings.Repeat(chunk, 30000) // > 1MB
	tokens := WordTokens(input)
	if len(tokens) == 0 {
		t.Error("expected non-empty token list for large input")
	}
	verifyInvariants(t, input, tokens)
}

// ---------------------------------------------------------------------------
// Words, Join, Texts
// ---------------------------------------------------------------------------

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic words", "I ni ce, n teri!", []string{"I", "ni", "ce", "n", "teri"}},
		{"elision kept", "b'a fɔ", []string{"b'", "a", "fɔ"}},
		{"numbers excluded", "mɔgɔ 5 bɛ yen", []string{"mɔgɔ", "bɛ", "yen"}},
		{"empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Words(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Words(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			compareStringSlice(t, "Words", tt.want, got)
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"b'a fɔ", "b'a fɔ"},
		{"b' a fɔ", "b'a fɔ"},
		{"a   b\t\nc", "a b c"},
		{"K'ale t'a fɛ", "K'ale t'a fɛ"},
		{"", ""},
	}

	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
		}
		if got := Join(tokens); got != tt.want {
			t.Errorf("Join(Tokenize(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestJoinSkipsEmptyTokens(t *testing.T) {
	t.Parallel()

	tokens := []Token{
		{Text: "a", Type: Word},
		{Text: "", Type: Word},
		{Text: "b", Type: Word},
	}
	if got := Join(tokens); got != "a b" {
		t.Errorf("Join = %q, want %q", got, "a b")
	}
}

func TestTexts(t *testing.T) {
	t.Parallel()

	tokens, _ := Tokenize("n'a ta")
	compareStringSlice(t, "Texts", []string{"n'", "a", "ta"}, Texts(tokens))
}

func TestAdjacent(t *testing.T) {
	t.Parallel()

	tokens, _ := Tokenize("b'a fɔ")
	if !tokens[0].Adjacent(tokens[1]) {
		t.Error("b' and a should be adjacent")
	}
	if tokens[1].Adjacent(tokens[2]) {
		t.Error("a and fɔ should not be adjacent")
	}
}

// ---------------------------------------------------------------------------
// TokenType.String, Token.String
// ---------------------------------------------------------------------------

func TestTokenTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tt   TokenType
		want string
	}{
		{Word, "Word"},
		{Elision, "Elision"},
		{Number, "Number"},
		{Punctuation, "Punctuation"},
		{Space, "Space"},
		{Symbol, "Symbol"},
		{TokenType(99), "TokenType(99)"},
	}
	for _, tt := range tests {
		if got := tt.tt.String(); got != tt.want {
			t.Errorf("TokenType(%d).String() = %q, want %q", int(tt.tt), got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tok := Token{Text: "b'", Start: 0, End: 2, Type: Elision}
	want := `Elision("b'")[0:2]`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkTokenize(b *testing.B) {
	input := strings.Repeat("K'ale t'a fɛ k'a kɛ, an b'a fɔ ko 12:30 don. ", 1000)
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		_, _ = Tokenize(input)
	}
}

func BenchmarkWordTokens(b *testing.B) {
	input := strings.Repeat("K'ale t'a fɛ k'a kɛ, an b'a fɔ ko 12:30 don. ", 1000)
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		WordTokens(input)
	}
}

// ---------------------------------------------------------------------------
// Examples
// ---------------------------------------------------------------------------

func ExampleTokenize() {
	tokens, _ := Tokenize("An b'a fɔ.")
	for _, t := range tokens {
		fmt.Printf("%s: %q\n", t.Type, t.Text)
	}
	// Output:
	// Word: "An"
	// Elision: "b'"
	// Word: "a"
	// Word: "fɔ."
}

func ExampleWords() {
	fmt.Println(Words("K'a ta, i ni ce!"))
	// Output:
	// [K' a ta i ni ce]
}

// ---------------------------------------------------------------------------
// Fuzz tests
// ---------------------------------------------------------------------------

func FuzzWordTokens(f *testing.F) {
	f.Add("An b'a fɔ.")
	f.Add("1.000.000,50")
	f.Add("12:30:45")
	f.Add("")
	f.Add("\xff\xfe")
	f.Add("k'''a")
	f.Add("fɔ́")
	f.Fuzz(func(t *testing.T, s string) {
		tokens := WordTokens(s)
		verifyInvariants(t, s, tokens)
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("An b'a fɔ.")
	f.Add("k'a'a")
	f.Add("b' a")
	f.Add("\xff")
	f.Fuzz(func(t *testing.T, s string) {
		tokens, err := Tokenize(s)
		if err != nil {
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		verifyOffsets(t, s, tokens)
		for i := 1; i < len(tokens); i++ {
			if tokens[i].Start < tokens[i-1].End {
				t.Fatalf("tokens overlap: %v %v", tokens[i-1], tokens[i])
			}
		}
	})
}

// ---------------------------------------------------------------------------
// Concurrent safety
// ---------------------------------------------------------------------------

func TestConcurrentSafety(t *testing.T) {
	input := "K'ale t'a fɛ k'a kɛ, an b'a fɔ ko 12:30 don."
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			_, _ = Tokenize(input)
			WordTokens(input)
			Words(input)
		})
	}
	wg.Wait()
}
