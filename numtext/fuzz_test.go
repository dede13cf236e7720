package numtext

import "testing"

// FuzzConvert verifies that Convert never panics for any int64 input.
func FuzzConvert(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(10005))
	f.Add(int64(999_999_999))
	f.Add(int64(1_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		_, _ = Convert(n)
		_, _ = ConvertThousands(n, "baa")
	})
}

// FuzzParse verifies that Parse never panics for any string input.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("fu")
	f.Add("kɛmɛ ni mugan ni saba")
	f.Add("waa tan ani duuru")
	f.Add("duuru tomi saba")
	f.Add("ni ni ani")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		_, _ = Parse(s)
		_, _ = ParseDecimal(s)
	})
}

// FuzzRoundTrip verifies that Parse(Convert(n)) == n for all valid n.
func FuzzRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(42))
	f.Add(int64(1001))
	f.Add(int64(10005))
	f.Add(int64(100_020))
	f.Add(int64(2_500_000))

	f.Fuzz(func(t *testing.T, n int64) {
		text, err := Convert(n)
		if err != nil {
			return
		}
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", text, err)
		}
		if got != n {
			t.Errorf("Parse(Convert(%d)) = %d (text %q)", n, got, text)
		}
	})
}

// FuzzContractNumbers verifies that the text passes never panic and that
// contracting expanded digits restores them.
func FuzzContractNumbers(f *testing.F) {
	f.Add("A ye wari mugan ni duuru di")
	f.Add("san 2024")
	f.Add("(kɛmɛ) ni")
	f.Add("waa, baa")

	f.Fuzz(func(t *testing.T, s string) {
		_ = ContractNumbers(s)
		_ = ExpandNumbers(s)
	})
}
