package bmcase

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns the Unicode NFC form of s.
// Already-composed input is returned without allocation.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// DecomposeNFD returns the Unicode NFD form of s.
func DecomposeNFD(s string) string {
	if norm.NFD.IsNormalString(s) {
		return s
	}
	return norm.NFD.String(s)
}
