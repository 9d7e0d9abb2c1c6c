package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 4

const passwordSymbols = "@$!#%*?&"

var codeSpace = big.NewInt(10000) //nolint:mnd //10^CodeLength

// GenerateCode returns a verification code of exactly CodeLength decimal
// digits, drawn uniformly from crypto/rand. Leading zeros are preserved.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("read random int: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n), nil
}

// IsValidCode reports whether s is exactly CodeLength decimal digits.
func IsValidCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsValidPassword reports whether s is 6 to 20 characters long and contains
// at least one lowercase letter, one uppercase letter, one digit and one
// symbol from the allowed set. Characters outside the allowed set make the
// password invalid.
func IsValidPassword(s string) bool {
	const (
		minLen = 6
		maxLen = 20
	)

	if len(s) < minLen || len(s) > maxLen {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range []byte(s) {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case isPasswordSymbol(c):
			hasSymbol = true
		default:
			return false
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

func isPasswordSymbol(c byte) bool {
	for _, s := range []byte(passwordSymbols) {
		if c == s {
			return true
		}
	}
	return false
}
