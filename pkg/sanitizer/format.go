package sanitizer

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/dmitrymomot/krkit/pkg/krid"
)

const (
	minPhoneDigits = 9
	maxPhoneDigits = 11
)

// Trim removes leading and trailing whitespace; handy as a pipeline step.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeDigits folds full-width forms (０-９, －, ．, the ideographic space)
// to ASCII and half-width forms to their canonical wide form. Hangul and other
// wide characters are left as they are.
func NormalizeDigits(s string) string {
	return width.Fold.String(s)
}

// NormalizePhone strips formatting so numbers compare and store consistently.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(NormalizeDigits(phone), "")
}

// NormalizeSSN turns "880415-1234563" or its full-width form into 13 digits.
func NormalizeSSN(ssn string) string {
	return nonDigitRegex.ReplaceAllString(NormalizeDigits(ssn), "")
}

// FormatPhoneKR normalises and hyphenates a domestic number. Input that does not
// reduce to 9-11 digits is returned unchanged to avoid data loss.
func FormatPhoneKR(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return phone
	}
	return krid.HyphenPhone(digits)
}

// MaskPhoneKR hides the middle segment of a domestic number: 010-****-9876.
func MaskPhoneKR(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return phone
	}
	parts := strings.Split(krid.HyphenPhone(digits), "-")
	if len(parts) != 3 {
		return phone
	}
	return parts[0] + "-" + strings.Repeat("*", len(parts[1])) + "-" + parts[2]
}

// MaskSSNKR normalises a registration number and masks it with krid.MaskSSN.
// Input that does not reduce to 13 digits is returned unchanged.
func MaskSSNKR(ssn string, typ krid.MaskType) string {
	digits := NormalizeSSN(ssn)
	if len(digits) != krid.SSNLength {
		return ssn
	}
	return krid.MaskSSN(digits, typ)
}
