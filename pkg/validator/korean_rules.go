package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/krkit/pkg/krid"
)

// Domestic numbers: leading zero, 9 to 11 digits, no separators.
var koreanPhoneRegex = regexp.MustCompile(`^0[0-9]{8,10}$`)

// ValidSSN accepts resident and foreign registration numbers alike; only the
// length, digits and check digit are verified.
func ValidSSN(field, value string) Rule {
	return newRule(field,
		"must be a valid 13-digit registration number",
		"validation.kr_ssn",
		func() bool {
			return strings.TrimSpace(value) != "" && krid.IsValidSSN(value)
		},
		nil,
	)
}

// ValidRRN validates a resident registration number (code digit 1-4, 9 or 0).
func ValidRRN(field, value string) Rule {
	return newRule(field,
		"must be a valid resident registration number",
		"validation.kr_rrn",
		func() bool {
			return strings.TrimSpace(value) != "" && krid.IsValidRRN(value)
		},
		nil,
	)
}

// ValidFRN validates a foreign registration number (code digit 5-8).
func ValidFRN(field, value string) Rule {
	return newRule(field,
		"must be a valid foreign registration number",
		"validation.kr_frn",
		func() bool {
			return strings.TrimSpace(value) != "" && krid.IsValidFRN(value)
		},
		nil,
	)
}

// ValidKoreanPhone checks the digit-only shape HyphenPhone expects.
func ValidKoreanPhone(field, value string) Rule {
	return newRule(field,
		"must be a 9-11 digit domestic phone number without separators",
		"validation.kr_phone",
		func() bool {
			return koreanPhoneRegex.MatchString(value)
		},
		map[string]any{"min_len": 9, "max_len": 11},
	)
}

// ValidMaskType accepts 0 (default), 1 and 2.
func ValidMaskType(field string, value int) Rule {
	return newRule(field,
		"must be 1 (full mask) or 2 (reveal code digit)",
		"validation.kr_mask_type",
		func() bool {
			_, err := krid.ParseMaskType(value)
			return err == nil
		},
		map[string]any{"value": value},
	)
}
