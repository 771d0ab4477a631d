package krid

// SSNLength is the number of digits in a resident or foreign registration number.
const SSNLength = 13

// codeIndex is the position of the nationality/gender code digit.
const codeIndex = 6

var checksumWeights = [SSNLength - 1]int{2, 3, 4, 5, 6, 7, 8, 9, 2, 3, 4, 5}

// Kind identifies which registration scheme a number belongs to.
type Kind int

const (
	// KindInvalid marks a number that fails the structural or checksum test.
	KindInvalid Kind = iota
	// KindRRN is a resident registration number (code digit 1-4, 9 or 0).
	KindRRN
	// KindFRN is a foreign registration number (code digit 5-8).
	KindFRN
)

// String returns "rrn", "frn" or "invalid".
func (k Kind) String() string {
	switch k {
	case KindRRN:
		return "rrn"
	case KindFRN:
		return "frn"
	default:
		return "invalid"
	}
}

// IsValidSSN reports whether ssn is 13 ASCII digits with a correct check digit.
// It does not look at the code digit, so both RRNs and FRNs pass.
func IsValidSSN(ssn string) bool {
	return validChecksum(ssn)
}

// IsValidRRN reports whether rrn is a valid resident registration number.
func IsValidRRN(rrn string) bool {
	if !validChecksum(rrn) {
		return false
	}
	return isRRNCode(rrn[codeIndex])
}

// IsValidFRN reports whether frn is a valid foreign registration number.
func IsValidFRN(frn string) bool {
	if !validChecksum(frn) {
		return false
	}
	return isFRNCode(frn[codeIndex])
}

// Classify returns the kind of a registration number, or KindInvalid when the
// checksum does not hold.
func Classify(ssn string) Kind {
	if !validChecksum(ssn) {
		return KindInvalid
	}
	switch c := ssn[codeIndex]; {
	case isRRNCode(c):
		return KindRRN
	case isFRNCode(c):
		return KindFRN
	default:
		return KindInvalid
	}
}

func isRRNCode(c byte) bool {
	switch c {
	case '1', '2', '3', '4', '9', '0':
		return true
	}
	return false
}

func isFRNCode(c byte) bool {
	return c >= '5' && c <= '8'
}

// validChecksum checks length, digit content and the mod-11 check digit.
// An expected value of 10 can never equal a single digit and is rejected.
func validChecksum(s string) bool {
	if len(s) != SSNLength {
		return false
	}
	for i := 0; i < SSNLength; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	sum := 0
	for i, w := range checksumWeights {
		sum += int(s[i]-'0') * w
	}
	expected := (11 - sum%11) % 11

	return expected == int(s[SSNLength-1]-'0')
}
