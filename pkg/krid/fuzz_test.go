package krid_test

import (
	"testing"

	"github.com/dmitrymomot/krkit/pkg/krid"
)

// FuzzIsValidSSN checks that validation never panics and that every valid
// number is exactly one of RRN or FRN.
func FuzzIsValidSSN(f *testing.F) {
	f.Add("")
	f.Add("8804151234563")
	f.Add("8804155234564")
	f.Add("8804151234567")
	f.Add("880415-1234563")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		valid := krid.IsValidSSN(input)
		rrn := krid.IsValidRRN(input)
		frn := krid.IsValidFRN(input)

		if !valid && (rrn || frn) {
			t.Errorf("RRN/FRN accepted without a valid checksum: %q", input)
		}
		if valid && rrn == frn {
			t.Errorf("valid number must be exactly one kind: %q rrn=%v frn=%v", input, rrn, frn)
		}
		if valid && len(input) != krid.SSNLength {
			t.Errorf("valid number with length %d: %q", len(input), input)
		}
	})
}

// FuzzMaskSSN checks that masking never panics and always keeps the hyphen.
func FuzzMaskSSN(f *testing.F) {
	f.Add("8804151234563", 1)
	f.Add("", 2)
	f.Add("88", 3)

	f.Fuzz(func(t *testing.T, input string, typ int) {
		out := krid.MaskSSN(input, krid.MaskType(typ))
		prefix := min(len(input), 6)
		if len(out) <= prefix || out[prefix] != '-' {
			t.Errorf("missing hyphen after birth date: %q -> %q", input, out)
		}
	})
}

// FuzzHyphenPhone checks that formatting never panics and only adds hyphens.
func FuzzHyphenPhone(f *testing.F) {
	f.Add("01043219876")
	f.Add("023334444")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		out := krid.HyphenPhone(input)
		if out != input && len(out) != len(input)+2 {
			t.Errorf("expected exactly two hyphens added: %q -> %q", input, out)
		}
	})
}
