// Package krid validates and formats Korean resident registration numbers
// (RRN), foreign registration numbers (FRN) and domestic phone numbers.
//
// Both RRN and FRN are 13-digit identifiers laid out as YYMMDD-SLLLLLC where
// S is the code digit (index 6) and C is a check digit derived from a weighted
// checksum of the preceding twelve digits. The two kinds share the checksum and
// differ only in the set of allowed code digits:
//
//   - RRN: 1, 2, 3, 4, 9, 0
//   - FRN: 5, 6, 7, 8
//
// The sets partition 0-9, so every number that passes IsValidSSN is exactly one
// of the two kinds. Classify reports which.
//
// # Usage
//
//	import "github.com/dmitrymomot/krkit/pkg/krid"
//
//	krid.IsValidRRN("8804151234563")     // true
//	krid.IsValidFRN("8804155234564")     // true
//	krid.MaskSSN("8804151234563")        // "880415-*******"
//	krid.MaskSSN("8804151234563", krid.MaskRevealCode) // "880415-1******"
//	krid.HyphenPhone("01043219876")      // "010-4321-9876"
//
// # Error Handling
//
// Validators return false for any malformed input and never panic. The
// formatting helpers are best-effort: MaskSSN trusts its caller and
// HyphenPhone returns its input unchanged when it cannot format it. Use
// MaskSSNStrict or ParseMaskType when an unknown mask type must be reported.
//
// # Thread Safety
//
// The package holds no mutable state. All functions are safe for concurrent
// use.
package krid
