// Package sanitizer cleans up user-entered Korean identifiers and phone numbers
// before they reach the krid validators and formatters.
//
// Input typed on Korean keyboards and mobile IMEs often carries full-width
// digits (０１０), full-width hyphens, spaces or dots. The helpers here fold
// such input to plain ASCII digits and then delegate to krid for formatting and
// masking:
//
//	sanitizer.FormatPhoneKR("０１０ ４３２１ ９８７６") // "010-4321-9876"
//	sanitizer.MaskSSNKR("880415-1234563", krid.MaskRevealCode) // "880415-1******"
//	sanitizer.MaskPhoneKR("010.4321.9876")             // "010-****-9876"
//
// Apply and Compose build reusable pipelines from any func(T) T:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeSSN)
//	rrn := clean(" 880415-1234563 ") // "8804151234563"
//
// # Error handling
//
// None of the helpers returns an error. When input cannot be formatted the
// original value is returned unchanged.
//
// # Thread Safety
//
// The package holds only precompiled regular expressions and is safe for
// concurrent use.
package sanitizer
