package krid

import "regexp"

// phoneRegex splits a digit run into prefix, middle and the last four digits.
// Seoul numbers take "02" as the prefix, mobile numbers "01" plus one more
// character, anything else the first three digits.
var phoneRegex = regexp.MustCompile(`(^02|^01.|[0-9]{3})([0-9]+)([0-9]{4})`)

// HyphenPhone inserts hyphens into a digit-only phone number:
//
//	01043219876 -> 010-4321-9876
//	023334444   -> 02-333-4444
//
// Only the first match is rewritten. Input that does not match is returned
// unchanged.
func HyphenPhone(phone string) string {
	m := phoneRegex.FindStringSubmatchIndex(phone)
	if m == nil {
		return phone
	}

	out := make([]byte, 0, len(phone)+2)
	out = append(out, phone[:m[0]]...)
	out = phoneRegex.ExpandString(out, "$1-$2-$3", phone, m)
	out = append(out, phone[m[1]:]...)

	return string(out)
}
