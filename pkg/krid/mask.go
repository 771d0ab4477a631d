package krid

import (
	"fmt"
	"strings"
)

// MaskType selects how much of a registration number MaskSSN reveals.
type MaskType int

const (
	// MaskFull hides everything after the birth date: 880415-*******.
	MaskFull MaskType = 1
	// MaskRevealCode keeps the code digit visible: 880415-1******.
	MaskRevealCode MaskType = 2
)

const birthDateLen = 6

// Valid reports whether t is a known mask type.
func (t MaskType) Valid() bool {
	return t == MaskFull || t == MaskRevealCode
}

// ParseMaskType converts an integer flag into a MaskType. Zero means the
// default, MaskFull.
func ParseMaskType(v int) (MaskType, error) {
	t := MaskType(v)
	if t == 0 {
		return MaskFull, nil
	}
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMaskType, v)
	}
	return t, nil
}

// MaskSSN hides the serial part of a registration number. The birth date is
// always kept. The optional type defaults to MaskFull; unknown types are
// treated as MaskFull too.
//
// The input is not validated. Short input produces a shorter prefix rather
// than a panic.
func MaskSSN(ssn string, typ ...MaskType) string {
	t := MaskFull
	if len(typ) > 0 && typ[0].Valid() {
		t = typ[0]
	}
	return maskSSN(ssn, t)
}

// MaskSSNStrict is MaskSSN without the fallback: unknown types yield
// ErrInvalidMaskType. The zero type still means MaskFull.
func MaskSSNStrict(ssn string, typ MaskType) (string, error) {
	t, err := ParseMaskType(int(typ))
	if err != nil {
		return "", err
	}
	return maskSSN(ssn, t), nil
}

func maskSSN(ssn string, t MaskType) string {
	var b strings.Builder
	b.Grow(SSNLength + 1)

	b.WriteString(ssn[:min(len(ssn), birthDateLen)])
	b.WriteByte('-')

	switch t {
	case MaskRevealCode:
		if len(ssn) > codeIndex {
			b.WriteByte(ssn[codeIndex])
		}
		b.WriteString("******")
	default:
		b.WriteString("*******")
	}

	return b.String()
}
