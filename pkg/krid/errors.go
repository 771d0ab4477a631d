package krid

import "errors"

var (
	// ErrInvalidMaskType is returned by the strict masking helpers for types
	// other than MaskFull and MaskRevealCode.
	ErrInvalidMaskType = errors.New("krid: invalid mask type")
)
