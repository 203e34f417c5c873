package ilfmt

import "golang.org/x/exp/constraints"

// Hex formats an integer as lowercase hexadecimal with a 0x prefix and no
// padding. Negative values carry a leading minus instead of wrapping:
// Hex(-255) is "-0xff".
func Hex[T constraints.Integer](v T) string {
	if v >= 0 {
		return Str("0x%x", uint64(v))
	}
	return Str("-0x%x", uint64(-int64(v)))
}

// Offset formats a signed 64-bit displacement with an explicit sign and a
// space before the 0x prefix: "+ 0x10" or "- 0x10".
func Offset(v int64) string {
	if v >= 0 {
		return Str("+ 0x%x", uint64(v))
	}
	return Str("- 0x%x", uint64(-v))
}
