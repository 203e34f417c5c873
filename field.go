package ilfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrUnknownWidth reports a register width outside the suffix table.
var ErrUnknownWidth = errors.New("unknown register width")

// Instruction listing configuration. Override before rendering begins; the
// format strings are published for callers driving [Str] directly, the widths
// feed [Mnemonic] and [Operand].
var (
	InsMnemonicFormat = "%-8s"
	InsOperandFormat  = "%-12s"
	InsMnemonicWidth  = 8
	InsOperandWidth   = 12
)

// SuffixMap maps a register width in bytes to its mnemonic suffix character.
// Indexes without a defined suffix hold zero.
var SuffixMap = [9]byte{1: 'b', 2: 'w', 4: 'd', 8: 'q'}

// SizeSuffix returns the mnemonic suffix for a register width in bytes.
// Widths outside the table report false.
func SizeSuffix(width int) (byte, bool) {
	if width < 0 || width >= len(SuffixMap) || SuffixMap[width] == 0 {
		return 0, false
	}
	return SuffixMap[width], true
}

// Suffixed appends the width suffix to a mnemonic: Suffixed("mov", 8) is
// "movq".
func Suffixed(mnemonic string, width int) (string, error) {
	c, ok := SizeSuffix(width)
	if !ok {
		return "", fmt.Errorf("%w: %d bytes", ErrUnknownWidth, width)
	}
	return mnemonic + string(c), nil
}

// Mnemonic renders s as a fixed-width instruction mnemonic column.
func Mnemonic(s string) string { return padField(s, InsMnemonicWidth) }

// Operand renders s as a fixed-width instruction operand column.
func Operand(s string) string { return padField(s, InsOperandWidth) }

// padField left-aligns s in a field of the given display width. Wide runes
// count as two columns. Overlong input is returned unpadded, matching %-Ns.
func padField(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
