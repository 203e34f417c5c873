// Package ilfmt turns in-memory values into human-readable strings and
// splices them into printf-style templates. It is the formatting layer of an
// intermediate-language toolkit: diagnostics, instruction listings, and debug
// dumps all funnel through it.
//
// The central entry points are [Str] and [AsString]. [Str] accepts a
// printf-style template and variadic arguments of any type; every argument is
// adapted so that a %s verb is always safe, whatever was passed. [AsString]
// converts a single value using a fixed priority of conversions.
//
// # Stringification
//
// [AsString] tries conversions in a fixed, observable order; the first match
// wins:
//
//   - predeclared numerics and bool, via strconv
//   - the value's own String or Error method
//   - narrow string data (string, []byte)
//   - wide string data ([]rune, []uint16), narrowed by code-unit truncation
//   - [time.Duration], rendered against a coarsest-unit table ("1.50sec")
//   - pointers acting as optionals: nil renders "nullopt"
//   - slices and arrays of convertible elements: "{1, 2, 3}"
//   - defined types of numeric or string kind
//
// Values matching none of these are not string convertible; [AsString]
// reports false and [Str] falls back to a "[type@0xaddr]" diagnostic form.
// Use the capability predicates to probe without converting:
//
//   - [IsStringConvertible] — any conversion applies
//   - [HasCustomString] — the value has a String or Error method
//   - [HasStdString] — the value is a predeclared numeric or bool
//
// # Templates
//
//	ilfmt.Str("%s at %s", insn, ilfmt.Hex(addr))
//
// Templates are whatever [fmt] accepts; ilfmt does not reinterpret verbs.
// Arguments with no native printf representation are stringified into a
// bounded per-call scratch ring ([DefaultRingCapacity] slots), so one call
// can carry at most that many non-trivial arguments.
//
// # Numeric conventions
//
// [Hex] renders signed hexadecimal: "0xff" for 255, "-0xff" for -255, always
// lowercase, natural width. [Offset] renders displacements with an explicit
// sign and a space: "+ 0x10", "- 0x10".
//
// # Type names
//
// [StaticTypeName] and [DynamicTypeName] produce short diagnostic names,
// cleaned by [PrettifyTypeName], which strips the prefixes in
// [TypeNamePrefixes] at the start of a name and inside generic argument
// brackets. The pass is idempotent.
//
// # Instruction fields
//
// [Mnemonic] and [Operand] render fixed-width listing columns using
// display-aware widths (wide runes count as two columns). [SuffixMap] and
// [SizeSuffix] publish the register-width suffix convention (1→b, 2→w, 4→d,
// 8→q); [Suffixed] applies it:
//
//	ilfmt.Suffixed("mov", 8) // "movq", nil
//
// Widths outside the table return [ErrUnknownWidth].
package ilfmt
