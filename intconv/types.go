// Package intconv provides explicit, compile-time-checked conversions between
// fixed-width integer types: zero-extension, sign-extension, signedness-aware
// generic extension, signed/unsigned reinterpretation, truncation, and
// splitting an integer into two half-width halves.
//
// Every conversion names both its source and destination type, so a width or
// signedness change is always visible at the call site:
//
//	w := intconv.ZeroExtendU8ToU32(b)   // uint8 -> uint32, high bits zero
//	s := intconv.SignExtendI8ToI32(i)   // int8 -> int32, sign bit replicated
//	lo := intconv.TruncateU32ToU16(w)   // uint32 -> uint16, high bits dropped
//
// Invalid conversions (extending to a narrower type, sign-extending an
// unsigned type) do not exist in the package, so attempting one is a compile
// error rather than a runtime failure. The valid pairs are enumerated by
// cmd/intconvgen; see extend_gen.go, trunc_gen.go and the capability table in
// caps_gen.go.
//
// 128-bit widths use num.U128 / num.I128 from github.com/shabbyrobe/go-num,
// since Go has no native 128-bit integer types.
package intconv

// SignedInts is a constraint for the fixed-width signed integer types
// covered by the conversion table.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for the fixed-width unsigned integer types
// covered by the conversion table.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all fixed-width integer types covered by the
// conversion table.
//
// The pointer-width int and uint types are deliberately absent: they
// participate only in signedness pairing (AsUnsignedInt, AsSignedUint and
// friends), never in extension or truncation, because their width is
// platform-dependent.
type Integers interface {
	SignedInts | UnsignedInts
}
