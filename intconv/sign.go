// Copyright 2026 go-intconv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intconv

// This file implements signedness pairing: every width has exactly one signed
// and one unsigned type, and values move between them by reinterpreting the
// bit pattern, never by changing it. AsUnsigned* / AsSigned* are therefore
// exact inverses of each other at every width.
//
// AbsUnsigned* returns the two's-complement magnitude as the unsigned
// counterpart. For negative inputs it computes ^u + 1 on the unsigned
// reinterpretation instead of negating, so the most negative value maps to
// 2^(w-1) rather than overflowing.

import (
	num "github.com/shabbyrobe/go-num"
)

// AsUnsignedI8 reinterprets v as uint8, preserving the bit pattern.
func AsUnsignedI8(v int8) uint8 { return uint8(v) }

// AsUnsignedI16 reinterprets v as uint16, preserving the bit pattern.
func AsUnsignedI16(v int16) uint16 { return uint16(v) }

// AsUnsignedI32 reinterprets v as uint32, preserving the bit pattern.
func AsUnsignedI32(v int32) uint32 { return uint32(v) }

// AsUnsignedI64 reinterprets v as uint64, preserving the bit pattern.
func AsUnsignedI64(v int64) uint64 { return uint64(v) }

// AsUnsignedI128 reinterprets v as num.U128, preserving the bit pattern.
func AsUnsignedI128(v num.I128) num.U128 { return v.AsU128() }

// AsUnsignedInt reinterprets v as uint, preserving the bit pattern.
func AsUnsignedInt(v int) uint { return uint(v) }

// AsUnsignedU8 returns v unchanged; uint8 is already unsigned.
func AsUnsignedU8(v uint8) uint8 { return v }

// AsUnsignedU16 returns v unchanged; uint16 is already unsigned.
func AsUnsignedU16(v uint16) uint16 { return v }

// AsUnsignedU32 returns v unchanged; uint32 is already unsigned.
func AsUnsignedU32(v uint32) uint32 { return v }

// AsUnsignedU64 returns v unchanged; uint64 is already unsigned.
func AsUnsignedU64(v uint64) uint64 { return v }

// AsUnsignedU128 returns v unchanged; num.U128 is already unsigned.
func AsUnsignedU128(v num.U128) num.U128 { return v }

// AsUnsignedUint returns v unchanged; uint is already unsigned.
func AsUnsignedUint(v uint) uint { return v }

// AsSignedU8 reinterprets v as int8, preserving the bit pattern.
func AsSignedU8(v uint8) int8 { return int8(v) }

// AsSignedU16 reinterprets v as int16, preserving the bit pattern.
func AsSignedU16(v uint16) int16 { return int16(v) }

// AsSignedU32 reinterprets v as int32, preserving the bit pattern.
func AsSignedU32(v uint32) int32 { return int32(v) }

// AsSignedU64 reinterprets v as int64, preserving the bit pattern.
func AsSignedU64(v uint64) int64 { return int64(v) }

// AsSignedU128 reinterprets v as num.I128, preserving the bit pattern.
func AsSignedU128(v num.U128) num.I128 { return v.AsI128() }

// AsSignedUint reinterprets v as int, preserving the bit pattern.
func AsSignedUint(v uint) int { return int(v) }

// AsSignedI8 returns v unchanged; int8 is already signed.
func AsSignedI8(v int8) int8 { return v }

// AsSignedI16 returns v unchanged; int16 is already signed.
func AsSignedI16(v int16) int16 { return v }

// AsSignedI32 returns v unchanged; int32 is already signed.
func AsSignedI32(v int32) int32 { return v }

// AsSignedI64 returns v unchanged; int64 is already signed.
func AsSignedI64(v int64) int64 { return v }

// AsSignedI128 returns v unchanged; num.I128 is already signed.
func AsSignedI128(v num.I128) num.I128 { return v }

// AsSignedInt returns v unchanged; int is already signed.
func AsSignedInt(v int) int { return v }

// AbsUnsignedI8 returns the magnitude of v as uint8.
// AbsUnsignedI8(math.MinInt8) == 128.
func AbsUnsignedI8(v int8) uint8 {
	if v < 0 {
		return ^uint8(v) + 1
	}
	return uint8(v)
}

// AbsUnsignedI16 returns the magnitude of v as uint16.
func AbsUnsignedI16(v int16) uint16 {
	if v < 0 {
		return ^uint16(v) + 1
	}
	return uint16(v)
}

// AbsUnsignedI32 returns the magnitude of v as uint32.
func AbsUnsignedI32(v int32) uint32 {
	if v < 0 {
		return ^uint32(v) + 1
	}
	return uint32(v)
}

// AbsUnsignedI64 returns the magnitude of v as uint64.
func AbsUnsignedI64(v int64) uint64 {
	if v < 0 {
		return ^uint64(v) + 1
	}
	return uint64(v)
}

// AbsUnsignedI128 returns the magnitude of v as num.U128.
func AbsUnsignedI128(v num.I128) num.U128 {
	u := v.AsU128()
	hi, lo := u.Raw()
	if hi>>63 == 0 {
		return u
	}
	// Two's-complement negate on the raw words.
	hi, lo = ^hi, ^lo
	lo++
	if lo == 0 {
		hi++
	}
	return num.U128FromRaw(hi, lo)
}

// AbsUnsignedInt returns the magnitude of v as uint.
func AbsUnsignedInt(v int) uint {
	if v < 0 {
		return ^uint(v) + 1
	}
	return uint(v)
}

// AbsUnsignedU8 returns v unchanged; an unsigned value is its own magnitude.
func AbsUnsignedU8(v uint8) uint8 { return v }

// AbsUnsignedU16 returns v unchanged; an unsigned value is its own magnitude.
func AbsUnsignedU16(v uint16) uint16 { return v }

// AbsUnsignedU32 returns v unchanged; an unsigned value is its own magnitude.
func AbsUnsignedU32(v uint32) uint32 { return v }

// AbsUnsignedU64 returns v unchanged; an unsigned value is its own magnitude.
func AbsUnsignedU64(v uint64) uint64 { return v }

// AbsUnsignedU128 returns v unchanged; an unsigned value is its own magnitude.
func AbsUnsignedU128(v num.U128) num.U128 { return v }

// AbsUnsignedUint returns v unchanged; an unsigned value is its own magnitude.
func AbsUnsignedUint(v uint) uint { return v }
