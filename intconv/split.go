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

// This file splits unsigned integers into two half-width halves and joins
// them back. Lo keeps the low half (a truncation), Hi shifts the high half
// down and truncates, and Join rebuilds the value by zero-extending both
// halves and OR-ing the high one back into place. Round trips are exact:
// Join*(LoHi*(v)) == v and LoHi*(Join*(lo, hi)) == (lo, hi).
//
// Only the unsigned family is provided. Whether a signed split should
// produce signed or unsigned halves is unresolved upstream, so no signed
// variant exists.

import (
	num "github.com/shabbyrobe/go-num"
)

// LoU16 returns the low 8 bits of v.
func LoU16(v uint16) uint8 { return TruncateU16ToU8(v) }

// HiU16 returns the high 8 bits of v, right-aligned.
func HiU16(v uint16) uint8 { return TruncateU16ToU8(v >> 8) }

// LoHiU16 returns the low and high 8-bit halves of v.
func LoHiU16(v uint16) (lo, hi uint8) { return LoU16(v), HiU16(v) }

// JoinU16 reassembles a uint16 from its low and high halves.
func JoinU16(lo, hi uint8) uint16 {
	return ZeroExtendU8ToU16(hi)<<8 | ZeroExtendU8ToU16(lo)
}

// LoU32 returns the low 16 bits of v.
func LoU32(v uint32) uint16 { return TruncateU32ToU16(v) }

// HiU32 returns the high 16 bits of v, right-aligned.
func HiU32(v uint32) uint16 { return TruncateU32ToU16(v >> 16) }

// LoHiU32 returns the low and high 16-bit halves of v.
func LoHiU32(v uint32) (lo, hi uint16) { return LoU32(v), HiU32(v) }

// JoinU32 reassembles a uint32 from its low and high halves.
func JoinU32(lo, hi uint16) uint32 {
	return ZeroExtendU16ToU32(hi)<<16 | ZeroExtendU16ToU32(lo)
}

// LoU64 returns the low 32 bits of v.
func LoU64(v uint64) uint32 { return TruncateU64ToU32(v) }

// HiU64 returns the high 32 bits of v, right-aligned.
func HiU64(v uint64) uint32 { return TruncateU64ToU32(v >> 32) }

// LoHiU64 returns the low and high 32-bit halves of v.
func LoHiU64(v uint64) (lo, hi uint32) { return LoU64(v), HiU64(v) }

// JoinU64 reassembles a uint64 from its low and high halves.
func JoinU64(lo, hi uint32) uint64 {
	return ZeroExtendU32ToU64(hi)<<32 | ZeroExtendU32ToU64(lo)
}

// LoU128 returns the low 64 bits of v.
func LoU128(v num.U128) uint64 { return TruncateU128ToU64(v) }

// HiU128 returns the high 64 bits of v, right-aligned.
func HiU128(v num.U128) uint64 {
	hi, _ := v.Raw()
	return hi
}

// LoHiU128 returns the low and high 64-bit halves of v.
func LoHiU128(v num.U128) (lo, hi uint64) { return LoU128(v), HiU128(v) }

// JoinU128 reassembles a num.U128 from its low and high halves.
func JoinU128(lo, hi uint64) num.U128 {
	// U128FromRaw is exactly "zero-extend hi, shift left 64, OR in lo".
	return num.U128FromRaw(hi, lo)
}
