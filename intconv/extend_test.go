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

import (
	"math"
	"testing"

	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
)

func TestZeroExtendIdentity(t *testing.T) {
	assert.Equal(t, uint8(0xab), ZeroExtendU8ToU8(0xab))
	assert.Equal(t, uint16(0xabcd), ZeroExtendU16ToU16(0xabcd))
	assert.Equal(t, uint32(0xdeadbeef), ZeroExtendU32ToU32(0xdeadbeef))
	assert.Equal(t, uint64(math.MaxUint64), ZeroExtendU64ToU64(math.MaxUint64))
	assert.Equal(t, num.U128From64(7), ZeroExtendU128ToU128(num.U128From64(7)))
	assert.Equal(t, int8(-1), ZeroExtendI8ToI8(-1))
	assert.Equal(t, int64(-1), ZeroExtendI64ToI64(-1))
	assert.Equal(t, num.I128From64(-1), ZeroExtendI128ToI128(num.I128From64(-1)))
}

func TestZeroExtendUnsignedPreservesValue(t *testing.T) {
	assert.Equal(t, uint16(math.MaxUint8), ZeroExtendU8ToU16(math.MaxUint8))
	assert.Equal(t, uint32(math.MaxUint8), ZeroExtendU8ToU32(math.MaxUint8))
	assert.Equal(t, uint64(math.MaxUint8), ZeroExtendU8ToU64(math.MaxUint8))
	assert.Equal(t, num.U128From64(math.MaxUint8), ZeroExtendU8ToU128(math.MaxUint8))
	assert.Equal(t, uint32(math.MaxUint16), ZeroExtendU16ToU32(math.MaxUint16))
	assert.Equal(t, uint64(math.MaxUint16), ZeroExtendU16ToU64(math.MaxUint16))
	assert.Equal(t, num.U128From64(math.MaxUint16), ZeroExtendU16ToU128(math.MaxUint16))
	assert.Equal(t, uint64(math.MaxUint32), ZeroExtendU32ToU64(math.MaxUint32))
	assert.Equal(t, num.U128From64(math.MaxUint32), ZeroExtendU32ToU128(math.MaxUint32))
	assert.Equal(t, num.U128From64(math.MaxUint64), ZeroExtendU64ToU128(math.MaxUint64))
}

// Zero-extending a negative signed value must not propagate the sign bit:
// -1 as int8 becomes 255, not -1, in every wider signed type.
func TestZeroExtendSignedDestroysSignBit(t *testing.T) {
	assert.Equal(t, int16(math.MaxUint8), ZeroExtendI8ToI16(-1))
	assert.Equal(t, int32(math.MaxUint8), ZeroExtendI8ToI32(-1))
	assert.Equal(t, int64(math.MaxUint8), ZeroExtendI8ToI64(-1))
	assert.Equal(t, num.I128From64(math.MaxUint8), ZeroExtendI8ToI128(-1))
	assert.Equal(t, int32(math.MaxUint16), ZeroExtendI16ToI32(-1))
	assert.Equal(t, int64(math.MaxUint16), ZeroExtendI16ToI64(-1))
	assert.Equal(t, num.I128From64(math.MaxUint16), ZeroExtendI16ToI128(-1))
	assert.Equal(t, int64(math.MaxUint32), ZeroExtendI32ToI64(-1))
	assert.Equal(t, num.I128From64(math.MaxUint32), ZeroExtendI32ToI128(-1))
	assert.Equal(t, num.U128From64(math.MaxUint64).AsI128(), ZeroExtendI64ToI128(-1))
}

func TestZeroExtendSignedPositive(t *testing.T) {
	assert.Equal(t, int16(1), ZeroExtendI8ToI16(1))
	assert.Equal(t, int32(math.MaxInt8), ZeroExtendI8ToI32(math.MaxInt8))
	assert.Equal(t, int64(math.MaxInt16), ZeroExtendI16ToI64(math.MaxInt16))
	assert.Equal(t, num.I128From64(1), ZeroExtendI32ToI128(1))
}

func TestSignExtendIdentity(t *testing.T) {
	assert.Equal(t, int8(-1), SignExtendI8ToI8(-1))
	assert.Equal(t, int16(-1), SignExtendI16ToI16(-1))
	assert.Equal(t, int32(-1), SignExtendI32ToI32(-1))
	assert.Equal(t, int64(-1), SignExtendI64ToI64(-1))
	assert.Equal(t, num.I128From64(-1), SignExtendI128ToI128(num.I128From64(-1)))
}

func TestSignExtendPositive(t *testing.T) {
	assert.Equal(t, int16(1), SignExtendI8ToI16(1))
	assert.Equal(t, int32(1), SignExtendI8ToI32(1))
	assert.Equal(t, int64(1), SignExtendI8ToI64(1))
	assert.Equal(t, num.I128From64(1), SignExtendI8ToI128(1))
	assert.Equal(t, int32(math.MaxInt16), SignExtendI16ToI32(math.MaxInt16))
	assert.Equal(t, int64(math.MaxInt16), SignExtendI16ToI64(math.MaxInt16))
	assert.Equal(t, num.I128From64(math.MaxInt32), SignExtendI32ToI128(math.MaxInt32))
	assert.Equal(t, num.I128From64(math.MaxInt64), SignExtendI64ToI128(math.MaxInt64))
}

func TestSignExtendNegative(t *testing.T) {
	assert.Equal(t, int16(-1), SignExtendI8ToI16(-1))
	assert.Equal(t, int32(-1), SignExtendI8ToI32(-1))
	assert.Equal(t, int64(-1), SignExtendI8ToI64(-1))
	assert.Equal(t, num.I128From64(-1), SignExtendI8ToI128(-1))
	assert.Equal(t, int32(-1), SignExtendI16ToI32(-1))
	assert.Equal(t, int64(-1), SignExtendI16ToI64(-1))
	assert.Equal(t, num.I128From64(-1), SignExtendI16ToI128(-1))
	assert.Equal(t, int64(-1), SignExtendI32ToI64(-1))
	assert.Equal(t, num.I128From64(-1), SignExtendI32ToI128(-1))
	assert.Equal(t, num.I128From64(-1), SignExtendI64ToI128(-1))

	assert.Equal(t, int16(math.MinInt8), SignExtendI8ToI16(math.MinInt8))
	assert.Equal(t, int64(math.MinInt32), SignExtendI32ToI64(math.MinInt32))
	assert.Equal(t, num.I128From64(math.MinInt64), SignExtendI64ToI128(math.MinInt64))
}

func TestExtendMatchesZeroExtendForUnsigned(t *testing.T) {
	for _, v := range []uint8{0, 1, 0x7f, 0x80, math.MaxUint8} {
		assert.Equal(t, ZeroExtendU8ToU8(v), ExtendU8ToU8(v))
		assert.Equal(t, ZeroExtendU8ToU16(v), ExtendU8ToU16(v))
		assert.Equal(t, ZeroExtendU8ToU32(v), ExtendU8ToU32(v))
		assert.Equal(t, ZeroExtendU8ToU64(v), ExtendU8ToU64(v))
		assert.Equal(t, ZeroExtendU8ToU128(v), ExtendU8ToU128(v))
	}
	for _, v := range []uint16{0, 1, 0x8000, math.MaxUint16} {
		assert.Equal(t, ZeroExtendU16ToU32(v), ExtendU16ToU32(v))
		assert.Equal(t, ZeroExtendU16ToU64(v), ExtendU16ToU64(v))
		assert.Equal(t, ZeroExtendU16ToU128(v), ExtendU16ToU128(v))
	}
	for _, v := range []uint32{0, 1, 1 << 31, math.MaxUint32} {
		assert.Equal(t, ZeroExtendU32ToU64(v), ExtendU32ToU64(v))
		assert.Equal(t, ZeroExtendU32ToU128(v), ExtendU32ToU128(v))
	}
	for _, v := range []uint64{0, 1, 1 << 63, math.MaxUint64} {
		assert.Equal(t, ZeroExtendU64ToU128(v), ExtendU64ToU128(v))
	}
}

func TestExtendMatchesSignExtendForSigned(t *testing.T) {
	for _, v := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
		assert.Equal(t, SignExtendI8ToI8(v), ExtendI8ToI8(v))
		assert.Equal(t, SignExtendI8ToI16(v), ExtendI8ToI16(v))
		assert.Equal(t, SignExtendI8ToI32(v), ExtendI8ToI32(v))
		assert.Equal(t, SignExtendI8ToI64(v), ExtendI8ToI64(v))
		assert.Equal(t, SignExtendI8ToI128(v), ExtendI8ToI128(v))
	}
	for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
		assert.Equal(t, SignExtendI16ToI32(v), ExtendI16ToI32(v))
		assert.Equal(t, SignExtendI16ToI64(v), ExtendI16ToI64(v))
		assert.Equal(t, SignExtendI16ToI128(v), ExtendI16ToI128(v))
	}
	for _, v := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
		assert.Equal(t, SignExtendI32ToI64(v), ExtendI32ToI64(v))
		assert.Equal(t, SignExtendI32ToI128(v), ExtendI32ToI128(v))
	}
	for _, v := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
		assert.Equal(t, SignExtendI64ToI128(v), ExtendI64ToI128(v))
	}
}

// Extend on an unsigned source is zero-extension even when the value has its
// top bit set, while the same bit pattern as a signed source sign-extends.
func TestExtendDispatchIsFixedPerType(t *testing.T) {
	assert.Equal(t, uint16(0x80), ExtendU8ToU16(0x80))
	assert.Equal(t, int16(-128), ExtendI8ToI16(-128))
	assert.Equal(t, uint16(0xff80), AsUnsignedI16(ExtendI8ToI16(-128)))
}
