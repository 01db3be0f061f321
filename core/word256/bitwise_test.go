package word256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAndOrXorNot(t *testing.T) {
	a := FromUint64(0b1100)
	b := FromUint64(0b1010)
	assert.True(t, And(a, b).Equal(FromUint64(0b1000)))
	assert.True(t, Or(a, b).Equal(FromUint64(0b1110)))
	assert.True(t, Xor(a, b).Equal(FromUint64(0b0110)))
	assert.True(t, Not(ZERO).Equal(MAX))
	assert.True(t, Not(MAX).Equal(ZERO))
}

func TestGetSetBit(t *testing.T) {
	bit, err := GetBit(ZERO, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, bit)

	w, err := SetBit(ZERO, 0)
	require.NoError(t, err)
	bit, err = GetBit(w, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, bit)

	w, err = SetBit(ZERO, 255)
	require.NoError(t, err)
	assert.True(t, w.Equal(FromLimbs(0, 0, 0, 1<<63)))

	_, err = GetBit(ZERO, 256)
	require.Error(t, err)
	var target ErrBitIndexOutOfRange
	require.ErrorAs(t, err, &target)

	_, err = SetBit(ZERO, -1)
	require.Error(t, err)
}

func TestShlShrZeroAtWidth(t *testing.T) {
	assert.True(t, Shl(ONE, 256).Equal(ZERO))
	assert.True(t, Shr(MAX, 256).Equal(ZERO))
	assert.True(t, Shl(ONE, 0).Equal(ONE))
	assert.True(t, Shr(ONE, 0).Equal(ONE))
}

func TestShlShrCrossLimbBoundary(t *testing.T) {
	w := ONE
	shifted := Shl(w, 64)
	assert.True(t, shifted.Equal(FromLimbs(0, 1, 0, 0)))
	back := Shr(shifted, 64)
	assert.True(t, back.Equal(w))
}

func TestShrClearsTopBits(t *testing.T) {
	shifted := Shl(MAX, 8)
	back := Shr(shifted, 8)
	// Shr(Shl(a, n), n) equals a with its top n bits cleared.
	var want [32]byte
	maxBytes := MAX.Bytes()
	copy(want[1:], maxBytes[1:])
	assert.Equal(t, want, back.Bytes())
}

func TestSarPositiveBehavesLikeShr(t *testing.T) {
	w := FromUint64(0xff)
	assert.True(t, Sar(w, 4).Equal(Shr(w, 4)))
}

func TestSarNegativeFillsWithOnes(t *testing.T) {
	negative := FromLimbs(0, 0, 0, 1<<63) // MinInt256
	got := Sar(negative, 255)
	assert.True(t, got.Equal(MINUS_ONE))
}

func TestSarAtOrAboveWidth(t *testing.T) {
	negative := Negate(ONE)
	assert.True(t, Sar(negative, 256).Equal(MINUS_ONE))
	assert.True(t, Sar(ONE, 256).Equal(ZERO))
}

func TestSignExtendPositiveByte(t *testing.T) {
	// k=0, value=0x7f -> unchanged (sign bit of byte 0 is clear).
	v := FromUint64(0x7f)
	got := SignExtend(v, FromUint64(0))
	assert.True(t, got.Equal(FromUint64(0x7f)))
}

func TestSignExtendNegativeByte(t *testing.T) {
	// k=0, value=0x80 -> 0xff..ff80.
	v := FromUint64(0x80)
	got := SignExtend(v, FromUint64(0))
	assert.True(t, got.Equal(Sub(ZERO, FromUint64(0x80))))
}

func TestSignExtendKAtOrAbove31IsUnchanged(t *testing.T) {
	v := FromUint64(0x80)
	assert.True(t, SignExtend(v, FromUint64(31)).Equal(v))
	assert.True(t, SignExtend(v, FromUint64(100)).Equal(v))
}

func TestByteOpcodeShape(t *testing.T) {
	// BYTE semantics live in the vm opcode layer, but the underlying Get
	// primitive they rely on is exercised here directly.
	v := MustFromBytes(append([]byte{0x80}, make([]byte, 31)...))
	b, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), b)

	_, err = v.Get(32)
	require.Error(t, err)
}
