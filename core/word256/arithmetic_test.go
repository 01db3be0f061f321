package word256

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// toBig converts w to a math/big.Int for cross-checking results against an
// independent, well-tested implementation. It is test-only scaffolding and
// deliberately not exposed from the package.
func toBig(w Word256) *big.Int {
	b := w.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func fromBig(v *big.Int) Word256 {
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	v = new(big.Int).Mod(v, mod)
	buf := make([]byte, 32)
	v.FillBytes(buf)
	return MustFromBytes(buf)
}

func TestAddSub(t *testing.T) {
	a := FromUint64(10)
	b := FromUint64(3)
	assert.True(t, Add(a, b).Equal(FromUint64(13)))
	assert.True(t, Sub(a, b).Equal(FromUint64(7)))

	// Wrapping behaviour at the top of the range.
	assert.True(t, Add(MAX, ONE).Equal(ZERO))
	assert.True(t, Sub(ZERO, ONE).Equal(MAX))
}

func TestNegateAbs(t *testing.T) {
	assert.True(t, Negate(ZERO).Equal(ZERO))
	assert.True(t, Negate(ONE).Equal(MAX))
	assert.True(t, Abs(ONE).Equal(ONE))
	assert.True(t, Abs(MAX).Equal(ONE)) // MAX == -1 signed, abs = 1
}

func TestMulBasicAndOverflow(t *testing.T) {
	assert.True(t, Mul(FromUint64(6), FromUint64(7)).Equal(FromUint64(42)))
	assert.True(t, Mul(MAX, FromUint64(2)).Equal(Sub(MAX, ONE)))
	assert.True(t, Mul(ZERO, MAX).Equal(ZERO))
	assert.True(t, Mul(ONE, MAX).Equal(MAX))
}

func TestDivBasic(t *testing.T) {
	a := FromUint64(0x10)
	b := FromUint64(0x03)
	assert.True(t, Div(a, b).Equal(FromUint64(0x05)))
	assert.True(t, Mod(a, b).Equal(FromUint64(0x01)))
}

func TestDivByZeroNeverTraps(t *testing.T) {
	a := FromUint64(0x10)
	assert.True(t, Div(a, ZERO).Equal(ZERO))
	assert.True(t, Mod(a, ZERO).Equal(ZERO))
	assert.True(t, SDiv(a, ZERO).Equal(ZERO))
	assert.True(t, SMod(a, ZERO).Equal(ZERO))
}

func TestDivMaxByAlmostMax(t *testing.T) {
	divisor := MustFromBytes([]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	})
	assert.True(t, Div(MAX, divisor).Equal(ONE))
}

func TestDivMultiLimbAgainstBignum(t *testing.T) {
	a := fromBig(new(big.Int).SetBytes([]byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
		0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00,
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80,
	}))
	b := fromBig(new(big.Int).SetBytes([]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x2c,
	}))

	q := Div(a, b)
	r := Mod(a, b)

	wantQ, wantR := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
	assert.Equal(t, wantQ, toBig(q))
	assert.Equal(t, wantR, toBig(r))
}

func TestSDivOverflowWraps(t *testing.T) {
	minInt256 := FromLimbs(0, 0, 0, 1<<63)
	result := SDiv(minInt256, MAX) // MAX == -1 signed
	assert.True(t, result.Equal(minInt256))
}

func TestSModSignOfDividend(t *testing.T) {
	negSeven := Negate(FromUint64(7))
	three := FromUint64(3)
	got := SMod(negSeven, three)
	assert.True(t, got.Equal(Negate(FromUint64(1))))
}

func TestAddModBasic(t *testing.T) {
	a := FromUint64(10)
	b := FromUint64(10)
	m := FromUint64(8)
	assert.True(t, AddMod(a, b, m).Equal(FromUint64(4)))
	assert.True(t, AddMod(a, b, ZERO).Equal(ZERO))
}

func TestAddModCarryNotDropped(t *testing.T) {
	// a + b overflows 256 bits; the carry must survive into the reduction.
	got := AddMod(MAX, MAX, FromUint64(3))
	wantSum := new(big.Int).Add(toBig(MAX), toBig(MAX))
	want := new(big.Int).Mod(wantSum, big.NewInt(3))
	assert.Equal(t, 0, want.Cmp(toBig(got)))
}

func TestMulModMax(t *testing.T) {
	got := MulMod(MAX, MAX, MAX)
	assert.True(t, got.Equal(ZERO))
}

func TestMulModZeroOperands(t *testing.T) {
	assert.True(t, MulMod(ZERO, MAX, FromUint64(7)).Equal(ZERO))
	assert.True(t, MulMod(MAX, ZERO, FromUint64(7)).Equal(ZERO))
	assert.True(t, MulMod(MAX, MAX, ZERO).Equal(ZERO))
}

func TestMulModAgainstBignum(t *testing.T) {
	a := FromUint64(0xfffffffffffffffe)
	b := FromUint64(0x123456789abcdef0)
	m := FromUint64(0xffffffff)

	got := MulMod(a, b, m)
	want := new(big.Int).Mod(new(big.Int).Mul(toBig(a), toBig(b)), toBig(m))
	assert.Equal(t, want, toBig(got))
}

func TestExpLaws(t *testing.T) {
	assert.True(t, Exp(ZERO, ZERO).Equal(ONE))
	assert.True(t, Exp(FromUint64(5), ZERO).Equal(ONE))
	assert.True(t, Exp(ZERO, FromUint64(3)).Equal(ZERO))
	assert.True(t, Exp(FromUint64(9), ONE).Equal(FromUint64(9)))
	assert.True(t, Exp(FromUint64(2), FromUint64(10)).Equal(FromUint64(1024)))
}

func TestExpWrapsAt256Bits(t *testing.T) {
	// 2^256 mod 2^256 == 0.
	assert.True(t, Exp(FromUint64(2), FromUint64(256)).Equal(ZERO))
}
