package word256

import "math/bits"

// Add returns (a+b) mod 2^256. It never fails: 256-bit addition always
// wraps silently, matching the EVM ADD opcode.
func Add(a, b Word256) Word256 {
	r0, c := bits.Add64(a.l0, b.l0, 0)
	r1, c := bits.Add64(a.l1, b.l1, c)
	r2, c := bits.Add64(a.l2, b.l2, c)
	r3, _ := bits.Add64(a.l3, b.l3, c)
	return FromLimbs(r0, r1, r2, r3)
}

// Sub returns (a-b) mod 2^256, wrapping on borrow.
func Sub(a, b Word256) Word256 {
	r0, c := bits.Sub64(a.l0, b.l0, 0)
	r1, c := bits.Sub64(a.l1, b.l1, c)
	r2, c := bits.Sub64(a.l2, b.l2, c)
	r3, _ := bits.Sub64(a.l3, b.l3, c)
	return FromLimbs(r0, r1, r2, r3)
}

// Negate returns the two's-complement negation of a, i.e. Sub(ZERO, a).
func Negate(a Word256) Word256 {
	return Sub(ZERO, a)
}

// Abs returns a if a is non-negative under signed interpretation, otherwise
// Negate(a).
func Abs(a Word256) Word256 {
	if IsNegative(a) {
		return Negate(a)
	}
	return a
}

// Mul returns the low 256 bits of the full 512-bit product of a and b,
// computed as a 4x4 schoolbook multiply of 64x64->128 partial products. The
// high 256 bits of the product are discarded, matching the EVM MUL opcode.
func Mul(a, b Word256) Word256 {
	x := a.limbs()
	y := b.limbs()
	var r [4]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; i+j < 4; j++ {
			hi, lo := bits.Mul64(x[j], y[i])
			lo, c0 := bits.Add64(lo, carry, 0)
			sum, c1 := bits.Add64(r[i+j], lo, 0)
			r[i+j] = sum
			carry = hi + c0 + c1
		}
		// Partial products that would land at index >= 4 overflow the
		// 256-bit result and are discarded.
	}
	return FromLimbs(r[0], r[1], r[2], r[3])
}

// mulFull computes the complete 512-bit product of a and b as eight
// little-endian limbs, r[0] least significant. It backs MulMod, which needs
// the full-width intermediate before reducing.
func mulFull(a, b Word256) [8]uint64 {
	x := a.limbs()
	y := b.limbs()
	var r [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(x[j], y[i])
			lo, c0 := bits.Add64(lo, carry, 0)
			sum, c1 := bits.Add64(r[i+j], lo, 0)
			r[i+j] = sum
			carry = hi + c0 + c1
		}
		r[i+4] = carry
	}
	return r
}

// Div returns the unsigned floor division of a by b, matching the EVM DIV
// opcode: division by zero yields zero rather than failing.
func Div(a, b Word256) Word256 {
	q, _ := divMod(a, b)
	return q
}

// Mod returns the unsigned remainder of a divided by b. Modulus by zero
// yields zero rather than failing, matching the EVM MOD opcode.
func Mod(a, b Word256) Word256 {
	_, r := divMod(a, b)
	return r
}

// divMod computes both the quotient and remainder of a/b in one pass, since
// every division path (single-limb and Knuth D) naturally produces both.
func divMod(a, b Word256) (quo, rem Word256) {
	if IsZero(b) {
		return ZERO, ZERO
	}
	if CmpUnsigned(a, b) == Less {
		return ZERO, a
	}
	if a.Equal(b) {
		return ONE, ZERO
	}
	return longDiv(a, b)
}

// SDiv returns the signed quotient of a/b, interpreting both operands as
// two's-complement 256-bit integers. Division by zero yields zero. The
// single overflow case, MinInt256 / -1, does not trap: per EVM convention it
// wraps back to MinInt256.
func SDiv(a, b Word256) Word256 {
	if IsZero(b) {
		return ZERO
	}
	negative := IsNegative(a) != IsNegative(b)
	q := Div(Abs(a), Abs(b))
	if negative {
		return Negate(q)
	}
	return q
}

// SMod returns the signed remainder of a%b, taking the sign of the
// dividend. Modulus by zero yields zero.
func SMod(a, b Word256) Word256 {
	if IsZero(b) {
		return ZERO
	}
	r := Mod(Abs(a), Abs(b))
	if IsNegative(a) {
		return Negate(r)
	}
	return r
}

// AddMod returns (a+b) mod m. The addition is carried out with a five-limb
// accumulator so that the carry out of the 256-bit sum is never dropped
// before the reduction. A zero modulus yields zero.
func AddMod(a, b, m Word256) Word256 {
	if IsZero(m) {
		return ZERO
	}
	ar := Mod(a, m)
	br := Mod(b, m)

	al := ar.limbs()
	bl := br.limbs()
	var sum [5]uint64
	var c uint64
	sum[0], c = bits.Add64(al[0], bl[0], 0)
	sum[1], c = bits.Add64(al[1], bl[1], c)
	sum[2], c = bits.Add64(al[2], bl[2], c)
	sum[3], c = bits.Add64(al[3], bl[3], c)
	sum[4] = c

	return reduceWide(sum[:], m)
}

// MulMod returns (a*b) mod m, computed from the full 512-bit product so
// that no precision is lost before the reduction. A zero modulus, or a zero
// factor, yields zero.
func MulMod(a, b, m Word256) Word256 {
	if IsZero(m) || IsZero(a) || IsZero(b) {
		return ZERO
	}
	wide := mulFull(a, b)
	return reduceWide(wide[:], m)
}

// Exp returns base^exponent mod 2^256 using binary (square-and-multiply)
// exponentiation, iterating right-to-left and stopping as soon as the
// remaining exponent bits are exhausted so that only its significant bits
// are visited.
func Exp(base, exponent Word256) Word256 {
	if IsZero(exponent) {
		return ONE
	}
	if IsZero(base) {
		return ZERO
	}

	result := ONE
	b := base
	e := exponent
	for !IsZero(e) {
		if e.l0&1 == 1 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		e = shrOne(e)
	}
	return result
}

// shrOne shifts w right by exactly one bit, logically (no sign extension).
// It is a tight internal primitive used by Exp to walk the exponent's bits
// without routing through the general-purpose Shr in bitwise.go.
func shrOne(w Word256) Word256 {
	l := w.limbs()
	r0 := (l[0] >> 1) | (l[1] << 63)
	r1 := (l[1] >> 1) | (l[2] << 63)
	r2 := (l[2] >> 1) | (l[3] << 63)
	r3 := l[3] >> 1
	return FromLimbs(r0, r1, r2, r3)
}
