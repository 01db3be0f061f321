package word256

import "math/bits"

// longDiv computes the unsigned quotient and remainder of a/b for the case
// where b is neither zero nor larger than a nor equal to a (those are
// short-circuited by divMod before this is ever called). It dispatches to a
// single-limb loop when b fits in one 64-bit limb, and to Knuth's Algorithm D
// otherwise.
func longDiv(a, b Word256) (quo, rem Word256) {
	u := []uint64{a.l0, a.l1, a.l2, a.l3}
	v := []uint64{b.l0, b.l1, b.l2, b.l3}
	n := significantLen(v)

	q, r := divideLimbs(u, v[:n])

	var qOut, rOut [4]uint64
	copy(qOut[:], q)
	copy(rOut[:], r)
	return FromLimbs(qOut[0], qOut[1], qOut[2], qOut[3]),
		FromLimbs(rOut[0], rOut[1], rOut[2], rOut[3])
}

// reduceWide reduces a wide little-endian dividend (five limbs for AddMod's
// carry-extended sum, eight limbs for MulMod's full product) modulo m,
// returning only the remainder. m must be non-zero.
func reduceWide(limbs []uint64, m Word256) Word256 {
	v := []uint64{m.l0, m.l1, m.l2, m.l3}
	n := significantLen(v)

	_, r := divideLimbs(limbs, v[:n])

	var rOut [4]uint64
	copy(rOut[:], r)
	return FromLimbs(rOut[0], rOut[1], rOut[2], rOut[3])
}

// significantLen returns the number of limbs of x, counting from the least
// significant end, needed to hold its value: the index of the highest
// non-zero limb plus one, or 0 if x is entirely zero.
func significantLen(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// divideLimbs divides the little-endian limb sequence uFull by vTrim, whose
// most significant limb is assumed non-zero, and returns the quotient and
// remainder as little-endian limb sequences. vTrim must not be empty.
//
// This is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1), specialized to 64-bit
// digits: the double-width arithmetic Algorithm D performs per digit is
// exactly what bits.Mul64/Div64/Add64/Sub64 give natively in Go, so the base
// is 2^64 rather than the 2^32 the textbook presentation typically uses.
func divideLimbs(uFull, vTrim []uint64) (q, r []uint64) {
	n := len(vTrim)
	m := significantLen(uFull)

	if m < n {
		r = make([]uint64, n)
		copy(r, uFull[:min(len(uFull), n)])
		return []uint64{0}, r
	}

	u := uFull[:m]

	if n == 1 {
		divisor := vTrim[0]
		qOut := make([]uint64, m)
		var rem uint64
		for i := m - 1; i >= 0; i-- {
			qOut[i], rem = bits.Div64(rem, u[i], divisor)
		}
		return qOut, []uint64{rem}
	}

	shift := uint(bits.LeadingZeros64(vTrim[n-1]))
	vn := shiftLeftLimbs(vTrim, shift)
	un := shiftLeftLimbsExt(u, shift)

	qLen := m - n + 1
	qOut := make([]uint64, qLen)

	for j := qLen - 1; j >= 0; j-- {
		var qhat, rhat uint64
		skipRefine := false

		if un[j+n] == vn[n-1] {
			qhat = ^uint64(0)
			sum, carry := bits.Add64(un[j+n-1], vn[n-1], 0)
			rhat = sum
			if carry != 0 {
				skipRefine = true
			}
		} else {
			qhat, rhat = bits.Div64(un[j+n], un[j+n-1], vn[n-1])
		}

		if !skipRefine {
			un2 := un[j+n-2]
			hi1, lo1 := bits.Mul64(qhat, vn[n-2])
			for hi1 > rhat || (hi1 == rhat && lo1 > un2) {
				qhat--
				sum, carry := bits.Add64(rhat, vn[n-1], 0)
				rhat = sum
				if carry != 0 {
					break
				}
				hi1, lo1 = bits.Mul64(qhat, vn[n-2])
			}
		}

		var borrow, carry uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			lo2, c0 := bits.Add64(lo, carry, 0)
			carry = hi + c0
			s, b0 := bits.Sub64(un[j+i], lo2, borrow)
			un[j+i] = s
			borrow = b0
		}
		s, b0 := bits.Sub64(un[j+n], carry, borrow)
		un[j+n] = s
		borrow = b0

		if borrow != 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				sum, cc := bits.Add64(un[j+i], vn[i], c)
				un[j+i] = sum
				c = cc
			}
			un[j+n] += c
		}

		qOut[j] = qhat
	}

	rOut := shiftRightLimbs(un[:n], shift)
	return qOut, rOut
}

// shiftLeftLimbs shifts x left by shift bits (0-63), returning a new slice
// the same length as x. Bits shifted out of the top limb are discarded; the
// caller is responsible for ensuring that doesn't lose significant bits
// (shiftLeftLimbsExt is used instead whenever that matters).
func shiftLeftLimbs(x []uint64, shift uint) []uint64 {
	out := make([]uint64, len(x))
	if shift == 0 {
		copy(out, x)
		return out
	}
	var carry uint64
	for i := 0; i < len(x); i++ {
		out[i] = (x[i] << shift) | carry
		carry = x[i] >> (64 - shift)
	}
	return out
}

// shiftLeftLimbsExt shifts x left by shift bits (0-63), appending one extra
// limb at the top to hold any overflow.
func shiftLeftLimbsExt(x []uint64, shift uint) []uint64 {
	out := make([]uint64, len(x)+1)
	if shift == 0 {
		copy(out, x)
		return out
	}
	var carry uint64
	for i := 0; i < len(x); i++ {
		out[i] = (x[i] << shift) | carry
		carry = x[i] >> (64 - shift)
	}
	out[len(x)] = carry
	return out
}

// shiftRightLimbs shifts x right by shift bits (0-63), returning a new slice
// the same length as x, zero-filled from the top.
func shiftRightLimbs(x []uint64, shift uint) []uint64 {
	out := make([]uint64, len(x))
	if shift == 0 {
		copy(out, x)
		return out
	}
	var carry uint64
	for i := len(x) - 1; i >= 0; i-- {
		out[i] = (x[i] >> shift) | carry
		carry = x[i] << (64 - shift)
	}
	return out
}
