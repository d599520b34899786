package num

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// CarryingAdd computes a + b + carry. The sum is truncated to the width of T;
// carryOut reports whether the true sum did not fit.
func CarryingAdd[T constraints.Unsigned](a, b T, carry bool) (sum T, carryOut bool) {
	w := bitWidth[T]()
	if w == 64 {
		s, c := bits.Add64(uint64(a), uint64(b), b2u(carry))
		return T(s), c != 0
	}
	s := uint64(a) + uint64(b) + b2u(carry)
	return T(s), s>>w != 0
}

// BorrowingSub computes a - b - borrow, wrapping around at the width of T.
// borrowOut reports whether a < b + borrow.
func BorrowingSub[T constraints.Unsigned](a, b T, borrow bool) (diff T, borrowOut bool) {
	w := bitWidth[T]()
	if w == 64 {
		d, c := bits.Sub64(uint64(a), uint64(b), b2u(borrow))
		return T(d), c != 0
	}
	rhs := uint64(b) + b2u(borrow)
	return T(uint64(a) - rhs), uint64(a) < rhs
}

// WideningMul returns the full double-width product a * b as two halves.
func WideningMul[T constraints.Unsigned](a, b T) (lo, hi T) {
	w := bitWidth[T]()
	if w == 64 {
		h, l := bits.Mul64(uint64(a), uint64(b))
		return T(l), T(h)
	}
	p := uint64(a) * uint64(b)
	return T(p), T(p >> w)
}

// CarryingMul returns a * b + carry as two halves. The result always fits:
// (2^w-1)^2 + (2^w-1) < 2^2w.
func CarryingMul[T constraints.Unsigned](a, b, carry T) (lo, hi T) {
	lo, hi = WideningMul(a, b)

	// The incoming carry is folded into the low half; a carry out of the low
	// half goes into the high half, which cannot overflow.
	var c bool
	lo, c = CarryingAdd(lo, carry, false)
	if c {
		hi++
	}
	return lo, hi
}

// divWide divides the double-width value (hi:lo) by d, where w(T) <= 64 and
// hi < d. The quotient is guaranteed to fit in T.
func divWide[T Limb](hi, lo, d uint64) (q T, r uint64) {
	w := LimbBits[T]()

	// (hi << w) | lo, split into a 128-bit numerator. When w == 64, the
	// shifts collapse to (hi, lo) because Go defines x>>0 and x<<64.
	nhi := hi >> (64 - w)
	nlo := hi<<w | lo
	qq, rr := bits.Div64(nhi, nlo, d)
	return T(qq), rr
}

// mulAddWide computes x * m + a, returning the part that fits in T and the
// part that carries into the next limb.
func mulAddWide[T Limb](x T, m, a uint64) (out T, carry uint64) {
	w := LimbBits[T]()
	hi, lo := bits.Mul64(uint64(x), m)
	var c uint64
	lo, c = bits.Add64(lo, a, 0)
	hi += c
	return T(lo), hi<<(64-w) | lo>>w
}
