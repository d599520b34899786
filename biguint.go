package num

import (
	"fmt"
	"math/bits"
)

// MaxLimbs is the largest number of limbs a BigUInt can hold.
const MaxLimbs = 32

// BigUInt is a fixed-width unsigned integer made of N limbs of type T, least
// significant limb first. N is chosen at construction and never changes.
//
// BigUInt is a value type; all operations return new values. Limbs beyond N
// are always zero, so two BigUInts with the same N can be compared with ==.
//
// The zero value has no limbs and is not useful; use Zero, FromArray or one
// of the other constructors.
type BigUInt[T Limb] struct {
	n     int
	limbs [MaxLimbs]T
}

func checkLimbCount(n int) {
	if n < 1 || n > MaxLimbs {
		panic(fmt.Errorf("biguint: limb count %d out of range [1, %d]", n, MaxLimbs))
	}
}

// Zero returns a BigUInt of n limbs with the value 0.
func Zero[T Limb](n int) BigUInt[T] {
	checkLimbCount(n)
	return BigUInt[T]{n: n}
}

// One returns a BigUInt of n limbs with the value 1.
func One[T Limb](n int) BigUInt[T] {
	checkLimbCount(n)
	b := BigUInt[T]{n: n}
	b.limbs[0] = 1
	return b
}

// Max returns a BigUInt of n limbs with every bit set.
func Max[T Limb](n int) BigUInt[T] {
	checkLimbCount(n)
	b := BigUInt[T]{n: n}
	for i := 0; i < n; i++ {
		b.limbs[i] = limbMax[T]()
	}
	return b
}

// FromArray creates a BigUInt from limbs, least significant first. The limb
// count is len(limbs).
func FromArray[T Limb](limbs ...T) BigUInt[T] {
	checkLimbCount(len(limbs))
	b := BigUInt[T]{n: len(limbs)}
	copy(b.limbs[:], limbs)
	return b
}

// FromUint64 creates a BigUInt of n limbs from v. If the BigUInt is narrower
// than 64 bits, the high bits of v are discarded.
func FromUint64[T Limb](n int, v uint64) BigUInt[T] {
	checkLimbCount(n)
	b := BigUInt[T]{n: n}
	w := LimbBits[T]()
	for i := 0; i < n && v != 0; i++ {
		b.limbs[i] = T(v)
		v >>= w
	}
	return b
}

// FromU128 creates a BigUInt of n limbs from u, truncating if necessary.
func FromU128[T Limb](n int, u U128) BigUInt[T] {
	lo := FromUint64[T](n, u.lo)
	if u.hi == 0 {
		return lo
	}
	return FromUint64[T](n, u.hi).Lsh(64).Or(lo)
}

// Len returns the number of limbs.
func (b BigUInt[T]) Len() int { return b.n }

// BitSize returns the width of b in bits.
func (b BigUInt[T]) BitSize() uint { return uint(b.n) * LimbBits[T]() }

// Limbs returns a copy of the limbs of b, least significant first.
func (b BigUInt[T]) Limbs() []T {
	out := make([]T, b.n)
	copy(out, b.limbs[:b.n])
	return out
}

// Limb returns limb i. It panics if i is out of range.
func (b BigUInt[T]) Limb(i int) T {
	if i < 0 || i >= b.n {
		panic(fmt.Errorf("biguint: limb index %d out of range [0, %d)", i, b.n))
	}
	return b.limbs[i]
}

// LimbChecked returns limb i, or false if i is out of range.
func (b BigUInt[T]) LimbChecked(i int) (T, bool) {
	if i < 0 || i >= b.n {
		return 0, false
	}
	return b.limbs[i], true
}

// SetLimb returns a copy of b with limb i replaced by v. It panics if i is
// out of range.
func (b BigUInt[T]) SetLimb(i int, v T) BigUInt[T] {
	if i < 0 || i >= b.n {
		panic(fmt.Errorf("biguint: limb index %d out of range [0, %d)", i, b.n))
	}
	b.limbs[i] = v
	return b
}

// Resize returns b with n limbs, zero-extending or truncating the high limbs.
func (b BigUInt[T]) Resize(n int) BigUInt[T] {
	checkLimbCount(n)
	for i := n; i < b.n; i++ {
		b.limbs[i] = 0
	}
	b.n = n
	return b
}

func (b BigUInt[T]) IsZero() bool {
	for i := 0; i < b.n; i++ {
		if b.limbs[i] != 0 {
			return false
		}
	}
	return true
}

func (b BigUInt[T]) IsMax() bool {
	for i := 0; i < b.n; i++ {
		if b.limbs[i] != limbMax[T]() {
			return false
		}
	}
	return true
}

// Uint64 truncates b to fit in a uint64. See IsUint64() if you want to check
// before you convert.
func (b BigUInt[T]) Uint64() (v uint64) {
	w := LimbBits[T]()
	for i := 0; i < b.n && uint(i)*w < 64; i++ {
		v |= uint64(b.limbs[i]) << (uint(i) * w)
	}
	return v
}

// IsUint64 reports whether b can be represented as a uint64.
func (b BigUInt[T]) IsUint64() bool { return b.BitLen() <= 64 }

// U128 truncates b to fit in a U128.
func (b BigUInt[T]) U128() U128 {
	return U128{hi: b.Rsh(64).Uint64(), lo: b.Uint64()}
}

// IsU128 reports whether b can be represented as a U128.
func (b BigUInt[T]) IsU128() bool { return b.BitLen() <= 128 }

func (b BigUInt[T]) mustMatch(o BigUInt[T]) {
	if b.n != o.n {
		panic(fmt.Errorf("biguint: limb count mismatch (%d != %d)", b.n, o.n))
	}
}

// overflowingAdd is the single carry chain behind every addition variant.
func (b BigUInt[T]) overflowingAdd(o BigUInt[T]) (out BigUInt[T], carry bool) {
	b.mustMatch(o)
	out.n = b.n
	for i := 0; i < b.n; i++ {
		out.limbs[i], carry = CarryingAdd(b.limbs[i], o.limbs[i], carry)
	}
	return out, carry
}

// overflowingSub is the single borrow chain behind every subtraction variant.
func (b BigUInt[T]) overflowingSub(o BigUInt[T]) (out BigUInt[T], borrow bool) {
	b.mustMatch(o)
	out.n = b.n
	for i := 0; i < b.n; i++ {
		out.limbs[i], borrow = BorrowingSub(b.limbs[i], o.limbs[i], borrow)
	}
	return out, borrow
}

// mulFull is a schoolbook multiplication into a 2N limb accumulator.
func (b BigUInt[T]) mulFull(o BigUInt[T]) (acc [2 * MaxLimbs]T) {
	b.mustMatch(o)
	n := b.n
	for i := 0; i < n; i++ {
		if b.limbs[i] == 0 {
			continue
		}
		var carry T
		for j := 0; j < n; j++ {
			// acc[i+j] + b[i]*o[j] + carry < 2^2w, so hi never overflows.
			lo, hi := CarryingMul(b.limbs[i], o.limbs[j], carry)
			var c bool
			acc[i+j], c = CarryingAdd(acc[i+j], lo, false)
			if c {
				hi++
			}
			carry = hi
		}
		acc[i+n] = carry
	}
	return acc
}

func (b BigUInt[T]) overflowingMul(o BigUInt[T]) (out BigUInt[T], overflow bool) {
	acc := b.mulFull(o)
	out.n = b.n
	copy(out.limbs[:b.n], acc[:b.n])
	for i := b.n; i < 2*b.n; i++ {
		if acc[i] != 0 {
			return out, true
		}
	}
	return out, false
}

// WideningMul returns the full product of b and o as a low and a high half.
func (b BigUInt[T]) WideningMul(o BigUInt[T]) (lo, hi BigUInt[T]) {
	acc := b.mulFull(o)
	lo.n, hi.n = b.n, b.n
	copy(lo.limbs[:b.n], acc[:b.n])
	copy(hi.limbs[:b.n], acc[b.n:2*b.n])
	return lo, hi
}

// CarryingAdd returns b + o + carry, and whether the sum carried out of the
// top limb.
func (b BigUInt[T]) CarryingAdd(o BigUInt[T], carry bool) (BigUInt[T], bool) {
	out, c1 := b.overflowingAdd(o)
	if !carry {
		return out, c1
	}
	out, c2 := out.overflowingAdd(One[T](b.n))
	return out, c1 || c2
}

// BorrowingSub returns b - o - borrow, and whether a borrow was needed.
func (b BigUInt[T]) BorrowingSub(o BigUInt[T], borrow bool) (BigUInt[T], bool) {
	out, b1 := b.overflowingSub(o)
	if !borrow {
		return out, b1
	}
	out, b2 := out.overflowingSub(One[T](b.n))
	return out, b1 || b2
}

func (b BigUInt[T]) Inc() BigUInt[T] {
	for i := 0; i < b.n; i++ {
		b.limbs[i]++
		if b.limbs[i] != 0 {
			break
		}
	}
	return b
}

func (b BigUInt[T]) Dec() BigUInt[T] {
	for i := 0; i < b.n; i++ {
		b.limbs[i]--
		if b.limbs[i] != limbMax[T]() {
			break
		}
	}
	return b
}

// Add is WrappingAdd.
func (b BigUInt[T]) Add(o BigUInt[T]) BigUInt[T] { return b.WrappingAdd(o) }

// Sub is WrappingSub.
func (b BigUInt[T]) Sub(o BigUInt[T]) BigUInt[T] { return b.WrappingSub(o) }

// Mul is WrappingMul.
func (b BigUInt[T]) Mul(o BigUInt[T]) BigUInt[T] { return b.WrappingMul(o) }

func (b BigUInt[T]) Cmp(o BigUInt[T]) int {
	b.mustMatch(o)
	for i := b.n - 1; i >= 0; i-- {
		if b.limbs[i] > o.limbs[i] {
			return 1
		} else if b.limbs[i] < o.limbs[i] {
			return -1
		}
	}
	return 0
}

func (b BigUInt[T]) Equal(o BigUInt[T]) bool            { return b.Cmp(o) == 0 }
func (b BigUInt[T]) GreaterThan(o BigUInt[T]) bool      { return b.Cmp(o) > 0 }
func (b BigUInt[T]) GreaterOrEqualTo(o BigUInt[T]) bool { return b.Cmp(o) >= 0 }
func (b BigUInt[T]) LessThan(o BigUInt[T]) bool         { return b.Cmp(o) < 0 }
func (b BigUInt[T]) LessOrEqualTo(o BigUInt[T]) bool    { return b.Cmp(o) <= 0 }

// Quo returns the quotient b/by. If by is zero, a division-by-zero run-time
// panic occurs.
func (b BigUInt[T]) Quo(by BigUInt[T]) BigUInt[T] {
	q, _ := b.QuoRem(by)
	return q
}

// Rem returns the remainder b%by. If by is zero, a division-by-zero run-time
// panic occurs.
func (b BigUInt[T]) Rem(by BigUInt[T]) BigUInt[T] {
	_, r := b.QuoRem(by)
	return r
}

// QuoRem returns the quotient and remainder of b/by. If by is zero, a
// division-by-zero run-time panic occurs.
func (b BigUInt[T]) QuoRem(by BigUInt[T]) (q, r BigUInt[T]) {
	b.mustMatch(by)
	if by.IsZero() {
		panic(fmt.Errorf("biguint: division by zero: %s / 0", b))
	}

	if cmp := b.Cmp(by); cmp < 0 {
		return Zero[T](b.n), b // it's 100% remainder
	} else if cmp == 0 {
		return One[T](b.n), Zero[T](b.n)
	}

	if by.limbLen() == 1 {
		q, rem := b.divRemLimb(by.limbs[0])
		return q, FromArray(rem).Resize(b.n)
	}

	return b.quoRemBin(by)
}

// DivRemUint64 divides b by a uint64. It panics if d is zero.
func (b BigUInt[T]) DivRemUint64(d uint64) (q BigUInt[T], r uint64) {
	if d == 0 {
		panic(fmt.Errorf("biguint: division by zero: %s / 0", b))
	}
	q.n = b.n
	for i := b.n - 1; i >= 0; i-- {
		q.limbs[i], r = divWide[T](r, uint64(b.limbs[i]), d)
	}
	return q, r
}

func (b BigUInt[T]) divRemLimb(d T) (q BigUInt[T], r T) {
	q, rem := b.DivRemUint64(uint64(d))
	return q, T(rem)
}

// quoRemBin is binary long division, working down from the most significant
// bit of the quotient. Requires b > by > 0.
func (b BigUInt[T]) quoRemBin(by BigUInt[T]) (q, r BigUInt[T]) {
	shift := int(by.LeadingZeros() - b.LeadingZeros())
	by = by.Lsh(uint(shift))
	q.n = b.n

	for {
		q = q.Lsh(1)

		if b.Cmp(by) >= 0 {
			b, _ = b.overflowingSub(by)
			q.limbs[0] |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, b
}

// limbLen is the number of limbs up to and including the highest non-zero
// limb.
func (b BigUInt[T]) limbLen() int {
	for i := b.n - 1; i >= 0; i-- {
		if b.limbs[i] != 0 {
			return i + 1
		}
	}
	return 0
}

func (b BigUInt[T]) overflowingNeg() (BigUInt[T], bool) {
	out, _ := b.Not().overflowingAdd(One[T](b.n))
	return out, !b.IsZero()
}

func (b BigUInt[T]) overflowingPow(exp uint) (out BigUInt[T], overflow bool) {
	out = One[T](b.n)
	for exp > 0 {
		var o bool
		if exp&1 == 1 {
			out, o = out.overflowingMul(b)
			overflow = overflow || o
		}
		exp >>= 1
		if exp > 0 {
			b, o = b.overflowingMul(b)
			overflow = overflow || o
		}
	}
	return out, overflow
}

// Isqrt returns floor(sqrt(b)).
func (b BigUInt[T]) Isqrt() BigUInt[T] {
	if b.BitLen() <= 1 {
		return b
	}
	x := One[T](b.n).Lsh((b.BitLen() + 1) / 2)
	for {
		y := x.Add(b.Quo(x)).Rsh(1)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

// Ilog2 returns floor(log2(b)). It panics if b is zero.
func (b BigUInt[T]) Ilog2() uint {
	if b.IsZero() {
		panic("biguint: ilog2 of zero")
	}
	return b.BitLen() - 1
}

// Ilog10 returns floor(log10(b)). It panics if b is zero.
func (b BigUInt[T]) Ilog10() uint {
	if b.IsZero() {
		panic("biguint: ilog10 of zero")
	}
	var n uint
	for {
		if b.IsUint64() {
			return n + Ilog10(b.Uint64())
		}
		b, _ = b.DivRemUint64(1e19)
		n += 19
	}
}

// IsPowerOfTwo reports whether exactly one bit of b is set.
func (b BigUInt[T]) IsPowerOfTwo() bool { return b.CountOnes() == 1 }

// NextPowerOfTwo returns the smallest power of two >= b, and false if it is
// not representable.
func (b BigUInt[T]) NextPowerOfTwo() (BigUInt[T], bool) {
	if b.BitLen() <= 1 {
		return One[T](b.n), true
	}
	l := b.Dec().BitLen()
	if l >= b.BitSize() {
		return Zero[T](b.n), false
	}
	return One[T](b.n).Lsh(l), true
}

// Gcd returns the greatest common divisor of b and o. Gcd(0, 0) is 0.
func (b BigUInt[T]) Gcd(o BigUInt[T]) BigUInt[T] {
	b.mustMatch(o)
	for !o.IsZero() {
		b, o = o, b.Rem(o)
	}
	return b
}

// Lcm returns the least common multiple of b and o, wrapping on overflow.
// Lcm(x, 0) is 0.
func (b BigUInt[T]) Lcm(o BigUInt[T]) BigUInt[T] {
	if b.IsZero() || o.IsZero() {
		return Zero[T](b.n)
	}
	return b.Quo(b.Gcd(o)).WrappingMul(o)
}

func limbLeadingZeros[T Limb](v T) uint {
	return uint(bits.LeadingZeros64(uint64(v))) - (64 - LimbBits[T]())
}
