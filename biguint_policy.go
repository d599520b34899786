package num

import (
	"fmt"
)

// Every policy in this file is a wrapper around one of the raw
// overflowing computations in biguint.go; none of them repeats a limb loop.

func (b BigUInt[T]) OverflowingAdd(o BigUInt[T]) (BigUInt[T], bool) { return b.overflowingAdd(o) }
func (b BigUInt[T]) OverflowingSub(o BigUInt[T]) (BigUInt[T], bool) { return b.overflowingSub(o) }
func (b BigUInt[T]) OverflowingMul(o BigUInt[T]) (BigUInt[T], bool) { return b.overflowingMul(o) }
func (b BigUInt[T]) OverflowingPow(exp uint) (BigUInt[T], bool)     { return b.overflowingPow(exp) }

// OverflowingNeg returns the two's complement of b. Negating zero yields
// zero with no overflow; any other value always overflows.
func (b BigUInt[T]) OverflowingNeg() (BigUInt[T], bool) { return b.overflowingNeg() }

// OverflowingDiv never overflows; it panics if by is zero.
func (b BigUInt[T]) OverflowingDiv(by BigUInt[T]) (BigUInt[T], bool) { return b.Quo(by), false }

// OverflowingRem never overflows; it panics if by is zero.
func (b BigUInt[T]) OverflowingRem(by BigUInt[T]) (BigUInt[T], bool) { return b.Rem(by), false }

// OverflowingShl returns b shifted left by n modulo BitSize(), and whether n
// was at least BitSize().
func (b BigUInt[T]) OverflowingShl(n uint) (BigUInt[T], bool) {
	return b.Lsh(n % b.BitSize()), n >= b.BitSize()
}

// OverflowingShr returns b shifted right by n modulo BitSize(), and whether n
// was at least BitSize().
func (b BigUInt[T]) OverflowingShr(n uint) (BigUInt[T], bool) {
	return b.Rsh(n % b.BitSize()), n >= b.BitSize()
}

func (b BigUInt[T]) WrappingAdd(o BigUInt[T]) BigUInt[T] {
	v, _ := b.overflowingAdd(o)
	return v
}

func (b BigUInt[T]) WrappingSub(o BigUInt[T]) BigUInt[T] {
	v, _ := b.overflowingSub(o)
	return v
}

func (b BigUInt[T]) WrappingMul(o BigUInt[T]) BigUInt[T] {
	v, _ := b.overflowingMul(o)
	return v
}

func (b BigUInt[T]) WrappingPow(exp uint) BigUInt[T] {
	v, _ := b.overflowingPow(exp)
	return v
}

func (b BigUInt[T]) WrappingNeg() BigUInt[T] {
	v, _ := b.overflowingNeg()
	return v
}

func (b BigUInt[T]) WrappingDiv(by BigUInt[T]) BigUInt[T] { return b.Quo(by) }
func (b BigUInt[T]) WrappingRem(by BigUInt[T]) BigUInt[T] { return b.Rem(by) }

func (b BigUInt[T]) WrappingShl(n uint) BigUInt[T] {
	v, _ := b.OverflowingShl(n)
	return v
}

func (b BigUInt[T]) WrappingShr(n uint) BigUInt[T] {
	v, _ := b.OverflowingShr(n)
	return v
}

func (b BigUInt[T]) CheckedAdd(o BigUInt[T]) (BigUInt[T], bool) { return b.checked(b.overflowingAdd(o)) }
func (b BigUInt[T]) CheckedSub(o BigUInt[T]) (BigUInt[T], bool) { return b.checked(b.overflowingSub(o)) }
func (b BigUInt[T]) CheckedMul(o BigUInt[T]) (BigUInt[T], bool) { return b.checked(b.overflowingMul(o)) }
func (b BigUInt[T]) CheckedPow(exp uint) (BigUInt[T], bool)     { return b.checked(b.overflowingPow(exp)) }
func (b BigUInt[T]) CheckedNeg() (BigUInt[T], bool)             { return b.checked(b.overflowingNeg()) }
func (b BigUInt[T]) CheckedShl(n uint) (BigUInt[T], bool)       { return b.checked(b.OverflowingShl(n)) }
func (b BigUInt[T]) CheckedShr(n uint) (BigUInt[T], bool)       { return b.checked(b.OverflowingShr(n)) }

// CheckedDiv returns b/by, or false if by is zero.
func (b BigUInt[T]) CheckedDiv(by BigUInt[T]) (BigUInt[T], bool) {
	b.mustMatch(by)
	if by.IsZero() {
		return Zero[T](b.n), false
	}
	return b.Quo(by), true
}

// CheckedRem returns b%by, or false if by is zero.
func (b BigUInt[T]) CheckedRem(by BigUInt[T]) (BigUInt[T], bool) {
	b.mustMatch(by)
	if by.IsZero() {
		return Zero[T](b.n), false
	}
	return b.Rem(by), true
}

func (b BigUInt[T]) SaturatingAdd(o BigUInt[T]) BigUInt[T] {
	return b.saturate(Max[T](b.n))(b.overflowingAdd(o))
}

func (b BigUInt[T]) SaturatingSub(o BigUInt[T]) BigUInt[T] {
	return b.saturate(Zero[T](b.n))(b.overflowingSub(o))
}

func (b BigUInt[T]) SaturatingMul(o BigUInt[T]) BigUInt[T] {
	return b.saturate(Max[T](b.n))(b.overflowingMul(o))
}

func (b BigUInt[T]) SaturatingPow(exp uint) BigUInt[T] {
	return b.saturate(Max[T](b.n))(b.overflowingPow(exp))
}

// SaturatingDiv is Quo; unsigned division cannot overflow.
func (b BigUInt[T]) SaturatingDiv(by BigUInt[T]) BigUInt[T] { return b.Quo(by) }

func (b BigUInt[T]) UncheckedAdd(o BigUInt[T]) BigUInt[T] {
	return b.unchecked("add", o)(b.overflowingAdd(o))
}

func (b BigUInt[T]) UncheckedSub(o BigUInt[T]) BigUInt[T] {
	return b.unchecked("sub", o)(b.overflowingSub(o))
}

func (b BigUInt[T]) UncheckedMul(o BigUInt[T]) BigUInt[T] {
	return b.unchecked("mul", o)(b.overflowingMul(o))
}

func (b BigUInt[T]) UncheckedPow(exp uint) BigUInt[T] {
	return b.unchecked("pow", exp)(b.overflowingPow(exp))
}

func (b BigUInt[T]) UncheckedShl(n uint) BigUInt[T] {
	return b.unchecked("shl", n)(b.OverflowingShl(n))
}

func (b BigUInt[T]) UncheckedShr(n uint) BigUInt[T] {
	return b.unchecked("shr", n)(b.OverflowingShr(n))
}

// UncheckedDiv panics if by is zero.
func (b BigUInt[T]) UncheckedDiv(by BigUInt[T]) BigUInt[T] { return b.Quo(by) }

// UncheckedRem panics if by is zero.
func (b BigUInt[T]) UncheckedRem(by BigUInt[T]) BigUInt[T] { return b.Rem(by) }

func (b BigUInt[T]) checked(v BigUInt[T], overflow bool) (BigUInt[T], bool) {
	if overflow {
		return Zero[T](b.n), false
	}
	return v, true
}

func (b BigUInt[T]) saturate(limit BigUInt[T]) func(BigUInt[T], bool) BigUInt[T] {
	return func(v BigUInt[T], overflow bool) BigUInt[T] {
		if overflow {
			return limit
		}
		return v
	}
}

func (b BigUInt[T]) unchecked(op string, operand interface{}) func(BigUInt[T], bool) BigUInt[T] {
	return func(v BigUInt[T], overflow bool) BigUInt[T] {
		if overflow {
			panic(fmt.Errorf("biguint: unchecked %s overflowed: %s, %v", op, b, operand))
		}
		return v
	}
}
