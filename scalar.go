package num

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// The functions in this file apply the overflow policies to any native
// unsigned value, uintptr included. Every policy is derived from the
// Overflowing* form.

func OverflowingAdd[T constraints.Unsigned](a, b T) (T, bool) { return CarryingAdd(a, b, false) }
func OverflowingSub[T constraints.Unsigned](a, b T) (T, bool) { return BorrowingSub(a, b, false) }

func OverflowingMul[T constraints.Unsigned](a, b T) (T, bool) {
	lo, hi := WideningMul(a, b)
	return lo, hi != 0
}

// OverflowingNeg returns the two's complement of a. Any non-zero input
// overflows, as the result of negating an unsigned value is never
// representable.
func OverflowingNeg[T constraints.Unsigned](a T) (T, bool) { return -a, a != 0 }

func OverflowingPow[T constraints.Unsigned](base T, exp uint) (out T, overflow bool) {
	out = 1
	for exp > 0 {
		var o bool
		if exp&1 == 1 {
			out, o = OverflowingMul(out, base)
			overflow = overflow || o
		}
		exp >>= 1
		if exp > 0 {
			base, o = OverflowingMul(base, base)
			overflow = overflow || o
		}
	}
	return out, overflow
}

func WrappingAdd[T constraints.Unsigned](a, b T) T {
	v, _ := OverflowingAdd(a, b)
	return v
}

func WrappingSub[T constraints.Unsigned](a, b T) T {
	v, _ := OverflowingSub(a, b)
	return v
}

func WrappingMul[T constraints.Unsigned](a, b T) T {
	v, _ := OverflowingMul(a, b)
	return v
}

func WrappingNeg[T constraints.Unsigned](a T) T {
	v, _ := OverflowingNeg(a)
	return v
}

func WrappingPow[T constraints.Unsigned](a T, exp uint) T {
	v, _ := OverflowingPow(a, exp)
	return v
}

func CheckedAdd[T constraints.Unsigned](a, b T) (T, bool) { return checked[T](OverflowingAdd(a, b)) }
func CheckedSub[T constraints.Unsigned](a, b T) (T, bool) { return checked[T](OverflowingSub(a, b)) }
func CheckedMul[T constraints.Unsigned](a, b T) (T, bool) { return checked[T](OverflowingMul(a, b)) }
func CheckedNeg[T constraints.Unsigned](a T) (T, bool)    { return checked[T](OverflowingNeg(a)) }

func CheckedPow[T constraints.Unsigned](a T, exp uint) (T, bool) { return checked[T](OverflowingPow(a, exp)) }

func CheckedDiv[T constraints.Unsigned](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

func CheckedRem[T constraints.Unsigned](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

func SaturatingAdd[T constraints.Unsigned](a, b T) T {
	if v, o := OverflowingAdd(a, b); !o {
		return v
	}
	return limbMax[T]()
}

func SaturatingSub[T constraints.Unsigned](a, b T) T {
	if v, o := OverflowingSub(a, b); !o {
		return v
	}
	return 0
}

func SaturatingMul[T constraints.Unsigned](a, b T) T {
	if v, o := OverflowingMul(a, b); !o {
		return v
	}
	return limbMax[T]()
}

func SaturatingPow[T constraints.Unsigned](a T, exp uint) T {
	if v, o := OverflowingPow(a, exp); !o {
		return v
	}
	return limbMax[T]()
}

func UncheckedAdd[T constraints.Unsigned](a, b T) T {
	v, o := OverflowingAdd(a, b)
	if o {
		panicOverflow("add", a, b)
	}
	return v
}

func UncheckedSub[T constraints.Unsigned](a, b T) T {
	v, o := OverflowingSub(a, b)
	if o {
		panicOverflow("sub", a, b)
	}
	return v
}

func UncheckedMul[T constraints.Unsigned](a, b T) T {
	v, o := OverflowingMul(a, b)
	if o {
		panicOverflow("mul", a, b)
	}
	return v
}

func UncheckedPow[T constraints.Unsigned](a T, exp uint) T {
	v, o := OverflowingPow(a, exp)
	if o {
		panicOverflow("pow", a, exp)
	}
	return v
}

// UncheckedDiv panics if b is zero. Unsigned division cannot overflow.
func UncheckedDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		panic(fmt.Errorf("num: division by zero: %d / 0", a))
	}
	return a / b
}

// UncheckedRem panics if b is zero.
func UncheckedRem[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		panic(fmt.Errorf("num: division by zero: %d %% 0", a))
	}
	return a % b
}

// Isqrt returns floor(sqrt(a)).
func Isqrt[T constraints.Unsigned](a T) T {
	if a < 2 {
		return a
	}
	x := uint64(1) << ((bits.Len64(uint64(a)) + 1) / 2)
	for {
		y := (x + uint64(a)/x) >> 1
		if y >= x {
			return T(x)
		}
		x = y
	}
}

// Ilog2 returns floor(log2(a)). It panics if a is zero.
func Ilog2[T constraints.Unsigned](a T) uint {
	if a == 0 {
		panic("num: ilog2 of zero")
	}
	return uint(bits.Len64(uint64(a))) - 1
}

// Ilog10 returns floor(log10(a)). It panics if a is zero.
func Ilog10[T constraints.Unsigned](a T) uint {
	if a == 0 {
		panic("num: ilog10 of zero")
	}
	var n uint
	for v := uint64(a); v >= 10; v /= 10 {
		n++
	}
	return n
}

func checked[T any](v T, overflow bool) (T, bool) {
	if overflow {
		var z T
		return z, false
	}
	return v, true
}

func panicOverflow(op string, a, b interface{}) {
	panic(fmt.Errorf("num: unchecked %s overflowed: %v, %v", op, a, b))
}
