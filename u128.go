package num

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. It is also the 128-bit limb width: the
// carrying and widening primitives available for native limbs are provided as
// methods.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromString creates a U128 from a decimal string. Overflow is an error
// wrapping ErrRange.
func U128FromString(s string) (out U128, err error) {
	return U128FromStringRadix(s, 10)
}

// U128FromStringRadix creates a U128 from a string in the given radix. See
// FromStringRadix for the accepted syntax.
func U128FromStringRadix(s string, radix int) (out U128, err error) {
	b, err := FromStringRadix[uint64](2, s, radix)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Type = "u128"
		}
		return out, err
	}
	return b.U128(), nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	b, accurate := FromBigInt[uint64](2, v)
	return b.U128(), accurate
}

// U128FromFloat64 creates a U128 from a float64. Any fractional portion
// will be truncated towards zero. Floats outside the bounds of a U128
// are clamped and inRange is false.
//
// NaN is treated as 0, inRange is set to false.
func U128FromFloat64(f float64) (out U128, inRange bool) {
	if f >= 0 && f < wrapUint64Float {
		return U128{lo: uint64(f)}, true
	}
	b, inRange := FromFloat64[uint64](2, f)
	return b.U128(), inRange
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) big() BigUInt[uint64] { return FromArray(u.lo, u.hi) }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.big().String()
}

// Text returns the representation of u in the given radix.
func (u U128) Text(radix int) string { return u.big().Text(radix) }

func (u U128) Format(s fmt.State, c rune) { u.big().Format(s, c) }

func (u U128) IntoBigInt(b *big.Int) { u.big().IntoBigInt(b) }

func (u U128) AsBigInt() (b *big.Int) { return u.big().AsBigInt() }

func (u U128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	return (float64(u.hi) * wrapUint64Float) + float64(u.lo)
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + c
	return v
}

func (u U128) Dec() (v U128) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - b
	return v
}

// CarryingAdd returns u + n + carry and whether the sum carried out.
func (u U128) CarryingAdd(n U128, carry bool) (v U128, carryOut bool) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, b2u(carry))
	v.hi, c = bits.Add64(u.hi, n.hi, c)
	return v, c != 0
}

// BorrowingSub returns u - n - borrow and whether a borrow was needed.
func (u U128) BorrowingSub(n U128, borrow bool) (v U128, borrowOut bool) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, b2u(borrow))
	v.hi, b = bits.Sub64(u.hi, n.hi, b)
	return v, b != 0
}

// WideningMul returns the full 256-bit product of u and n.
func (u U128) WideningMul(n U128) (lo, hi U128) {
	hi, lo = mul128to256(u, n)
	return lo, hi
}

// CarryingMul returns u * n + carry as a low and a high half.
func (u U128) CarryingMul(n, carry U128) (lo, hi U128) {
	lo, hi = u.WideningMul(n)
	var c bool
	lo, c = lo.CarryingAdd(carry, false)
	if c {
		hi = hi.Inc()
	}
	return lo, hi
}

func (u U128) Add(n U128) U128 {
	v, _ := u.CarryingAdd(n, false)
	return v
}

func (u U128) Sub(n U128) U128 {
	v, _ := u.BorrowingSub(n, false)
	return v
}

func (u U128) Mul(n U128) (dest U128) {
	hi, lo := bits.Mul64(u.lo, n.lo)
	dest.lo = lo
	dest.hi = hi + u.hi*n.lo + u.lo*n.hi
	return dest
}

func (u U128) OverflowingAdd(n U128) (U128, bool) { return u.CarryingAdd(n, false) }
func (u U128) OverflowingSub(n U128) (U128, bool) { return u.BorrowingSub(n, false) }

func (u U128) OverflowingMul(n U128) (U128, bool) {
	lo, hi := u.WideningMul(n)
	return lo, !hi.IsZero()
}

// OverflowingNeg returns the two's complement of u; any non-zero value
// overflows.
func (u U128) OverflowingNeg() (U128, bool) { return u.Not().Inc(), !u.IsZero() }

func (u U128) WrappingAdd(n U128) U128 { return u.Add(n) }
func (u U128) WrappingSub(n U128) U128 { return u.Sub(n) }
func (u U128) WrappingMul(n U128) U128 { return u.Mul(n) }
func (u U128) WrappingNeg() U128       { return u.Not().Inc() }

func (u U128) CheckedAdd(n U128) (U128, bool) { return checked[U128](u.OverflowingAdd(n)) }
func (u U128) CheckedSub(n U128) (U128, bool) { return checked[U128](u.OverflowingSub(n)) }
func (u U128) CheckedMul(n U128) (U128, bool) { return checked[U128](u.OverflowingMul(n)) }
func (u U128) CheckedNeg() (U128, bool)       { return checked[U128](u.OverflowingNeg()) }

// CheckedQuo returns u/by, or false if by is zero.
func (u U128) CheckedQuo(by U128) (U128, bool) {
	if by.IsZero() {
		return U128{}, false
	}
	return u.Quo(by), true
}

// CheckedRem returns u%by, or false if by is zero.
func (u U128) CheckedRem(by U128) (U128, bool) {
	if by.IsZero() {
		return U128{}, false
	}
	return u.Rem(by), true
}

func (u U128) SaturatingAdd(n U128) U128 {
	if v, o := u.OverflowingAdd(n); !o {
		return v
	}
	return MaxU128
}

func (u U128) SaturatingSub(n U128) U128 {
	if v, o := u.OverflowingSub(n); !o {
		return v
	}
	return U128{}
}

func (u U128) SaturatingMul(n U128) U128 {
	if v, o := u.OverflowingMul(n); !o {
		return v
	}
	return MaxU128
}

func (u U128) UncheckedAdd(n U128) U128 {
	v, o := u.OverflowingAdd(n)
	if o {
		panicOverflow("add", u, n)
	}
	return v
}

func (u U128) UncheckedSub(n U128) U128 {
	v, o := u.OverflowingSub(n)
	if o {
		panicOverflow("sub", u, n)
	}
	return v
}

func (u U128) UncheckedMul(n U128) U128 {
	v, o := u.OverflowingMul(n)
	if o {
		panicOverflow("mul", u, n)
	}
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) And(v U128) U128    { return U128{hi: u.hi & v.hi, lo: u.lo & v.lo} }
func (u U128) AndNot(v U128) U128 { return U128{hi: u.hi &^ v.hi, lo: u.lo &^ v.lo} }
func (u U128) Or(v U128) U128     { return U128{hi: u.hi | v.hi, lo: u.lo | v.lo} }
func (u U128) Xor(v U128) U128    { return U128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo} }
func (u U128) Not() U128          { return U128{hi: ^u.hi, lo: ^u.lo} }

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
	}
	return v
}

func (u U128) RotateLeft(n uint) U128 {
	n %= 128
	if n == 0 {
		return u
	}
	return u.Lsh(n).Or(u.Rsh(128 - n))
}

func (u U128) RotateRight(n uint) U128 { return u.RotateLeft(128 - n%128) }

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

func (u U128) OnesCount() uint {
	return uint(bits.OnesCount64(u.hi) + bits.OnesCount64(u.lo))
}

func (u U128) BitLen() uint { return 128 - u.LeadingZeros() }

// ReverseBytes returns u with its 16 bytes in reverse order.
func (u U128) ReverseBytes() U128 {
	return U128{hi: bits.ReverseBytes64(u.lo), lo: bits.ReverseBytes64(u.hi)}
}

// Quo returns the quotient u/by. If by == 0, a division-by-zero run-time
// panic occurs. Quo implements truncated division (like Go).
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by. If by == 0, a division-by-zero run-time
// panic occurs.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 && by.lo == 0 {
		panic("u128: division by zero")
	}

	if by.hi == 0 {
		if u.hi < by.lo {
			q.lo, r.lo = bits.Div64(u.hi, u.lo, by.lo)
		} else {
			q.hi, r.hi = bits.Div64(0, u.hi, by.lo)
			q.lo, r.lo = bits.Div64(r.hi, u.lo, by.lo)
			r.hi = 0
		}
		return q, r
	}

	// Hacker's Delight 9-5, divlu2 generalised to a 128-bit divisor: estimate
	// the quotient from the normalised top word, then correct by at most one.
	sh := uint(bits.LeadingZeros64(by.hi))
	v1 := by.Lsh(sh)
	u1 := u.Rsh(1)

	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - sh
	if tq != 0 {
		tq--
	}

	q = U128{lo: tq}
	r = u.Sub(q.Mul(by))
	if r.Cmp(by) >= 0 {
		q = q.Inc()
		r = r.Sub(by)
	}
	return q, r
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// mul128to256 computes the full product of two U128s from four 64x64->128
// partial products.
func mul128to256(n, by U128) (hi, lo U128) {
	hi.hi, hi.lo = bits.Mul64(n.hi, by.hi)
	lo.hi, lo.lo = bits.Mul64(n.lo, by.lo)

	for _, t := range [2][2]uint64{
		{n.hi, by.lo},
		{n.lo, by.hi},
	} {
		th, tl := bits.Mul64(t[0], t[1])

		var c uint64
		lo.hi, c = bits.Add64(lo.hi, tl, 0)
		hi.lo, c = bits.Add64(hi.lo, th, c)
		hi.hi += c
	}

	return hi, lo
}
