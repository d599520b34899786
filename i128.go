package num

import (
	"fmt"
	"math/big"
	"strings"
)

// I128 is a signed 128-bit two's complement integer. It is the signed view of
// a LongerUnion.
type I128 struct {
	hi uint64
	lo uint64
}

const signBit = 0x8000000000000000

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

// I128FromBigInt creates an I128 from a big.Int. Values outside the range
// are clamped to MaxI128/MinI128 and accurate is false.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	mag := new(big.Int).Abs(v)
	u, acc := U128FromBigInt(mag)

	if v.Sign() >= 0 {
		if !acc || !u.IsI128() {
			return MaxI128, false
		}
		return u.AsI128(), true
	}

	if !acc || u.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	return u.AsI128().Neg(), true
}

// I128FromString creates an I128 from a decimal string with an optional sign.
// Out of range values are an error wrapping ErrRange.
func I128FromString(s string) (out I128, err error) {
	neg := strings.HasPrefix(s, "-")
	u, err := U128FromString(strings.TrimPrefix(s, "-"))
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Type, perr.Input = "i128", s
		}
		return out, err
	}

	if neg {
		if u.GreaterThan(minI128AsAbsU128) {
			return out, &ParseError{Type: "i128", Input: s, Radix: 10, Err: ErrRange}
		}
		return u.AsI128().Neg(), nil
	}
	if !u.IsI128() {
		return out, &ParseError{Type: "i128", Input: s, Radix: 10, Err: ErrRange}
	}
	return u.AsI128(), nil
}

var minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) IsNeg() bool { return i.hi&signBit != 0 }

func (i I128) String() string {
	if i.IsNeg() {
		return "-" + i.AsU128().WrappingNeg().String()
	}
	return i.AsU128().String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	if i.IsNeg() {
		b = i.AsU128().WrappingNeg().AsBigInt()
		return b.Neg(b)
	}
	return i.AsU128().AsBigInt()
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.IsNeg() {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() I128 { return i.AsU128().Inc().AsI128() }
func (i I128) Dec() I128 { return i.AsU128().Dec().AsI128() }

func (i I128) Add(n I128) I128 { return i.AsU128().Add(n.AsU128()).AsI128() }
func (i I128) Sub(n I128) I128 { return i.AsU128().Sub(n.AsU128()).AsI128() }

// Mul returns the product of two I128s. Overflow wraps around, as per the Go
// spec; the low 128 bits of a two's complement product do not depend on
// the signs of the operands.
func (i I128) Mul(n I128) I128 { return i.AsU128().Mul(n.AsU128()).AsI128() }

// Neg returns -i. Negating MinI128 wraps to MinI128.
func (i I128) Neg() I128 { return i.AsU128().WrappingNeg().AsI128() }

// Abs returns |i|. Abs(MinI128) wraps to MinI128.
func (i I128) Abs() I128 {
	if i.IsNeg() {
		return i.Neg()
	}
	return i
}

// OverflowingAdd returns i+n, and whether the true sum was outside the range
// of an I128.
func (i I128) OverflowingAdd(n I128) (I128, bool) {
	v := i.Add(n)
	// Overflow iff both operands have the same sign and the result differs.
	return v, (i.hi^v.hi)&(n.hi^v.hi)&signBit != 0
}

func (i I128) OverflowingSub(n I128) (I128, bool) {
	v := i.Sub(n)
	return v, (i.hi^n.hi)&(i.hi^v.hi)&signBit != 0
}

func (i I128) OverflowingMul(n I128) (I128, bool) {
	v := i.Mul(n)
	if i.IsZero() || n.IsZero() {
		return v, false
	}
	if (i == MinI128 && n == minusOneI128) || (n == MinI128 && i == minusOneI128) {
		return v, true
	}
	lo, hi := i.Abs().AsU128().WideningMul(n.Abs().AsU128())
	if !hi.IsZero() {
		return v, true
	}
	if i.IsNeg() != n.IsNeg() {
		return v, lo.GreaterThan(minI128AsAbsU128)
	}
	return v, !lo.IsI128()
}

func (i I128) OverflowingNeg() (I128, bool) { return i.Neg(), i == MinI128 }

func (i I128) WrappingAdd(n I128) I128 { return i.Add(n) }
func (i I128) WrappingSub(n I128) I128 { return i.Sub(n) }
func (i I128) WrappingMul(n I128) I128 { return i.Mul(n) }
func (i I128) WrappingNeg() I128       { return i.Neg() }

func (i I128) CheckedAdd(n I128) (I128, bool) { return checked[I128](i.OverflowingAdd(n)) }
func (i I128) CheckedSub(n I128) (I128, bool) { return checked[I128](i.OverflowingSub(n)) }
func (i I128) CheckedMul(n I128) (I128, bool) { return checked[I128](i.OverflowingMul(n)) }
func (i I128) CheckedNeg() (I128, bool)       { return checked[I128](i.OverflowingNeg()) }

func (i I128) SaturatingAdd(n I128) I128 {
	v, o := i.OverflowingAdd(n)
	if !o {
		return v
	} else if n.IsNeg() {
		return MinI128
	}
	return MaxI128
}

func (i I128) SaturatingSub(n I128) I128 {
	v, o := i.OverflowingSub(n)
	if !o {
		return v
	} else if n.IsNeg() {
		return MaxI128
	}
	return MinI128
}

func (i I128) SaturatingMul(n I128) I128 {
	v, o := i.OverflowingMul(n)
	if !o {
		return v
	} else if i.IsNeg() != n.IsNeg() {
		return MinI128
	}
	return MaxI128
}

// Cmp compares i to n and returns -1, 0 or 1.
func (i I128) Cmp(n I128) int {
	// Flipping the sign bit maps two's complement order onto unsigned order.
	a := U128{hi: i.hi ^ signBit, lo: i.lo}
	b := U128{hi: n.hi ^ signBit, lo: n.lo}
	return a.Cmp(b)
}

func (i I128) Equal(n I128) bool            { return i == n }
func (i I128) GreaterThan(n I128) bool      { return i.Cmp(n) > 0 }
func (i I128) GreaterOrEqualTo(n I128) bool { return i.Cmp(n) >= 0 }
func (i I128) LessThan(n I128) bool         { return i.Cmp(n) < 0 }
func (i I128) LessOrEqualTo(n I128) bool    { return i.Cmp(n) <= 0 }

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
func (i I128) QuoRem(by I128) (q, r I128) {
	qNeg, rNeg := i.IsNeg() != by.IsNeg(), i.IsNeg()

	qu, ru := i.Abs().AsU128().QuoRem(by.Abs().AsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qNeg {
		q = q.Neg()
	}
	if rNeg {
		r = r.Neg()
	}
	return q, r
}

func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: i128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}
