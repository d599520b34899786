package num

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

// FromBigInt creates a BigUInt of n limbs from a big.Int. Overflow clamps to
// Max(n) and negative values to zero; in both cases accurate is false.
func FromBigInt[T Limb](n int, v *big.Int) (out BigUInt[T], accurate bool) {
	out = Zero[T](n)
	if v.Sign() < 0 {
		return out, false
	}
	if uint(v.BitLen()) > out.BitSize() {
		return Max[T](n), false
	}
	return FromBytesBE[T](n, v.Bytes()), true
}

func (b BigUInt[T]) IntoBigInt(v *big.Int) {
	var buf [MaxLimbs * 8]byte
	sz := b.n * limbBytes[T]()
	b.PutBytesBE(buf[:sz])
	v.SetBytes(buf[:sz])
}

func (b BigUInt[T]) AsBigInt() *big.Int {
	var v big.Int
	b.IntoBigInt(&v)
	return &v
}

func (b BigUInt[T]) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(b.AsBigInt())
}

// AsFloat64 returns the nearest float64 to b, rounding half to even.
func (b BigUInt[T]) AsFloat64() float64 {
	l := b.BitLen()
	if l <= 64 {
		return float64(b.Uint64())
	}

	// The top 64 bits keep 11 bits below the float64 mantissa; any non-zero
	// bits shifted out are folded into the lowest as a sticky bit so ties
	// are only broken to even when they are exact.
	v := b.Rsh(l - 64).Uint64()
	if b.TrailingZeros() < l-64 {
		v |= 1
	}
	return math.Ldexp(float64(v), int(l-64))
}

// FromFloat64 creates a BigUInt of n limbs from f. Any fractional portion is
// truncated towards zero. Negative values and NaN produce zero, values too
// large produce Max(n); inRange is false for all of these.
func FromFloat64[T Limb](n int, f float64) (out BigUInt[T], inRange bool) {
	out = Zero[T](n)
	if f != f || f < 0 { // (f != f) == NaN
		return out, false
	} else if f < 1 {
		return out, true
	} else if math.IsInf(f, 1) {
		return Max[T](n), false
	}

	frac, exp := math.Frexp(f) // f == frac * 2^exp, frac in [0.5, 1)
	if exp > int(out.BitSize()) {
		return Max[T](n), false
	}

	mant := uint64(math.Ldexp(frac, 64))
	if exp >= 64 {
		return FromUint64[T](n, mant).Lsh(uint(exp - 64)), true
	}
	return FromUint64[T](n, mant>>uint(64-exp)), true
}

// ToUint256 converts b to a uint256.Int. If b is wider than 256 bits, the
// high bits are discarded and fits is false.
func (b BigUInt[T]) ToUint256() (v *uint256.Int, fits bool) {
	var buf [32]byte
	ConvertLimbs[uint64](4, b).PutBytesBE(buf[:])
	return new(uint256.Int).SetBytes32(buf[:]), b.BitLen() <= 256
}

// FromUint256 creates a BigUInt of n limbs from a uint256.Int, truncating if
// n limbs are narrower than 256 bits.
func FromUint256[T Limb](n int, v *uint256.Int) BigUInt[T] {
	buf := v.Bytes32()
	return FromBytesBE[T](n, buf[:])
}
