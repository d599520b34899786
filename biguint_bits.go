package num

import (
	"math/bits"
)

func (b BigUInt[T]) And(o BigUInt[T]) BigUInt[T] {
	b.mustMatch(o)
	for i := 0; i < b.n; i++ {
		b.limbs[i] &= o.limbs[i]
	}
	return b
}

func (b BigUInt[T]) AndNot(o BigUInt[T]) BigUInt[T] {
	b.mustMatch(o)
	for i := 0; i < b.n; i++ {
		b.limbs[i] &^= o.limbs[i]
	}
	return b
}

func (b BigUInt[T]) Or(o BigUInt[T]) BigUInt[T] {
	b.mustMatch(o)
	for i := 0; i < b.n; i++ {
		b.limbs[i] |= o.limbs[i]
	}
	return b
}

func (b BigUInt[T]) Xor(o BigUInt[T]) BigUInt[T] {
	b.mustMatch(o)
	for i := 0; i < b.n; i++ {
		b.limbs[i] ^= o.limbs[i]
	}
	return b
}

func (b BigUInt[T]) Not() BigUInt[T] {
	for i := 0; i < b.n; i++ {
		b.limbs[i] = ^b.limbs[i]
	}
	return b
}

// Lsh returns b << n. Shifting by BitSize() or more yields zero.
func (b BigUInt[T]) Lsh(n uint) (out BigUInt[T]) {
	out.n = b.n
	if n == 0 {
		return b
	} else if n >= b.BitSize() {
		return out
	}

	w := LimbBits[T]()
	limbShift, bitShift := int(n/w), n%w

	// out is a separate value, so every source limb is read before it could
	// have been overwritten.
	for i := b.n - 1; i >= limbShift; i-- {
		src := i - limbShift
		v := b.limbs[src] << bitShift
		if bitShift > 0 && src > 0 {
			v |= b.limbs[src-1] >> (w - bitShift)
		}
		out.limbs[i] = v
	}
	return out
}

// Rsh returns b >> n. Shifting by BitSize() or more yields zero.
func (b BigUInt[T]) Rsh(n uint) (out BigUInt[T]) {
	out.n = b.n
	if n == 0 {
		return b
	} else if n >= b.BitSize() {
		return out
	}

	w := LimbBits[T]()
	limbShift, bitShift := int(n/w), n%w

	for i := 0; i < b.n-limbShift; i++ {
		src := i + limbShift
		v := b.limbs[src] >> bitShift
		if bitShift > 0 && src+1 < b.n {
			v |= b.limbs[src+1] << (w - bitShift)
		}
		out.limbs[i] = v
	}
	return out
}

// RotateLeft returns b rotated left by n bits, modulo BitSize().
func (b BigUInt[T]) RotateLeft(n uint) BigUInt[T] {
	n %= b.BitSize()
	if n == 0 {
		return b
	}
	return b.Lsh(n).Or(b.Rsh(b.BitSize() - n))
}

// RotateRight returns b rotated right by n bits, modulo BitSize().
func (b BigUInt[T]) RotateRight(n uint) BigUInt[T] {
	n %= b.BitSize()
	if n == 0 {
		return b
	}
	return b.Rsh(n).Or(b.Lsh(b.BitSize() - n))
}

// Bit returns the value of bit i of b. Bits beyond BitSize() are 0.
func (b BigUInt[T]) Bit(i uint) uint {
	if i >= b.BitSize() {
		return 0
	}
	w := LimbBits[T]()
	return uint(b.limbs[i/w]>>(i%w)) & 1
}

// SetBit returns b with bit i set to v, which must be 0 or 1. It panics if i
// is beyond BitSize() or if v is neither 0 nor 1.
func (b BigUInt[T]) SetBit(i uint, v uint) BigUInt[T] {
	if i >= b.BitSize() {
		panic("biguint: bit index out of range")
	}
	w := LimbBits[T]()
	switch v {
	case 0:
		b.limbs[i/w] &^= T(1) << (i % w)
	case 1:
		b.limbs[i/w] |= T(1) << (i % w)
	default:
		panic("biguint: bit value not 0 or 1")
	}
	return b
}

// BitLen returns the minimum number of bits required to represent b. The
// result is 0 for b == 0.
func (b BigUInt[T]) BitLen() uint {
	return b.BitSize() - b.LeadingZeros()
}

func (b BigUInt[T]) CountOnes() uint {
	var n int
	for i := 0; i < b.n; i++ {
		n += bits.OnesCount64(uint64(b.limbs[i]))
	}
	return uint(n)
}

func (b BigUInt[T]) CountZeros() uint { return b.BitSize() - b.CountOnes() }

func (b BigUInt[T]) LeadingZeros() uint {
	w := LimbBits[T]()
	var n uint
	for i := b.n - 1; i >= 0; i-- {
		if b.limbs[i] != 0 {
			return n + limbLeadingZeros(b.limbs[i])
		}
		n += w
	}
	return n
}

func (b BigUInt[T]) TrailingZeros() uint {
	w := LimbBits[T]()
	var n uint
	for i := 0; i < b.n; i++ {
		if b.limbs[i] != 0 {
			return n + uint(bits.TrailingZeros64(uint64(b.limbs[i])))
		}
		n += w
	}
	return n
}

func (b BigUInt[T]) LeadingOnes() uint  { return b.Not().LeadingZeros() }
func (b BigUInt[T]) TrailingOnes() uint { return b.Not().TrailingZeros() }

// ReverseBits returns b with the order of all BitSize() bits reversed.
func (b BigUInt[T]) ReverseBits() (out BigUInt[T]) {
	out.n = b.n
	shift := 64 - LimbBits[T]()
	for i := 0; i < b.n; i++ {
		out.limbs[b.n-1-i] = T(bits.Reverse64(uint64(b.limbs[i])) >> shift)
	}
	return out
}
