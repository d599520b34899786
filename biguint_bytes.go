package num

import (
	"fmt"
)

// BytesLE returns b as n*w/8 bytes, least significant byte first.
func (b BigUInt[T]) BytesLE() []byte {
	out := make([]byte, b.n*limbBytes[T]())
	b.PutBytesLE(out)
	return out
}

// BytesBE returns b as n*w/8 bytes, most significant byte first.
func (b BigUInt[T]) BytesBE() []byte {
	out := make([]byte, b.n*limbBytes[T]())
	b.PutBytesBE(out)
	return out
}

// PutBytesLE writes b into buf, least significant byte first. It panics if
// buf is shorter than BitSize()/8.
func (b BigUInt[T]) PutBytesLE(buf []byte) {
	lb := limbBytes[T]()
	if len(buf) < b.n*lb {
		panic(fmt.Errorf("biguint: buffer too small (%d < %d)", len(buf), b.n*lb))
	}
	for i := 0; i < b.n; i++ {
		v := b.limbs[i]
		for k := 0; k < lb; k++ {
			buf[i*lb+k] = byte(v >> (8 * uint(k)))
		}
	}
}

// PutBytesBE writes b into buf, most significant byte first. It panics if
// buf is shorter than BitSize()/8.
func (b BigUInt[T]) PutBytesBE(buf []byte) {
	sz := b.n * limbBytes[T]()
	if len(buf) < sz {
		panic(fmt.Errorf("biguint: buffer too small (%d < %d)", len(buf), sz))
	}
	b.PutBytesLE(buf)
	reverseBytes(buf[:sz])
}

// FromBytesLE creates a BigUInt of n limbs from little-endian bytes. Bytes
// beyond the width of the result are discarded; missing bytes are zero.
func FromBytesLE[T Limb](n int, buf []byte) BigUInt[T] {
	checkLimbCount(n)
	out := BigUInt[T]{n: n}
	lb := limbBytes[T]()
	for k, c := range buf {
		if k >= n*lb {
			break
		}
		out.limbs[k/lb] |= T(c) << (8 * uint(k%lb))
	}
	return out
}

// FromBytesBE creates a BigUInt of n limbs from big-endian bytes. Leading
// bytes beyond the width of the result are discarded.
func FromBytesBE[T Limb](n int, buf []byte) BigUInt[T] {
	le := make([]byte, len(buf))
	copy(le, buf)
	reverseBytes(le)
	return FromBytesLE[T](n, le)
}

// SwapBytes reverses the byte order of the whole value. Limb order is
// reversed as well as the bytes within each limb.
func (b BigUInt[T]) SwapBytes() BigUInt[T] {
	var buf [MaxLimbs * 8]byte
	sz := b.n * limbBytes[T]()
	b.PutBytesBE(buf[:sz])
	return FromBytesLE[T](b.n, buf[:sz])
}

// The native byte order of a BigUInt is defined as little-endian, regardless
// of the host, so that the results of these functions are portable.

// ToBE converts b to big-endian byte order.
func (b BigUInt[T]) ToBE() BigUInt[T] { return b.SwapBytes() }

// ToLE converts b to little-endian byte order, which is a no-op.
func (b BigUInt[T]) ToLE() BigUInt[T] { return b }

// FromBE converts a big-endian value to native byte order.
func FromBE[T Limb](b BigUInt[T]) BigUInt[T] { return b.SwapBytes() }

// FromLE converts a little-endian value to native byte order, which is a
// no-op.
func FromLE[T Limb](b BigUInt[T]) BigUInt[T] { return b }

// ConvertLimbs reinterprets the bit pattern of src as n limbs of type D,
// zero-extending or truncating the high bits.
func ConvertLimbs[D, S Limb](n int, src BigUInt[S]) BigUInt[D] {
	var buf [MaxLimbs * 8]byte
	sz := src.n * limbBytes[S]()
	src.PutBytesLE(buf[:sz])
	return FromBytesLE[D](n, buf[:sz])
}

func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
