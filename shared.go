package num

import (
	"fmt"
)

// SharedValues holds one bit pattern viewed as both a D and an S. Reading
// the narrower view truncates; reading the wider view zero-extends whatever
// was last written.
type SharedValues[D, S Limb] struct {
	raw uint64
}

func SharedFromDes[D, S Limb](v D) SharedValues[D, S] { return SharedValues[D, S]{raw: uint64(v)} }
func SharedFromSrc[D, S Limb](v S) SharedValues[D, S] { return SharedValues[D, S]{raw: uint64(v)} }

func (s SharedValues[D, S]) Des() D { return D(s.raw) }
func (s SharedValues[D, S]) Src() S { return S(s.raw) }

// SetDes overwrites the low bits covered by D and leaves any higher bits of
// a wider S untouched.
func (s *SharedValues[D, S]) SetDes(v D) {
	mask := uint64(limbMax[D]())
	s.raw = s.raw&^mask | uint64(v)
}

func (s *SharedValues[D, S]) SetSrc(v S) {
	mask := uint64(limbMax[S]())
	s.raw = s.raw&^mask | uint64(v)
}

// SharedArrays holds a little-endian byte buffer viewed as n limbs of D and
// as m limbs of S. The buffer is sized for the larger of the two views; the
// shorter view sees only its own prefix.
type SharedArrays[D, S Limb] struct {
	n, m int
	buf  []byte
}

func NewSharedArrays[D, S Limb](n, m int) *SharedArrays[D, S] {
	if n < 0 || m < 0 {
		panic(fmt.Errorf("num: negative shared array length (%d, %d)", n, m))
	}
	size := n * limbBytes[D]()
	if ms := m * limbBytes[S](); ms > size {
		size = ms
	}
	return &SharedArrays[D, S]{n: n, m: m, buf: make([]byte, size)}
}

// SharedArraysFromSrc builds a SharedArrays whose source view holds src.
func SharedArraysFromSrc[D, S Limb](n int, src ...S) *SharedArrays[D, S] {
	sa := NewSharedArrays[D, S](n, len(src))
	for i, v := range src {
		sa.SetSrcAt(i, v)
	}
	return sa
}

func (sa *SharedArrays[D, S]) DesLen() int { return sa.n }
func (sa *SharedArrays[D, S]) SrcLen() int { return sa.m }

func (sa *SharedArrays[D, S]) DesAtChecked(i int) (D, bool) {
	if i < 0 || i >= sa.n {
		return 0, false
	}
	return getLE[D](sa.buf, i), true
}

func (sa *SharedArrays[D, S]) SrcAtChecked(i int) (S, bool) {
	if i < 0 || i >= sa.m {
		return 0, false
	}
	return getLE[S](sa.buf, i), true
}

func (sa *SharedArrays[D, S]) DesAt(i int) D { return mustField[D](sa.DesAtChecked(i))(i, "des") }
func (sa *SharedArrays[D, S]) SrcAt(i int) S { return mustField[S](sa.SrcAtChecked(i))(i, "src") }

func (sa *SharedArrays[D, S]) SetDesAtChecked(i int, v D) bool {
	if i < 0 || i >= sa.n {
		return false
	}
	putLE(sa.buf, i, v)
	return true
}

func (sa *SharedArrays[D, S]) SetSrcAtChecked(i int, v S) bool {
	if i < 0 || i >= sa.m {
		return false
	}
	putLE(sa.buf, i, v)
	return true
}

func (sa *SharedArrays[D, S]) SetDesAt(i int, v D) { mustSet(sa.SetDesAtChecked(i, v), i, "des") }
func (sa *SharedArrays[D, S]) SetSrcAt(i int, v S) { mustSet(sa.SetSrcAtChecked(i, v), i, "src") }

func (sa *SharedArrays[D, S]) Des() []D {
	out := make([]D, sa.n)
	for i := range out {
		out[i] = getLE[D](sa.buf, i)
	}
	return out
}

func (sa *SharedArrays[D, S]) Src() []S {
	out := make([]S, sa.m)
	for i := range out {
		out[i] = getLE[S](sa.buf, i)
	}
	return out
}

// DesBigUInt returns the destination view as a BigUInt of DesLen limbs.
func (sa *SharedArrays[D, S]) DesBigUInt() BigUInt[D] {
	return FromBytesLE[D](sa.n, sa.buf)
}

// SetSrcBigUInt overwrites the source view with the low limbs of b,
// zero-filling any limbs b does not have.
func (sa *SharedArrays[D, S]) SetSrcBigUInt(b BigUInt[S]) {
	for i := 0; i < sa.m; i++ {
		v, _ := b.LimbChecked(i)
		putLE(sa.buf, i, v)
	}
}

func getLE[T Limb](buf []byte, i int) (v T) {
	lb := limbBytes[T]()
	for k := lb - 1; k >= 0; k-- {
		v = v<<8 | T(buf[i*lb+k])
	}
	return v
}

func putLE[T Limb](buf []byte, i int, v T) {
	lb := limbBytes[T]()
	for k := 0; k < lb; k++ {
		buf[i*lb+k] = byte(v >> (8 * uint(k)))
	}
}
