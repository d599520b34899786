package num

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Limb is the set of native unsigned integer types that can be used as the
// storage cell of a BigUInt. It is constraints.Unsigned without uintptr;
// uint is pointer-sized.
type Limb interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// LimbBits returns the width of T in bits.
func LimbBits[T Limb]() uint { return bitWidth[T]() }

func bitWidth[T constraints.Unsigned]() uint {
	var z T
	return uint(bits.Len64(uint64(^z)))
}

func limbBytes[T Limb]() int { return int(LimbBits[T]() / 8) }

func limbMax[T constraints.Unsigned]() T {
	var z T
	return ^z
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
