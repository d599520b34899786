package num

type RandSource interface {
	Uint64() uint64
}

// RandBigUInt fills an n-limb BigUInt with bits drawn from source.
func RandBigUInt[T Limb](n int, source RandSource) BigUInt[T] {
	out := Zero[T](n)
	var word uint64
	var avail uint
	w := LimbBits[T]()
	for i := 0; i < n; i++ {
		if avail < w {
			word, avail = source.Uint64(), 64
		}
		out.limbs[i] = T(word)
		word >>= w
		avail -= w
	}
	return out
}

// Difference subtracts the smaller of a and b from the larger.
func Difference[T Limb](a, b BigUInt[T]) BigUInt[T] {
	if a.Cmp(b) >= 0 {
		return a.WrappingSub(b)
	}
	return b.WrappingSub(a)
}

func Larger[T Limb](a, b BigUInt[T]) BigUInt[T] {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func Smaller[T Limb](a, b BigUInt[T]) BigUInt[T] {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerU128(a, b U128) U128 {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func SmallerU128(a, b U128) U128 {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// DifferenceI128 subtracts the smaller of a and b from the larger. The
// result wraps if the true difference exceeds MaxI128.
func DifferenceI128(a, b I128) I128 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerI128(a, b I128) I128 {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func SmallerI128(a, b I128) I128 {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
