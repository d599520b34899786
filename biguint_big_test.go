package num

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shabbyrobe/golib/assert"
)

func TestFromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out BigUInt[uint64]
		acc bool
	}{
		{"0", bu64(0, 0), true},
		{"18446744073709551616", bu64(0, 1), true},
		{"340282366920938463463374607431768211455", bu64(maxUint64, maxUint64), true},
		{"340282366920938463463374607431768211456", bu64(maxUint64, maxUint64), false},
		{"-1", bu64(0, 0), false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := FromBigInt[uint64](2, bigs(tc.in))
			tt.MustEqual(tc.out, v)
			tt.MustEqual(tc.acc, acc)
		})
	}
}

func TestBigIntRoundtrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 1000; i++ {
		v := RandBigUInt[uint8](13, globalRNG)
		back, acc := FromBigInt[uint8](13, v.AsBigInt())
		tt.MustAssert(acc)
		tt.MustEqual(v, back)

		var into big.Int
		v.IntoBigInt(&into)
		tt.MustEqual(v.String(), into.String())
	}
}

func TestBigUIntFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f       float64
		out     string
		inRange bool
	}{
		{0, "0", true},
		{0.9, "0", true},
		{1.5, "1", true},
		{-1, "0", false},
		{math.NaN(), "0", false},
		{math.Inf(1), "340282366920938463463374607431768211455", false},
		{18446744073709551616, "18446744073709551616", true},
		{1e30, "1000000000000000019884624838656", true},
		{3.402823669209385e38, "340282366920938463463374607431768211455", false}, // 2^128
		{3.4028236692093844e38, "340282366920938425684442744474606501888", true},
	} {
		t.Run(fmt.Sprintf("%d/%g", idx, tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, inRange := FromFloat64[uint64](2, tc.f)
			tt.MustEqual(tc.out, v.String())
			tt.MustEqual(tc.inRange, inRange)
		})
	}
}

func TestBigUIntAsFloat64(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(float64(0), Zero[uint32](5).AsFloat64())
	tt.MustEqual(float64(1<<40), FromUint64[uint32](5, 1<<40).AsFloat64())
	tt.MustEqual(math.Ldexp(1, 159), One[uint32](5).Lsh(159).AsFloat64())

	for i := 0; i < 1000; i++ {
		v := RandBigUInt[uint32](5, globalRNG)
		if v.IsZero() {
			continue
		}
		exp, _ := v.AsBigFloat().Float64()
		act := v.AsFloat64()
		tt.MustAssert(math.Abs(exp-act)/exp <= 2.220446049250313e-16, "%s: %g != %g", v, act, exp)
	}
}

func TestBigUIntAsFloat64Ties(t *testing.T) {
	tt := assert.WrapTB(t)

	// Top 64 bits sit exactly halfway between two float64s.
	half := uint64(1<<63 | 1<<10)
	tt.MustEqual(math.Ldexp(1, 127), bu64(0, half).AsFloat64())

	// A set bit below the top 64 makes it more than halfway.
	above := bu64(1, half)
	exp, _ := above.AsBigFloat().Float64()
	tt.MustEqual(math.Ldexp(1<<52+1, 75), above.AsFloat64())
	tt.MustEqual(exp, above.AsFloat64())

	tt.MustEqual(math.Ldexp(1<<52+1, 75), FromArray[uint8](1, 0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0x80).AsFloat64())
}

func TestUint256Interop(t *testing.T) {
	tt := assert.WrapTB(t)

	v := bu64(1, 2, 3, 4)
	u, fits := v.ToUint256()
	tt.MustAssert(fits)
	tt.MustEqual(v.String(), u.Dec())
	tt.MustEqual(v, FromUint256[uint64](4, u))

	w := FromArray[uint64](1, 2, 3, 4, 5)
	u, fits = w.ToUint256()
	tt.MustAssert(!fits)
	tt.MustEqual(v.String(), u.Dec())

	tt.MustEqual(FromArray[uint32](1, 0), FromUint256[uint32](2, uint256.NewInt(1)))
}

// TestUint256Oracle checks 256-bit BigUInts with both 64-bit and 16-bit limbs
// against holiman/uint256, which has the same wrapping semantics.
func TestUint256Oracle(t *testing.T) {
	iters := fuzzIterations / 10
	if iters < 100 {
		iters = 100
	}

	for i := 0; i < iters; i++ {
		a64, b64 := randomBigUInt[uint64](4, globalRNG), randomBigUInt[uint64](4, globalRNG)
		a16, b16 := ConvertLimbs[uint16](16, a64), ConvertLimbs[uint16](16, b64)
		ua, _ := a64.ToUint256()
		ub, _ := b64.ToUint256()

		check := func(op string, exp *uint256.Int, act64 BigUInt[uint64], act16 BigUInt[uint16]) {
			t.Helper()
			tt := assert.WrapTB(t)
			tt.MustEqual(exp.Dec(), act64.String(), "%s(%s, %s) u64", op, a64, b64)
			tt.MustEqual(exp.Dec(), act16.String(), "%s(%s, %s) u16", op, a64, b64)
		}

		var z uint256.Int
		check("add", z.Add(ua, ub), a64.WrappingAdd(b64), a16.WrappingAdd(b16))
		check("sub", z.Sub(ua, ub), a64.WrappingSub(b64), a16.WrappingSub(b16))
		check("mul", z.Mul(ua, ub), a64.WrappingMul(b64), a16.WrappingMul(b16))
		check("and", z.And(ua, ub), a64.And(b64), a16.And(b16))
		check("or", z.Or(ua, ub), a64.Or(b64), a16.Or(b16))
		check("xor", z.Xor(ua, ub), a64.Xor(b64), a16.Xor(b16))
		check("not", z.Not(ua), a64.Not(), a16.Not())
		check("neg", z.Neg(ua), a64.WrappingNeg(), a16.WrappingNeg())

		sh := uint(globalRNG.Intn(300))
		check("lsh", z.Lsh(ua, sh), a64.Lsh(sh), a16.Lsh(sh))
		check("rsh", z.Rsh(ua, sh), a64.Rsh(sh), a16.Rsh(sh))

		if !b64.IsZero() {
			check("div", z.Div(ua, ub), a64.Quo(b64), a16.Quo(b16))
			check("mod", z.Mod(ua, ub), a64.Rem(b64), a16.Rem(b16))
		}

		_, ovAdd := new(uint256.Int).AddOverflow(ua, ub)
		_, ovAdd64 := a64.OverflowingAdd(b64)
		_, ovAdd16 := a16.OverflowingAdd(b16)
		tt := assert.WrapTB(t)
		tt.MustEqual(ovAdd, ovAdd64)
		tt.MustEqual(ovAdd, ovAdd16)

		_, ovMul := new(uint256.Int).MulOverflow(ua, ub)
		_, ovMul64 := a64.OverflowingMul(b64)
		tt.MustEqual(ovMul, ovMul64)

		_, ovSub := new(uint256.Int).SubOverflow(ua, ub)
		_, ovSub16 := a16.OverflowingSub(b16)
		tt.MustEqual(ovSub, ovSub16)

		tt.MustEqual(a64.Cmp(b64), ua.Cmp(ub))
		tt.MustEqual(int(a64.BitLen()), ua.BitLen())
	}
}

// randomBigUInt returns a value with a random bit length, so small and
// large operands are equally likely.
func randomBigUInt[T Limb](n int, rng RandSource) BigUInt[T] {
	v := RandBigUInt[T](n, rng)
	size := v.BitSize()
	bits := uint(rng.Uint64() % uint64(size+1))
	if bits == size {
		return v
	}
	return v.And(One[T](n).Lsh(bits).Dec())
}
