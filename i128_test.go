package num

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

const minInt64 = -1 << 63

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func TestI128Abs(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
	}{
		{i64(0), i64(0)},
		{i64(1), i64(1)},
		{I128FromU64(maxUint64), I128FromU64(maxUint64)},
		{i64(-1), i64(1)},
		{I128FromRaw(maxUint64, 0), I128FromRaw(1, 0)},

		{MinI128, MinI128}, // Overflow
	} {
		t.Run(fmt.Sprintf("%d/|%s|=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Abs())
		})
	}
}

func TestI128AddSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, sum, diff I128
	}{
		{i64(-2), i64(-1), i64(-3), i64(-1)},
		{i64(-2), i64(1), i64(-1), i64(-3)},
		{i64(1), i64(2), i64(3), i64(-1)},
		{i64(-1), i64(-2), i64(-3), i64(1)},

		// Hi/lo carry:
		{I128FromU64(maxUint64), i64(1), I128FromRaw(1, 0), I128FromU64(maxUint64 - 1)},
		{I128FromRaw(1, 0), i64(-1), I128FromU64(maxUint64), I128FromRaw(1, 1)},

		// Overflow wraps:
		{MaxI128, i64(1), MinI128, MaxI128.Dec()},
		{MinI128, i64(1), MinI128.Inc(), MaxI128},
		{MaxI128, i64(-1), MaxI128.Dec(), MinI128},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.sum, tc.a.Add(tc.b))
			tt.MustEqual(tc.diff, tc.a.Sub(tc.b))
		})
	}
}

func TestI128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a I128
		b *big.Int
	}{
		{I128FromRaw(0, 2), bigI64(2)},
		{I128FromRaw(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE), bigI64(-2)},
		{I128FromRaw(0x1, 0x0), bigs("18446744073709551616")},
		{I128FromRaw(0x1, 0xFFFFFFFFFFFFFFFF), bigs("36893488147419103231")}, // (1<<65) - 1
		{MaxI128, bigs("170141183460469231731687303715884105727")},
		{minusOneI128, bigs("-1")},
		{MinI128, bigs("-170141183460469231731687303715884105728")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestI128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   I128
		acc bool
	}{
		{bigI64(2), i64(2), true},
		{bigI64(-2), i64(-2), true},
		{bigs("18446744073709551616"), I128FromRaw(1, 0), true},
		{bigs("-18446744073709551616"), I128FromRaw(maxUint64, 0), true},
		{bigs("170141183460469231731687303715884105727"), MaxI128, true},
		{bigs("-170141183460469231731687303715884105728"), MinI128, true},
		{bigs("170141183460469231731687303715884105728"), MaxI128, false},
		{bigs("-170141183460469231731687303715884105729"), MinI128, false},
		{bigs("0x 1 0000000000000000 0000000000000000"), MaxI128, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := I128FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestI128FromSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(I128From8(-128), i128s("-128"))
	tt.MustEqual(I128From16(-32768), i128s("-32768"))
	tt.MustEqual(I128From32(-2147483648), i128s("-2147483648"))
	tt.MustEqual(I128FromInt(-1), minusOneI128)
	tt.MustEqual(I128FromU64(maxUint64), i128s("18446744073709551615"))
}

func TestI128AsInt64(t *testing.T) {
	for idx, tc := range []struct {
		a    I128
		out  int64
		fits bool
	}{
		{i64(-1), -1, true},
		{i64(minInt64), minInt64, true},
		{i64(maxInt64), maxInt64, true},
		{i128s("9223372036854775808"), minInt64, false},  // (maxInt64 + 1) overflows to min
		{i128s("-9223372036854775809"), maxInt64, false}, // (minInt64 - 1) underflows to max
		{MaxI128, -1, false},
	} {
		t.Run(fmt.Sprintf("%d/int64(%s)=%d", idx, tc.a, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsInt64())
			tt.MustEqual(tc.fits, tc.a.IsInt64())
		})
	}
}

func TestI128Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b   I128
		result int
	}{
		{i64(0), i64(0), 0},
		{i64(1), i64(0), 1},
		{i64(10), i64(9), 1},
		{i64(-1), i64(1), -1},
		{i64(1), i64(-1), 1},
		{i64(-2), i64(-1), -1},
		{MinI128, MaxI128, -1},
		{MaxI128, MinI128, 1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.result == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.result > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.result >= 0, tc.a.GreaterOrEqualTo(tc.b))
			tt.MustEqual(tc.result < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.result <= 0, tc.a.LessOrEqualTo(tc.b))
		})
	}
}

func TestI128IncDec(t *testing.T) {
	for idx, tc := range []struct {
		a, inc, dec I128
	}{
		{i64(0), i64(1), i64(-1)},
		{i64(-1), i64(0), i64(-2)},
		{I128FromU64(maxUint64), I128FromRaw(1, 0), I128FromU64(maxUint64 - 1)},
		{MaxI128, MinI128, I128FromRaw(0x7FFFFFFFFFFFFFFF, maxUint64-1)},
		{MinI128, I128FromRaw(signBit, 1), MaxI128},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.inc, tc.a.Inc())
			tt.MustEqual(tc.dec, tc.a.Dec())
		})
	}
}

func TestI128Mul(t *testing.T) {
	for _, tc := range []struct {
		a, b, out I128
	}{
		{i64(1), i64(0), i64(0)},
		{i64(-2), i64(2), i64(-4)},
		{i64(-2), i64(-2), i64(4)},
		{i64(10), i64(9), i64(90)},
		{i64(maxInt64), i64(maxInt64), i128s("85070591730234615847396907784232501249")},
		{i64(minInt64), i64(minInt64), i128s("85070591730234615865843651857942052864")},
		{i64(minInt64), i64(maxInt64), i128s("-85070591730234615856620279821087277056")},
		{MaxI128, i64(2), i128s("-2")}, // Overflow. "math.MaxInt64 * 2" produces the same result, "-2".
		{MaxI128, MaxI128, i128s("1")}, // Overflow
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.Mul(tc.b)
			tt.MustAssert(tc.out.Equal(v), "%s * %s != %s, found %s", tc.a, tc.b, tc.out, v)
		})
	}
}

func TestI128Neg(t *testing.T) {
	for idx, tc := range []struct {
		a, b     I128
		overflow bool
	}{
		{i64(0), i64(0), false},
		{i64(-2), i64(2), false},
		{i64(2), i64(-2), false},

		// hi/lo carry:
		{I128FromU64(maxUint64), I128FromRaw(maxUint64, 1), false},
		{I128FromRaw(maxUint64, 1), I128FromU64(maxUint64), false},
		{i128s("-18446744073709551617"), i128s("18446744073709551617"), false},

		// Negating MaxI128 should yield MinI128 + 1:
		{MaxI128, I128FromRaw(signBit, 1), false},

		// Negating MinI128 should yield MinI128:
		{MinI128, MinI128, true},
	} {
		t.Run(fmt.Sprintf("%d/-%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Neg())
			tt.MustEqual(tc.b, tc.a.WrappingNeg())

			v, overflow := tc.a.OverflowingNeg()
			tt.MustEqual(tc.b, v)
			tt.MustEqual(tc.overflow, overflow)

			_, ok := tc.a.CheckedNeg()
			tt.MustEqual(!tc.overflow, ok)
		})
	}
}

func TestI128QuoRem(t *testing.T) {
	for _, tc := range []struct {
		i, by, q, r I128
	}{
		{i: i64(1), by: i64(2), q: i64(0), r: i64(1)},
		{i: i64(10), by: i64(3), q: i64(3), r: i64(1)},
		{i: i64(10), by: i64(-3), q: i64(-3), r: i64(1)},
		{i: i64(-10), by: i64(3), q: i64(-3), r: i64(-1)},
		{i: i64(-10), by: i64(-3), q: i64(3), r: i64(-1)},
		{i: i64(10), by: i64(10), q: i64(1), r: i64(0)},
		{i: i128s("0x10000000000000000"), by: i128s("0x10000000000000000"), q: i64(1), r: i64(0)},
		{i: i128s("-0x12345678901234567"), by: i128s("0x12345678901234567"), q: i64(-1), r: i64(0)},
		{i: MinI128, by: i64(2), q: I128FromRaw(0xC000000000000000, 0), r: i64(0)},
		{i: MinI128, by: MaxI128, q: i64(-1), r: i64(-1)},
	} {
		t.Run(fmt.Sprintf("%s÷%s=%s,%s", tc.i, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.i.QuoRem(tc.by)
			tt.MustEqual(tc.q, q)
			tt.MustEqual(tc.r, r)
			tt.MustEqual(q, tc.i.Quo(tc.by))
			tt.MustEqual(r, tc.i.Rem(tc.by))

			qBig, rBig := new(big.Int).QuoRem(tc.i.AsBigInt(), tc.by.AsBigInt(), new(big.Int))
			tt.MustEqual(tc.q.String(), qBig.String())
			tt.MustEqual(tc.r.String(), rBig.String())
		})
	}
}

func TestI128Policies(t *testing.T) {
	for idx, tc := range []struct {
		op         string
		a, b       I128
		wrapped    I128
		overflow   bool
		saturating I128
	}{
		{"add", MaxI128, i64(1), MinI128, true, MaxI128},
		{"add", MinI128, i64(-1), MaxI128, true, MinI128},
		{"add", i64(-5), i64(3), i64(-2), false, i64(-2)},
		{"sub", MinI128, i64(1), MaxI128, true, MinI128},
		{"sub", MaxI128, i64(-1), MinI128, true, MaxI128},
		{"sub", i64(0), MaxI128, MinI128.Inc(), false, MinI128.Inc()},
		{"mul", MaxI128, i64(2), i64(-2), true, MaxI128},
		{"mul", MaxI128, i64(-2), i64(2), true, MinI128},
		{"mul", MinI128, i64(-1), MinI128, true, MaxI128},
		{"mul", MinI128, i64(1), MinI128, false, MinI128},
		{"mul", i64(minInt64), i64(minInt64), i128s("85070591730234615865843651857942052864"), false, i128s("85070591730234615865843651857942052864")},
		{"mul", I128FromRaw(1, 0), I128FromRaw(1, 0), i64(0), true, MaxI128},
	} {
		t.Run(fmt.Sprintf("%d/%s(%s,%s)", idx, tc.op, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)

			var (
				wrapped, over, sat I128
				overflow, ok       bool
			)
			switch tc.op {
			case "add":
				wrapped = tc.a.WrappingAdd(tc.b)
				over, overflow = tc.a.OverflowingAdd(tc.b)
				sat = tc.a.SaturatingAdd(tc.b)
				_, ok = tc.a.CheckedAdd(tc.b)
			case "sub":
				wrapped = tc.a.WrappingSub(tc.b)
				over, overflow = tc.a.OverflowingSub(tc.b)
				sat = tc.a.SaturatingSub(tc.b)
				_, ok = tc.a.CheckedSub(tc.b)
			case "mul":
				wrapped = tc.a.WrappingMul(tc.b)
				over, overflow = tc.a.OverflowingMul(tc.b)
				sat = tc.a.SaturatingMul(tc.b)
				_, ok = tc.a.CheckedMul(tc.b)
			}

			tt.MustEqual(tc.wrapped, wrapped)
			tt.MustEqual(tc.wrapped, over)
			tt.MustEqual(tc.overflow, overflow)
			tt.MustEqual(tc.saturating, sat)
			tt.MustEqual(!tc.overflow, ok)
		})
	}
}

func TestI128Sign(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(0).Sign())
	tt.MustEqual(1, MaxI128.Sign())
	tt.MustEqual(-1, MinI128.Sign())
	tt.MustAssert(MinI128.IsNeg())
	tt.MustAssert(!MinI128.IsU128())
	tt.MustAssert(MaxI128.IsU128())
	tt.MustEqual(U128FromRaw(signBit, 0), MinI128.AsU128())
}

func TestI128FromStringErrors(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		err error
	}{
		{"", ErrEmpty},
		{"-", ErrEmpty},
		{"1.5", ErrSyntax},
		{"170141183460469231731687303715884105728", ErrRange},
		{"-170141183460469231731687303715884105729", ErrRange},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := I128FromString(tc.in)
			tt.MustAssert(errors.Is(err, tc.err), "unexpected error %v", err)

			var perr *ParseError
			tt.MustAssert(errors.As(err, &perr))
			tt.MustEqual("i128", perr.Type)
			tt.MustEqual(tc.in, perr.Input)
		})
	}

	tt := assert.WrapTB(t)
	v, err := I128FromString("-170141183460469231731687303715884105728")
	tt.MustOK(err)
	tt.MustEqual(MinI128, v)
}

func TestI128Format(t *testing.T) {
	for idx, tc := range []struct {
		v   I128
		fmt string
		out string
	}{
		{i64(-1), "%d", "-1"},
		{i64(-255), "%x", "-ff"},
		{i64(255), "%#x", "0xff"},
		{MinI128, "%v", "-170141183460469231731687303715884105728"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.fmt), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.fmt, tc.v))
		})
	}
}

func TestI128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		v := RandU128(globalRNG).AsI128()

		bts, err := json.Marshal(v)
		tt.MustOK(err)

		var result I128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustEqual(v, result)
	}
}

func BenchmarkI128FromBigInt(b *testing.B) {
	for _, bi := range []*big.Int{
		bigs("0"),
		bigs("0xfedcba98"),
		bigs("0xfedcba9876543210"),
		bigs("0xfedcba9876543210fedcba98"),
		bigs("-0xfedcba9876543210fedcba9876543210"),
	} {
		b.Run(fmt.Sprintf("%x", bi), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchI128Result, _ = I128FromBigInt(bi)
			}
		})
	}
}

func BenchmarkI128LessThan(b *testing.B) {
	for _, iv := range []struct {
		a, b I128
	}{
		{i64(1), i64(1)},
		{i64(-1), i64(-1)},
		{MinI128, MaxI128},
	} {
		b.Run(fmt.Sprintf("%s<%s", iv.a, iv.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = iv.a.LessThan(iv.b)
			}
		})
	}
}

func BenchmarkI128Sub(b *testing.B) {
	sub := i64(1)
	for _, iv := range []I128{i64(1), MinI128, MaxI128} {
		b.Run(fmt.Sprintf("%s", iv), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchI128Result = iv.Sub(sub)
			}
		})
	}
}
