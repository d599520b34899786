package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128     I128
	zeroU128     U128
	minusOneI128 = I128{hi: maxUint64, lo: maxUint64}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	minBigI128, _ = new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	maxBigI128, _ = new(big.Int).SetString("170141183460469231731687303715884105727", 10)

	// wrapBigU128 is 1 << 128, used to simulate over/underflow:
	wrapBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)

	// This specifies the maximum error allowed between the float64 version of
	// a 128-bit int/uint and the result of the same operation performed by
	// big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)
