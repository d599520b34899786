package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-num/v2"
)

// limbcalc multiplies two uint64 values three ways and checks they agree:
// by hand, composing 32-bit CarryingMul results into a 128-bit product;
// through a 4-limb BigUInt[uint32]; and through U128.

const usage = `Limb composition calculator

Usage: <a> <b> [-v]`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	a, err := strconv.ParseUint(os.Args[1], 0, 64)
	if err != nil {
		return err
	}
	b, err := strconv.ParseUint(os.Args[2], 0, 64)
	if err != nil {
		return err
	}
	verbose := len(os.Args) > 3 && os.Args[3] == "-v"

	byHand := mulByHand(a, b)
	if verbose {
		spew.Dump(byHand)
	}

	big := num.FromUint64[uint32](4, a).WrappingMul(num.FromUint64[uint32](4, b))
	if verbose {
		spew.Dump(big.Limbs())
	}

	lo, hi := num.CarryingMul(a, b, 0)
	u := num.U128FromRaw(hi, lo)

	composed := num.FromArray(byHand[:]...)
	if !composed.Equal(big) {
		return fmt.Errorf("by-hand product %s does not match BigUInt product %s", composed, big)
	}
	if !big.U128().Equal(u) {
		return fmt.Errorf("BigUInt product %s does not match U128 product %s", big, u)
	}

	fmt.Printf("%d * %d == %s\n", a, b, u)
	loU, hiU := halves(byHand)
	if loU.Get() != lo || hiU.Get() != hi {
		return fmt.Errorf("by-hand halves %d:%d do not match %d:%d", loU.Get(), hiU.Get(), lo, hi)
	}

	fmt.Printf("low:%d high:%d\n", lo, hi)
	fmt.Printf("limbs: %#x\n", byHand)
	return nil
}

// mulByHand computes a*b as four 32-bit limbs, least significant first,
// folding each partial product into the running result with CarryingMul
// followed by an overflowing add of the existing limb.
func mulByHand(a, b uint64) (out [4]uint32) {
	x, y := num.NewLongUnion(a), num.NewLongUnion(b)

	for i := 0; i < 2; i++ {
		var carry uint32
		for j := 0; j < 2; j++ {
			lo, hi := num.CarryingMul(x.Uint(j), y.Uint(i), carry)
			sum, c := num.NewIntUnion(out[i+j]).OverflowingAdd(num.NewIntUnion(lo))
			out[i+j] = sum.Get()
			if c {
				hi++
			}
			carry = hi
		}
		out[i+2] = carry
	}
	return out
}

// halves reassembles the four 32-bit limbs into the low and high 64 bits.
func halves(limbs [4]uint32) (lo, hi num.LongUnion) {
	for i := 0; i < 2; i++ {
		lo.SetUint(i, limbs[i])
		hi.SetUint(i, limbs[i+2])
	}
	return lo, hi
}
