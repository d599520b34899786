/*
Package num provides fixed-width multi-limb unsigned integers (BigUInt),
uint128 (U128) and int128 (I128) types, and scalar "union" wrappers that
expose narrower sub-field views of a single value.

All types are value types; all operations return new values. A BigUInt
never allocates: its limbs live in a fixed-capacity array of MaxLimbs
cells, of which the first Len are in use, least significant first.

Simple example:

	a := num.FromUint64[uint64](4, math.MaxUint64)
	b := a.WrappingMul(a)
	fmt.Println(b)
	// Output: 340282366920938463426481119284349108225

	z := num.Zero[uint64](4)
	fmt.Println(z.WrappingSub(num.One[uint64](4)).IsMax())
	// Output: true

Every arithmetic operation that can overflow comes in five forms, all
computed from one raw (value, overflow) result:

	WrappingX     value, truncated modulo 2^BitSize
	OverflowingX  (value, overflowed)
	CheckedX      (value, ok); ok is false on overflow
	SaturatingX   value clamped to Zero or Max
	UncheckedX    value; panics on overflow

Division by zero panics for Quo, Rem and the wrapping and unchecked
division forms, and reports false from CheckedDiv and CheckedRem.

The per-limb primitives CarryingAdd, BorrowingSub, CarryingMul and
WideningMul are available as generic functions over any Limb type, and as
methods on U128, BigUInt and the union types.

BigUInt, U128 and I128 support the following formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
