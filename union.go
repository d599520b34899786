package num

import (
	"fmt"
)

// Union holds a single fixed-width unsigned value and exposes it through
// narrower unsigned and signed sub-field views. Sub-field index 0 is always
// the least significant field, independent of the host byte order.
//
// Every view is computed from the one stored value by shifting and masking,
// so setting any sub-field leaves all other views consistent.
type Union[T Limb] struct {
	v T
}

type (
	ShortUnion = Union[uint16]
	IntUnion   = Union[uint32]
	LongUnion  = Union[uint64]
	SizeUnion  = Union[uint]
)

// UnionWith creates a Union holding v.
func UnionWith[T Limb](v T) Union[T] { return Union[T]{v: v} }

func NewShortUnion(v uint16) ShortUnion { return ShortUnion{v: v} }
func NewIntUnion(v uint32) IntUnion     { return IntUnion{v: v} }
func NewLongUnion(v uint64) LongUnion   { return LongUnion{v: v} }
func NewSizeUnion(v uint) SizeUnion     { return SizeUnion{v: v} }

// UnionWithSigned creates a Union from the two's complement bits of v,
// truncated to the width of T.
func UnionWithSigned[T Limb](v int64) Union[T] { return Union[T]{v: T(v)} }

func (u Union[T]) Get() T       { return u.v }
func (u *Union[T]) Set(v T)     { u.v = v }
func (u Union[T]) IsZero() bool { return u.v == 0 }

// Signed returns the value reinterpreted as two's complement, sign-extended
// to an int64.
func (u Union[T]) Signed() int64 {
	shift := 64 - LimbBits[T]()
	return int64(uint64(u.v)<<shift) >> shift
}

// SetSigned stores the low bits of v.
func (u *Union[T]) SetSigned(v int64) { u.v = T(v) }

// Len returns the width of the value in bytes.
func (u Union[T]) Len() int { return limbBytes[T]() }

func (u Union[T]) String() string { return fmt.Sprint(u.v) }

func (u Union[T]) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, fmt.FormatString(s, c), u.v)
}

func (u Union[T]) UbyteChecked(i int) (uint8, bool)   { return subField[T, uint8](u.v, i) }
func (u Union[T]) UshortChecked(i int) (uint16, bool) { return subField[T, uint16](u.v, i) }
func (u Union[T]) UintChecked(i int) (uint32, bool)   { return subField[T, uint32](u.v, i) }
func (u Union[T]) UlongChecked(i int) (uint64, bool)  { return subField[T, uint64](u.v, i) }

func (u Union[T]) SbyteChecked(i int) (int8, bool) {
	v, ok := u.UbyteChecked(i)
	return int8(v), ok
}

func (u Union[T]) SshortChecked(i int) (int16, bool) {
	v, ok := u.UshortChecked(i)
	return int16(v), ok
}

func (u Union[T]) SintChecked(i int) (int32, bool) {
	v, ok := u.UintChecked(i)
	return int32(v), ok
}

func (u Union[T]) SlongChecked(i int) (int64, bool) {
	v, ok := u.UlongChecked(i)
	return int64(v), ok
}

// Ubyte returns byte i. It panics if i is out of range; see UbyteChecked.
func (u Union[T]) Ubyte(i int) uint8   { return mustField[uint8](u.UbyteChecked(i))(i, "ubyte") }
func (u Union[T]) Ushort(i int) uint16 { return mustField[uint16](u.UshortChecked(i))(i, "ushort") }
func (u Union[T]) Uint(i int) uint32   { return mustField[uint32](u.UintChecked(i))(i, "uint") }
func (u Union[T]) Ulong(i int) uint64  { return mustField[uint64](u.UlongChecked(i))(i, "ulong") }
func (u Union[T]) Sbyte(i int) int8    { return mustField[int8](u.SbyteChecked(i))(i, "sbyte") }
func (u Union[T]) Sshort(i int) int16  { return mustField[int16](u.SshortChecked(i))(i, "sshort") }
func (u Union[T]) Sint(i int) int32    { return mustField[int32](u.SintChecked(i))(i, "sint") }
func (u Union[T]) Slong(i int) int64   { return mustField[int64](u.SlongChecked(i))(i, "slong") }

func (u *Union[T]) SetUbyteChecked(i int, v uint8) bool   { return setSubField(&u.v, i, v) }
func (u *Union[T]) SetUshortChecked(i int, v uint16) bool { return setSubField(&u.v, i, v) }
func (u *Union[T]) SetUintChecked(i int, v uint32) bool   { return setSubField(&u.v, i, v) }
func (u *Union[T]) SetUlongChecked(i int, v uint64) bool  { return setSubField(&u.v, i, v) }
func (u *Union[T]) SetSbyteChecked(i int, v int8) bool    { return setSubField(&u.v, i, uint8(v)) }
func (u *Union[T]) SetSshortChecked(i int, v int16) bool  { return setSubField(&u.v, i, uint16(v)) }
func (u *Union[T]) SetSintChecked(i int, v int32) bool    { return setSubField(&u.v, i, uint32(v)) }
func (u *Union[T]) SetSlongChecked(i int, v int64) bool   { return setSubField(&u.v, i, uint64(v)) }

// SetUbyte sets byte i. It panics if i is out of range; see SetUbyteChecked.
func (u *Union[T]) SetUbyte(i int, v uint8)   { mustSet(u.SetUbyteChecked(i, v), i, "ubyte") }
func (u *Union[T]) SetUshort(i int, v uint16) { mustSet(u.SetUshortChecked(i, v), i, "ushort") }
func (u *Union[T]) SetUint(i int, v uint32)   { mustSet(u.SetUintChecked(i, v), i, "uint") }
func (u *Union[T]) SetUlong(i int, v uint64)  { mustSet(u.SetUlongChecked(i, v), i, "ulong") }
func (u *Union[T]) SetSbyte(i int, v int8)    { mustSet(u.SetSbyteChecked(i, v), i, "sbyte") }
func (u *Union[T]) SetSshort(i int, v int16)  { mustSet(u.SetSshortChecked(i, v), i, "sshort") }
func (u *Union[T]) SetSint(i int, v int32)    { mustSet(u.SetSintChecked(i, v), i, "sint") }
func (u *Union[T]) SetSlong(i int, v int64)   { mustSet(u.SetSlongChecked(i, v), i, "slong") }

func (u Union[T]) CarryingAdd(o Union[T], carry bool) (Union[T], bool) {
	v, c := CarryingAdd(u.v, o.v, carry)
	return Union[T]{v}, c
}

func (u Union[T]) BorrowingSub(o Union[T], borrow bool) (Union[T], bool) {
	v, b := BorrowingSub(u.v, o.v, borrow)
	return Union[T]{v}, b
}

func (u Union[T]) CarryingMul(o, carry Union[T]) (lo, hi Union[T]) {
	l, h := CarryingMul(u.v, o.v, carry.v)
	return Union[T]{l}, Union[T]{h}
}

func (u Union[T]) WideningMul(o Union[T]) (lo, hi Union[T]) {
	l, h := WideningMul(u.v, o.v)
	return Union[T]{l}, Union[T]{h}
}

func (u Union[T]) WrappingAdd(o Union[T]) Union[T] { return Union[T]{WrappingAdd(u.v, o.v)} }
func (u Union[T]) WrappingSub(o Union[T]) Union[T] { return Union[T]{WrappingSub(u.v, o.v)} }
func (u Union[T]) WrappingMul(o Union[T]) Union[T] { return Union[T]{WrappingMul(u.v, o.v)} }
func (u Union[T]) WrappingNeg() Union[T]           { return Union[T]{WrappingNeg(u.v)} }
func (u Union[T]) WrappingPow(exp uint) Union[T]   { return Union[T]{WrappingPow(u.v, exp)} }

func (u Union[T]) OverflowingAdd(o Union[T]) (Union[T], bool) {
	v, of := OverflowingAdd(u.v, o.v)
	return Union[T]{v}, of
}

func (u Union[T]) OverflowingSub(o Union[T]) (Union[T], bool) {
	v, of := OverflowingSub(u.v, o.v)
	return Union[T]{v}, of
}

func (u Union[T]) OverflowingMul(o Union[T]) (Union[T], bool) {
	v, of := OverflowingMul(u.v, o.v)
	return Union[T]{v}, of
}

func (u Union[T]) OverflowingPow(exp uint) (Union[T], bool) {
	v, of := OverflowingPow(u.v, exp)
	return Union[T]{v}, of
}

func (u Union[T]) CheckedAdd(o Union[T]) (Union[T], bool) { return wrapChecked[T](CheckedAdd(u.v, o.v)) }
func (u Union[T]) CheckedSub(o Union[T]) (Union[T], bool) { return wrapChecked[T](CheckedSub(u.v, o.v)) }
func (u Union[T]) CheckedMul(o Union[T]) (Union[T], bool) { return wrapChecked[T](CheckedMul(u.v, o.v)) }
func (u Union[T]) CheckedDiv(o Union[T]) (Union[T], bool) { return wrapChecked[T](CheckedDiv(u.v, o.v)) }
func (u Union[T]) CheckedRem(o Union[T]) (Union[T], bool) { return wrapChecked[T](CheckedRem(u.v, o.v)) }
func (u Union[T]) CheckedPow(exp uint) (Union[T], bool)   { return wrapChecked[T](CheckedPow(u.v, exp)) }

func (u Union[T]) SaturatingAdd(o Union[T]) Union[T] { return Union[T]{SaturatingAdd(u.v, o.v)} }
func (u Union[T]) SaturatingSub(o Union[T]) Union[T] { return Union[T]{SaturatingSub(u.v, o.v)} }
func (u Union[T]) SaturatingMul(o Union[T]) Union[T] { return Union[T]{SaturatingMul(u.v, o.v)} }
func (u Union[T]) SaturatingPow(exp uint) Union[T]   { return Union[T]{SaturatingPow(u.v, exp)} }

func (u Union[T]) UncheckedAdd(o Union[T]) Union[T] { return Union[T]{UncheckedAdd(u.v, o.v)} }
func (u Union[T]) UncheckedSub(o Union[T]) Union[T] { return Union[T]{UncheckedSub(u.v, o.v)} }
func (u Union[T]) UncheckedMul(o Union[T]) Union[T] { return Union[T]{UncheckedMul(u.v, o.v)} }
func (u Union[T]) UncheckedDiv(o Union[T]) Union[T] { return Union[T]{UncheckedDiv(u.v, o.v)} }
func (u Union[T]) UncheckedRem(o Union[T]) Union[T] { return Union[T]{UncheckedRem(u.v, o.v)} }
func (u Union[T]) UncheckedPow(exp uint) Union[T]   { return Union[T]{UncheckedPow(u.v, exp)} }

func (u Union[T]) Isqrt() Union[T] { return Union[T]{Isqrt(u.v)} }
func (u Union[T]) Ilog2() uint     { return Ilog2(u.v) }
func (u Union[T]) Ilog10() uint    { return Ilog10(u.v) }

func wrapChecked[T Limb](v T, ok bool) (Union[T], bool) { return Union[T]{v}, ok }

// subField extracts field i of width F from v.
func subField[T, F Limb](v T, i int) (F, bool) {
	fw, tw := LimbBits[F](), LimbBits[T]()
	if fw > tw || i < 0 || uint(i) >= tw/fw {
		return 0, false
	}
	return F(v >> (uint(i) * fw)), true
}

// setSubField replaces field i of width F in *v.
func setSubField[T, F Limb](v *T, i int, f F) bool {
	fw, tw := LimbBits[F](), LimbBits[T]()
	if fw > tw || i < 0 || uint(i) >= tw/fw {
		return false
	}
	shift := uint(i) * fw
	mask := T(limbMax[F]()) << shift
	*v = (*v &^ mask) | (T(f) << shift)
	return true
}

func mustField[F any](v F, ok bool) func(i int, view string) F {
	return func(i int, view string) F {
		if !ok {
			panic(fmt.Errorf("num: %s index %d out of range", view, i))
		}
		return v
	}
}

func mustSet(ok bool, i int, view string) {
	if !ok {
		panic(fmt.Errorf("num: %s index %d out of range", view, i))
	}
}
