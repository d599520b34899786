package num

import (
	"fmt"
)

// LongerUnion is the 128-bit Union, built on U128. Its signed view is an
// I128.
type LongerUnion struct {
	v U128
}

func NewLongerUnion(v U128) LongerUnion { return LongerUnion{v: v} }

func NewLongerUnionSigned(v I128) LongerUnion { return LongerUnion{v: v.AsU128()} }

func (u LongerUnion) Get() U128         { return u.v }
func (u *LongerUnion) Set(v U128)       { u.v = v }
func (u LongerUnion) Signed() I128      { return u.v.AsI128() }
func (u *LongerUnion) SetSigned(v I128) { u.v = v.AsU128() }
func (u LongerUnion) IsZero() bool      { return u.v.IsZero() }
func (u LongerUnion) Len() int          { return 16 }

func (u LongerUnion) String() string             { return u.v.String() }
func (u LongerUnion) Format(s fmt.State, c rune) { u.v.Format(s, c) }

// field returns the width-bit field at index i, or false if it is out of
// range.
func (u LongerUnion) field(i int, width uint) (uint64, bool) {
	if i < 0 || uint(i) >= 128/width {
		return 0, false
	}
	v := u.v.Rsh(uint(i) * width).lo
	if width < 64 {
		v &= 1<<width - 1
	}
	return v, true
}

func (u *LongerUnion) setField(i int, width uint, f uint64) bool {
	if i < 0 || uint(i) >= 128/width {
		return false
	}
	mask := U128From64(maxUint64)
	if width < 64 {
		mask = U128From64(1<<width - 1)
	}
	shift := uint(i) * width
	u.v = u.v.AndNot(mask.Lsh(shift)).Or(U128From64(f).And(mask).Lsh(shift))
	return true
}

func (u LongerUnion) UbyteChecked(i int) (uint8, bool) {
	v, ok := u.field(i, 8)
	return uint8(v), ok
}

func (u LongerUnion) UshortChecked(i int) (uint16, bool) {
	v, ok := u.field(i, 16)
	return uint16(v), ok
}

func (u LongerUnion) UintChecked(i int) (uint32, bool) {
	v, ok := u.field(i, 32)
	return uint32(v), ok
}

func (u LongerUnion) UlongChecked(i int) (uint64, bool) { return u.field(i, 64) }

func (u LongerUnion) SbyteChecked(i int) (int8, bool) {
	v, ok := u.field(i, 8)
	return int8(v), ok
}

func (u LongerUnion) SshortChecked(i int) (int16, bool) {
	v, ok := u.field(i, 16)
	return int16(v), ok
}

func (u LongerUnion) SintChecked(i int) (int32, bool) {
	v, ok := u.field(i, 32)
	return int32(v), ok
}

func (u LongerUnion) SlongChecked(i int) (int64, bool) {
	v, ok := u.field(i, 64)
	return int64(v), ok
}

func (u LongerUnion) Ubyte(i int) uint8   { return mustField[uint8](u.UbyteChecked(i))(i, "ubyte") }
func (u LongerUnion) Ushort(i int) uint16 { return mustField[uint16](u.UshortChecked(i))(i, "ushort") }
func (u LongerUnion) Uint(i int) uint32   { return mustField[uint32](u.UintChecked(i))(i, "uint") }
func (u LongerUnion) Ulong(i int) uint64  { return mustField[uint64](u.UlongChecked(i))(i, "ulong") }
func (u LongerUnion) Sbyte(i int) int8    { return mustField[int8](u.SbyteChecked(i))(i, "sbyte") }
func (u LongerUnion) Sshort(i int) int16  { return mustField[int16](u.SshortChecked(i))(i, "sshort") }
func (u LongerUnion) Sint(i int) int32    { return mustField[int32](u.SintChecked(i))(i, "sint") }
func (u LongerUnion) Slong(i int) int64   { return mustField[int64](u.SlongChecked(i))(i, "slong") }

func (u *LongerUnion) SetUbyteChecked(i int, v uint8) bool   { return u.setField(i, 8, uint64(v)) }
func (u *LongerUnion) SetUshortChecked(i int, v uint16) bool { return u.setField(i, 16, uint64(v)) }
func (u *LongerUnion) SetUintChecked(i int, v uint32) bool   { return u.setField(i, 32, uint64(v)) }
func (u *LongerUnion) SetUlongChecked(i int, v uint64) bool  { return u.setField(i, 64, v) }
func (u *LongerUnion) SetSbyteChecked(i int, v int8) bool    { return u.setField(i, 8, uint64(uint8(v))) }
func (u *LongerUnion) SetSshortChecked(i int, v int16) bool  { return u.setField(i, 16, uint64(uint16(v))) }
func (u *LongerUnion) SetSintChecked(i int, v int32) bool    { return u.setField(i, 32, uint64(uint32(v))) }
func (u *LongerUnion) SetSlongChecked(i int, v int64) bool   { return u.setField(i, 64, uint64(v)) }

func (u *LongerUnion) SetUbyte(i int, v uint8)   { mustSet(u.SetUbyteChecked(i, v), i, "ubyte") }
func (u *LongerUnion) SetUshort(i int, v uint16) { mustSet(u.SetUshortChecked(i, v), i, "ushort") }
func (u *LongerUnion) SetUint(i int, v uint32)   { mustSet(u.SetUintChecked(i, v), i, "uint") }
func (u *LongerUnion) SetUlong(i int, v uint64)  { mustSet(u.SetUlongChecked(i, v), i, "ulong") }
func (u *LongerUnion) SetSbyte(i int, v int8)    { mustSet(u.SetSbyteChecked(i, v), i, "sbyte") }
func (u *LongerUnion) SetSshort(i int, v int16)  { mustSet(u.SetSshortChecked(i, v), i, "sshort") }
func (u *LongerUnion) SetSint(i int, v int32)    { mustSet(u.SetSintChecked(i, v), i, "sint") }
func (u *LongerUnion) SetSlong(i int, v int64)   { mustSet(u.SetSlongChecked(i, v), i, "slong") }

func (u LongerUnion) CarryingAdd(o LongerUnion, carry bool) (LongerUnion, bool) {
	v, c := u.v.CarryingAdd(o.v, carry)
	return LongerUnion{v}, c
}

func (u LongerUnion) BorrowingSub(o LongerUnion, borrow bool) (LongerUnion, bool) {
	v, b := u.v.BorrowingSub(o.v, borrow)
	return LongerUnion{v}, b
}

func (u LongerUnion) CarryingMul(o, carry LongerUnion) (lo, hi LongerUnion) {
	l, h := u.v.CarryingMul(o.v, carry.v)
	return LongerUnion{l}, LongerUnion{h}
}

func (u LongerUnion) WideningMul(o LongerUnion) (lo, hi LongerUnion) {
	l, h := u.v.WideningMul(o.v)
	return LongerUnion{l}, LongerUnion{h}
}

func (u LongerUnion) WrappingAdd(o LongerUnion) LongerUnion { return LongerUnion{u.v.WrappingAdd(o.v)} }
func (u LongerUnion) WrappingSub(o LongerUnion) LongerUnion { return LongerUnion{u.v.WrappingSub(o.v)} }
func (u LongerUnion) WrappingMul(o LongerUnion) LongerUnion { return LongerUnion{u.v.WrappingMul(o.v)} }
func (u LongerUnion) WrappingNeg() LongerUnion              { return LongerUnion{u.v.WrappingNeg()} }

func (u LongerUnion) OverflowingAdd(o LongerUnion) (LongerUnion, bool) {
	v, of := u.v.OverflowingAdd(o.v)
	return LongerUnion{v}, of
}

func (u LongerUnion) OverflowingSub(o LongerUnion) (LongerUnion, bool) {
	v, of := u.v.OverflowingSub(o.v)
	return LongerUnion{v}, of
}

func (u LongerUnion) OverflowingMul(o LongerUnion) (LongerUnion, bool) {
	v, of := u.v.OverflowingMul(o.v)
	return LongerUnion{v}, of
}

func (u LongerUnion) CheckedAdd(o LongerUnion) (LongerUnion, bool) {
	v, ok := u.v.CheckedAdd(o.v)
	return LongerUnion{v}, ok
}

func (u LongerUnion) CheckedSub(o LongerUnion) (LongerUnion, bool) {
	v, ok := u.v.CheckedSub(o.v)
	return LongerUnion{v}, ok
}

func (u LongerUnion) CheckedMul(o LongerUnion) (LongerUnion, bool) {
	v, ok := u.v.CheckedMul(o.v)
	return LongerUnion{v}, ok
}

func (u LongerUnion) CheckedDiv(o LongerUnion) (LongerUnion, bool) {
	v, ok := u.v.CheckedQuo(o.v)
	return LongerUnion{v}, ok
}

func (u LongerUnion) CheckedRem(o LongerUnion) (LongerUnion, bool) {
	v, ok := u.v.CheckedRem(o.v)
	return LongerUnion{v}, ok
}

func (u LongerUnion) SaturatingAdd(o LongerUnion) LongerUnion { return LongerUnion{u.v.SaturatingAdd(o.v)} }
func (u LongerUnion) SaturatingSub(o LongerUnion) LongerUnion { return LongerUnion{u.v.SaturatingSub(o.v)} }
func (u LongerUnion) SaturatingMul(o LongerUnion) LongerUnion { return LongerUnion{u.v.SaturatingMul(o.v)} }

func (u LongerUnion) UncheckedAdd(o LongerUnion) LongerUnion { return LongerUnion{u.v.UncheckedAdd(o.v)} }
func (u LongerUnion) UncheckedSub(o LongerUnion) LongerUnion { return LongerUnion{u.v.UncheckedSub(o.v)} }
func (u LongerUnion) UncheckedMul(o LongerUnion) LongerUnion { return LongerUnion{u.v.UncheckedMul(o.v)} }
func (u LongerUnion) UncheckedDiv(o LongerUnion) LongerUnion { return LongerUnion{u.v.Quo(o.v)} }
func (u LongerUnion) UncheckedRem(o LongerUnion) LongerUnion { return LongerUnion{u.v.Rem(o.v)} }
