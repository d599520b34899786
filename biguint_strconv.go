package num

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// digitChunks[radix] is the largest power of radix that fits in a uint64,
// along with its exponent.
var digitChunks [37]struct {
	base   uint64
	digits int
}

func init() {
	for radix := 2; radix <= 36; radix++ {
		base, digits := uint64(radix), 1
		for base <= maxUint64/uint64(radix) {
			base *= uint64(radix)
			digits++
		}
		digitChunks[radix].base = base
		digitChunks[radix].digits = digits
	}
}

func (b BigUInt[T]) typeName() string {
	return "biguint" + strconv.Itoa(int(b.BitSize()))
}

// String returns the decimal representation of b.
func (b BigUInt[T]) String() string { return b.Text(10) }

// Text returns the representation of b in the given radix, using lower-case
// letters for digit values >= 10. It panics if radix is not in [2, 36].
func (b BigUInt[T]) Text(radix int) string {
	if radix < 2 || radix > 36 {
		panic(fmt.Errorf("biguint: invalid radix %d", radix))
	}
	if b.IsUint64() {
		return strconv.FormatUint(b.Uint64(), radix)
	}

	chunk := digitChunks[radix]

	// Chunks are produced least significant first; every chunk but the most
	// significant one is zero-padded to its full width.
	var chunks []uint64
	for !b.IsZero() {
		var r uint64
		b, r = b.DivRemUint64(chunk.base)
		chunks = append(chunks, r)
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(chunks[len(chunks)-1], radix))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(chunks[i], radix)
		for k := len(s); k < chunk.digits; k++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// Format implements fmt.Formatter. It supports the verbs v, s, d, b, o, O, x
// and X, the '#' flag, a width, and the '-' and '0' flags.
func (b BigUInt[T]) Format(s fmt.State, c rune) {
	var radix int
	var prefix string
	alt := s.Flag('#')

	switch c {
	case 'v', 's', 'd':
		radix = 10
	case 'b':
		radix = 2
		if alt {
			prefix = "0b"
		}
	case 'o':
		radix = 8
		if alt {
			prefix = "0"
		}
	case 'O':
		radix, prefix = 8, "0o"
	case 'x':
		radix = 16
		if alt {
			prefix = "0x"
		}
	case 'X':
		radix = 16
		if alt {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(%s=%s)", c, b.typeName(), b.String())
		return
	}

	digits := b.Text(radix)
	if c == 'X' {
		digits = strings.ToUpper(digits)
	}
	if s.Flag('+') {
		prefix = "+" + prefix
	}

	var pad int
	if width, ok := s.Width(); ok {
		pad = width - len(prefix) - len(digits)
	}

	var buf bytes.Buffer
	switch {
	case pad <= 0:
		buf.WriteString(prefix)
		buf.WriteString(digits)
	case s.Flag('-'):
		buf.WriteString(prefix)
		buf.WriteString(digits)
		buf.Write(bytes.Repeat([]byte{' '}, pad))
	case s.Flag('0'):
		buf.WriteString(prefix)
		buf.Write(bytes.Repeat([]byte{'0'}, pad))
		buf.WriteString(digits)
	default:
		buf.Write(bytes.Repeat([]byte{' '}, pad))
		buf.WriteString(prefix)
		buf.WriteString(digits)
	}
	s.Write(buf.Bytes())
}

// FromString parses a decimal string into a BigUInt of n limbs.
func FromString[T Limb](n int, s string) (BigUInt[T], error) {
	return FromStringRadix[T](n, s, 10)
}

// FromStringRadix parses s in the given radix (2 to 36) into a BigUInt of n
// limbs. An optional leading '+' is accepted, as are '_' separators between
// digits. Letters may be upper or lower case.
//
// Errors are always of type *ParseError. Values that do not fit in n limbs
// are reported with ErrRange rather than truncated.
func FromStringRadix[T Limb](n int, s string, radix int) (out BigUInt[T], err error) {
	out = Zero[T](n)
	fail := func(e error) (BigUInt[T], error) {
		return Zero[T](n), &ParseError{Type: out.typeName(), Input: s, Radix: radix, Err: e}
	}

	if radix < 2 || radix > 36 {
		return fail(ErrRadix)
	}

	in := s
	if len(in) > 0 && in[0] == '+' {
		in = in[1:]
	}
	if len(in) == 0 {
		return fail(ErrEmpty)
	}

	// Digits are accumulated into a uint64 chunk and folded into the result
	// once the chunk is full.
	var acc, mul uint64 = 0, 1
	var last byte = '_'
	chunkMax := digitChunks[radix].base

	for i := 0; i < len(in); i++ {
		c := in[i]
		if c == '_' {
			if last == '_' || i == len(in)-1 {
				return fail(ErrSyntax)
			}
			last = c
			continue
		}
		last = c

		d := digitValue(c)
		if d >= radix {
			return fail(ErrSyntax)
		}

		acc = acc*uint64(radix) + uint64(d)
		mul *= uint64(radix)
		if mul == chunkMax {
			var carry uint64
			if out, carry = out.mulAddUint64(mul, acc); carry != 0 {
				return fail(ErrRange)
			}
			acc, mul = 0, 1
		}
	}

	if mul > 1 {
		var carry uint64
		if out, carry = out.mulAddUint64(mul, acc); carry != 0 {
			return fail(ErrRange)
		}
	}
	return out, nil
}

// mulAddUint64 returns b*m + a, and the part of the result that did not fit.
func (b BigUInt[T]) mulAddUint64(m, a uint64) (BigUInt[T], uint64) {
	carry := a
	for i := 0; i < b.n; i++ {
		b.limbs[i], carry = mulAddWide(b.limbs[i], m, carry)
	}
	return b, carry
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

func (b BigUInt[T]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses a decimal string into b. b must already have a limb
// count, for example from Zero(n).
func (b *BigUInt[T]) UnmarshalText(bts []byte) (err error) {
	if b.n == 0 {
		return fmt.Errorf("num: cannot unmarshal %q into a BigUInt with no limbs", string(bts))
	}
	v, err := FromString[T](b.n, string(bts))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b BigUInt[T]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON accepts a decimal number, quoted or unquoted. b must already
// have a limb count.
func (b *BigUInt[T]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: biguint invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return b.UnmarshalText(bts)
}
