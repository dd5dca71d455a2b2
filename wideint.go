package printf

import "math/bits"

// Uint128, Uint256 and Uint512 are fixed-width unsigned integers stored as
// little-endian 64-bit limbs. The engine treats them as single logical
// numbers for digit extraction; %d interprets the top bit as a
// two's-complement sign over the full width. They exist so wide values can
// travel through the argument list as plain values; arithmetic beyond what
// digit extraction needs is out of scope.
type (
	Uint128 [2]uint64
	Uint256 [4]uint64
	Uint512 [8]uint64
)

// U128 returns v widened to 128 bits. U256 and U512 are its siblings.
func U128(v uint64) Uint128 { return Uint128{v} }
func U256(v uint64) Uint256 { return Uint256{v} }
func U512(v uint64) Uint512 { return Uint512{v} }

// String renders the value in decimal.
func (u Uint128) String() string { return Sprintf("%|128u", u) }
func (u Uint256) String() string { return Sprintf("%|256u", u) }
func (u Uint512) String() string { return Sprintf("%|512u", u) }

func (u Uint128) wide() Uint512 { return Uint512{u[0], u[1]} }
func (u Uint256) wide() Uint512 { return Uint512{u[0], u[1], u[2], u[3]} }

// ParseWide reads a decimal or 0x/0X-prefixed hexadecimal string into a
// 512-bit value. It reports false on empty input or a bad digit. Values
// wider than 512 bits wrap, matching the fixed-width semantics everywhere
// else in the package.
func ParseWide(s string) (Uint512, bool) {
	var v Uint512
	base := uint64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	if s == "" {
		return v, false
	}
	for i := 0; i < len(s); i++ {
		var d uint64
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case base == 16 && c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case base == 16 && c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return Uint512{}, false
		}
		v = v.mulAdd(base, d)
	}
	return v, true
}

func (u Uint512) isZero() bool {
	for _, limb := range u {
		if limb != 0 {
			return false
		}
	}
	return true
}

func (u Uint512) bit(n int) bool {
	return u[n/64]>>(uint(n)%64)&1 != 0
}

// neg returns the two's-complement negation over the full 512 bits.
func (u Uint512) neg() Uint512 {
	var r Uint512
	carry := uint64(1)
	for i := range u {
		r[i], carry = bits.Add64(^u[i], 0, carry)
	}
	return r
}

// maskBits zeroes everything at and above bit n. Only multiples of 64 are
// needed: the extraction widths are 128, 256 and 512.
func (u Uint512) maskBits(n int) Uint512 {
	var r Uint512
	for i := 0; i < n/64 && i < len(u); i++ {
		r[i] = u[i]
	}
	return r
}

// divmod divides by a small base and returns the quotient and remainder.
func (u Uint512) divmod(base uint64) (Uint512, uint64) {
	var q Uint512
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, u[i], base)
	}
	return q, rem
}

func (u Uint512) mulAdd(m, a uint64) Uint512 {
	var r Uint512
	carry := a
	for i := range u {
		hi, lo := bits.Mul64(u[i], m)
		var c uint64
		r[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return r
}
