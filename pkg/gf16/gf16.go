// Package gf16 implements arithmetic in GF(2^4), the 16-element field whose
// elements are polynomials of degree < 4 over GF(2), reduced modulo
// x^4 + x + 1.
package gf16

import "errors"

const (
	// Modulus is x^4 + x + 1 with the x^4 term included.
	Modulus uint8 = 0x13

	// Mask keeps the low four bits of a value.
	Mask uint8 = 0x0f

	highBit uint8 = 0x08
)

var ErrZeroInverse = errors.New("gf16: zero element has no inverse")

// Add adds two field elements (bitwise XOR).
func Add(a, b uint8) uint8 {
	return (a ^ b) & Mask
}

// Mul multiplies a and b modulo x^4 + x + 1. Inputs wider than four bits are
// masked first.
func Mul(a, b uint8) uint8 {
	a &= Mask
	b &= Mask

	var result uint8
	for i := 0; i < 4; i++ {
		if b&1 != 0 {
			result ^= a
		}

		carry := a&highBit != 0
		a <<= 1
		if carry {
			a ^= Modulus
		}

		b >>= 1
	}

	return result & Mask
}

// Inverse returns the multiplicative inverse of a.
func Inverse(a uint8) (uint8, error) {
	a &= Mask
	if a == 0 {
		return 0, ErrZeroInverse
	}
	// 16 elements, a linear search is fine
	for x := uint8(1); x <= Mask; x++ {
		if Mul(a, x) == 1 {
			return x, nil
		}
	}
	// unreachable while Modulus is irreducible
	return 0, ErrZeroInverse
}
