package saes

import "saes-go/pkg/gf16"

// Nibble is a 4-bit value. Every transform keeps it masked to 0..15.
type Nibble uint8

// State is one block laid out as a 2x2 nibble grid in column-major order:
// positions 0 and 1 form column 0, positions 2 and 3 form column 1.
type State [4]Nibble

// StateOf splits a word into a State. The nibble order is bits 15-12, 7-4,
// 11-8, 3-0.
func StateOf(w uint16) State {
	return State{
		Nibble(w>>12) & 0xf,
		Nibble(w>>4) & 0xf,
		Nibble(w>>8) & 0xf,
		Nibble(w) & 0xf,
	}
}

// Word reassembles s into a 16-bit block, placing positions 0, 2, 1, 3 at bit
// offsets 12, 8, 4, 0. It is the inverse of StateOf.
func (s State) Word() uint16 {
	return uint16(s[0]&0xf)<<12 |
		uint16(s[2]&0xf)<<8 |
		uint16(s[1]&0xf)<<4 |
		uint16(s[3]&0xf)
}

// SubstituteNibbles maps every nibble of s through t.
func SubstituteNibbles(t Table, s State) State {
	return State{t.Lookup(s[0]), t.Lookup(s[1]), t.Lookup(s[2]), t.Lookup(s[3])}
}

// ShiftRow swaps positions 2 and 3. It is its own inverse.
func ShiftRow(s State) State {
	return State{s[0], s[1], s[3], s[2]}
}

// AddRoundKey XORs k into s. It is its own inverse.
func AddRoundKey(k, s State) State {
	return State{
		(k[0] ^ s[0]) & 0xf,
		(k[1] ^ s[1]) & 0xf,
		(k[2] ^ s[2]) & 0xf,
		(k[3] ^ s[3]) & 0xf,
	}
}

// MixColumns multiplies each column by [[1,4],[4,1]] over GF(2^4).
func MixColumns(s State) State {
	return State{
		(s[0] ^ mul(4, s[2])) & 0xf,
		(s[1] ^ mul(4, s[3])) & 0xf,
		(s[2] ^ mul(4, s[0])) & 0xf,
		(s[3] ^ mul(4, s[1])) & 0xf,
	}
}

// InverseMixColumns multiplies each column by [[9,2],[2,9]], the inverse of
// the MixColumns matrix.
func InverseMixColumns(s State) State {
	return State{
		mul(9, s[0]) ^ mul(2, s[2]),
		mul(9, s[1]) ^ mul(2, s[3]),
		mul(9, s[2]) ^ mul(2, s[0]),
		mul(9, s[3]) ^ mul(2, s[1]),
	}
}

func mul(a, b Nibble) Nibble {
	return Nibble(gf16.Mul(uint8(a), uint8(b)))
}
