package saes

import "fmt"

const (
	Rcon1 uint8 = 0x80
	Rcon2 uint8 = 0x30
)

// RoundKey is a 16-bit subkey held as its two bytes, high byte first.
type RoundKey [2]uint8

// Word returns the key as a 16-bit value.
func (k RoundKey) Word() uint16 {
	return uint16(k[0])<<8 | uint16(k[1])
}

// State returns the key in the nibble layout used by AddRoundKey.
func (k RoundKey) State() State {
	return StateOf(k.Word())
}

func (k RoundKey) String() string {
	return fmt.Sprintf("%04x", k.Word())
}

// RoundKeys holds the whitening key followed by the keys of rounds 1 and 2.
// It is an ordinary value owned by the caller; expanding another key never
// touches an existing RoundKeys.
type RoundKeys [3]RoundKey

// ExpandKey derives the three round keys from a 16-bit key.
func ExpandKey(key uint16) RoundKeys {
	var w [6]uint8
	w[0] = uint8(key >> 8)
	w[1] = uint8(key)
	w[2] = w[0] ^ Rcon1 ^ rotateSubstituteByte(w[1])
	w[3] = w[2] ^ w[1]
	w[4] = w[2] ^ Rcon2 ^ rotateSubstituteByte(w[3])
	w[5] = w[4] ^ w[3]

	return RoundKeys{
		{w[0], w[1]},
		{w[2], w[3]},
		{w[4], w[5]},
	}
}

// rotateSubstituteByte swaps the nibbles of b and substitutes each one.
func rotateSubstituteByte(b uint8) uint8 {
	hi := sub.Lookup(Nibble(b >> 4))
	lo := sub.Lookup(Nibble(b))
	return uint8(hi) | uint8(lo)<<4
}
