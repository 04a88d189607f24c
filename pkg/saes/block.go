package saes

import (
	"crypto/cipher"
	"encoding/binary"
)

// BlockSize is the cipher block size in bytes.
const BlockSize = 2

// KeySize is the key size in bytes.
const KeySize = 2

type blockCipher struct {
	rk RoundKeys
}

var _ cipher.Block = (*blockCipher)(nil)

// NewCipher returns a cipher.Block for a 2-byte big-endian key. Blocks are
// read and written big-endian.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	return &blockCipher{rk: ExpandKey(binary.BigEndian.Uint16(key))}, nil
}

func (c *blockCipher) BlockSize() int { return BlockSize }

func (c *blockCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("saes: input not full block")
	}
	binary.BigEndian.PutUint16(dst, Encrypt(binary.BigEndian.Uint16(src), c.rk))
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("saes: input not full block")
	}
	binary.BigEndian.PutUint16(dst, Decrypt(binary.BigEndian.Uint16(src), c.rk))
}
