package saes

import (
	"errors"
	"strconv"
)

var (
	ErrOutOfRange    = errors.New("value does not fit in 16 bits")
	ErrInvalidWord   = errors.New("not a valid word literal")
	ErrTableMismatch = errors.New("substitution tables are not inverse permutations")
)

// KeySizeError is returned by NewCipher for keys that are not exactly 2 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "saes: invalid key size " + strconv.Itoa(int(k))
}
