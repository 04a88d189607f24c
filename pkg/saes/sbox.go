package saes

import "fmt"

// Table maps every nibble to a nibble.
type Table [16]Nibble

// Sub is the forward S-box and SubInverse undoes it. The cipher reads private
// copies taken at package initialization.
var (
	Sub = Table{
		0x9, 0x4, 0xa, 0xb, 0xd, 0x1, 0x8, 0x5,
		0x6, 0x2, 0x0, 0x3, 0xc, 0xe, 0xf, 0x7,
	}
	SubInverse = Table{
		0xa, 0x5, 0x9, 0xb, 0x1, 0x7, 0x8, 0xf,
		0x6, 0x0, 0x2, 0x3, 0xc, 0x4, 0xd, 0xe,
	}
)

// sub and subInverse are the tables the cipher actually uses.
var sub, subInverse = Sub, SubInverse

// Tables returns the substitution pair the cipher uses.
func Tables() (fwd, inv Table) {
	return sub, subInverse
}

func init() {
	if err := VerifyTables(sub, subInverse); err != nil {
		panic(err)
	}
}

// Lookup returns t[n], ignoring bits of n above the low nibble.
func (t Table) Lookup(n Nibble) Nibble {
	return t[n&0xf] & 0xf
}

// IsPermutation reports whether every nibble appears exactly once in t.
func (t Table) IsPermutation() bool {
	var seen uint16
	for _, v := range t {
		if v > 0xf {
			return false
		}
		seen |= 1 << v
	}
	return seen == 0xffff
}

// VerifyTables checks that fwd and inv are permutations and exact inverses
// of each other.
func VerifyTables(fwd, inv Table) error {
	if !fwd.IsPermutation() {
		return fmt.Errorf("saes: forward table: %w", ErrTableMismatch)
	}
	if !inv.IsPermutation() {
		return fmt.Errorf("saes: inverse table: %w", ErrTableMismatch)
	}
	for x := Nibble(0); x < 16; x++ {
		if fwd[inv[x]] != x {
			return fmt.Errorf("saes: fwd[inv[%#x]] = %#x: %w", x, fwd[inv[x]], ErrTableMismatch)
		}
		if inv[fwd[x]] != x {
			return fmt.Errorf("saes: inv[fwd[%#x]] = %#x: %w", x, inv[fwd[x]], ErrTableMismatch)
		}
	}
	return nil
}
