package gf16

import (
	"errors"
	"testing"
)

func TestMulCommutativeAndClosed(t *testing.T) {
	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			ab := Mul(a, b)
			if ab > Mask {
				t.Fatalf("Mul(%d, %d) = %d, outside the field", a, b, ab)
			}
			if ba := Mul(b, a); ab != ba {
				t.Errorf("Mul(%d, %d) = %d but Mul(%d, %d) = %d", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestMulZeroAndOne(t *testing.T) {
	for x := uint8(0); x < 16; x++ {
		if got := Mul(x, 0); got != 0 {
			t.Errorf("Mul(%d, 0) = %d, expected 0", x, got)
		}
		if got := Mul(x, 1); got != x {
			t.Errorf("Mul(%d, 1) = %d, expected %d", x, got, x)
		}
	}
}

func TestMulKnownProducts(t *testing.T) {
	tests := []struct {
		a, b, want uint8
	}{
		{0x2, 0x8, 0x3}, // x * x^3 = x^4 = x + 1
		{0xb, 0x6, 0xf},
		{0x7, 0xd, 0x5},
		{0xf, 0xf, 0xa},
		{0x4, 0x4, 0x3},
		{0x4, 0x9, 0x2},
	}
	for _, tt := range tests {
		if got := Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%#x, %#x) = %#x, want %#x", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMulMasksInputs(t *testing.T) {
	if got, want := Mul(0xf4, 0x39), Mul(0x4, 0x9); got != want {
		t.Errorf("Mul did not mask inputs: got %#x, want %#x", got, want)
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			for c := uint8(0); c < 16; c++ {
				left := Mul(a, Add(b, c))
				right := Add(Mul(a, b), Mul(a, c))
				if left != right {
					t.Fatalf("a*(b+c) != a*b + a*c for a=%d b=%d c=%d", a, b, c)
				}
			}
		}
	}
}

func TestInverse(t *testing.T) {
	for a := uint8(1); a < 16; a++ {
		inv, err := Inverse(a)
		if err != nil {
			t.Fatalf("Inverse(%d) error: %v", a, err)
		}
		if p := Mul(a, inv); p != 1 {
			t.Errorf("%d * Inverse(%d) = %d, expected 1", a, a, p)
		}
	}

	if _, err := Inverse(0); !errors.Is(err, ErrZeroInverse) {
		t.Errorf("Inverse(0) error = %v, expected ErrZeroInverse", err)
	}
}

// The column mix uses the matrix [[1,4],[4,1]]; its inverse must be [[9,2],[2,9]].
func TestMixCoefficientsAreInverse(t *testing.T) {
	if got := Add(Mul(1, 9), Mul(4, 2)); got != 1 {
		t.Errorf("diagonal of M*M^-1 = %d, expected 1", got)
	}
	if got := Add(Mul(1, 2), Mul(4, 9)); got != 0 {
		t.Errorf("off-diagonal of M*M^-1 = %d, expected 0", got)
	}
}
