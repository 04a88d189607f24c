package saes

import "testing"

func TestExpandKey(t *testing.T) {
	tests := []struct {
		key  uint16
		want [3]uint16
	}{
		{0xa73b, [3]uint16{0xa73b, 0x1c27, 0x7651}},
		{0x4af5, [3]uint16{0x4af5, 0xdd28, 0x87af}},
		{0x2d55, [3]uint16{0x2d55, 0xbce9, 0xa34a}},
		{0x0000, [3]uint16{0x0000, 0x1919, 0x0d14}},
	}
	for _, tt := range tests {
		rk := ExpandKey(tt.key)
		for i := range rk {
			if got := rk[i].Word(); got != tt.want[i] {
				t.Errorf("ExpandKey(%#04x)[%d] = %#04x, want %#04x", tt.key, i, got, tt.want[i])
			}
		}
	}
}

func TestFirstRoundKeyIsRawKey(t *testing.T) {
	for k := 0; k <= 0xffff; k += 13 {
		rk := ExpandKey(uint16(k))
		if rk[0] != (RoundKey{uint8(k >> 8), uint8(k)}) {
			t.Fatalf("ExpandKey(%#04x)[0] = %v", k, rk[0])
		}
	}
}

func TestRotateSubstituteByte(t *testing.T) {
	// nibbles of 0x3b are swapped to b,3 then substituted: Sub[b]=3, Sub[3]=b
	if got := rotateSubstituteByte(0x3b); got != 0x3b {
		t.Errorf("rotateSubstituteByte(0x3b) = %#02x, want 0x3b", got)
	}
	if got := rotateSubstituteByte(0x01); got != 0x49 {
		t.Errorf("rotateSubstituteByte(0x01) = %#02x, want 0x49", got)
	}
}

func TestRoundKeysAreIndependentValues(t *testing.T) {
	a := ExpandKey(0xa73b)
	b := ExpandKey(0x4af5)
	if a[1].Word() != 0x1c27 {
		t.Fatalf("expanding a second key altered the first: %v", a)
	}
	if a == b {
		t.Fatal("different keys expanded to identical round keys")
	}
}

func TestRoundKeyString(t *testing.T) {
	if s := (RoundKey{0x1c, 0x27}).String(); s != "1c27" {
		t.Errorf("String() = %q", s)
	}
}
