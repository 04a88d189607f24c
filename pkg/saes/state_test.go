package saes

import "testing"

func TestStateOfNibbleOrder(t *testing.T) {
	s := StateOf(0x1234)
	want := State{0x1, 0x3, 0x2, 0x4}
	if s != want {
		t.Fatalf("StateOf(0x1234) = %v, want %v", s, want)
	}
	if w := s.Word(); w != 0x1234 {
		t.Fatalf("Word() = %#04x, want 0x1234", w)
	}
}

func TestWordRoundTrip(t *testing.T) {
	for w := 0; w <= 0xffff; w++ {
		if got := StateOf(uint16(w)).Word(); got != uint16(w) {
			t.Fatalf("StateOf(%#04x).Word() = %#04x", w, got)
		}
	}
}

func TestShiftRowSelfInverse(t *testing.T) {
	s := State{0x1, 0x2, 0x3, 0x4}
	if got := ShiftRow(s); got != (State{0x1, 0x2, 0x4, 0x3}) {
		t.Fatalf("ShiftRow(%v) = %v", s, got)
	}
	for w := 0; w <= 0xffff; w++ {
		s := StateOf(uint16(w))
		if got := ShiftRow(ShiftRow(s)); got != s {
			t.Fatalf("ShiftRow twice on %v gave %v", s, got)
		}
	}
}

func TestAddRoundKeySelfInverse(t *testing.T) {
	keys := []uint16{0x0000, 0xa73b, 0x1c27, 0xffff}
	for _, k := range keys {
		ks := StateOf(k)
		for w := 0; w <= 0xffff; w += 7 {
			s := StateOf(uint16(w))
			if got := AddRoundKey(ks, AddRoundKey(ks, s)); got != s {
				t.Fatalf("AddRoundKey twice with %#04x on %v gave %v", k, s, got)
			}
		}
	}
}

func TestSubstituteNibblesInverse(t *testing.T) {
	s := State{0x0, 0x5, 0xa, 0xf}
	if got := SubstituteNibbles(Sub, s); got != (State{0x9, 0x1, 0x0, 0x7}) {
		t.Fatalf("SubstituteNibbles(Sub, %v) = %v", s, got)
	}
	if got := SubstituteNibbles(SubInverse, SubstituteNibbles(Sub, s)); got != s {
		t.Fatalf("inverse substitution gave %v, want %v", got, s)
	}
}

func TestMixColumnsInverse(t *testing.T) {
	for w := 0; w <= 0xffff; w++ {
		s := StateOf(uint16(w))
		if got := InverseMixColumns(MixColumns(s)); got != s {
			t.Fatalf("InverseMixColumns(MixColumns(%v)) = %v", s, got)
		}
	}
}

func TestMixColumnsKnownValue(t *testing.T) {
	// state after round 1 shift row for key 0xa73b, plaintext 0x6f6b
	s := State{0xc, 0x1, 0x9, 0x6}
	want := State{0xe, 0xa, 0xc, 0x2}
	if got := MixColumns(s); got != want {
		t.Fatalf("MixColumns(%v) = %v, want %v", s, got, want)
	}
}
