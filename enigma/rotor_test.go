package enigma

import "testing"

func TestRotor_Step(t *testing.T) {
	r := NewRotor(rotorCatalog[RotorI], 0, 24)
	r.Step()
	if r.Position() != 25 {
		t.Fatalf("position = %d, want 25", r.Position())
	}
	r.Step()
	if r.Position() != 0 {
		t.Errorf("position = %d, want 0 after wrap", r.Position())
	}
}

func TestRotor_AtNotch(t *testing.T) {
	tests := []struct {
		id       RotorID
		position int
		want     bool
	}{
		{RotorI, 16, true}, // Q
		{RotorI, 17, false},
		{RotorII, 4, true}, // E
		{RotorIII, 21, true}, // V
		{RotorIII, 0, false},
		{RotorV, 25, true}, // Z
	}
	for _, tt := range tests {
		r := NewRotor(rotorCatalog[tt.id], 0, tt.position)
		if got := r.AtNotch(); got != tt.want {
			t.Errorf("rotor %v at %d: AtNotch() = %v, want %v", tt.id, tt.position, got, tt.want)
		}
	}
}

func TestRotor_Forward(t *testing.T) {
	tests := []struct {
		name     string
		ring     int
		position int
		in, want rune
	}{
		{"identity offset", 0, 0, 'A', 'E'},
		{"position shifts input", 0, 1, 'A', 'K'},
		{"ring cancels position", 1, 1, 'A', 'E'},
		{"ring alone", 1, 0, 'A', 'J'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRotor(rotorCatalog[RotorI], tt.ring, tt.position)
			if got := r.Forward(tt.in); got != tt.want {
				t.Errorf("Forward(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Backward undoes Forward for every rotor, ring, position and letter.
func TestRotor_BackwardInvertsForward(t *testing.T) {
	for id := RotorI; id <= RotorV; id++ {
		for ring := 0; ring < Size; ring += 5 {
			for pos := 0; pos < Size; pos++ {
				r := NewRotor(rotorCatalog[id], ring, pos)
				for _, l := range Alphabet {
					if got := r.Backward(r.Forward(l)); got != l {
						t.Fatalf("rotor %v ring %d pos %d: Backward(Forward(%q)) = %q",
							id, ring, pos, l, got)
					}
				}
			}
		}
	}
}

func TestRotor_NonLetterUnchanged(t *testing.T) {
	r := NewRotor(rotorCatalog[RotorII], 3, 7)
	for _, c := range []rune{'1', ' ', 'a'} {
		if r.Forward(c) != c || r.Backward(c) != c {
			t.Errorf("%q should pass through", c)
		}
	}
}
