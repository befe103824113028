package enigma

// Rotor is one wired wheel.  Its ring setting is fixed at construction;
// its position advances as the machine steps.
type Rotor struct {
	wiring   [Size]int // forward: position i -> wiring[i]
	inverse  [Size]int // backward: inverse[wiring[i]] == i
	notch    int
	ring     int
	position int
}

// NewRotor builds a rotor from a catalog entry.  ring and position are
// reduced modulo 26; range checking belongs to the caller.
func NewRotor(spec RotorSpec, ring, position int) *Rotor {
	r := &Rotor{
		ring:     Mod(ring, Size),
		position: Mod(position, Size),
	}
	for i := 0; i < Size; i++ {
		out, _ := Index(rune(spec.Wiring[i]))
		r.wiring[i] = out
		r.inverse[out] = i
	}
	r.notch, _ = Index(spec.Notch)
	return r
}

// Position returns the current rotor position, 0–25.
func (r *Rotor) Position() int { return r.position }

// RingSetting returns the ring offset, 0–25.
func (r *Rotor) RingSetting() int { return r.ring }

// Step advances the rotor by one position.
func (r *Rotor) Step() {
	r.position = Mod(r.position+1, Size)
}

// AtNotch reports whether the rotor currently shows its notch letter.
func (r *Rotor) AtNotch() bool {
	return r.position == r.notch
}

// Forward substitutes letter on the way from the plugboard to the
// reflector.  Letters outside the alphabet are returned unchanged.
func (r *Rotor) Forward(letter rune) rune {
	i, ok := Index(letter)
	if !ok {
		return letter
	}
	return Letter(r.forward(i))
}

// Backward is the inverse of Forward for the same rotor state.
func (r *Rotor) Backward(letter rune) rune {
	i, ok := Index(letter)
	if !ok {
		return letter
	}
	return Letter(r.backward(i))
}

func (r *Rotor) forward(i int) int {
	return r.wiring[Mod(i+r.position-r.ring, Size)]
}

func (r *Rotor) backward(i int) int {
	return Mod(r.inverse[i]-r.position+r.ring, Size)
}
