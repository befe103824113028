package enigma

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rotors is the number of rotor slots in a Machine.
const Rotors = 3

const (
	left = iota
	middle
	right
)

// Settings is a key sheet: everything needed to build a Machine.  All
// slices are ordered left to right; the rightmost rotor steps on every
// keystroke.
type Settings struct {
	Rotors    []RotorID
	Positions []int
	Rings     []int
	Plugboard []Pair
	Reflector ReflectorID
}

// Machine is a three-rotor Enigma.  It owns its rotors; their positions
// change with every enciphered letter.
type Machine struct {
	rotors    [Rotors]*Rotor
	ids       [Rotors]RotorID
	plugboard *Plugboard
	reflector *Reflector
	refID     ReflectorID
}

// New validates s and returns a Machine at the initial rotor positions.
// Out-of-range values are rejected, never clamped.
func New(s Settings) (*Machine, error) {
	if len(s.Rotors) != Rotors {
		return nil, settingsErr("rotors", len(s.Rotors),
			fmt.Errorf("%w: want %d rotors", ErrRotorCount, Rotors))
	}
	if len(s.Positions) != len(s.Rotors) {
		return nil, settingsErr("positions", len(s.Positions),
			fmt.Errorf("%w: want %d positions", ErrRotorCount, len(s.Rotors)))
	}
	if len(s.Rings) != len(s.Rotors) {
		return nil, settingsErr("rings", len(s.Rings),
			fmt.Errorf("%w: want %d ring settings", ErrRotorCount, len(s.Rotors)))
	}

	m := &Machine{refID: s.Reflector}
	for i, id := range s.Rotors {
		spec, ok := id.Spec()
		if !ok {
			return nil, settingsErr("rotors", int(id), ErrUnknownRotor)
		}
		if !inRange(s.Positions[i]) {
			return nil, settingsErr("positions", s.Positions[i], ErrOutOfRange)
		}
		if !inRange(s.Rings[i]) {
			return nil, settingsErr("rings", s.Rings[i], ErrOutOfRange)
		}
		m.rotors[i] = NewRotor(spec, s.Rings[i], s.Positions[i])
		m.ids[i] = id
	}

	var err error
	if m.reflector, err = NewReflector(s.Reflector); err != nil {
		return nil, err
	}
	if m.plugboard, err = NewPlugboard(s.Plugboard); err != nil {
		return nil, err
	}
	return m, nil
}

func inRange(v int) bool { return v >= 0 && v < Size }

// Rotor returns the rotor in slot i (0 = left, 2 = right).
func (m *Machine) Rotor(i int) *Rotor { return m.rotors[i] }

// Positions returns the current rotor positions, left to right.
func (m *Machine) Positions() []int {
	out := make([]int, Rotors)
	for i, r := range m.rotors {
		out[i] = r.Position()
	}
	return out
}

// Window returns the letters currently showing, e.g. "AEZ".
func (m *Machine) Window() string {
	var b strings.Builder
	for _, r := range m.rotors {
		b.WriteRune(Letter(r.position))
	}
	return b.String()
}

// step advances the rotors for one keystroke.  The middle rotor's notch is
// sampled before anything moves; that snapshot is what makes the middle
// rotor step twice in a row (double-stepping).
func (m *Machine) step() {
	middleAtNotch := m.rotors[middle].AtNotch()

	if middleAtNotch {
		m.rotors[left].Step()
	}
	if m.rotors[right].AtNotch() || middleAtNotch {
		m.rotors[middle].Step()
	}
	m.rotors[right].Step()
}

// EncodeChar enciphers one letter.  Anything outside A–Z is returned as is
// and does not move the rotors.
func (m *Machine) EncodeChar(letter rune) rune {
	i, ok := Index(letter)
	if !ok {
		return letter
	}
	m.step()

	i = m.plugboard.swap(i)
	for k := Rotors - 1; k >= 0; k-- {
		i = m.rotors[k].forward(i)
	}
	i = m.reflector.table[i]
	for k := 0; k < Rotors; k++ {
		i = m.rotors[k].backward(i)
	}
	return Letter(m.plugboard.swap(i))
}

// EncodeKey upper-cases an ASCII letter and enciphers it, the way a key
// press would.
func (m *Machine) EncodeKey(r rune) rune {
	return m.EncodeChar(Upper(r))
}

// Process upper-cases ASCII letters in text and enciphers it.  The output
// has the same byte length as the input, with every non-letter in its
// original place; bytes that are not valid UTF-8 are copied unchanged.
// Rotor state carries over to the next call.
func (m *Machine) Process(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(text[i])
			i++
			continue
		}
		b.WriteRune(m.EncodeKey(r))
		i += size
	}
	return b.String()
}

// Settings returns the key sheet that reproduces the machine's current
// state.  Building a new Machine from it continues the same stream.
func (m *Machine) Settings() Settings {
	s := Settings{
		Rotors:    append([]RotorID(nil), m.ids[:]...),
		Positions: m.Positions(),
		Rings:     make([]int, Rotors),
		Plugboard: m.plugboard.Pairs(),
		Reflector: m.refID,
	}
	for i, r := range m.rotors {
		s.Rings[i] = r.RingSetting()
	}
	return s
}
