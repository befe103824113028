package enigma

import (
	"strconv"
	"strings"
)

// RotorSpec is one catalog entry: a wiring permutation and its notch.
type RotorSpec struct {
	Wiring string
	Notch  rune
}

// RotorID selects a rotor from the catalog.  The numeric values double as
// catalog indices, so "0" and "I" name the same rotor.
type RotorID int

const (
	RotorI RotorID = iota
	RotorII
	RotorIII
	RotorIV
	RotorV
)

var rotorCatalog = [...]RotorSpec{
	RotorI:   {Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notch: 'Q'},
	RotorII:  {Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notch: 'E'},
	RotorIII: {Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notch: 'V'},
	RotorIV:  {Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notch: 'J'},
	RotorV:   {Wiring: "VZBRGITYUPSDNHLWMXCFKAEQJO", Notch: 'Z'},
}

var rotorNames = [...]string{"I", "II", "III", "IV", "V"}

// Valid reports whether id names a catalog rotor.
func (id RotorID) Valid() bool {
	return id >= 0 && int(id) < len(rotorCatalog)
}

func (id RotorID) String() string {
	if !id.Valid() {
		return "RotorID(" + strconv.Itoa(int(id)) + ")"
	}
	return rotorNames[id]
}

// Spec returns the catalog entry for id.
func (id RotorID) Spec() (RotorSpec, bool) {
	if !id.Valid() {
		return RotorSpec{}, false
	}
	return rotorCatalog[id], true
}

// ParseRotorID accepts a roman numeral ("III", case-insensitive) or a
// catalog index ("2").
func ParseRotorID(s string) (RotorID, error) {
	s = strings.TrimSpace(s)
	for i, name := range rotorNames {
		if strings.EqualFold(s, name) {
			return RotorID(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && RotorID(n).Valid() {
		return RotorID(n), nil
	}
	return 0, settingsErr("rotors", strconv.Quote(s), ErrUnknownRotor)
}

// ReflectorID selects a reflector from the catalog.
type ReflectorID int

const (
	ReflectorB ReflectorID = iota
	ReflectorC
)

// Each table is an involution without fixed points.
var reflectorCatalog = [...]string{
	ReflectorB: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	ReflectorC: "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

var reflectorNames = [...]string{"B", "C"}

// Valid reports whether id names a catalog reflector.
func (id ReflectorID) Valid() bool {
	return id >= 0 && int(id) < len(reflectorCatalog)
}

func (id ReflectorID) String() string {
	if !id.Valid() {
		return "ReflectorID(" + strconv.Itoa(int(id)) + ")"
	}
	return reflectorNames[id]
}

// ParseReflectorID accepts "B" or "C", case-insensitive.
func ParseReflectorID(s string) (ReflectorID, error) {
	s = strings.TrimSpace(s)
	for i, name := range reflectorNames {
		if strings.EqualFold(s, name) {
			return ReflectorID(i), nil
		}
	}
	return 0, settingsErr("reflector", strconv.Quote(s), ErrUnknownReflector)
}
