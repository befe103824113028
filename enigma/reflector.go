package enigma

// Reflector is a fixed pairing of letters with no moving parts.
type Reflector struct {
	table [Size]int
}

// NewReflector returns the catalog reflector for id.
func NewReflector(id ReflectorID) (*Reflector, error) {
	if !id.Valid() {
		return nil, settingsErr("reflector", int(id), ErrUnknownReflector)
	}
	ref := &Reflector{}
	wiring := reflectorCatalog[id]
	for i := 0; i < Size; i++ {
		ref.table[i], _ = Index(rune(wiring[i]))
	}
	return ref, nil
}

// Reflect returns the letter paired with letter.
func (ref *Reflector) Reflect(letter rune) rune {
	i, ok := Index(letter)
	if !ok {
		return letter
	}
	return Letter(ref.table[i])
}
