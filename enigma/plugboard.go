package enigma

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Pair is one plugboard cable joining two letters.
type Pair struct {
	A, B rune
}

func (p Pair) String() string { return string([]rune{p.A, p.B}) }

// ParsePairs reads cable pairs such as "AB CD" or "ab,cd".
func ParsePairs(s string) ([]Pair, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) != 2 {
			return nil, settingsErr("plugboard", fmt.Sprintf("%q", f),
				fmt.Errorf("%w: pair must be two letters", ErrPlugboard))
		}
		rs := []rune(f)
		pairs = append(pairs, Pair{A: Upper(rs[0]), B: Upper(rs[1])})
	}
	return pairs, nil
}

// Swap returns the partner of letter if it is cabled in pairs, and letter
// otherwise.  Applying Swap twice with the same pairs is the identity as
// long as no letter appears in more than one pair.
func Swap(letter rune, pairs []Pair) rune {
	for _, p := range pairs {
		if letter == p.A {
			return p.B
		}
		if letter == p.B {
			return p.A
		}
	}
	return letter
}

// Plugboard is a validated set of pairs with a precomputed swap table.
type Plugboard struct {
	pairs []Pair
	table [Size]int
}

// NewPlugboard validates pairs and builds the swap table.  A letter may
// appear in at most one pair and never paired with itself.
func NewPlugboard(pairs []Pair) (*Plugboard, error) {
	pb := &Plugboard{pairs: make([]Pair, 0, len(pairs))}
	for i := range pb.table {
		pb.table[i] = i
	}

	var used [Size]bool
	for _, p := range pairs {
		p = Pair{A: Upper(p.A), B: Upper(p.B)}
		a, okA := Index(p.A)
		b, okB := Index(p.B)
		switch {
		case !okA || !okB:
			return nil, settingsErr("plugboard", p.String(),
				fmt.Errorf("%w: letters must be A-Z", ErrPlugboard))
		case a == b:
			return nil, settingsErr("plugboard", p.String(),
				fmt.Errorf("%w: letter paired with itself", ErrPlugboard))
		case used[a]:
			return nil, settingsErr("plugboard", p.String(),
				fmt.Errorf("%w: %c already cabled", ErrPlugboard, p.A))
		case used[b]:
			return nil, settingsErr("plugboard", p.String(),
				fmt.Errorf("%w: %c already cabled", ErrPlugboard, p.B))
		}
		used[a], used[b] = true, true
		pb.table[a], pb.table[b] = b, a
		pb.pairs = append(pb.pairs, p)
	}
	return pb, nil
}

// Swap applies the plugboard to letter.
func (pb *Plugboard) Swap(letter rune) rune {
	i, ok := Index(letter)
	if !ok {
		return letter
	}
	return Letter(pb.table[i])
}

// Pairs returns a copy of the validated pairs.
func (pb *Plugboard) Pairs() []Pair {
	out := make([]Pair, len(pb.pairs))
	copy(out, pb.pairs)
	return out
}

func (pb *Plugboard) swap(i int) int { return pb.table[i] }
