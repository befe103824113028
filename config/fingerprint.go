package config

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"

	"goenigma/enigma"
)

// Fingerprint returns a short BLAKE2b digest of the key sheet.  Two
// operators can compare fingerprints to confirm they hold the same
// settings without reading them aloud.  Plugboard order and the order of
// letters within a pair do not affect the result.
func (c *Config) Fingerprint() string {
	sum := blake2b.Sum256([]byte(c.canonical()))
	return hex.EncodeToString(sum[:8])
}

func (c *Config) canonical() string {
	var b strings.Builder
	b.WriteString("rotors=")
	for i, id := range c.Rotors {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(id.String())
	}
	fmt.Fprintf(&b, ";reflector=%s;positions=%s;rings=%s;plugboard=",
		c.Reflector, joinInts(c.Positions), joinInts(c.Rings))

	pairs := make([]string, 0, len(c.Plugboard))
	for _, p := range c.Plugboard {
		a, z := p.A, p.B
		if z < a {
			a, z = z, a
		}
		pairs = append(pairs, enigma.Pair{A: a, B: z}.String())
	}
	sort.Strings(pairs)
	b.WriteString(strings.Join(pairs, ","))
	return b.String()
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, ",")
}
