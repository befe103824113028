// Package enigma implements a three-rotor Enigma cipher machine: rotors,
// plugboard, reflector and the stepping protocol that drives them.
//
// A Machine is a stateful value.  Enciphering a message with one Machine and
// feeding the ciphertext through a second Machine built from the same
// Settings reproduces the plaintext.  A Machine is not safe for concurrent
// use; build one per session.
package enigma

// Alphabet is the ordered set of letters the machine operates on.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of letters in Alphabet.
const Size = len(Alphabet)

// Mod returns n modulo m in the range [0, m), also for negative n.
func Mod(n, m int) int {
	return ((n % m) + m) % m
}

// Index returns the alphabet position of letter.  The boolean is false
// for anything outside A–Z.
func Index(letter rune) (int, bool) {
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return int(letter - 'A'), true
}

// Letter returns the letter at alphabet position i, reduced modulo Size.
func Letter(i int) rune {
	return rune(Alphabet[Mod(i, Size)])
}

// IsLetter reports whether r belongs to the alphabet.
func IsLetter(r rune) bool {
	_, ok := Index(r)
	return ok
}

// Upper maps ASCII a–z to A–Z and leaves every other rune alone, so the
// byte length of a string never changes.
func Upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
