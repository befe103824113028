package config

import "goenigma/enigma"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, key-sheet files, and environment variable loading.

var (
	// DefaultRotors is the left-to-right rotor order.
	DefaultRotors = []enigma.RotorID{enigma.RotorI, enigma.RotorII, enigma.RotorIII} //nolint:gochecknoglobals
)

const (
	// DefaultReflector is the wide-B reflector.
	DefaultReflector = enigma.ReflectorB

	// DefaultJobs limits how many batch files are enciphered at once.
	DefaultJobs = 4

	// DefaultPrompt is shown before each line in interactive mode.
	DefaultPrompt = "enigma> "

	// EnvPrefix prefixes every supported environment variable.
	EnvPrefix = "GOENIGMA_"

	// OutputFileMode is the permission for batch output files.
	OutputFileMode = 0o644
)
