// Package config defines the runtime configuration for goenigma and provides
// helpers for parsing rotor lists, positions, ring settings and plugboard
// pairs from flags, environment variables and key-sheet files.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"goenigma/enigma"
	"goenigma/internal/errors"
)

// Config holds every tuneable for a single goenigma run.
type Config struct {
	// ── Key sheet ────────────────────────────────────────────────────
	Rotors    []enigma.RotorID // left to right
	Reflector enigma.ReflectorID
	Positions []int
	Rings     []int
	Plugboard []enigma.Pair

	// ── Input / output ───────────────────────────────────────────────
	Inputs      []string // files; empty means stdin
	OutputDir   string   // batch output directory; empty means stdout
	Overwrite   bool
	Jobs        int // parallel batch jobs
	Interactive bool

	// ── Output ───────────────────────────────────────────────────────
	Verbose         int
	DryRun          bool
	ShowFingerprint bool
}

// Default returns a Config populated from defaults.go.
func Default() *Config {
	return &Config{
		Rotors:    append([]enigma.RotorID(nil), DefaultRotors...),
		Reflector: DefaultReflector,
		Positions: make([]int, enigma.Rotors),
		Rings:     make([]int, enigma.Rotors),
		Jobs:      DefaultJobs,
	}
}

// Settings converts the key sheet into engine settings.  The slices are
// copied so the Config can be reused for further machines.
func (c *Config) Settings() enigma.Settings {
	return enigma.Settings{
		Rotors:    append([]enigma.RotorID(nil), c.Rotors...),
		Positions: append([]int(nil), c.Positions...),
		Rings:     append([]int(nil), c.Rings...),
		Plugboard: append([]enigma.Pair(nil), c.Plugboard...),
		Reflector: c.Reflector,
	}
}

// Describe renders the key sheet on one line for verbose logging.
func (c *Config) Describe() string {
	rotors := make([]string, len(c.Rotors))
	for i, id := range c.Rotors {
		rotors[i] = id.String()
	}
	rings := make([]string, len(c.Rings))
	for i, r := range c.Rings {
		rings[i] = fmt.Sprintf("%02d", r+1)
	}
	window := make([]byte, 0, len(c.Positions))
	for _, p := range c.Positions {
		window = append(window, byte(enigma.Letter(p)))
	}
	pairs := make([]string, len(c.Plugboard))
	for i, p := range c.Plugboard {
		pairs[i] = p.String()
	}
	plug := strings.Join(pairs, " ")
	if plug == "" {
		plug = "-"
	}
	return fmt.Sprintf("rotors %s reflector %s rings %s window %s plugboard %s",
		strings.Join(rotors, "-"), c.Reflector, strings.Join(rings, "-"), window, plug)
}

// ── Parsers ──────────────────────────────────────────────────────────

// ParseRotorList accepts "I,II,III", "I II III" or catalog indices "0,1,2".
func ParseRotorList(list string) ([]enigma.RotorID, error) {
	fields := splitList(list)
	ids := make([]enigma.RotorID, 0, len(fields))
	for _, f := range fields {
		id, err := enigma.ParseRotorID(f)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseSettingList parses rotor positions or ring settings.  Values are
// either comma separated numbers/letters ("0,4,25", "A,E,25") or a run of
// letters read as a rotor window ("AEZ").  field names the flag in errors.
// Range checking is left to the engine.
func ParseSettingList(field, list string) ([]int, error) {
	list = strings.TrimSpace(list)
	if list != "" && isLetters(list) && !strings.ContainsAny(list, ", ") {
		out := make([]int, 0, len(list))
		for _, r := range strings.ToUpper(list) {
			i, _ := enigma.Index(r)
			out = append(out, i)
		}
		return out, nil
	}

	fields := splitList(list)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if len(f) == 1 && isLetters(f) {
			i, _ := enigma.Index(rune(strings.ToUpper(f)[0]))
			out = append(out, i)
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, &errors.ConfigError{
				Field:   field,
				Value:   f,
				Message: "not a number or letter",
				Hint:    "use 0-25 or A-Z, e.g. 0,4,25 or AEZ",
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// ParsePlugboard accepts "AB CD" or "AB,CD".  Letter reuse is caught when
// the machine is built.
func ParsePlugboard(list string) ([]enigma.Pair, error) {
	pairs, err := enigma.ParsePairs(list)
	if err != nil {
		return nil, errors.FromSettings(err)
	}
	return pairs, nil
}

func splitList(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func isLetters(s string) bool {
	for _, r := range s {
		if !enigma.IsLetter(r) && !(r >= 'a' && r <= 'z') {
			return false
		}
	}
	return true
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent and that
// the key sheet builds a machine.
func (c *Config) Validate() error {
	if _, err := enigma.New(c.Settings()); err != nil {
		return errors.FromSettings(err)
	}

	if c.Jobs < 1 {
		return &errors.ConfigError{
			Field:   "jobs",
			Value:   c.Jobs,
			Message: "must be at least 1",
		}
	}

	if c.Interactive && len(c.Inputs) > 0 {
		return &errors.ConfigError{
			Field:   "interactive",
			Message: "interactive mode and input files are mutually exclusive",
			Hint:    "drop the file arguments or -i",
		}
	}

	if c.OutputDir != "" && len(c.Inputs) == 0 {
		return &errors.ConfigError{
			Field:   "output-dir",
			Value:   c.OutputDir,
			Message: "only valid with input files",
			Hint:    "stdin input is always written to stdout",
		}
	}

	return nil
}
