package config

// loader.go - configuration loading from environment variables and
// YAML key-sheet files.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (LoadFromEnv)
//   3. Key-sheet file  (LoadFile)
//   4. Defaults   (defaults.go)

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"goenigma/enigma"
	"goenigma/internal/errors"
)

// ── Key-sheet file ───────────────────────────────────────────────────

// KeySheet is the on-disk form of a day's settings:
//
//	rotors: [I, II, III]
//	reflector: B
//	positions: AEZ          # or [0, 4, 25]
//	rings: [1, 2, 3]
//	plugboard: [AB, CD]     # or "AB CD"
//
// Omitted keys keep their current value.
type KeySheet struct {
	Rotors    listValue `yaml:"rotors"`
	Reflector string    `yaml:"reflector"`
	Positions listValue `yaml:"positions"`
	Rings     listValue `yaml:"rings"`
	Plugboard listValue `yaml:"plugboard"`
}

// listValue accepts either a YAML sequence of scalars or one scalar.
type listValue []string

func (l *listValue) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = listValue{value.Value}
	case yaml.SequenceNode:
		out := make(listValue, 0, len(value.Content))
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: list items must be scalars", n.Line)
			}
			out = append(out, n.Value)
		}
		*l = out
	default:
		return fmt.Errorf("line %d: expected a list or a string", value.Line)
	}
	return nil
}

func (l listValue) join(sep string) string { return strings.Join(l, sep) }

// LoadFile overlays the key sheet at path onto cfg.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return &errors.ConfigError{Field: "config", Value: path, Message: "cannot open key sheet", Err: err}
	}
	defer f.Close()

	if err := Decode(f, cfg); err != nil {
		return &errors.ConfigError{Field: "config", Value: path, Message: err.Error(), Err: err}
	}
	return nil
}

// Decode reads a YAML key sheet from r and overlays it onto cfg.  Unknown
// keys are rejected.
func Decode(r io.Reader, cfg *Config) error {
	var ks KeySheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ks); err != nil && err != io.EOF {
		return err
	}
	return ks.apply(cfg)
}

func (ks *KeySheet) apply(cfg *Config) error {
	if len(ks.Rotors) > 0 {
		ids, err := ParseRotorList(ks.Rotors.join(","))
		if err != nil {
			return errors.FromSettings(err)
		}
		cfg.Rotors = ids
	}
	if ks.Reflector != "" {
		id, err := enigma.ParseReflectorID(ks.Reflector)
		if err != nil {
			return errors.FromSettings(err)
		}
		cfg.Reflector = id
	}
	if len(ks.Positions) > 0 {
		v, err := ParseSettingList("positions", ks.Positions.join(","))
		if err != nil {
			return err
		}
		cfg.Positions = v
	}
	if len(ks.Rings) > 0 {
		v, err := ParseSettingList("rings", ks.Rings.join(","))
		if err != nil {
			return err
		}
		cfg.Rings = v
	}
	if len(ks.Plugboard) > 0 {
		pairs, err := ParsePlugboard(ks.Plugboard.join(" "))
		if err != nil {
			return err
		}
		cfg.Plugboard = pairs
	}
	return nil
}

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the GOENIGMA_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).  Unlike run options, a
// malformed key-sheet variable is an error: a silently ignored setting
// would produce the wrong ciphertext.

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flags are applied so that flags take precedence.
func LoadFromEnv(cfg *Config) error {
	if v := env("ROTORS"); v != "" {
		ids, err := ParseRotorList(v)
		if err != nil {
			return errors.FromSettings(err)
		}
		cfg.Rotors = ids
	}
	if v := env("REFLECTOR"); v != "" {
		id, err := enigma.ParseReflectorID(v)
		if err != nil {
			return errors.FromSettings(err)
		}
		cfg.Reflector = id
	}
	if v := env("POSITIONS"); v != "" {
		p, err := ParseSettingList("positions", v)
		if err != nil {
			return err
		}
		cfg.Positions = p
	}
	if v := env("RINGS"); v != "" {
		r, err := ParseSettingList("rings", v)
		if err != nil {
			return err
		}
		cfg.Rings = r
	}
	if v := env("PLUGBOARD"); v != "" {
		pairs, err := ParsePlugboard(v)
		if err != nil {
			return err
		}
		cfg.Plugboard = pairs
	}

	// Run options
	if v := env("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if envBool("OVERWRITE") {
		cfg.Overwrite = true
	}
	if v := envInt("JOBS"); v > 0 {
		cfg.Jobs = v
	}
	if v := envInt("VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────

func env(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}

func envInt(key string) int {
	v := env(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(env(key))
	return v == "1" || v == "true" || v == "yes"
}
