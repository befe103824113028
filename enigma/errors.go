package enigma

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrRotorCount       = errors.New("rotor count mismatch")
	ErrOutOfRange       = errors.New("value out of range 0-25")
	ErrUnknownRotor     = errors.New("unknown rotor")
	ErrUnknownReflector = errors.New("unknown reflector")
	ErrPlugboard        = errors.New("invalid plugboard pairing")
)

// SettingsError reports a construction-time problem with one field of
// Settings.  It unwraps to one of the sentinel errors above.
type SettingsError struct {
	Field string      // "rotors", "positions", "rings", "plugboard", "reflector"
	Value interface{} // offending value, nil when not applicable
	Err   error
}

func (e *SettingsError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("enigma: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("enigma: %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *SettingsError) Unwrap() error { return e.Err }

func settingsErr(field string, value interface{}, err error) *SettingsError {
	return &SettingsError{Field: field, Value: value, Err: err}
}
