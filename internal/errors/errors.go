// Package errors provides domain-specific error types for goenigma.
//
// These types carry structured context (the offending flag or key-sheet
// field, a hint for the operator) that gives better diagnostics than plain
// string wrapping.
package errors

import (
	"errors"
	"fmt"

	"goenigma/enigma"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrNoInput         = errors.New("no input")
	ErrOutputExists    = errors.New("output file already exists")
	ErrNotInteractive  = errors.New("stdin is not a terminal")
	ErrDuplicateOutput = errors.New("two inputs map to the same output file")
)

// ── Structured error types ───────────────────────────────────────────

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // flag / key-sheet field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // underlying cause (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// JobError ties a failure to the input it happened on.
type JobError struct {
	Op    string // "open", "encipher", "write"
	Input string
	Err   error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Input, e.Err)
}

func (e *JobError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// FromSettings converts an engine settings error into a ConfigError
// naming the matching CLI flag.  Other errors are returned unchanged.
func FromSettings(err error) error {
	var se *enigma.SettingsError
	if !errors.As(err, &se) {
		return err
	}
	return &ConfigError{
		Field:   se.Field,
		Value:   se.Value,
		Message: se.Err.Error(),
		Hint:    settingsHint(se.Err),
		Err:     err,
	}
}

// WrapJob creates a JobError.
func WrapJob(op, input string, err error) *JobError {
	return &JobError{Op: op, Input: input, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsConfig reports whether err stems from bad configuration rather than
// I/O, so the CLI can exit with a usage status instead of a failure one.
func IsConfig(err error) bool {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return true
	}
	var se *enigma.SettingsError
	return errors.As(err, &se)
}

func settingsHint(err error) string {
	switch {
	case errors.Is(err, enigma.ErrRotorCount):
		return "give exactly three values, left to right, e.g. I,II,III"
	case errors.Is(err, enigma.ErrOutOfRange):
		return "positions and rings take 0-25 or a letter A-Z"
	case errors.Is(err, enigma.ErrUnknownRotor):
		return "available rotors: I II III IV V"
	case errors.Is(err, enigma.ErrUnknownReflector):
		return "available reflectors: B C"
	case errors.Is(err, enigma.ErrPlugboard):
		return "pairs look like \"AB CD EF\"; each letter at most once"
	}
	return ""
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These let callers that import goenigma/internal/errors classify errors
// without also importing the standard library package.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }
