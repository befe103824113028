// Package core is the orchestration layer.  It wraps the cipher engine
// in complete operational modes and provides a builder that selects the
// right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	enigma  →  util (transform copy)  →  core  →  cmd (CLI)
//
// The engine never touches I/O; every mode owns the reading, writing
// and logging around it.
package core

import (
	"context"

	"goenigma/enigma"
	"goenigma/internal/metrics"
)

// Mode represents a complete operational mode of goenigma (stream,
// interactive, or batch).  Each mode owns its full lifecycle from
// opening input to flushing output.
type Mode interface {
	Run(ctx context.Context) error
}

// keyFunc adapts m for TransformCopy and strings.Map, counting every
// character into mc.
func keyFunc(m *enigma.Machine, mc *metrics.Collector) func(rune) rune {
	return func(r rune) rune {
		r = enigma.Upper(r)
		if !enigma.IsLetter(r) {
			mc.PassedThrough()
			return r
		}
		mc.LetterEnciphered()
		return m.EncodeChar(r)
	}
}
