package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"goenigma/enigma"
	"goenigma/internal/metrics"
	"goenigma/util"
)

// StreamMode enciphers stdin to stdout through a single machine, so the
// whole input is one message.
type StreamMode struct {
	Machine *enigma.Machine
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
}

func (m *StreamMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *StreamMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run copies stdin to stdout until EOF or cancellation.
func (m *StreamMode) Run(ctx context.Context) error {
	m.Logger.Verbose("reading from stdin, window %s", m.Machine.Window())

	n, err := util.TransformCopy(ctx, m.stdout(), m.stdin(), keyFunc(m.Machine, m.Metrics))
	if err != nil {
		m.Metrics.RecordError(err.Error())
		return fmt.Errorf("stream: %w", err)
	}

	m.Logger.Verbose("wrote %d bytes, window now %s", n, m.Machine.Window())
	return nil
}
