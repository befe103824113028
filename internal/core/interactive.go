package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"goenigma/config"
	"goenigma/enigma"
	ierrors "goenigma/internal/errors"
	"goenigma/internal/metrics"
	"goenigma/util"
)

// InteractiveMode reads lines from a terminal and prints each one
// enciphered.  The machine keeps its state from line to line, as if the
// operator kept typing on the same keyboard.
type InteractiveMode struct {
	Machine *enigma.Machine
	Prompt  string
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Terminal defaults to os.Stdin; Stdout to os.Stdout.
	Terminal *os.File
	Stdout   io.Writer
}

type termIO struct {
	io.Reader
	io.Writer
}

// Run puts the terminal in raw mode and serves lines until EOF (Ctrl-D)
// or cancellation.
func (m *InteractiveMode) Run(ctx context.Context) error {
	in := m.Terminal
	if in == nil {
		in = os.Stdin
	}
	out := m.Stdout
	if out == nil {
		out = os.Stdout
	}

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("interactive: %w", ierrors.ErrNotInteractive)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("interactive: %w", err)
	}
	defer term.Restore(fd, state) //nolint:errcheck

	return m.serve(ctx, termIO{Reader: in, Writer: out})
}

func (m *InteractiveMode) serve(ctx context.Context, rw io.ReadWriter) error {
	prompt := m.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}
	t := term.NewTerminal(rw, prompt)
	key := keyFunc(m.Machine, m.Metrics)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("interactive: %w", err)
		}
		if _, err := fmt.Fprintln(t, strings.Map(key, line)); err != nil {
			return fmt.Errorf("interactive: %w", err)
		}
		m.Logger.Debug("window %s", m.Machine.Window())
	}
}
