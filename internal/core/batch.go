package core

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"goenigma/config"
	"goenigma/enigma"
	"goenigma/internal/errors"
	"goenigma/internal/metrics"
	"goenigma/util"
)

// BatchMode enciphers each input file as a separate message: every job
// gets its own machine built from the same initial settings, so files can
// be processed in parallel and deciphered independently.
type BatchMode struct {
	Settings  enigma.Settings
	Inputs    []string
	OutputDir string // empty: write to stdout in argument order
	Overwrite bool
	Jobs      int
	Logger    *util.Logger
	Metrics   *metrics.Collector

	// Stdout defaults to os.Stdout when nil.
	Stdout io.Writer
}

func (m *BatchMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run processes all inputs, at most Jobs at a time.  The first failure
// cancels the remaining jobs.
func (m *BatchMode) Run(ctx context.Context) error {
	if len(m.Inputs) == 0 {
		return errors.ErrNoInput
	}
	if m.OutputDir != "" {
		if err := m.prepareOutputDir(); err != nil {
			return err
		}
	}

	jobs := m.Jobs
	if jobs < 1 {
		jobs = config.DefaultJobs
	}
	m.Logger.Verbose("enciphering %d file(s), %d at a time", len(m.Inputs), jobs)

	// Without an output directory results are buffered so stdout keeps
	// argument order.
	var results []bytes.Buffer
	if m.OutputDir == "" {
		results = make([]bytes.Buffer, len(m.Inputs))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, input := range m.Inputs {
		i, input := i, input
		g.Go(func() error {
			if results != nil {
				return m.runToBuffer(ctx, input, &results[i])
			}
			return m.runToFile(ctx, input)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range results {
		if _, err := results[i].WriteTo(m.stdout()); err != nil {
			return errors.WrapJob("write", "stdout", err)
		}
	}
	return nil
}

func (m *BatchMode) prepareOutputDir() error {
	if err := os.MkdirAll(m.OutputDir, 0o755); err != nil {
		return errors.WrapJob("mkdir", m.OutputDir, err)
	}
	seen := make(map[string]string, len(m.Inputs))
	for _, in := range m.Inputs {
		out := m.outputPath(in)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%w: %s and %s -> %s", errors.ErrDuplicateOutput, prev, in, out)
		}
		seen[out] = in
	}
	return nil
}

func (m *BatchMode) outputPath(input string) string {
	return filepath.Join(m.OutputDir, filepath.Base(input))
}

// runToFile enciphers input into the output directory.  The input is
// opened before the output is created, and a failed job leaves no output
// file behind.
func (m *BatchMode) runToFile(ctx context.Context, input string) error {
	src, err := m.openInput(input)
	if err != nil {
		return err
	}
	defer src.Close()

	out := m.outputPath(input)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !m.Overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(out, flags, config.OutputFileMode)
	if err != nil {
		if os.IsExist(err) {
			err = fmt.Errorf("%w (use --overwrite)", errors.ErrOutputExists)
		}
		m.Metrics.RecordError(err.Error())
		return errors.WrapJob("create", out, pathCause(err))
	}

	jobErr := m.runJob(ctx, input, src, f)
	if err := f.Close(); err != nil && jobErr == nil {
		jobErr = errors.WrapJob("write", out, pathCause(err))
	}
	if jobErr != nil {
		if err := os.Remove(out); err != nil {
			m.Logger.Warn("remove partial output %s: %v", out, err)
		}
	}
	return jobErr
}

// runToBuffer enciphers input into w, used when results go to stdout.
func (m *BatchMode) runToBuffer(ctx context.Context, input string, w io.Writer) error {
	src, err := m.openInput(input)
	if err != nil {
		return err
	}
	defer src.Close()
	return m.runJob(ctx, input, src, w)
}

func (m *BatchMode) openInput(input string) (*os.File, error) {
	f, err := os.Open(input)
	if err != nil {
		m.Metrics.RecordError(err.Error())
		return nil, errors.WrapJob("open", input, pathCause(err))
	}
	return f, nil
}

// runJob enciphers src into w with a fresh machine.
func (m *BatchMode) runJob(ctx context.Context, input string, src io.Reader, w io.Writer) error {
	log := m.Logger.With(filepath.Base(input))
	m.Metrics.JobStarted()
	defer m.Metrics.JobFinished()

	machine, err := enigma.New(m.Settings)
	if err != nil {
		return errors.FromSettings(err)
	}

	n, err := util.TransformCopy(ctx, w, src, keyFunc(machine, m.Metrics))
	if err != nil {
		m.Metrics.RecordError(err.Error())
		return errors.WrapJob("encipher", input, err)
	}

	log.Verbose("%d bytes, final window %s", n, machine.Window())
	return nil
}

// pathCause strips the op and path from a *fs.PathError, since JobError
// already names both.
func pathCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
