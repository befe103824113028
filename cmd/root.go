// Package cmd wires up the CLI flags and dispatches to the cipher modes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"goenigma/config"
	"goenigma/enigma"
	"goenigma/internal/core"
	"goenigma/internal/errors"
	"goenigma/internal/metrics"
	"goenigma/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X goenigma/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the appropriate goenigma mode on the
// process's standard streams.
func Execute(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

// Exit statuses returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an Execute result to a process exit status.  A bad key
// sheet or option value exits with ExitUsage.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsConfig(err):
		return ExitUsage
	}
	return ExitFailure
}

// flagValues holds raw flag input; key-sheet flags are parsed only when
// set, so env and file values survive unset flags.
type flagValues struct {
	rotors, reflector, positions, rings, plugboard string
	configPath                                     string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Default()
	var fv flagValues
	fs := flag.NewFlagSet("goenigma", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// ── key sheet ────────────────────────────────────────────────
	fs.StringVarP(&fv.rotors, "rotors", "r", "I,II,III", "Rotor order, left to right")
	fs.StringVar(&fv.reflector, "reflector", "B", "Reflector (B or C)")
	fs.StringVarP(&fv.positions, "positions", "P", "0,0,0", "Start positions: 0-25 list or letters (e.g. AEZ)")
	fs.StringVarP(&fv.rings, "rings", "R", "0,0,0", "Ring settings: 0-25 list or letters")
	fs.StringVarP(&fv.plugboard, "plugboard", "b", "", "Plugboard pairs, e.g. \"AB CD EF\"")
	fs.StringVarP(&fv.configPath, "config", "c", "", "YAML key-sheet file")

	// ── input / output ───────────────────────────────────────────
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Prompt for lines on a terminal")
	fs.StringVarP(&cfg.OutputDir, "output-dir", "o", "", "Write each input file's result here")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Replace existing files in --output-dir")
	fs.IntVarP(&cfg.Jobs, "jobs", "j", config.DefaultJobs, "Files enciphered in parallel")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVar(&cfg.ShowFingerprint, "fingerprint", false, "Print the key-sheet fingerprint and exit")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Validate the key sheet and exit")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(stderr, fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(stderr, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "goenigma %s\n", version)
		return nil
	}

	// ── layered configuration ────────────────────────────────────
	if err := overlay(cfg, fs, &fv); err != nil {
		return err
	}
	cfg.Inputs = fs.Args()

	if !fs.Changed("interactive") && len(cfg.Inputs) == 0 && isTerminal(stdin) {
		cfg.Interactive = true
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)
	logger.Verbose("key sheet fingerprint %s", cfg.Fingerprint())
	logger.Debug("key sheet: %s", cfg.Describe())

	if cfg.ShowFingerprint {
		fmt.Fprintln(stdout, cfg.Fingerprint())
		return nil
	}
	if cfg.DryRun {
		logger.Info("key sheet OK")
		return nil
	}

	// ── build components ─────────────────────────────────────────
	mc := metrics.New()
	mode, err := core.Build(cfg, logger, mc)
	if err != nil {
		return err
	}
	attachIO(mode, stdin, stdout)

	err = mode.Run(ctx)
	if logger.Level() >= util.LogDebug {
		logger.Debug("metrics: %s", mc.JSON())
	}
	return err
}

// ── helpers ──────────────────────────────────────────────────────────

// overlay applies key-sheet file, then environment, then any flag the
// user actually set.
func overlay(cfg *config.Config, fs *flag.FlagSet, fv *flagValues) error {
	path := fv.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := config.LoadFile(path, cfg); err != nil {
			return err
		}
	}

	// Flags bound straight into cfg must win over env, so remember them.
	interactive, outputDir, overwrite, jobs, verbose := cfg.Interactive, cfg.OutputDir, cfg.Overwrite, cfg.Jobs, cfg.Verbose
	if err := config.LoadFromEnv(cfg); err != nil {
		return err
	}
	if fs.Changed("interactive") {
		cfg.Interactive = interactive
	}
	if fs.Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if fs.Changed("overwrite") {
		cfg.Overwrite = overwrite
	}
	if fs.Changed("jobs") {
		cfg.Jobs = jobs
	}
	if fs.Changed("verbose") {
		cfg.Verbose = verbose
	}

	if fs.Changed("rotors") {
		ids, err := config.ParseRotorList(fv.rotors)
		if err != nil {
			return fmt.Errorf("rotors: %w", err)
		}
		cfg.Rotors = ids
	}
	if fs.Changed("reflector") {
		id, err := enigma.ParseReflectorID(fv.reflector)
		if err != nil {
			return fmt.Errorf("reflector: %w", err)
		}
		cfg.Reflector = id
	}
	if fs.Changed("positions") {
		p, err := config.ParseSettingList("positions", fv.positions)
		if err != nil {
			return err
		}
		cfg.Positions = p
	}
	if fs.Changed("rings") {
		r, err := config.ParseSettingList("rings", fv.rings)
		if err != nil {
			return err
		}
		cfg.Rings = r
	}
	if fs.Changed("plugboard") {
		pairs, err := config.ParsePlugboard(fv.plugboard)
		if err != nil {
			return err
		}
		cfg.Plugboard = pairs
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// attachIO points a mode at the given streams instead of the process
// defaults.
func attachIO(mode core.Mode, stdin io.Reader, stdout io.Writer) {
	switch m := mode.(type) {
	case *core.StreamMode:
		m.Stdin, m.Stdout = stdin, stdout
	case *core.InteractiveMode:
		if f, ok := stdin.(*os.File); ok {
			m.Terminal = f
		}
		m.Stdout = stdout
	case *core.BatchMode:
		m.Stdout = stdout
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `goenigma – Enigma cipher machine v%s

Enciphers text with a three-rotor Enigma.  Running the ciphertext
through a machine with the same key sheet gives back the plaintext.

Usage:
  goenigma [options] < plain.txt > cipher.txt   Stream stdin to stdout
  goenigma [options] -i                         Interactive prompt
  goenigma [options] [-o DIR] FILE...           Batch, one message per file

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Environment:
  GOENIGMA_ROTORS, GOENIGMA_REFLECTOR, GOENIGMA_POSITIONS, GOENIGMA_RINGS,
  GOENIGMA_PLUGBOARD, GOENIGMA_CONFIG, GOENIGMA_OUTPUT_DIR, GOENIGMA_JOBS,
  GOENIGMA_OVERWRITE, GOENIGMA_VERBOSE

Examples:
  echo "HELLO WORLD" | goenigma -r I,II,III -P AAA
  goenigma -r IV,II,V --reflector C -P 0,4,25 -R 1,2,3 -b "AB CD" msg.txt
  goenigma -c day-17.yaml -o out/ *.txt
  goenigma -c day-17.yaml --fingerprint
`)
}
