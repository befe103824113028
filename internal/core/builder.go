package core

import (
	"goenigma/config"
	"goenigma/enigma"
	"goenigma/internal/errors"
	"goenigma/internal/metrics"
	"goenigma/util"
)

// Build constructs the appropriate Mode from the given configuration.
// The key sheet is validated here, so a bad setting never reaches I/O.
func Build(cfg *config.Config, logger *util.Logger, mc *metrics.Collector) (Mode, error) {
	switch {
	case len(cfg.Inputs) > 0:
		return buildBatch(cfg, logger, mc)
	case cfg.Interactive:
		return buildInteractive(cfg, logger, mc)
	default:
		return buildStream(cfg, logger, mc)
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildStream(cfg *config.Config, logger *util.Logger, mc *metrics.Collector) (Mode, error) {
	machine, err := newMachine(cfg)
	if err != nil {
		return nil, err
	}
	return &StreamMode{Machine: machine, Logger: logger, Metrics: mc}, nil
}

func buildInteractive(cfg *config.Config, logger *util.Logger, mc *metrics.Collector) (Mode, error) {
	machine, err := newMachine(cfg)
	if err != nil {
		return nil, err
	}
	return &InteractiveMode{
		Machine: machine,
		Prompt:  config.DefaultPrompt,
		Logger:  logger,
		Metrics: mc,
	}, nil
}

func buildBatch(cfg *config.Config, logger *util.Logger, mc *metrics.Collector) (Mode, error) {
	// Build once up front so errors surface before any file is touched.
	if _, err := newMachine(cfg); err != nil {
		return nil, err
	}
	return &BatchMode{
		Settings:  cfg.Settings(),
		Inputs:    append([]string(nil), cfg.Inputs...),
		OutputDir: cfg.OutputDir,
		Overwrite: cfg.Overwrite,
		Jobs:      cfg.Jobs,
		Logger:    logger,
		Metrics:   mc,
	}, nil
}

// ── shared helpers ───────────────────────────────────────────────────

func newMachine(cfg *config.Config) (*enigma.Machine, error) {
	m, err := enigma.New(cfg.Settings())
	if err != nil {
		return nil, errors.FromSettings(err)
	}
	return m, nil
}
