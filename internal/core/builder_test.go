package core

import (
	"testing"

	"goenigma/config"
	"goenigma/internal/errors"
	"goenigma/util"
)

// TestBuild_Stream verifies that Build produces a StreamMode for the
// default configuration.
func TestBuild_Stream(t *testing.T) {
	mode, err := Build(config.Default(), util.NewLogger(0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mode.(*StreamMode); !ok {
		t.Errorf("expected *StreamMode, got %T", mode)
	}
}

// TestBuild_Interactive verifies Build produces an InteractiveMode.
func TestBuild_Interactive(t *testing.T) {
	cfg := config.Default()
	cfg.Interactive = true

	mode, err := Build(cfg, util.NewLogger(0), nil)
	if err != nil {
		t.Fatal(err)
	}
	im, ok := mode.(*InteractiveMode)
	if !ok {
		t.Fatalf("expected *InteractiveMode, got %T", mode)
	}
	if im.Prompt != config.DefaultPrompt {
		t.Errorf("prompt = %q", im.Prompt)
	}
}

// TestBuild_Batch verifies file arguments select BatchMode.
func TestBuild_Batch(t *testing.T) {
	cfg := config.Default()
	cfg.Inputs = []string{"a.txt", "b.txt"}
	cfg.OutputDir = "out"
	cfg.Jobs = 2

	mode, err := Build(cfg, util.NewLogger(0), nil)
	if err != nil {
		t.Fatal(err)
	}
	bm, ok := mode.(*BatchMode)
	if !ok {
		t.Fatalf("expected *BatchMode, got %T", mode)
	}
	if bm.Jobs != 2 || bm.OutputDir != "out" || len(bm.Inputs) != 2 {
		t.Errorf("unexpected batch mode %+v", bm)
	}
}

// TestBuild_BadSettings verifies key-sheet errors surface as ConfigError.
func TestBuild_BadSettings(t *testing.T) {
	for _, inputs := range [][]string{nil, {"a.txt"}} {
		cfg := config.Default()
		cfg.Inputs = inputs
		cfg.Positions = []int{0, 0}

		_, err := Build(cfg, util.NewLogger(0), nil)
		var ce *errors.ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("inputs %v: want *ConfigError, got %v", inputs, err)
		}
	}
}
