package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"goenigma/enigma"
	"goenigma/internal/errors"
)

func TestLoadFromEnv_KeySheet(t *testing.T) {
	t.Setenv("GOENIGMA_ROTORS", "IV,V,I")
	t.Setenv("GOENIGMA_REFLECTOR", "c")
	t.Setenv("GOENIGMA_POSITIONS", "AEZ")
	t.Setenv("GOENIGMA_RINGS", "1,2,3")
	t.Setenv("GOENIGMA_PLUGBOARD", "TH EQ")

	cfg := Default()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Rotors:    []enigma.RotorID{enigma.RotorIV, enigma.RotorV, enigma.RotorI},
		Reflector: enigma.ReflectorC,
		Positions: []int{0, 4, 25},
		Rings:     []int{1, 2, 3},
		Plugboard: []enigma.Pair{{A: 'T', B: 'H'}, {A: 'E', B: 'Q'}},
		Jobs:      DefaultJobs,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnv_RunOptions(t *testing.T) {
	t.Setenv("GOENIGMA_OUTPUT_DIR", "/tmp/out")
	t.Setenv("GOENIGMA_OVERWRITE", "Yes")
	t.Setenv("GOENIGMA_JOBS", "8")
	t.Setenv("GOENIGMA_VERBOSE", "2")

	cfg := Default()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "/tmp/out" || !cfg.Overwrite || cfg.Jobs != 8 || cfg.Verbose != 2 {
		t.Errorf("unexpected run options: %+v", cfg)
	}
}

func TestLoadFromEnv_InvalidIntIgnored(t *testing.T) {
	t.Setenv("GOENIGMA_JOBS", "many")
	cfg := Default()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Jobs != DefaultJobs {
		t.Errorf("Jobs = %d, want default %d", cfg.Jobs, DefaultJobs)
	}
}

func TestLoadFromEnv_BadKeySheet(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"GOENIGMA_ROTORS", "I,II,IX"},
		{"GOENIGMA_REFLECTOR", "A"},
		{"GOENIGMA_POSITIONS", "1,??,3"},
		{"GOENIGMA_PLUGBOARD", "ABC"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if err := LoadFromEnv(Default()); !errors.IsConfig(err) {
				t.Errorf("want config error, got %v", err)
			}
		})
	}
}

func TestLoadFromEnv_EmptyLeavesDefaults(t *testing.T) {
	for _, k := range []string{"ROTORS", "REFLECTOR", "POSITIONS", "RINGS", "PLUGBOARD"} {
		os.Unsetenv(EnvPrefix + k)
	}
	cfg := Default()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config changed (-want +got):\n%s", diff)
	}
}

// ── Key-sheet files ──────────────────────────────────────────────────

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want func(*Config)
	}{
		{
			name: "lists",
			yaml: "rotors: [II, IV, V]\nreflector: C\npositions: [0, 4, 25]\nrings: [1, 2, 3]\nplugboard: [AB, CD]\n",
			want: func(c *Config) {
				c.Rotors = []enigma.RotorID{enigma.RotorII, enigma.RotorIV, enigma.RotorV}
				c.Reflector = enigma.ReflectorC
				c.Positions = []int{0, 4, 25}
				c.Rings = []int{1, 2, 3}
				c.Plugboard = []enigma.Pair{{A: 'A', B: 'B'}, {A: 'C', B: 'D'}}
			},
		},
		{
			name: "scalars",
			yaml: "rotors: I II III\npositions: AEZ\nplugboard: ab cd\n",
			want: func(c *Config) {
				c.Positions = []int{0, 4, 25}
				c.Plugboard = []enigma.Pair{{A: 'A', B: 'B'}, {A: 'C', B: 'D'}}
			},
		},
		{
			name: "partial",
			yaml: "rings: BCD\n",
			want: func(c *Config) { c.Rings = []int{1, 2, 3} },
		},
		{
			name: "empty",
			yaml: "",
			want: func(*Config) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Default()
			if err := Decode(strings.NewReader(tt.yaml), got); err != nil {
				t.Fatal(err)
			}
			want := Default()
			tt.want(want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "rotor: [I, II, III]\n"},
		{"nested list", "positions: [[1], 2, 3]\n"},
		{"mapping", "rings: {a: 1}\n"},
		{"bad rotor", "rotors: [I, II, VII]\n"},
		{"bad reflector", "reflector: Z\n"},
		{"bad position", "positions: [1, q1, 3]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Decode(strings.NewReader(tt.yaml), Default()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.yaml")
	if err := os.WriteFile(path, []byte("positions: [5, 10, 15]\nplugboard: [AB]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := LoadFile(path, cfg); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{5, 10, 15}, cfg.Positions); diff != "" {
		t.Errorf("positions (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), Default())
	var ce *errors.ConfigError
	if !errors.As(err, &ce) || ce.Field != "config" {
		t.Errorf("want ConfigError for config, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("should unwrap to os.ErrNotExist")
	}
}
