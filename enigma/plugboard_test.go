package enigma

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSwap(t *testing.T) {
	pairs := []Pair{{'A', 'B'}, {'C', 'D'}}
	tests := []struct {
		in, want rune
	}{
		{'A', 'B'},
		{'B', 'A'},
		{'C', 'D'},
		{'D', 'C'},
		{'E', 'E'},
	}
	for _, tt := range tests {
		if got := Swap(tt.in, pairs); got != tt.want {
			t.Errorf("Swap(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSwap_Involution(t *testing.T) {
	pairs := []Pair{{'Q', 'W'}, {'E', 'R'}, {'Z', 'A'}, {'M', 'N'}}
	pb, err := NewPlugboard(pairs)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range Alphabet {
		if got := Swap(Swap(l, pairs), pairs); got != l {
			t.Errorf("Swap twice(%q) = %q", l, got)
		}
		if got := pb.Swap(pb.Swap(l)); got != l {
			t.Errorf("Plugboard.Swap twice(%q) = %q", l, got)
		}
		if pb.Swap(l) != Swap(l, pairs) {
			t.Errorf("table and scan disagree on %q", l)
		}
	}
}

func TestNewPlugboard_Errors(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
	}{
		{"letter reused", []Pair{{'A', 'B'}, {'B', 'C'}}},
		{"letter reused second slot", []Pair{{'A', 'B'}, {'C', 'A'}}},
		{"self pair", []Pair{{'A', 'A'}}},
		{"digit", []Pair{{'A', '1'}}},
		{"non-ascii", []Pair{{'É', 'B'}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlugboard(tt.pairs)
			if !errors.Is(err, ErrPlugboard) {
				t.Fatalf("err = %v, want ErrPlugboard", err)
			}
			var se *SettingsError
			if !errors.As(err, &se) || se.Field != "plugboard" {
				t.Errorf("want *SettingsError for plugboard, got %#v", err)
			}
		})
	}
}

func TestNewPlugboard_LowercaseNormalized(t *testing.T) {
	pb, err := NewPlugboard([]Pair{{'a', 'b'}})
	if err != nil {
		t.Fatal(err)
	}
	if got := pb.Swap('A'); got != 'B' {
		t.Errorf("Swap('A') = %q, want 'B'", got)
	}
	if diff := cmp.Diff([]Pair{{'A', 'B'}}, pb.Pairs()); diff != "" {
		t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePairs(t *testing.T) {
	tests := []struct {
		input   string
		want    []Pair
		wantErr bool
	}{
		{"AB CD", []Pair{{'A', 'B'}, {'C', 'D'}}, false},
		{"ab,cd", []Pair{{'A', 'B'}, {'C', 'D'}}, false},
		{"  TH ,EQ ", []Pair{{'T', 'H'}, {'E', 'Q'}}, false},
		{"", []Pair{}, false},
		{"ABC", nil, true},
		{"A", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePairs(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePairs(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
