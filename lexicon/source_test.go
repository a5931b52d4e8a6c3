package lexicon

import (
	"reflect"
	"testing"
)

func TestSourceSetScore(t *testing.T) {
	tests := []struct {
		name string
		set  SourceSet
		want float64
	}{
		{"empty", SourceSet(0), 0},
		{"std only", SourceSTD, 2.0},
		{"urimal only", SourceURIMAL, 1.0},
		{"basic only", SourceBASIC, 3.0},
		{"std and urimal takes max", SourceSTD.Add(SourceURIMAL), 2.0},
		{"all three takes max", SourceSTD.Add(SourceURIMAL).Add(SourceBASIC), 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Score(); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSourceSetNames(t *testing.T) {
	tests := []struct {
		name string
		set  SourceSet
		want []string
	}{
		{"empty", SourceSet(0), nil},
		{"single", SourceURIMAL, []string{"URIMAL"}},
		{"all three sorted", SourceSTD.Add(SourceURIMAL).Add(SourceBASIC), []string{"BASIC", "STD", "URIMAL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Names(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	if s, ok := ParseSource("BASIC"); !ok || s != SourceBASIC {
		t.Errorf("ParseSource(BASIC) = %v, %v, want SourceBASIC, true", s, ok)
	}
	if _, ok := ParseSource("NOPE"); ok {
		t.Error("ParseSource(NOPE) should not be ok")
	}
}
