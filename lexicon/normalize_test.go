package lexicon

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain word", "결근", "결근"},
		{"trailing discriminator", "단어01", "단어"},
		{"collapses whitespace", "결근  신상", "결근신상"},
		{"drops non-hangul", "결근(缺勤)", "결근"},
		{"drops latin and punctuation", "hello 결근!", "결근"},
		{"zero width stripped", "결​근", "결근"},
		{"all non-hangul yields empty", "123", ""},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsHangulSyllable(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"first in block", '가', true},
		{"last in block", '힣', true},
		{"jamo outside block", 'ㄱ', false},
		{"latin letter", 'a', false},
		{"digit", '1', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHangulSyllable(tt.r); got != tt.want {
				t.Errorf("IsHangulSyllable(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
