// Package combo implements the beam-search combination engine that
// segments a multiset of Hangul initials into ranked dictionary-word
// decompositions (spec 4.E-4.G).
package combo

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	hangulFirst = 0xAC00
	hangulLast  = 0xD7A3
)

func isHangul(r rune) bool {
	return r >= hangulFirst && r <= hangulLast
}

// InitialsFromWords maps each input word to its first Hangul syllable, or
// accepts bare single syllables as-is (spec 4.E). Strings with no Hangul
// are silently skipped; input order is preserved.
func InitialsFromWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		s := norm.NFC.String(strings.TrimSpace(word))
		runes := []rune(s)
		if len(runes) == 1 && isHangul(runes[0]) {
			out = append(out, s)
			continue
		}
		for _, r := range runes {
			if isHangul(r) {
				out = append(out, string(r))
				break
			}
		}
	}
	return out
}
