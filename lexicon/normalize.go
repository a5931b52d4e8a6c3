// Package lexicon builds and serves the prefix-indexed, source-weighted
// Korean dictionary used by the combination search engine in package combo.
package lexicon

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	hangulFirst = 0xAC00 // '가'
	hangulLast  = 0xD7A3 // '힣'
)

var zeroWidthAndSoftHyphen = []rune{
	'﻿', '​', '‌', '‍', '⁠', // zero-width
	'­', // soft hyphen
}

// IsHangulSyllable reports whether r falls in the precomposed Hangul
// Syllables block 가..힣.
func IsHangulSyllable(r rune) bool {
	return r >= hangulFirst && r <= hangulLast
}

// Normalize canonicalizes a raw headword per spec 4.A:
//  1. strip zero-width characters and the soft hyphen
//  2. collapse whitespace runs to a single space, trim
//  3. apply Unicode NFC
//  4. strip trailing ASCII digit discriminators (단어01 -> 단어)
//  5. drop every rune outside 가..힣
//
// The result may be empty; callers are expected to discard empty results.
func Normalize(raw string) string {
	s := raw
	for _, zw := range zeroWidthAndSoftHyphen {
		s = strings.ReplaceAll(s, string(zw), "")
	}
	s = strings.TrimSpace(collapseWhitespace(s))
	s = norm.NFC.String(s)
	s = trimTrailingDigits(s)
	return keepHangulOnly(s)
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xA0:
		return true
	}
	return false
}

func trimTrailingDigits(s string) string {
	end := len(s)
	for end > 0 {
		r := rune(s[end-1])
		if r < '0' || r > '9' {
			break
		}
		end--
	}
	return s[:end]
}

func keepHangulOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsHangulSyllable(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
