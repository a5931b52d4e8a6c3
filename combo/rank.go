package combo

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// canonicalize orders a completed combo's words for display: sequence mode
// keeps commit order, bag mode re-sorts by (-length, lexicographic) (spec
// 4.F, "Canonicalisation").
func canonicalize(words []string, keepOrder bool) []string {
	out := make([]string, len(words))
	copy(out, words)
	if keepOrder {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li > lj
		}
		return out[i] < out[j]
	})
	return out
}

// dedupeKey builds the canonical-word-tuple key used to collapse
// candidates that resolve to the same set of words (spec 4.G,
// "Deduplication").
func dedupeKey(words []string) string {
	return strings.Join(words, "\x1f")
}

// dedupe keeps, for each distinct word tuple, the candidate with the
// highest combo score (spec 4.G).
func dedupe(candidates []Candidate) []Candidate {
	best := make(map[string]int, len(candidates))
	var out []Candidate
	for _, c := range candidates {
		key := dedupeKey(c.Words)
		if i, ok := best[key]; ok {
			if c.Score > out[i].Score {
				out[i] = c
			}
			continue
		}
		best[key] = len(out)
		out = append(out, c)
	}
	return out
}

func countMultiSingle(words []string) (multi, single int) {
	for _, w := range words {
		if utf8.RuneCountInString(w) > 1 {
			multi++
		} else {
			single++
		}
	}
	return
}

func totalSyllables(words []string) int {
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return total
}

// rankLess implements the final ranking comparator (spec 4.G, "Ranking
// key"): more multi-syllable words first, then fewer single-syllable
// words, then fewer total words, then higher combo score, then more
// syllables covered, then combo text as a last deterministic tiebreaker.
func rankLess(a, b Candidate) bool {
	ma, sa := countMultiSingle(a.Words)
	mb, sb := countMultiSingle(b.Words)
	if ma != mb {
		return ma > mb
	}
	if sa != sb {
		return sa < sb
	}
	if len(a.Words) != len(b.Words) {
		return len(a.Words) < len(b.Words)
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	la, lb := totalSyllables(a.Words), totalSyllables(b.Words)
	if la != lb {
		return la > lb
	}
	return a.ComboText < b.ComboText
}

func rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return rankLess(candidates[i], candidates[j])
	})
}
