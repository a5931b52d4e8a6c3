package combo

import "unicode/utf8"

// SegmentPenalty is the fixed per-committed-word deduction used by combo
// scoring, biasing toward fewer/longer words (spec 4.F).
const SegmentPenalty = 0.2

// scoreWord is score_word(w) = trie.lookup(w).score + 0.3*max(0, len(w)-1)
// (spec 4.F).
func scoreWord(idx Index, word string) float64 {
	info, ok := idx.Lookup(word)
	base := 0.0
	if ok {
		base = info.Score
	}
	length := utf8.RuneCountInString(word)
	bonus := 0.0
	if length > 1 {
		bonus = 0.3 * float64(length-1)
	}
	return base + bonus
}

// scorePrefixHint is score_prefix_hint(p) = 0.1*len(p) +
// 0.2*(score of top-1 iter_prefix(p)) (spec 4.F). The top-1 term is 0 if
// no terminals are under p; the length term is added either way.
func scorePrefixHint(idx Index, prefix string) float64 {
	top := idx.IterPrefix(prefix, 1)
	topScore := 0.0
	if len(top) > 0 {
		topScore = top[0].Score
	}
	return 0.1*float64(utf8.RuneCountInString(prefix)) + 0.2*topScore
}
