package combo

import (
	"sort"
	"strings"
)

// frontierState is one beam-search node: the syllables not yet consumed,
// the prefix being extended (not yet committed to a word), and the words
// already committed in this branch (spec 3, 4.F).
type frontierState struct {
	remaining *counter
	prefix    string
	committed []string
}

type frontierEntry struct {
	score float64
	state frontierState
}

// Search runs the beam search described in spec 4.F over idx, decomposing
// initials into ranked dictionary-word combos (spec 4.G). beamWidth and
// maxCandidates must be >= 1. A nil sink disables tracing; otherwise every
// step is reported via sink.Emit.
func Search(idx Index, initials []string, beamWidth, maxCandidates int, keepOrder bool, sink Sink) ([]Candidate, error) {
	if beamWidth < 1 || maxCandidates < 1 {
		return nil, ErrInvalidArgument
	}
	if sink == nil {
		sink = noopSink{}
	}

	frontier := []frontierEntry{{
		score: 0,
		state: frontierState{remaining: newCounter(initials)},
	}}

	var results []Candidate

	for len(frontier) > 0 && len(results) < maxCandidates {
		entry := frontier[0]
		frontier = frontier[1:]
		score, st := entry.score, entry.state

		sink.Emit(TraceEvent{
			Kind:         EventPop,
			Score:        score,
			Prefix:       st.prefix,
			Words:        append([]string(nil), st.committed...),
			Remaining:    st.remaining.asMap(),
			FrontierSize: len(frontier),
		})

		if st.remaining.empty() {
			if st.prefix == "" || idx.Contains(st.prefix) {
				completed := append([]string(nil), st.committed...)
				if st.prefix != "" {
					completed = append(completed, st.prefix)
				}
				// The empty word is never committed: a terminal state with
				// no prefix and nothing committed yields no candidate
				// (spec 4.F, "empty initials" edge case).
				if len(completed) > 0 {
					cand := buildCandidate(idx, completed, initials, keepOrder)
					results = append(results, cand)
					sink.Emit(TraceEvent{
						Kind:       EventResult,
						Combo:      cand.ComboText,
						Words:      cand.Words,
						WordScores: cand.WordScores,
						Score:      cand.Score,
					})
				}
			}
			continue
		}

		// Commit transition: if the current prefix is itself a complete
		// word, consider closing it off, unless the single-syllable-commit
		// rule defers in favor of a still-reachable longer extension.
		if st.prefix != "" && idx.Contains(st.prefix) {
			canExtend := false
			for _, syl := range st.remaining.order {
				if idx.HasPrefix(st.prefix + syl) {
					canExtend = true
					break
				}
			}
			deferCommit := isSingleSyllable(st.prefix) && canExtend
			if !deferCommit {
				nextScore := score + scoreWord(idx, st.prefix)
				nextCommitted := append(append([]string(nil), st.committed...), st.prefix)
				frontier = append(frontier, frontierEntry{
					score: nextScore,
					state: frontierState{remaining: st.remaining.clone(), committed: nextCommitted},
				})
				sink.Emit(TraceEvent{Kind: EventCommit, Prefix: st.prefix, Score: nextScore})
			}
		}

		// Extend transition: branch into every distinct syllable still
		// remaining that keeps the prefix walkable in the trie.
		for _, letter := range st.remaining.order {
			nextPrefix := st.prefix + letter
			if !idx.HasPrefix(nextPrefix) {
				continue
			}
			nextRemaining := st.remaining.clone()
			nextRemaining.decrement(letter)
			nextScore := score + scorePrefixHint(idx, nextPrefix)
			frontier = append(frontier, frontierEntry{
				score: nextScore,
				state: frontierState{remaining: nextRemaining, prefix: nextPrefix, committed: st.committed},
			})
			sink.Emit(TraceEvent{
				Kind:       EventExtend,
				Letter:     letter,
				NextPrefix: nextPrefix,
				Score:      nextScore,
				Remaining:  nextRemaining.asMap(),
			})
		}

		frontier = pruneBeam(frontier, beamWidth)
		sink.Emit(TraceEvent{Kind: EventPrune, FrontierSize: len(frontier)})
	}

	results = dedupe(results)
	rank(results)

	sink.Emit(TraceEvent{Kind: EventComplete, ResultCount: len(results)})
	return results, nil
}

func isSingleSyllable(prefix string) bool {
	count := 0
	for range prefix {
		count++
		if count > 1 {
			return false
		}
	}
	return count == 1
}

// pruneBeam keeps the beamWidth highest-scoring frontier entries, breaking
// ties by original (insertion) order (spec 4.F, "Beam pruning").
func pruneBeam(frontier []frontierEntry, beamWidth int) []frontierEntry {
	sort.SliceStable(frontier, func(i, j int) bool {
		return frontier[i].score > frontier[j].score
	})
	if len(frontier) > beamWidth {
		frontier = frontier[:beamWidth]
	}
	return frontier
}

func buildCandidate(idx Index, completed []string, initials []string, keepOrder bool) Candidate {
	canonical := canonicalize(completed, keepOrder)
	wordSources := make([][]string, len(canonical))
	wordScores := make([]float64, len(canonical))
	sum := 0.0
	for i, w := range canonical {
		if info, ok := idx.Lookup(w); ok {
			wordSources[i] = info.Sources
		}
		s := scoreWord(idx, w)
		wordScores[i] = s
		sum += s
	}
	comboScore := sum - SegmentPenalty*float64(len(canonical))
	mode := ModeSequence
	if !keepOrder {
		mode = ModeBag
	}
	return Candidate{
		ComboText:   strings.Join(canonical, ""),
		Words:       canonical,
		WordSources: wordSources,
		WordScores:  wordScores,
		Coverage:    append([]string(nil), initials...),
		Mode:        mode,
		Score:       comboScore,
	}
}

type noopSink struct{}

func (noopSink) Emit(TraceEvent) {}
