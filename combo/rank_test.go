package combo

import "testing"

func TestRankLessPrefersMoreMultiSyllableWords(t *testing.T) {
	a := Candidate{Words: []string{"결근", "신상"}, Score: 1.0, ComboText: "결근신상"}
	b := Candidate{Words: []string{"결", "근", "신", "상"}, Score: 5.0, ComboText: "결근신상"}
	if !rankLess(a, b) {
		t.Error("candidate with more multi-syllable words should rank first regardless of score")
	}
}

func TestRankLessPrefersFewerSingleSyllableWordsOnTie(t *testing.T) {
	a := Candidate{Words: []string{"결근"}, Score: 1.0, ComboText: "결근"}
	b := Candidate{Words: []string{"결근", "신"}, Score: 1.0, ComboText: "결근신"}
	if !rankLess(a, b) {
		t.Error("fewer single-syllable words should rank first when multi-count ties")
	}
}

func TestRankLessFallsBackToScoreThenComboText(t *testing.T) {
	a := Candidate{Words: []string{"결근"}, Score: 2.0, ComboText: "결근"}
	b := Candidate{Words: []string{"결근"}, Score: 1.0, ComboText: "결근"}
	if !rankLess(a, b) {
		t.Error("higher combo score should rank first when word shape ties")
	}

	c := Candidate{Words: []string{"신상"}, Score: 1.0, ComboText: "신상"}
	d := Candidate{Words: []string{"결근"}, Score: 1.0, ComboText: "결근"}
	// Equal shape and score: comparison falls through to total syllables
	// (equal here), then combo text ascending.
	if !rankLess(d, c) {
		t.Error("equal score/shape should break ties by combo text ascending")
	}
}

func TestCanonicalizeKeepOrderVsBag(t *testing.T) {
	words := []string{"신상", "결근육"}
	keep := canonicalize(words, true)
	if keep[0] != "신상" || keep[1] != "결근육" {
		t.Errorf("canonicalize(keepOrder=true) = %v, want original order", keep)
	}

	bag := canonicalize(words, false)
	if bag[0] != "결근육" {
		t.Errorf("canonicalize(keepOrder=false)[0] = %q, want the longer word first", bag[0])
	}
}

func TestDedupeKeepsHighestScore(t *testing.T) {
	candidates := []Candidate{
		{Words: []string{"결근", "신상"}, Score: 1.0, ComboText: "결근신상"},
		{Words: []string{"결근", "신상"}, Score: 2.0, ComboText: "결근신상"},
	}
	out := dedupe(candidates)
	if len(out) != 1 {
		t.Fatalf("dedupe() returned %d candidates, want 1", len(out))
	}
	if out[0].Score != 2.0 {
		t.Errorf("dedupe() kept score %v, want 2.0", out[0].Score)
	}
}
