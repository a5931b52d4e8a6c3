package lexicon

import "testing"

func buildProbeTrie(t *testing.T) *Trie {
	t.Helper()
	trie := NewTrie()
	words := map[string]SourceSet{
		"결근": SourceSTD,
		"신상": SourceURIMAL,
		"상피": SourceBASIC,
		"신경": SourceSTD.Add(SourceURIMAL),
		"근육": SourceBASIC,
		"결합": SourceSTD,
		"결":  SourceURIMAL,
		"신":  SourceBASIC,
	}
	for w, s := range words {
		trie.Insert(w, s)
	}
	trie.Freeze()
	return trie
}

func TestTrieContainsAndHasPrefix(t *testing.T) {
	trie := buildProbeTrie(t)

	tests := []struct {
		name string
		word string
		want bool
	}{
		{"terminal word", "결근", true},
		{"another terminal", "신상", true},
		{"single syllable terminal", "결", true},
		{"non-inserted word", "결사", false},
		{"prefix that is not terminal", "가", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trie.Contains(tt.word); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}

	if !trie.HasPrefix("결") {
		t.Error("HasPrefix(결) should be true")
	}
	if !trie.HasPrefix("신") {
		t.Error("HasPrefix(신) should be true")
	}
	if trie.HasPrefix("가") {
		t.Error("HasPrefix(가) should be false")
	}
}

func TestTrieLen(t *testing.T) {
	trie := buildProbeTrie(t)
	if got, want := trie.Len(), 8; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestTrieLookupScore(t *testing.T) {
	trie := buildProbeTrie(t)

	info, ok := trie.Lookup("신경")
	if !ok {
		t.Fatal("Lookup(신경) should be ok")
	}
	if info.Score != 2.0 {
		t.Errorf("Lookup(신경).Score = %v, want 2.0 (max of STD=2.0, URIMAL=1.0)", info.Score)
	}

	if _, ok := trie.Lookup("결사"); ok {
		t.Error("Lookup(결사) should not be ok")
	}
}

func TestTrieIterPrefix(t *testing.T) {
	trie := buildProbeTrie(t)

	all := trie.IterPrefix("결", -1)
	if len(all) != 3 {
		t.Fatalf("IterPrefix(결, -1) returned %d entries, want 3", len(all))
	}
	// 결합 and 결근 share score 2.0 (both STD); 결 itself scores 1.0 (URIMAL).
	// Only terminals *under* the prefix path are returned, including the
	// prefix itself when it is terminal.
	words := map[string]bool{}
	for _, w := range all {
		words[w.Word] = true
	}
	if !words["결근"] || !words["결합"] {
		t.Errorf("IterPrefix(결, -1) = %+v, want 결근 and 결합", all)
	}

	top1 := trie.IterPrefix("결", 1)
	if len(top1) != 1 {
		t.Fatalf("IterPrefix(결, 1) returned %d entries, want 1", len(top1))
	}

	if got := trie.IterPrefix("결", 0); got != nil {
		t.Errorf("IterPrefix(결, 0) = %v, want nil", got)
	}

	if got := trie.IterPrefix("가", -1); got != nil {
		t.Errorf("IterPrefix(가, -1) = %v, want nil for unknown prefix", got)
	}
}

func TestTrieInsertPanicsAfterFreeze(t *testing.T) {
	trie := buildProbeTrie(t)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Insert after Freeze should panic")
		}
	}()
	trie.Insert("신규", SourceSTD)
}
