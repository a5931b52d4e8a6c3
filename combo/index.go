package combo

import "github.com/dumunja/combolex/lexicon"

// Index is the subset of *lexicon.Trie the search engine depends on (spec
// 4.F, "uses (D)"). Declaring it here keeps combo testable against a fake
// lexicon without needing a real built dictionary.
type Index interface {
	Contains(word string) bool
	HasPrefix(prefix string) bool
	Lookup(word string) (lexicon.WordInfo, bool)
	IterPrefix(prefix string, limit int) []lexicon.WordInfo
}
