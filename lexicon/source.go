package lexicon

import "sort"

// SourceSet is a bitset over the fixed set of dictionary source tags
// {STD, URIMAL, BASIC}. The set is closed by design (spec 3), so a bitmask
// is sufficient and avoids the runtime string table a variable vocabulary
// would need.
type SourceSet uint8

// The three contributing dictionaries and their fixed weights (spec 3).
const (
	SourceSTD    SourceSet = 1 << iota // 표준국어대사전
	SourceURIMAL                       // 우리말샘
	SourceBASIC                        // 한국어기초사전
)

var sourceBits = [...]SourceSet{SourceSTD, SourceURIMAL, SourceBASIC}

var sourceWeight = map[SourceSet]float64{
	SourceSTD:    2.0,
	SourceURIMAL: 1.0,
	SourceBASIC:  3.0,
}

var sourceName = map[SourceSet]string{
	SourceSTD:    "STD",
	SourceURIMAL: "URIMAL",
	SourceBASIC:  "BASIC",
}

var nameToSource = map[string]SourceSet{
	"STD":    SourceSTD,
	"URIMAL": SourceURIMAL,
	"BASIC":  SourceBASIC,
}

// ParseSource maps a source-tag name to its SourceSet bit. ok is false for
// an unrecognized name.
func ParseSource(name string) (SourceSet, bool) {
	s, ok := nameToSource[name]
	return s, ok
}

// Add returns the set with source merged in.
func (s SourceSet) Add(source SourceSet) SourceSet {
	return s | source
}

// Has reports whether source is a member of s.
func (s SourceSet) Has(source SourceSet) bool {
	return s&source != 0
}

// Empty reports whether the set has no members.
func (s SourceSet) Empty() bool {
	return s == 0
}

// Score is the derived score of a source set: the max weight of its
// members, 0 if empty (spec 3, "Derived score of a word").
func (s SourceSet) Score() float64 {
	var best float64
	for _, bit := range sourceBits {
		if s.Has(bit) {
			if w := sourceWeight[bit]; w > best {
				best = w
			}
		}
	}
	return best
}

// Names returns the member source-tag names, sorted ascending.
func (s SourceSet) Names() []string {
	if s.Empty() {
		return nil
	}
	out := make([]string, 0, len(sourceBits))
	for _, bit := range sourceBits {
		if s.Has(bit) {
			out = append(out, sourceName[bit])
		}
	}
	sort.Strings(out)
	return out
}
