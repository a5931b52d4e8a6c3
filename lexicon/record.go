package lexicon

// WordRecord is a merged dictionary entry (spec 3): a normalized Hangul
// word and the union of sources it was seen under.
type WordRecord struct {
	Word    string
	Sources SourceSet
}

// Score is the derived score of the record (spec 3).
func (r WordRecord) Score() float64 {
	return r.Sources.Score()
}
