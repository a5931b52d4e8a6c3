package combo

// Candidate is a single ranked decomposition of the input multiset into
// dictionary words (spec 3, ComboCandidate).
type Candidate struct {
	ComboText   string     `json:"combo"`
	Words       []string   `json:"words"`
	WordSources [][]string `json:"word_sources"`
	WordScores  []float64  `json:"word_scores"`
	Coverage    []string   `json:"coverage"`
	Mode        string     `json:"mode"`
	Score       float64    `json:"score"`
}

const (
	ModeSequence = "sequence"
	ModeBag      = "bag"
)
