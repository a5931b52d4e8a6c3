package lexicon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// jsonlRecord is the wire shape of one line of the emitted lexicon stream
// (spec 6): {"w": ..., "sources": [...sorted], "score": ...}.
type jsonlRecord struct {
	Word    string   `json:"w"`
	Sources []string `json:"sources"`
	Score   float64  `json:"score"`
}

// WriteJSONL emits records as a gzip-compressed, line-oriented JSON stream
// ordered by (-score, word) — the order BuildLexicon already returns them
// in. Uses klauspost/compress/gzip rather than compress/gzip: a drop-in,
// faster gzip implementation for a stream this is appended to record by
// record.
func WriteJSONL(path string, records []WordRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lexicon: create %s: %w", path, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	w := bufio.NewWriter(gz)
	enc := json.NewEncoder(w)
	for _, r := range records {
		line := jsonlRecord{Word: r.Word, Sources: r.Sources.Names(), Score: r.Score()}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("lexicon: encode %q: %w", r.Word, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("lexicon: flush %s: %w", path, err)
	}
	return nil
}

// ReadJSONL decodes a stream produced by WriteJSONL back into WordRecords,
// preserving source order.
func ReadJSONL(path string) ([]WordRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: gzip reader %s: %w", path, err)
	}
	defer gz.Close()

	var out []WordRecord
	dec := json.NewDecoder(bufio.NewReader(gz))
	for dec.More() {
		var line jsonlRecord
		if err := dec.Decode(&line); err != nil {
			return nil, fmt.Errorf("lexicon: decode %s: %w", path, err)
		}
		var sources SourceSet
		for _, name := range line.Sources {
			if s, ok := ParseSource(name); ok {
				sources = sources.Add(s)
			}
		}
		out = append(out, WordRecord{Word: line.Word, Sources: sources})
	}
	return out, nil
}
