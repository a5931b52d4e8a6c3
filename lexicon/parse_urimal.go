package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ExtractURIMAL extracts normalized headwords from a 우리말샘 (URIMAL) JSON
// dump: channel.item[*].wordinfo, primary headword at .word, variants from
// comma-split .pronunciation_info[*].allomorph (spec 4.B).
func ExtractURIMAL(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(word string) {
		norm := Normalize(word)
		if norm == "" {
			return
		}
		if _, ok := seen[norm]; ok {
			return
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}

	for _, item := range iterMaps(payload["channel"]) {
		for _, entry := range iterMaps(item["item"]) {
			for _, info := range iterMaps(entry["wordinfo"]) {
				if base, ok := asString(info["word"]); ok {
					add(base)
				}
				for _, pron := range iterMaps(info["pronunciation_info"]) {
					for _, token := range iterStrings(pron["allomorph"]) {
						for _, part := range strings.Split(token, ",") {
							add(part)
						}
					}
				}
			}
		}
	}
	return out, nil
}
