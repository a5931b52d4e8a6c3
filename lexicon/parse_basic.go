package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExtractBASIC extracts normalized headwords from a 한국어기초사전 (BASIC)
// JSON dump: LexicalResource.Lexicon[*].LexicalEntry[*].Lemma, taking the
// feat whose attribute is writtenForm, falling back to
// FormRepresentation.feat with the same attribute (spec 4.B).
func ExtractBASIC(path string) ([]string, error) {
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

	for _, resource := range iterMaps(payload["LexicalResource"]) {
		for _, lexicon := range iterMaps(resource["Lexicon"]) {
			for _, entry := range iterMaps(lexicon["LexicalEntry"]) {
				word, ok := writtenForm(entry)
				if !ok {
					continue
				}
				norm := Normalize(word)
				if norm == "" {
					continue
				}
				if _, dup := seen[norm]; dup {
					continue
				}
				seen[norm] = struct{}{}
				out = append(out, norm)
			}
		}
	}
	return out, nil
}

func writtenForm(entry map[string]any) (string, bool) {
	for _, lemma := range iterMaps(entry["Lemma"]) {
		if v, ok := resolveFeatValue(lemma["feat"]); ok {
			return v, true
		}
		for _, formRep := range iterMaps(lemma["FormRepresentation"]) {
			if v, ok := resolveFeatValue(formRep["feat"]); ok {
				return v, true
			}
		}
	}
	return "", false
}

func resolveFeatValue(feat any) (string, bool) {
	for _, f := range iterMaps(feat) {
		att, _ := asString(f["att"])
		if att != "writtenForm" {
			continue
		}
		if v, ok := asString(f["val"]); ok {
			return v, true
		}
	}
	return "", false
}
