package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ExtractSTD extracts normalized headwords from a 표준국어대사전 (STD) JSON
// dump: channel.item[*].word_info, primary headword at .word, additional
// variants from .relation_info[*].word, .lexical_info[*].word, and
// comma-split .pronunciation_info[*].allomorph (spec 4.B).
func ExtractSTD(path string) ([]string, error) {
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
			for _, info := range iterMaps(entry["word_info"]) {
				if base, ok := asString(info["word"]); ok {
					add(base)
				}
				for _, variant := range stdVariants(info) {
					add(variant)
				}
			}
		}
	}
	return out, nil
}

func stdVariants(info map[string]any) []string {
	var out []string
	for _, key := range [...]string{"relation_info", "lexical_info"} {
		for _, entry := range iterMaps(info[key]) {
			if word, ok := asString(entry["word"]); ok {
				out = append(out, word)
			}
		}
	}
	for _, pron := range iterMaps(info["pronunciation_info"]) {
		for _, token := range iterStrings(pron["allomorph"]) {
			for _, part := range strings.Split(token, ",") {
				out = append(out, part)
			}
		}
	}
	return out
}
