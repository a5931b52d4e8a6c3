// Command buildlexicon merges the 표준국어대사전 (STD), 우리말샘 (URIMAL) and
// 한국어기초사전 (BASIC) JSON dumps into a single weighted lexicon, then
// writes both the merged word list (.jsonl.gz) and the prefix trie
// artifact combo.Search runs against.
//
// Flags:
//
//	--dict-dir   (deprecated) alias for --stdict-dir
//	--stdict-dir path to 표준국어대사전 JSON exports
//	--urimal-dir path to 우리말샘 JSON exports
//	--basic-dir  path to 한국어기초사전 JSON exports
//	--jsonl-out  destination for the merged lexicon (.jsonl.gz)
//	--trie-out   destination for the trie artifact
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dumunja/combolex/lexicon"
)

func main() {
	dictDirFlag := flag.String("dict-dir", "", "(deprecated) alias for --stdict-dir")
	stdictDirFlag := flag.String("stdict-dir", "", "path to 표준국어대사전 JSON exports")
	urimalDirFlag := flag.String("urimal-dir", "", "path to 우리말샘 JSON exports")
	basicDirFlag := flag.String("basic-dir", "", "path to 한국어기초사전 JSON exports")
	jsonlOutFlag := flag.String("jsonl-out", "./data/lexicon.jsonl.gz", "destination for the merged lexicon (.jsonl.gz)")
	trieOutFlag := flag.String("trie-out", "./data/lexicon.trie", "destination for the trie artifact")
	concurrencyFlag := flag.Int("concurrency", 4, "max JSON files parsed concurrently per source")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	stdictDir := *stdictDirFlag
	if stdictDir == "" {
		stdictDir = *dictDirFlag
	}

	var dirs []lexicon.SourceDir
	if stdictDir != "" {
		dirs = append(dirs, lexicon.SourceDir{Dir: stdictDir, Source: lexicon.SourceSTD, Extractor: lexicon.ExtractSTD})
	}
	if *urimalDirFlag != "" {
		dirs = append(dirs, lexicon.SourceDir{Dir: *urimalDirFlag, Source: lexicon.SourceURIMAL, Extractor: lexicon.ExtractURIMAL})
	}
	if *basicDirFlag != "" {
		dirs = append(dirs, lexicon.SourceDir{Dir: *basicDirFlag, Source: lexicon.SourceBASIC, Extractor: lexicon.ExtractBASIC})
	}
	if len(dirs) == 0 {
		fmt.Fprintln(os.Stderr, "buildlexicon: at least one of --stdict-dir, --urimal-dir, --basic-dir is required")
		os.Exit(1)
	}

	records, err := lexicon.BuildLexicon(logger, dirs, *concurrencyFlag)
	if err != nil {
		logger.Error("build lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("merged lexicon", slog.Int("unique_words", len(records)))

	if err := lexicon.WriteJSONL(*jsonlOutFlag, records); err != nil {
		logger.Error("write jsonl", slog.String("error", err.Error()))
		os.Exit(1)
	}

	trie := lexicon.BuildTrie(records)
	if _, err := trie.Save(*trieOutFlag); err != nil {
		logger.Error("save trie", slog.String("error", err.Error()))
		os.Exit(1)
	}

	report := lexicon.BuildReport(records)
	printReport(report)

	fmt.Println("Wrote:", *jsonlOutFlag, "and", *trieOutFlag)
}

func printReport(r lexicon.Report) {
	fmt.Println("[report] total unique:", r.TotalWords)

	lengths := r.SortedLengths()
	if len(lengths) > 10 {
		lengths = lengths[:10]
	}
	fmt.Print("[report] headword lengths (first 10): map[")
	for i, l := range lengths {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d:%d", l, r.LengthCounts[l])
	}
	fmt.Println("]")

	fmt.Println("[report] source coverage:", r.SourceCoverage)
	for _, probe := range []string{"결근", "신상", "상피", "신경", "근육", "결합"} {
		status := "no"
		if r.Probes[probe] {
			status = "yes"
		}
		fmt.Printf("[report] contains %s: %s\n", probe, status)
	}
}
