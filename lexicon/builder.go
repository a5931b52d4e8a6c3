package lexicon

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Extractor reads one dictionary dump file and returns its normalized
// headwords (spec 4.B). ExtractSTD, ExtractURIMAL and ExtractBASIC satisfy
// this signature.
type Extractor func(path string) ([]string, error)

var trailingInt = regexp.MustCompile(`_(\d+)\.json$`)

// sortKey orders dump files by the trailing integer in their basename
// (spec 4.C, "File iteration order within a directory"), so builds over
// the same inputs are deterministic regardless of directory listing order.
func sortKey(path string) int {
	m := trailingInt.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// SourceDir pairs a dictionary source tag with the directory of *.json
// dumps that feed it, and the parser that reads them.
type SourceDir struct {
	Source    SourceSet
	Dir       string
	Extractor Extractor
}

// registry is the build-time word -> merged-sources map (spec 4.C).
type registry struct {
	mu      sync.Mutex
	entries map[string]SourceSet
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]SourceSet)}
}

func (r *registry) add(word string, source SourceSet) {
	if word == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[word] = r.entries[word].Add(source)
}

// BuildLexicon merges one or more source directories into a sorted slice of
// WordRecord (spec 4.C, "Lexicon Builder"). Each directory's files are
// parsed concurrently (bounded by concurrency), matching the teacher's
// worker-pool approach to bulk analysis (ParseList/InflectList) but using
// errgroup instead of hand-rolled channels, since files only need to be
// parsed and merged, not streamed. A file that fails to parse is logged
// and skipped (spec 7, ParseFailure) — it never aborts the build.
func BuildLexicon(log *slog.Logger, dirs []SourceDir, concurrency int) ([]WordRecord, error) {
	if log == nil {
		log = slog.Default()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	reg := newRegistry()
	for _, sd := range dirs {
		if sd.Dir == "" {
			continue
		}
		paths, err := filepath.Glob(filepath.Join(sd.Dir, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("lexicon: glob %s: %w", sd.Dir, err)
		}
		sort.Slice(paths, func(i, j int) bool { return sortKey(paths[i]) < sortKey(paths[j]) })

		if len(paths) == 0 {
			log.Warn("lexicon: no json files found", "dir", sd.Dir)
			continue
		}

		total := len(paths)
		var done int64
		var g errgroup.Group
		g.SetLimit(concurrency)
		for _, path := range paths {
			path := path
			g.Go(func() error {
				words, err := sd.Extractor(path)
				if err != nil {
					log.Warn("lexicon: failed to parse file, skipping", "path", path, "error", err)
				} else {
					for _, w := range words {
						reg.add(w, sd.Source)
					}
				}
				idx := atomic.AddInt64(&done, 1)
				if idx%5 == 0 || int(idx) == total {
					log.Info("lexicon: files processed", "source", sd.Source.Names(), "processed", idx, "total", total)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		log.Info("lexicon: source directory processed", "dir", sd.Dir, "files", len(paths))
	}

	records := make([]WordRecord, 0, len(reg.entries))
	for word, sources := range reg.entries {
		records = append(records, WordRecord{Word: word, Sources: sources})
	}
	sort.Slice(records, func(i, j int) bool {
		si, sj := records[i].Score(), records[j].Score()
		if si != sj {
			return si > sj
		}
		return records[i].Word < records[j].Word
	})
	return records, nil
}

// BuildTrie inserts every record into a fresh, frozen Trie (spec 4.C ->
// 4.D hand-off).
func BuildTrie(records []WordRecord) *Trie {
	t := NewTrie()
	for _, r := range records {
		t.Insert(r.Word, r.Sources)
	}
	t.Freeze()
	return t
}
