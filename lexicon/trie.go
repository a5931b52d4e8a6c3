package lexicon

import (
	"container/heap"
	"sort"
)

// buildNode is the mutable, map-based representation used while a Trie is
// being populated by Insert. It mirrors the teacher's in-memory Node, but
// the spec's Trie only ever needs one payload per terminal (a word's
// source set + derived score), never a slice of parses, so there is no
// separate payload array at this stage.
type buildNode struct {
	children map[rune]*buildNode
	sources  SourceSet
	score    float64
}

// flatNode and flatEdge are the "flattened" on-disk/in-memory
// representation: parent-to-child index arrays instead of a heap graph of
// pointers, per spec 9 ("Ownership of the trie"). terminal ⇔ sources != 0,
// so no separate terminal flag is needed.
type flatNode struct {
	EdgesIdx uint32
	EdgesLen uint32
	Score    float64
	Sources  uint8
}

type flatEdge struct {
	Char   rune
	NodeID uint32
}

// Trie is the weighted prefix index (spec 4.D). It is built once via
// Insert + Freeze and is read-only (and safe to share across goroutines)
// thereafter — queries never run against the mutable build graph.
type Trie struct {
	root   *buildNode
	size   int
	frozen bool

	nodes []flatNode
	edges []flatEdge

	// mmapCloser, if set, releases the memory-mapped artifact backing
	// nodes/edges. nil for tries built and frozen in-process.
	mmapCloser func() error
}

// NewTrie returns an empty, insertable Trie.
func NewTrie() *Trie {
	return &Trie{root: &buildNode{children: make(map[rune]*buildNode)}}
}

// Len reports the number of distinct inserted words (spec 3, size
// invariant: equals the number of terminal nodes).
func (t *Trie) Len() int {
	return t.size
}

// Insert inserts word, marking it terminal and unioning sources into its
// node. base_score is updated to the max weight seen so far (spec 4.D).
// Insert panics if called after Freeze — the lifecycle is build-then-read.
func (t *Trie) Insert(word string, sources SourceSet) {
	if t.frozen {
		panic("lexicon: Insert called on a frozen Trie")
	}
	if word == "" {
		return
	}
	node := t.root
	for _, ch := range word {
		child, ok := node.children[ch]
		if !ok {
			child = &buildNode{children: make(map[rune]*buildNode)}
			node.children[ch] = child
		}
		node = child
	}
	wasTerminal := !node.sources.Empty()
	node.sources = node.sources.Add(sources)
	if !wasTerminal {
		t.size++
	}
	if w := sources.Score(); w > node.score {
		node.score = w
	}
}

// Freeze flattens the build-time node graph into arena-backed arrays,
// ordering each node's outgoing edges by rune ascending so lookups can use
// binary search (mirrors the teacher's findChildGeneral). Freeze is
// idempotent; it is also a no-op on a Trie populated by LoadTrie, which is
// already flat.
func (t *Trie) Freeze() {
	if t.frozen {
		return
	}
	var nodes []flatNode
	var edges []flatEdge

	var flatten func(n *buildNode) uint32
	flatten = func(n *buildNode) uint32 {
		id := uint32(len(nodes))
		nodes = append(nodes, flatNode{Score: n.score, Sources: uint8(n.sources)})

		chars := make([]rune, 0, len(n.children))
		for ch := range n.children {
			chars = append(chars, ch)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

		edgesIdx := uint32(len(edges))
		for _, ch := range chars {
			edges = append(edges, flatEdge{Char: ch})
		}
		nodes[id].EdgesIdx = edgesIdx
		nodes[id].EdgesLen = uint32(len(chars))

		for i, ch := range chars {
			childID := flatten(n.children[ch])
			edges[int(edgesIdx)+i].NodeID = childID
		}
		return id
	}
	flatten(t.root)

	t.nodes = nodes
	t.edges = edges
	t.root = nil
	t.frozen = true
}

// findChild performs a binary search over nodeIndex's outgoing edges
// (sorted by Char at Freeze time) for ch, returning the child node index.
func (t *Trie) findChild(nodeIndex uint32, ch rune) (uint32, bool) {
	node := t.nodes[nodeIndex]
	if node.EdgesLen == 0 {
		return 0, false
	}
	edges := t.edges[node.EdgesIdx : node.EdgesIdx+node.EdgesLen]
	i := sort.Search(len(edges), func(i int) bool { return edges[i].Char >= ch })
	if i < len(edges) && edges[i].Char == ch {
		return edges[i].NodeID, true
	}
	return 0, false
}

// walk returns the node index reached by following s from the root, or
// (0, false) if the path doesn't exist.
func (t *Trie) walk(s string) (uint32, bool) {
	idx := uint32(0)
	for _, ch := range s {
		next, ok := t.findChild(idx, ch)
		if !ok {
			return 0, false
		}
		idx = next
	}
	return idx, true
}

// Contains reports whether word is an exact, terminal entry (spec 4.D).
func (t *Trie) Contains(word string) bool {
	idx, ok := t.walk(word)
	if !ok {
		return false
	}
	return t.nodes[idx].Sources != 0
}

// HasPrefix reports whether any inserted word starts with prefix (spec
// 4.D). This is the single canonical name chosen for the original
// has_prefix/has_word_with_prefix alias pair (spec 9, Open Questions).
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.walk(prefix)
	return ok
}

// WordInfo is the metadata returned by Lookup and IterPrefix.
type WordInfo struct {
	Word    string
	Sources []string
	Score   float64
}

// Lookup returns the terminal's metadata, or ok=false if word isn't a
// dictionary entry (spec 4.D).
func (t *Trie) Lookup(word string) (WordInfo, bool) {
	idx, ok := t.walk(word)
	if !ok || t.nodes[idx].Sources == 0 {
		return WordInfo{}, false
	}
	n := t.nodes[idx]
	return WordInfo{Word: word, Sources: SourceSet(n.Sources).Names(), Score: n.Score}, true
}

// prefixHit is a candidate collected while gathering terminals under a
// prefix; it carries enough to do the final (-score, word) sort without
// re-walking the trie.
type prefixHit struct {
	score float64
	word  string
}

// prefixHeap is a min-heap over prefixHit ordered so the *worst* retained
// candidate (by the desired (-score, word asc) output order) sits at the
// root — the standard bounded top-k pattern (spec 4.D, "Algorithm for
// iter_prefix").
type prefixHeap []prefixHit

func (h prefixHeap) Len() int { return len(h) }
func (h prefixHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].word > h[j].word
}
func (h prefixHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *prefixHeap) Push(x any)        { *h = append(*h, x.(prefixHit)) }
func (h *prefixHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// IterPrefix enumerates all terminals under prefix, ordered by
// (-score, word ascending). If limit >= 0 the result is truncated to the
// top-k under that order via a bounded min-heap; limit < 0 means
// unbounded (spec 4.D). Each call yields a fresh, finite slice.
func (t *Trie) IterPrefix(prefix string, limit int) []WordInfo {
	if limit == 0 {
		return nil
	}
	idx, ok := t.walk(prefix)
	if !ok {
		return nil
	}

	useHeap := limit > 0
	var all []prefixHit
	h := &prefixHeap{}

	push := func(score float64, word string) {
		if !useHeap {
			all = append(all, prefixHit{score, word})
			return
		}
		if h.Len() < limit {
			heap.Push(h, prefixHit{score, word})
			return
		}
		worst := (*h)[0]
		if score > worst.score || (score == worst.score && word < worst.word) {
			(*h)[0] = prefixHit{score, word}
			heap.Fix(h, 0)
		}
	}

	var gather func(idx uint32, path string)
	gather = func(idx uint32, path string) {
		n := t.nodes[idx]
		if n.Sources != 0 {
			push(n.Score, path)
		}
		for i := uint32(0); i < n.EdgesLen; i++ {
			e := t.edges[n.EdgesIdx+i]
			gather(e.NodeID, path+string(e.Char))
		}
	}
	gather(idx, prefix)

	collected := all
	if useHeap {
		collected = []prefixHit(*h)
	}
	sort.Slice(collected, func(i, j int) bool {
		if collected[i].score != collected[j].score {
			return collected[i].score > collected[j].score
		}
		return collected[i].word < collected[j].word
	})

	out := make([]WordInfo, len(collected))
	for i, c := range collected {
		info, _ := t.Lookup(c.word)
		out[i] = info
	}
	return out
}
