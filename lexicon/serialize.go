package lexicon

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/google/uuid"
)

// ErrArtifactMissing is returned when the serialized trie artifact cannot
// be found on disk at startup (spec 7, ArtifactMissing — fatal at
// startup).
var ErrArtifactMissing = errors.New("lexicon: trie artifact missing")

const trieMagic = "HCM1" // Hangul Combo Mnemonics, format 1

// trieHeader is the on-disk "map" of the binary trie artifact: a fixed
// header followed by a contiguous array of flatNode then flatEdge, mirroring
// the teacher's Header/mmap approach for morph.dawg (spec 9, Serialization).
type trieHeader struct {
	Magic       [4]byte
	BuildID     [16]byte
	NodesOffset int64
	NodesCount  int64
	EdgesOffset int64
	EdgesCount  int64
}

// Save writes t as a binary artifact at path: a stable header followed by
// the flattened node and edge arrays. Freeze is called first if needed.
// The artifact round-trips: Save -> LoadTrie yields the same observable
// behavior (spec 6, 8.2).
func (t *Trie) Save(path string) (buildID uuid.UUID, err error) {
	t.Freeze()

	buildID = uuid.New()
	headerSize := int64(unsafe.Sizeof(trieHeader{}))
	nodesBytes := bytesView(t.nodes)
	edgesBytes := bytesView(t.edges)

	header := trieHeader{
		NodesOffset: headerSize,
		NodesCount:  int64(len(t.nodes)),
		EdgesOffset: headerSize + int64(len(nodesBytes)),
		EdgesCount:  int64(len(t.edges)),
	}
	copy(header.Magic[:], trieMagic)
	copy(header.BuildID[:], buildID[:])

	f, err := os.Create(path)
	if err != nil {
		return uuid.Nil, fmt.Errorf("lexicon: create %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return uuid.Nil, fmt.Errorf("lexicon: encode header: %w", err)
	}
	// binary.Write packs the header without alignment padding; pad it out
	// to headerSize so the node array starts at NodesOffset.
	buf.Write(make([]byte, headerSize-int64(buf.Len())))
	if _, err := f.Write(buf.Bytes()); err != nil {
		return uuid.Nil, fmt.Errorf("lexicon: write header: %w", err)
	}
	if _, err := f.Write(nodesBytes); err != nil {
		return uuid.Nil, fmt.Errorf("lexicon: write nodes: %w", err)
	}
	if _, err := f.Write(edgesBytes); err != nil {
		return uuid.Nil, fmt.Errorf("lexicon: write edges: %w", err)
	}
	return buildID, nil
}

// LoadTrie memory-maps the binary artifact at path and returns a Trie
// backed directly by the mapped pages — zero-copy, matching the teacher's
// loadInternal for morph.dawg. Returns ErrArtifactMissing if path does not
// exist.
func LoadTrie(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, path)
		}
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()

	mapped, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("lexicon: mmap %s: %w", path, err)
	}

	headerSize := int(unsafe.Sizeof(trieHeader{}))
	if len(mapped) < headerSize {
		_ = mapped.Unmap()
		return nil, fmt.Errorf("lexicon: %s too small for header", path)
	}

	var header trieHeader
	if err := binary.Read(bytes.NewReader(mapped[:headerSize]), binary.LittleEndian, &header); err != nil {
		_ = mapped.Unmap()
		return nil, fmt.Errorf("lexicon: read header: %w", err)
	}
	if string(header.Magic[:]) != trieMagic {
		_ = mapped.Unmap()
		return nil, fmt.Errorf("lexicon: %s has invalid signature", path)
	}

	nodeSize := int64(unsafe.Sizeof(flatNode{}))
	edgeSize := int64(unsafe.Sizeof(flatEdge{}))
	nodes := bytesToSlice[flatNode](mapped[header.NodesOffset : header.NodesOffset+header.NodesCount*nodeSize])
	edges := bytesToSlice[flatEdge](mapped[header.EdgesOffset : header.EdgesOffset+header.EdgesCount*edgeSize])

	size := 0
	for _, n := range nodes {
		if n.Sources != 0 {
			size++
		}
	}

	t := &Trie{
		frozen:     true,
		nodes:      nodes,
		edges:      edges,
		size:       size,
		mmapCloser: mapped.Unmap,
	}
	return t, nil
}

// Close releases the memory-mapped artifact backing t, if any. It is a
// no-op for a Trie built and frozen in-process.
func (t *Trie) Close() error {
	if t.mmapCloser == nil {
		return nil
	}
	return t.mmapCloser()
}

// bytesView returns a byte-slice view over s without copying, the inverse
// of bytesToSlice.
func bytesView[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	header := reflect.SliceHeader{
		Data: uintptr(unsafe.Pointer(&s[0])),
		Len:  len(s) * size,
		Cap:  len(s) * size,
	}
	return *(*[]byte)(unsafe.Pointer(&header))
}

// bytesToSlice creates a slice header pointing at b without copying the
// underlying bytes (used for the mmap-backed zero-copy load).
func bytesToSlice[T any](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	header := reflect.SliceHeader{
		Data: uintptr(unsafe.Pointer(&b[0])),
		Len:  len(b) / size,
		Cap:  len(b) / size,
	}
	return *(*[]T)(unsafe.Pointer(&header))
}
