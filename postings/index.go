package postings

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/compress"
	"github.com/arloliu/squeeze/encoding"
	"github.com/arloliu/squeeze/errs"
	"github.com/arloliu/squeeze/format"
	"github.com/arloliu/squeeze/internal/hash"
)

type entry struct {
	id    uint64
	term  string
	count int
	data  []byte
}

// Index maps terms to encoded posting lists, sorted by term ID.
type Index struct {
	compression  format.CompressionType
	codec        compress.Codec
	entries      []entry
	postings     int
	packedBits   int
	encodedBytes int
}

// Stats summarizes the size of an Index.
type Stats struct {
	Terms    int
	Postings int
	// PackedBits is the total size of the bit-packed lists before Sync padding
	// and compression.
	PackedBits int
	// EncodedBytes is the total size of the stored lists after compression.
	EncodedBytes   int
	BitsPerPosting float64
	Compression    format.CompressionType
}

// Len returns the number of terms.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Terms returns all terms in lexical order.
func (idx *Index) Terms() []string {
	terms := make([]string, len(idx.entries))
	for i, e := range idx.entries {
		terms[i] = e.term
	}
	slices.Sort(terms)

	return terms
}

// Count returns the number of documents containing term, without decoding
// its posting list.
func (idx *Index) Count(term string) (int, error) {
	e, err := idx.find(term)
	if err != nil {
		return 0, err
	}

	return e.count, nil
}

// Lookup decodes the sorted document IDs of term.
func (idx *Index) Lookup(term string) ([]uint32, error) {
	data, err := idx.payload(term)
	if err != nil {
		return nil, err
	}

	docs, err := encoding.ReadArray(bitstream.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode posting list of %q: %w", term, err)
	}

	return docs, nil
}

// Contains reports whether term occurs in document docID.
//
// The posting list is decoded only up to the first ID not below docID.
func (idx *Index) Contains(term string, docID uint32) (bool, error) {
	data, err := idx.payload(term)
	if err != nil {
		return false, err
	}

	docs, errFn := encoding.AllArray(data)

	found := false
	for _, v := range docs {
		if v >= docID {
			found = v == docID
			break
		}
	}

	if err := errFn(); err != nil {
		return false, fmt.Errorf("failed to decode posting list of %q: %w", term, err)
	}

	return found, nil
}

// Intersect returns the documents containing every one of terms.
// No terms yields an empty result.
func (idx *Index) Intersect(terms ...string) ([]uint32, error) {
	if len(terms) == 0 {
		return []uint32{}, nil
	}

	// start from the shortest list so the running result stays small
	order := slices.Clone(terms)
	counts := make(map[string]int, len(order))
	for _, term := range order {
		n, err := idx.Count(term)
		if err != nil {
			return nil, err
		}
		counts[term] = n
	}
	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(counts[a], counts[b])
	})

	result, err := idx.Lookup(order[0])
	if err != nil {
		return nil, err
	}

	for _, term := range order[1:] {
		if len(result) == 0 {
			break
		}

		docs, err := idx.Lookup(term)
		if err != nil {
			return nil, err
		}
		result = Intersect(result, docs)
	}

	return result, nil
}

// Stats returns size statistics for the index.
func (idx *Index) Stats() Stats {
	s := Stats{
		Terms:        len(idx.entries),
		Postings:     idx.postings,
		PackedBits:   idx.packedBits,
		EncodedBytes: idx.encodedBytes,
		Compression:  idx.compression,
	}

	if idx.postings > 0 {
		s.BitsPerPosting = float64(idx.encodedBytes*8) / float64(idx.postings)
	}

	return s
}

func (idx *Index) find(term string) (*entry, error) {
	id := hash.TermID(term)
	i, ok := slices.BinarySearchFunc(idx.entries, id, func(e entry, target uint64) int {
		return cmp.Compare(e.id, target)
	})

	if !ok || idx.entries[i].term != term {
		return nil, fmt.Errorf("%w: %q", errs.ErrTermNotFound, term)
	}

	return &idx.entries[i], nil
}

func (idx *Index) payload(term string) ([]byte, error) {
	e, err := idx.find(term)
	if err != nil {
		return nil, err
	}

	data, err := idx.codec.Decompress(e.data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress posting list of %q with %s: %w", term, idx.compression, err)
	}

	return data, nil
}
