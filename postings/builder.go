package postings

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/encoding"
	"github.com/arloliu/squeeze/errs"
	"github.com/arloliu/squeeze/internal/collision"
	"github.com/arloliu/squeeze/internal/hash"
)

// Builder accumulates document IDs per term. It is not safe for concurrent use.
type Builder struct {
	cfg      *builderConfig
	tracker  *collision.Tracker
	docs     map[uint64][]uint32
	finished bool
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	cfg, err := newBuilderConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Builder{
		cfg:     cfg,
		tracker: collision.NewTracker(cfg.expectedTerms),
		docs:    make(map[uint64][]uint32, cfg.expectedTerms),
	}, nil
}

// Add records that term occurs in document docID.
//
// Pairs may be added in any order and duplicates are allowed. docID must be at
// most encoding.MaxValue.
func (b *Builder) Add(term string, docID uint32) error {
	if b.finished {
		return errs.ErrBuilderFinished
	}

	if docID > encoding.MaxValue {
		return fmt.Errorf("%w: document ID %d for term %q", errs.ErrValueTooLarge, docID, term)
	}

	id := hash.TermID(term)
	if _, err := b.tracker.Track(term, id); err != nil {
		return err
	}

	b.docs[id] = append(b.docs[id], docID)

	return nil
}

// TermCount returns the number of distinct terms added so far.
func (b *Builder) TermCount() int {
	return b.tracker.Count()
}

// Finish encodes all posting lists and returns the Index.
//
// After a successful Finish the Builder cannot be used; Add returns
// errs.ErrBuilderFinished. When Finish fails the Builder keeps its postings and
// Finish may be called again.
func (b *Builder) Finish() (*Index, error) {
	if b.finished {
		return nil, errs.ErrBuilderFinished
	}

	ids := make([]uint64, 0, len(b.docs))
	for id := range b.docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	w := bitstream.NewWriter()
	defer w.Finish()

	idx := &Index{
		compression: b.cfg.compression,
		codec:       b.cfg.codec,
		entries:     make([]entry, 0, len(ids)),
	}

	for _, id := range ids {
		docs := b.docs[id]
		slices.Sort(docs)
		docs = slices.Compact(docs)
		b.docs[id] = docs

		term, _ := b.tracker.Term(id)

		bitLen, err := encoding.ArrayBitLen(docs)
		if err != nil {
			return nil, err
		}

		w.Reset()
		if err := encoding.WriteArray(w, docs); err != nil {
			return nil, err
		}
		w.Sync()

		data, err := b.cfg.codec.Compress(bytes.Clone(w.Bytes()))
		if err != nil {
			return nil, fmt.Errorf("failed to compress posting list of %q with %s: %w", term, b.cfg.compression, err)
		}

		idx.entries = append(idx.entries, entry{
			id:    id,
			term:  term,
			count: len(docs),
			data:  data,
		})
		idx.postings += len(docs)
		idx.packedBits += bitLen
		idx.encodedBytes += len(data)
	}

	b.finished = true
	clear(b.docs)
	b.tracker.Reset()

	return idx, nil
}
