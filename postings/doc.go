// Package postings builds an in-memory inverted index whose posting lists are
// stored with the monotonic array codec.
//
// A Builder collects (term, document ID) pairs in any order. Finish sorts and
// de-duplicates every term's IDs, packs them with encoding.WriteArray and
// returns a read-only Index:
//
//	b, err := postings.NewBuilder(postings.WithCompression(format.CompressionS2))
//	if err != nil {
//	    return err
//	}
//
//	_ = b.Add("go", 3)
//	_ = b.Add("go", 7)
//	_ = b.Add("rust", 7)
//
//	idx, err := b.Finish()
//	ids, err := idx.Lookup("go")            // [3 7]
//	both, err := idx.Intersect("go", "rust") // [7]
//
// Terms are keyed by their xxHash64. Two distinct terms with the same hash are
// rejected by Add with errs.ErrUnresolvedCollision rather than silently merged.
//
// An Index is immutable and safe for concurrent use.
package postings
