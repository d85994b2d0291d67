package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/errs"
)

// emptyArrayBits is the marker written for an empty array: 32 one bits.
// Gamma codes of uint32 counts have at most 31 leading ones, so the marker
// never collides with a real count.
const emptyArrayBits = gammaMaxPrefix + 1

// WriteDeltaArray writes the gamma-coded length of values followed by the
// packed values. Values may appear in any order but the format pays off when
// most of them are small.
func WriteDeltaArray(w *bitstream.Writer, values []uint32) error {
	if err := checkValues(values); err != nil {
		return err
	}

	if len(values) == 0 {
		return w.Write(math.MaxUint32, emptyArrayBits)
	}

	if uint64(len(values)) > math.MaxUint32 {
		return fmt.Errorf("%w: array of %d values", errs.ErrValueTooLarge, len(values))
	}

	if err := WriteGamma(w, uint32(len(values))); err != nil {
		return err
	}

	return WriteBlocks(w, values)
}

// ReadDeltaArray reads an array written by WriteDeltaArray.
//
// An empty array decodes to an empty, non-nil slice. On error the returned
// slice is nil.
func ReadDeltaArray(r *bitstream.Reader) ([]uint32, error) {
	count, err := readArrayCount(r)
	if err != nil {
		return nil, err
	}

	return ReadBlocks(r, count)
}

// DeltaArrayBitLen returns the number of bits WriteDeltaArray would write for
// values, without the Sync padding.
func DeltaArrayBitLen(values []uint32) (int, error) {
	if err := checkValues(values); err != nil {
		return 0, err
	}

	if len(values) == 0 {
		return emptyArrayBits, nil
	}

	return gammaBitLen(uint32(len(values))) + blockBitLen(values), nil
}

// readArrayCount reads the array length and checks that the reader holds
// enough bits for it. A block carries at most 4 values per 4-bit selector, so
// a count above the remaining bit count cannot be satisfied.
func readArrayCount(r *bitstream.Reader) (int, error) {
	e, err := readGammaPrefix(r)
	if err != nil {
		return 0, err
	}

	if e == emptyArrayBits {
		return 0, nil
	}

	count, err := readGammaMantissa(r, e)
	if err != nil {
		return 0, err
	}

	if remaining := r.Remaining(); uint64(count) > uint64(remaining) {
		return 0, fmt.Errorf("%w: array of %d values in %d bits", errs.ErrOutOfData, count, remaining)
	}

	return int(count), nil
}

// DeltaArrayDecoder decodes a delta array one value at a time.
//
// It is useful when the caller wants to stop early. Unlike ReadDeltaArray,
// values are yielded before the whole array has been validated, so the caller
// must check Err after iterating.
type DeltaArrayDecoder struct {
	dec   blockDecoder
	count int
	read  int
	err   error
}

// NewDeltaArrayDecoder reads the array header from r.
func NewDeltaArrayDecoder(r *bitstream.Reader) (*DeltaArrayDecoder, error) {
	count, err := readArrayCount(r)
	if err != nil {
		return nil, err
	}

	return &DeltaArrayDecoder{
		dec:   newBlockDecoder(r),
		count: count,
	}, nil
}

// Len returns the number of values in the array.
func (d *DeltaArrayDecoder) Len() int {
	return d.count
}

// All returns an iterator over the values not yet decoded.
//
// Iteration stops at the first decoding error, which is then reported by Err.
// The decoder is sequential: breaking out of the loop and calling All again
// resumes where the previous loop stopped.
func (d *DeltaArrayDecoder) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for d.err == nil && d.read < d.count {
			v, err := d.dec.next()
			if err != nil {
				d.err = err
				return
			}
			d.read++

			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the first error met while iterating.
func (d *DeltaArrayDecoder) Err() error {
	return d.err
}
