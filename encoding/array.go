package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/errs"
	"github.com/arloliu/squeeze/internal/pool"
)

// WriteArray writes a strictly increasing array of unique values, such as a
// sorted list of document IDs. The array may start at 0.
//
// The values are stored as the delta array of their gaps minus one, so
// consecutive IDs cost almost nothing. Input that is not strictly increasing
// returns errs.ErrNotMonotonic and nothing is written.
func WriteArray(w *bitstream.Writer, values []uint32) error {
	gaps, cleanup := pool.GetUint32Slice(len(values))
	defer cleanup()

	if err := arrayGaps(values, gaps); err != nil {
		return err
	}

	return WriteDeltaArray(w, gaps)
}

// ReadArray reads an array written by WriteArray.
func ReadArray(r *bitstream.Reader) ([]uint32, error) {
	values, err := ReadDeltaArray(r)
	if err != nil {
		return nil, err
	}

	last := uint32(math.MaxUint32)
	for i, gap := range values {
		v, err := nextArrayValue(last, gap, i)
		if err != nil {
			return nil, err
		}
		values[i] = v
		last = v
	}

	return values, nil
}

// ArrayBitLen returns the number of bits WriteArray would write for values,
// without the Sync padding.
func ArrayBitLen(values []uint32) (int, error) {
	gaps, cleanup := pool.GetUint32Slice(len(values))
	defer cleanup()

	if err := arrayGaps(values, gaps); err != nil {
		return 0, err
	}

	return DeltaArrayBitLen(gaps)
}

// arrayGaps fills gaps with values[i] - values[i-1] - 1. The previous value of
// the first element is MaxUint32, so with uint32 wraparound its gap is the
// value itself.
func arrayGaps(values []uint32, gaps []uint32) error {
	last := uint32(math.MaxUint32)
	for i, v := range values {
		if v > MaxValue {
			return fmt.Errorf("%w: values[%d] = %d", errs.ErrValueTooLarge, i, v)
		}

		if i > 0 && v <= last {
			return fmt.Errorf("%w: values[%d] = %d after %d", errs.ErrNotMonotonic, i, v, last)
		}

		gaps[i] = v - last - 1
		last = v
	}

	return nil
}

func nextArrayValue(last, gap uint32, i int) (uint32, error) {
	v := gap + last + 1
	if i > 0 && v <= last {
		return 0, fmt.Errorf("%w: gap %d overflows after %d", errs.ErrCorruptStream, gap, last)
	}

	return v, nil
}

// ArrayDecoder decodes a monotonic array one value at a time.
// See DeltaArrayDecoder for the error contract.
type ArrayDecoder struct {
	deltas *DeltaArrayDecoder
	last   uint32
	index  int
	err    error
}

// NewArrayDecoder reads the array header from r.
func NewArrayDecoder(r *bitstream.Reader) (*ArrayDecoder, error) {
	deltas, err := NewDeltaArrayDecoder(r)
	if err != nil {
		return nil, err
	}

	return &ArrayDecoder{
		deltas: deltas,
		last:   math.MaxUint32,
	}, nil
}

// Len returns the number of values in the array.
func (d *ArrayDecoder) Len() int {
	return d.deltas.Len()
}

// All returns an iterator over the values not yet decoded, in increasing order.
func (d *ArrayDecoder) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for gap := range d.deltas.All() {
			v, err := nextArrayValue(d.last, gap, d.index)
			if err != nil {
				d.err = err
				return
			}
			d.last = v
			d.index++

			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the first error met while iterating.
func (d *ArrayDecoder) Err() error {
	if d.err != nil {
		return d.err
	}

	return d.deltas.Err()
}
