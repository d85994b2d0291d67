package encoding

import (
	"iter"

	"github.com/arloliu/squeeze/bitstream"
)

// AllDeltaArray iterates over the delta array at the start of data, yielding
// each value with its index.
//
// The returned function reports the error that ended the last iteration, if
// any, including a malformed header. Every range over the sequence decodes
// data again from the start.
func AllDeltaArray(data []byte) (iter.Seq2[int, uint32], func() error) {
	return allValues(data, NewDeltaArrayDecoder)
}

// AllArray iterates over the monotonic array at the start of data, yielding
// each value with its index. See AllDeltaArray for the error contract.
func AllArray(data []byte) (iter.Seq2[int, uint32], func() error) {
	return allValues(data, NewArrayDecoder)
}

type valueDecoder interface {
	All() iter.Seq[uint32]
	Err() error
}

func allValues[D valueDecoder](data []byte, open func(*bitstream.Reader) (D, error)) (iter.Seq2[int, uint32], func() error) {
	var err error

	seq := func(yield func(int, uint32) bool) {
		err = nil

		dec, openErr := open(bitstream.NewReader(data))
		if openErr != nil {
			err = openErr
			return
		}

		i := 0
		for v := range dec.All() {
			if !yield(i, v) {
				break
			}
			i++
		}

		err = dec.Err()
	}

	return seq, func() error { return err }
}
