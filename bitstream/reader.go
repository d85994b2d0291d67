package bitstream

import (
	"fmt"

	"github.com/arloliu/squeeze/errs"
)

// Reader consumes bits from a byte slice it does not own.
type Reader struct {
	data   []byte
	off    int // index of the current byte
	bitPos int // next unread bit in data[off], 7 (MSB) down to 0
}

// NewReader creates a reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		bitPos: 7,
	}
}

// NewReaderFromWriter creates a reader over the bytes accumulated by w.
//
// The reader shares w's buffer; it is valid until the next write to w.
func NewReaderFromWriter(w *Writer) *Reader {
	return NewReader(w.Bytes())
}

// Read consumes bitCount bits, most significant bit first, and returns them
// as the low bits of the result.
//
// bitCount must be in [1, 32]. When fewer than bitCount bits remain, Read
// returns errs.ErrOutOfData and consumes nothing.
func (r *Reader) Read(bitCount int) (uint32, error) {
	if bitCount < 1 || bitCount > 32 {
		return 0, fmt.Errorf("%w: cannot read %d bits", errs.ErrInvalidBitCount, bitCount)
	}

	if remaining := r.Remaining(); bitCount > remaining {
		return 0, fmt.Errorf("%w: need %d bits, have %d", errs.ErrOutOfData, bitCount, remaining)
	}

	var result uint32
	for bitCount > 0 {
		avail := r.bitPos + 1
		n := min(avail, bitCount)

		chunk := (uint32(r.data[r.off]) >> (avail - n)) & (uint32(1)<<n - 1)
		result = result<<n | chunk

		bitCount -= n
		r.bitPos -= n
		if r.bitPos < 0 {
			r.off++
			r.bitPos = 7
		}
	}

	return result, nil
}

// ReadBit consumes a single bit.
func (r *Reader) ReadBit() (bool, error) {
	v, err := r.Read(1)
	if err != nil {
		return false, err
	}

	return v == 1, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return (len(r.data)-r.off)*8 - (7 - r.bitPos)
}

// Offset returns the number of bits consumed so far.
func (r *Reader) Offset() int {
	return r.off*8 + (7 - r.bitPos)
}
