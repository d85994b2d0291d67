// Package bitstream provides the bit-level writer and reader that every squeeze
// codec is built on.
//
// Bits are packed most-significant-bit first within each byte:
//
//	byte   0               1
//	      +---------------+---------------+
//	      |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|
//	      +---------------+---------------+
//	bit    0 1 2 3 4 5 6 7 8 9 ...
//
// A stream is finalized with Writer.Sync, which appends a single 0 bit followed
// by 1 bits up to the next byte boundary. The finalized bytes are exactly what
// Reader consumes.
//
// Unlike a raw pointer reader, Reader is bounded by the slice it was given and
// reports errs.ErrOutOfData instead of reading past the end.
//
// Writers and readers are not safe for concurrent use.
package bitstream

import (
	"fmt"

	"github.com/arloliu/squeeze/errs"
	"github.com/arloliu/squeeze/internal/pool"
)

// Writer appends bits to a growable byte buffer.
//
// The buffer always holds the in-progress trailing byte; bitPos marks the next
// free bit in it, from 7 (MSB) down to 0.
type Writer struct {
	buf    *pool.ByteBuffer
	bitPos int
}

// NewWriter creates a writer backed by a pooled buffer.
//
// Call Finish when the encoded bytes are no longer needed to return the buffer
// to the pool.
func NewWriter() *Writer {
	w := &Writer{
		buf:    pool.GetStreamBuffer(),
		bitPos: 7,
	}
	w.buf.AppendByte(0)

	return w
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit bool) {
	if w.buf == nil {
		panic("writer already finished - cannot write bits after Finish()")
	}

	if bit {
		*w.buf.Last() |= 1 << w.bitPos
	}

	w.bitPos--
	if w.bitPos < 0 {
		w.buf.AppendByte(0)
		w.bitPos = 7
	}
}

// Write appends the low bits of value, most significant bit first.
//
// It is equivalent to calling WriteBit once per bit but fills whole bytes at a time.
// bits must be in [0, 64]; writing 0 bits is a no-op.
func (w *Writer) Write(value uint64, bits int) error {
	if bits < 0 || bits > 64 {
		return fmt.Errorf("%w: cannot write %d bits", errs.ErrInvalidBitCount, bits)
	}

	if w.buf == nil {
		panic("writer already finished - cannot write bits after Finish()")
	}

	for bits > 0 {
		free := w.bitPos + 1
		n := min(free, bits)
		bits -= n

		chunk := byte((value >> bits) & (uint64(1)<<n - 1))
		*w.buf.Last() |= chunk << (free - n)

		w.bitPos -= n
		if w.bitPos < 0 {
			w.buf.AppendByte(0)
			w.bitPos = 7
		}
	}

	return nil
}

// Sync pads the stream to a byte boundary: a single 0 bit, then 1 bits until
// the next byte starts.
//
// Sync is the only supported way to finalize a stream; without it the reader
// cannot tell how many bits of the last byte are real.
func (w *Writer) Sync() {
	w.WriteBit(false)

	for w.bitPos != 7 {
		w.WriteBit(true)
	}
}

// Bytes returns the bytes written so far.
//
// The trailing in-progress byte is only included when it holds at least one bit,
// so after Sync the slice is exactly the finalized stream. Writers that count
// the empty byte opened by Sync report one byte more than Len does here.
// The returned slice is valid until the next write, Reset or Finish, and must not be modified.
func (w *Writer) Bytes() []byte {
	if w.buf == nil {
		panic("writer already finished - cannot access bytes after Finish()")
	}

	b := w.buf.Bytes()
	if w.bitPos == 7 {
		return b[:len(b)-1]
	}

	return b
}

// Len returns the number of bytes returned by Bytes.
func (w *Writer) Len() int {
	return len(w.Bytes())
}

// BitLen returns the number of bits written so far.
func (w *Writer) BitLen() int {
	if w.buf == nil {
		panic("writer already finished - cannot access bytes after Finish()")
	}

	return (w.buf.Len()-1)*8 + (7 - w.bitPos)
}

// Reset discards all written bits and keeps the buffer for reuse.
func (w *Writer) Reset() {
	if w.buf == nil {
		panic("writer already finished - cannot reset after Finish()")
	}

	w.buf.Reset()
	w.buf.AppendByte(0)
	w.bitPos = 7
}

// Finish returns the buffer to the pool. The writer is unusable afterwards.
func (w *Writer) Finish() {
	if w.buf == nil {
		return
	}

	pool.PutStreamBuffer(w.buf)
	w.buf = nil
}
