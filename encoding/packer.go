package encoding

import (
	"fmt"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/errs"
)

// WriteBlocks packs values into selector blocks. The running width starts at
// StartWidth; the value count is not written, so the reader must know it.
//
// Every value must be at most MaxValue; otherwise errs.ErrValueTooLarge is
// returned and nothing is written.
func WriteBlocks(w *bitstream.Writer, values []uint32) error {
	if err := checkValues(values); err != nil {
		return err
	}

	return packBlocks(values, func(sel, width int, block []uint32) error {
		if err := w.Write(uint64(sel), selectorBits); err != nil {
			return err
		}

		if width == 0 {
			return nil
		}

		for _, v := range block {
			if err := w.Write(uint64(v), width); err != nil {
				return err
			}
		}

		return nil
	})
}

// ReadBlocks decodes count values written by WriteBlocks.
func ReadBlocks(r *bitstream.Reader, count int) ([]uint32, error) {
	if count <= 0 {
		return []uint32{}, nil
	}

	dec := newBlockDecoder(r)
	out := make([]uint32, count)
	for i := range out {
		v, err := dec.next()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// blockBitLen returns the number of bits WriteBlocks would produce.
func blockBitLen(values []uint32) int {
	total := 0
	_ = packBlocks(values, func(_, width int, block []uint32) error {
		total += selectorBits + width*len(block)
		return nil
	})

	return total
}

func checkValues(values []uint32) error {
	for i, v := range values {
		if v > MaxValue {
			return fmt.Errorf("%w: values[%d] = %d", errs.ErrValueTooLarge, i, v)
		}
	}

	return nil
}

// packBlocks runs the selector search over values and calls emit once per
// block with the selector index, the running width after applying it and the
// values of the block.
func packBlocks(values []uint32, emit func(sel, width int, block []uint32) error) error {
	var (
		pending [maxSpan]uint32
		widths  [maxSpan]int
		n       int
	)

	width := StartWidth
	next := 0

	for next < len(values) || n > 0 {
		for n < maxSpan && next < len(values) {
			pending[n] = values[next]
			widths[n] = bitWidth(values[next])
			n++
			next++
		}

		sel := chooseSelector(width, widths[:n])
		width = selectors[sel].apply(sel, width)
		span := selectors[sel].span

		if err := emit(sel, width, pending[:span]); err != nil {
			return err
		}

		n -= span
		copy(pending[:n], pending[span:span+n])
		copy(widths[:n], widths[span:span+n])
	}

	return nil
}

// blockDecoder yields values one at a time from a selector block stream.
type blockDecoder struct {
	r     *bitstream.Reader
	width int
	span  int
}

func newBlockDecoder(r *bitstream.Reader) blockDecoder {
	return blockDecoder{
		r:     r,
		width: StartWidth,
	}
}

func (d *blockDecoder) next() (uint32, error) {
	if d.span == 0 {
		sel, err := d.r.Read(selectorBits)
		if err != nil {
			return 0, err
		}

		s := selectors[sel]
		width := s.apply(int(sel), d.width)
		if width < 0 || width > MaxWidth {
			return 0, fmt.Errorf("%w: selector %d moves width %d out of range", errs.ErrCorruptStream, sel, d.width)
		}

		d.width = width
		d.span = s.span
	}

	d.span--

	if d.width == 0 {
		return 0, nil
	}

	return d.r.Read(d.width)
}
