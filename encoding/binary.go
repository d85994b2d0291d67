package encoding

import (
	"fmt"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/errs"
)

// WriteBinary writes value using exactly width bits, most significant bit first.
// width must be in [1, 64].
func WriteBinary(w *bitstream.Writer, width int, value uint64) error {
	if width < 1 || width > 64 {
		return fmt.Errorf("%w: binary width %d", errs.ErrInvalidBitCount, width)
	}

	return w.Write(value, width)
}

// ReadBinary reads a width-bit value. width must be in [1, 32].
func ReadBinary(r *bitstream.Reader, width int) (uint32, error) {
	return r.Read(width)
}
