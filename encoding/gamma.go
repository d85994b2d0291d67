package encoding

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/errs"
)

// gammaMaxPrefix is the longest unary prefix a uint32 gamma code can have.
// A run of 32 one bits is never a valid code.
const gammaMaxPrefix = 31

// WriteGamma writes value as an Elias gamma code: e one bits, a zero bit, then
// the low e bits of value, where e = floor(log2(value)).
//
// Small values are cheap: 1 costs one bit, 2 and 3 cost three bits.
// value must be at least 1; zero returns errs.ErrGammaZero.
func WriteGamma(w *bitstream.Writer, value uint32) error {
	if value == 0 {
		return errs.ErrGammaZero
	}

	e := bits.Len32(value) - 1

	// e ones followed by the terminating zero
	if err := w.Write(uint64(1)<<(e+1)-2, e+1); err != nil {
		return err
	}

	return w.Write(uint64(value)&(uint64(1)<<e-1), e)
}

// ReadGamma reads a gamma code written by WriteGamma.
func ReadGamma(r *bitstream.Reader) (uint32, error) {
	e, err := readGammaPrefix(r)
	if err != nil {
		return 0, err
	}

	if e > gammaMaxPrefix {
		return 0, fmt.Errorf("%w: gamma prefix of %d bits", errs.ErrCorruptStream, e)
	}

	return readGammaMantissa(r, e)
}

// readGammaPrefix counts one bits up to and including the terminating zero.
// It stops after gammaMaxPrefix+1 ones without consuming a terminator.
func readGammaPrefix(r *bitstream.Reader) (int, error) {
	e := 0
	for e <= gammaMaxPrefix {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}

		if !bit {
			break
		}
		e++
	}

	return e, nil
}

func readGammaMantissa(r *bitstream.Reader, e int) (uint32, error) {
	if e == 0 {
		return 1, nil
	}

	v, err := r.Read(e)
	if err != nil {
		return 0, err
	}

	return uint32(1)<<e + v, nil
}

// gammaBitLen returns the encoded length of value in bits.
func gammaBitLen(value uint32) int {
	return 2*(bits.Len32(value)-1) + 1
}
