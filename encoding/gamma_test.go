package encoding

import (
	"testing"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/errs"
	"github.com/stretchr/testify/require"
)

func TestGamma_RoundTrip(t *testing.T) {
	values := []uint32{1, 2, 3, 4, 5, 7, 8, 1023, 1024, MaxValue, 1 << 31, 0xFFFFFFFF}

	w := bitstream.NewWriter()
	defer w.Finish()

	total := 0
	for _, v := range values {
		require.NoError(t, WriteGamma(w, v))
		total += gammaBitLen(v)
	}
	require.Equal(t, total, w.BitLen())
	w.Sync()

	r := bitstream.NewReader(w.Bytes())
	for _, want := range values {
		got, err := ReadGamma(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWriteGamma_Layout(t *testing.T) {
	tests := []struct {
		value uint32
		bits  uint64
		n     int
	}{
		{1, 0b0, 1},
		{2, 0b100, 3},
		{3, 0b101, 3},
		{5, 0b11001, 5},
		{1024, 0b11111111110_0000000000, 21},
	}

	for _, tt := range tests {
		w := bitstream.NewWriter()
		require.NoError(t, WriteGamma(w, tt.value))
		require.Equal(t, tt.n, w.BitLen(), "gamma(%d)", tt.value)

		r := bitstream.NewReaderFromWriter(w)
		got, err := r.Read(tt.n)
		require.NoError(t, err)
		require.Equal(t, uint32(tt.bits), got, "gamma(%d)", tt.value)
		w.Finish()
	}
}

func TestWriteGamma_Zero(t *testing.T) {
	w := bitstream.NewWriter()
	defer w.Finish()

	require.ErrorIs(t, WriteGamma(w, 0), errs.ErrGammaZero)
	require.Equal(t, 0, w.BitLen())
}

func TestReadGamma_Errors(t *testing.T) {
	t.Run("32 leading ones", func(t *testing.T) {
		r := bitstream.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00})
		_, err := ReadGamma(r)
		require.ErrorIs(t, err, errs.ErrCorruptStream)
	})

	t.Run("prefix without terminator", func(t *testing.T) {
		r := bitstream.NewReader([]byte{0xFF})
		_, err := ReadGamma(r)
		require.ErrorIs(t, err, errs.ErrOutOfData)
	})

	t.Run("truncated mantissa", func(t *testing.T) {
		// prefix 1111 0 leaves three of the four mantissa bits
		r := bitstream.NewReader([]byte{0xF0})
		_, err := ReadGamma(r)
		require.ErrorIs(t, err, errs.ErrOutOfData)
	})
}
