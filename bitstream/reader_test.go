package bitstream

import (
	"testing"

	"github.com/arloliu/squeeze/errs"
	"github.com/stretchr/testify/require"
)

func TestReader_Read(t *testing.T) {
	r := NewReader([]byte{0x8F, 0x55})

	for _, tc := range []struct {
		bits int
		want uint32
	}{
		{4, 0x08}, {3, 0x07}, {3, 0x05}, {6, 0x15},
	} {
		v, err := r.Read(tc.bits)
		require.NoError(t, err)
		require.Equal(t, tc.want, v)
	}

	require.Equal(t, 0, r.Remaining())
	require.Equal(t, 16, r.Offset())
}

func TestReader_Read_32BitsAcrossBytes(t *testing.T) {
	r := NewReader([]byte{0xE0 | 0x1B, 0xEA, 0xDB, 0xEE, 0xF0})

	head, err := r.Read(3)
	require.NoError(t, err)
	require.Equal(t, uint32(0x7), head)

	v, err := r.Read(32)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDF56DF77), v)
	require.Equal(t, 5, r.Remaining())
}

func TestReader_ReadBit(t *testing.T) {
	r := NewReader([]byte{0xA0})

	want := []bool{true, false, true, false, false, false, false, false}
	for _, w := range want {
		bit, err := r.ReadBit()
		require.NoError(t, err)
		require.Equal(t, w, bit)
	}

	_, err := r.ReadBit()
	require.ErrorIs(t, err, errs.ErrOutOfData)
}

func TestReader_InvalidBitCount(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	_, err := r.Read(0)
	require.ErrorIs(t, err, errs.ErrInvalidBitCount)

	_, err = r.Read(33)
	require.ErrorIs(t, err, errs.ErrInvalidBitCount)

	require.Equal(t, 40, r.Remaining(), "invalid reads must not consume bits")
}

func TestReader_OutOfData(t *testing.T) {
	r := NewReader([]byte{0xFF})

	_, err := r.Read(5)
	require.NoError(t, err)

	_, err = r.Read(4)
	require.ErrorIs(t, err, errs.ErrOutOfData)
	require.Equal(t, 3, r.Remaining(), "failed read must not consume bits")

	v, err := r.Read(3)
	require.NoError(t, err)
	require.Equal(t, uint32(0x7), v)

	_, err = NewReader(nil).Read(1)
	require.ErrorIs(t, err, errs.ErrOutOfData)
}

func TestReader_FromWriter(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	require.NoError(t, w.Write(0x2AB, 10))
	require.NoError(t, w.Write(0x1, 1))
	require.NoError(t, w.Write(0xCAFE, 16))
	w.Sync()

	r := NewReaderFromWriter(w)

	v, err := r.Read(10)
	require.NoError(t, err)
	require.Equal(t, uint32(0x2AB), v)

	bit, err := r.ReadBit()
	require.NoError(t, err)
	require.True(t, bit)

	v, err = r.Read(16)
	require.NoError(t, err)
	require.Equal(t, uint32(0xCAFE), v)

	// 27 payload bits leave 5 bits of padding: a zero then ones.
	pad, err := r.Read(5)
	require.NoError(t, err)
	require.Equal(t, uint32(0x0F), pad)
	require.Equal(t, 0, r.Remaining())
}

func BenchmarkReader_Read(b *testing.B) {
	data := make([]byte, 2048)
	for i := range data {
		data[i] = byte(i * 7)
	}

	for b.Loop() {
		r := NewReader(data)
		for r.Remaining() >= 11 {
			_, _ = r.Read(11)
		}
	}
}
