package encoding

import (
	"math/rand/v2"
	"testing"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/errs"
	"github.com/stretchr/testify/require"
)

func encodeDeltaArray(t *testing.T, values []uint32) []byte {
	t.Helper()

	w := bitstream.NewWriter()
	defer w.Finish()

	require.NoError(t, WriteDeltaArray(w, values))
	w.Sync()

	return append([]byte(nil), w.Bytes()...)
}

func TestDeltaArray_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []uint32
	}{
		{"up and down", []uint32{1, 2, 3, 3, 2, 1}},
		{"descending to zero", []uint32{3, 2, 1, 0}},
		{"ascending from zero", []uint32{0, 1, 2, 3}},
		{"zeros inside", []uint32{3, 0, 0, 3}},
		{"all zero", make([]uint32, 37)},
		{"single zero", []uint32{0}},
		{"single max", []uint32{MaxValue}},
		{"drifting magnitude", []uint32{1, 3, 9, 27, 81, 243, 729, 2187, 6561, 19683, 6561, 729, 81, 9, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodeDeltaArray(t, tt.values)

			got, err := ReadDeltaArray(bitstream.NewReader(data))
			require.NoError(t, err)
			require.Equal(t, tt.values, got)
		})
	}
}

func TestDeltaArray_Layout(t *testing.T) {
	// gamma(6) = 11010
	// sel 1  (8 -> 4): 0001 + 0001
	// sel 6  (4 -> 3): 0110 + 010 011 011 010
	// sel 2  (3 -> 1): 0010 + 1
	// sync: 0 11111
	data := encodeDeltaArray(t, []uint32{1, 2, 3, 3, 2, 1})

	require.Equal(t, []byte{0xD0, 0x8B, 0x26, 0xD1, 0x5F}, data)
}

func TestDeltaArray_Empty(t *testing.T) {
	for _, values := range [][]uint32{nil, {}} {
		data := encodeDeltaArray(t, values)
		require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, data)

		got, err := ReadDeltaArray(bitstream.NewReader(data))
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestDeltaArray_Sequence(t *testing.T) {
	w := bitstream.NewWriter()
	defer w.Finish()

	first := []uint32{5, 6, 7}
	second := []uint32{}
	third := []uint32{1000, 0, 1}

	require.NoError(t, WriteDeltaArray(w, first))
	require.NoError(t, WriteDeltaArray(w, second))
	require.NoError(t, WriteDeltaArray(w, third))
	w.Sync()

	r := bitstream.NewReader(w.Bytes())
	for _, want := range [][]uint32{first, second, third} {
		got, err := ReadDeltaArray(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWriteDeltaArray_ValueTooLarge(t *testing.T) {
	w := bitstream.NewWriter()
	defer w.Finish()

	require.ErrorIs(t, WriteDeltaArray(w, []uint32{1, 1 << 30}), errs.ErrValueTooLarge)
	require.Equal(t, 0, w.BitLen())
}

func TestReadDeltaArray_Errors(t *testing.T) {
	t.Run("count beyond remaining bits", func(t *testing.T) {
		w := bitstream.NewWriter()
		defer w.Finish()

		require.NoError(t, WriteGamma(w, 1000))
		w.Sync()

		got, err := ReadDeltaArray(bitstream.NewReader(w.Bytes()))
		require.ErrorIs(t, err, errs.ErrOutOfData)
		require.Nil(t, got)
	})

	t.Run("truncated body", func(t *testing.T) {
		values := make([]uint32, 100)
		for i := range values {
			values[i] = uint32(i * 37)
		}
		data := encodeDeltaArray(t, values)

		got, err := ReadDeltaArray(bitstream.NewReader(data[:len(data)/2]))
		require.ErrorIs(t, err, errs.ErrOutOfData)
		require.Nil(t, got)
	})

	t.Run("no data", func(t *testing.T) {
		_, err := ReadDeltaArray(bitstream.NewReader(nil))
		require.ErrorIs(t, err, errs.ErrOutOfData)
	})
}

func TestDeltaArrayBitLen(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for range 50 {
		values := make([]uint32, rng.IntN(64))
		for i := range values {
			values[i] = rng.Uint32N(1 << rng.IntN(16))
		}

		w := bitstream.NewWriter()
		require.NoError(t, WriteDeltaArray(w, values))

		n, err := DeltaArrayBitLen(values)
		require.NoError(t, err)
		require.Equal(t, w.BitLen(), n)
		w.Finish()
	}

	_, err := DeltaArrayBitLen([]uint32{MaxValue + 1})
	require.ErrorIs(t, err, errs.ErrValueTooLarge)
}

func TestDeltaArray_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))

	for range 100 {
		values := make([]uint32, rng.IntN(500))
		for i := range values {
			values[i] = rng.Uint32N(1 << rng.IntN(MaxWidth+1))
		}

		got, err := ReadDeltaArray(bitstream.NewReader(encodeDeltaArray(t, values)))
		require.NoError(t, err)
		require.Equal(t, values, got)
	}
}

func TestDeltaArrayDecoder(t *testing.T) {
	values := []uint32{9, 8, 7, 0, 0, 0, 0, 1 << 25, 3}
	data := encodeDeltaArray(t, values)

	dec, err := NewDeltaArrayDecoder(bitstream.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, len(values), dec.Len())

	got := make([]uint32, 0, dec.Len())
	for v := range dec.All() {
		got = append(got, v)
	}

	require.NoError(t, dec.Err())
	require.Equal(t, values, got)
}

func TestDeltaArrayDecoder_Resume(t *testing.T) {
	values := []uint32{1, 2, 3, 4, 5, 6}
	data := encodeDeltaArray(t, values)

	dec, err := NewDeltaArrayDecoder(bitstream.NewReader(data))
	require.NoError(t, err)

	var head []uint32
	for v := range dec.All() {
		head = append(head, v)
		if len(head) == 2 {
			break
		}
	}

	var tail []uint32
	for v := range dec.All() {
		tail = append(tail, v)
	}

	require.Equal(t, values[:2], head)
	require.Equal(t, values[2:], tail)
}

func TestDeltaArrayDecoder_Error(t *testing.T) {
	values := make([]uint32, 64)
	for i := range values {
		values[i] = uint32(i * 1000)
	}
	data := encodeDeltaArray(t, values)

	dec, err := NewDeltaArrayDecoder(bitstream.NewReader(data[:len(data)-8]))
	require.NoError(t, err)

	count := 0
	for range dec.All() {
		count++
	}

	require.Less(t, count, len(values))
	require.ErrorIs(t, dec.Err(), errs.ErrOutOfData)
}
