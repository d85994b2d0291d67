// Package squeeze packs sequences of small or strictly increasing uint32 values
// into compact bit streams.
//
// It targets sorted identifier lists and posting lists: a strictly increasing
// list is stored as the gaps between its values, and the gaps are packed in
// blocks of 1, 2 or 4 values whose shared bit width drifts with the data. A run
// of consecutive IDs costs about one bit per value.
//
// # Basic Usage
//
//	data, err := squeeze.EncodeArray([]uint32{3, 4, 5, 9, 120, 121})
//	if err != nil {
//	    return err
//	}
//
//	ids, err := squeeze.DecodeArray(data)
//
// Arbitrary small values, in any order, use the delta array variant:
//
//	data, err := squeeze.EncodeDeltaArray([]uint32{1, 2, 3, 3, 2, 1})
//	values, err := squeeze.DecodeDeltaArray(data)
//
// Values must fit in 30 bits. An optional compression pass can be applied to
// the packed bytes; the same option must be given when decoding:
//
//	data, err := squeeze.EncodeArray(ids, squeeze.WithCompression(format.CompressionZstd))
//	ids, err := squeeze.DecodeArray(data, squeeze.WithCompression(format.CompressionZstd))
//
// # Package Structure
//
// The functions here wrap the lower level packages:
//   - bitstream: bit writer and bounded bit reader
//   - encoding: gamma codes, the block packer and the array codecs
//   - compress: optional byte-level compression
//   - postings: an in-memory term to posting list index built on the array codec
//
// The output has no header or checksum; it is exactly the bit stream produced
// by the encoding package, optionally compressed.
package squeeze

import (
	"bytes"
	"fmt"

	"github.com/arloliu/squeeze/bitstream"
	"github.com/arloliu/squeeze/compress"
	"github.com/arloliu/squeeze/encoding"
	"github.com/arloliu/squeeze/errs"
	"github.com/arloliu/squeeze/format"
	"github.com/arloliu/squeeze/internal/options"
)

// Config holds the settings shared by the encode and decode helpers.
type Config struct {
	compression format.CompressionType
	codec       compress.Codec
}

// Option configures the encode and decode helpers.
type Option = options.Option[*Config]

// WithCompression compresses the packed stream with the given algorithm.
// The default is format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		codec, err := compress.GetCodec(c)
		if err != nil {
			return err
		}

		cfg.compression = c
		cfg.codec = codec

		return nil
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EncodeDeltaArray packs values, in any order, into a finalized byte stream.
func EncodeDeltaArray(values []uint32, opts ...Option) ([]byte, error) {
	return encode(values, opts, encoding.WriteDeltaArray)
}

// DecodeDeltaArray reverses EncodeDeltaArray.
func DecodeDeltaArray(data []byte, opts ...Option) ([]uint32, error) {
	return decode(data, opts, encoding.ReadDeltaArray)
}

// EncodeArray packs a strictly increasing list of unique values into a
// finalized byte stream.
func EncodeArray(values []uint32, opts ...Option) ([]byte, error) {
	return encode(values, opts, encoding.WriteArray)
}

// DecodeArray reverses EncodeArray.
func DecodeArray(data []byte, opts ...Option) ([]uint32, error) {
	return decode(data, opts, encoding.ReadArray)
}

func encode(values []uint32, opts []Option, write func(*bitstream.Writer, []uint32) error) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	w := bitstream.NewWriter()
	defer w.Finish()

	if err := write(w, values); err != nil {
		return nil, err
	}
	w.Sync()

	// the writer buffer goes back to the pool, so the result must own its bytes
	out, err := cfg.codec.Compress(bytes.Clone(w.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to compress stream with %s: %w", cfg.compression, err)
	}

	return out, nil
}

func decode(data []byte, opts []Option, read func(*bitstream.Reader) ([]uint32, error)) ([]uint32, error) {
	if len(data) == 0 {
		return nil, errs.ErrEmptyPayload
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	raw, err := cfg.codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress stream with %s: %w", cfg.compression, err)
	}

	return read(bitstream.NewReader(raw))
}
