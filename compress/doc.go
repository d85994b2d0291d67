// Package compress provides optional byte-level compression for finalized
// squeeze bit streams.
//
// The bit packer already removes most redundancy from small or monotonic
// values, so general-purpose compression is a second, optional stage. It pays
// off for long arrays with repeating structure, such as posting lists made of
// regular strides, and is a waste of CPU for short arrays.
//
// Compression is applied to the bytes produced after bitstream.Writer.Sync, and
// removed before handing the bytes to a bitstream.Reader. Nothing about the
// chosen algorithm is recorded in the output: the caller must decompress with
// the same codec.
//
// # Supported Algorithms
//
//   - format.CompressionNone: NoOpCompressor, returns its input unchanged
//   - format.CompressionZstd: ZstdCompressor (github.com/klauspost/compress/zstd)
//   - format.CompressionS2: S2Compressor (github.com/klauspost/compress/s2)
//   - format.CompressionLZ4: LZ4Compressor (github.com/pierrec/lz4/v4)
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//
//	packed, err := codec.Compress(w.Bytes())
//	...
//	raw, err := codec.Decompress(packed)
//	values, err := encoding.ReadArray(bitstream.NewReader(raw))
//
// All codecs are stateless values and safe for concurrent use; encoders and
// decoders that need warm-up are pooled internally.
package compress
