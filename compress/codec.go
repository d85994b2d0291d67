package compress

import (
	"fmt"

	"github.com/arloliu/squeeze/errs"
	"github.com/arloliu/squeeze/format"
)

// Compressor compresses a finalized bit stream.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The input slice is not modified. Unless documented otherwise the
	// returned slice is newly allocated and owned by the caller.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores data produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original bytes, or an error if data is corrupted
	// or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// target describes what the codec is used for and only appears in errors.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
