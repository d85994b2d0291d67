package postings

import (
	"fmt"

	"github.com/arloliu/squeeze/compress"
	"github.com/arloliu/squeeze/format"
	"github.com/arloliu/squeeze/internal/options"
)

// defaultExpectedTerms sizes the builder maps when no hint is given.
const defaultExpectedTerms = 64

type builderConfig struct {
	compression   format.CompressionType
	codec         compress.Codec
	expectedTerms int
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*builderConfig]

// WithCompression compresses every posting list with the given algorithm.
//
// Lists are compressed one by one, so general purpose compression only pays off
// for long lists. The default is format.CompressionNone.
func WithCompression(c format.CompressionType) BuilderOption {
	return options.New(func(cfg *builderConfig) error {
		codec, err := compress.CreateCodec(c, "posting list")
		if err != nil {
			return err
		}

		cfg.compression = c
		cfg.codec = codec

		return nil
	})
}

// WithExpectedTerms pre-sizes the builder for about n distinct terms.
func WithExpectedTerms(n int) BuilderOption {
	return options.New(func(cfg *builderConfig) error {
		if n < 0 {
			return fmt.Errorf("expected terms must not be negative: %d", n)
		}
		cfg.expectedTerms = n

		return nil
	})
}

func newBuilderConfig(opts []BuilderOption) (*builderConfig, error) {
	cfg := &builderConfig{
		compression:   format.CompressionNone,
		codec:         compress.NewNoOpCompressor(),
		expectedTerms: defaultExpectedTerms,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
