package blob

import (
	"fmt"

	"github.com/arloliu/nativearray/array"
	"github.com/arloliu/nativearray/compress"
	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
	"github.com/arloliu/nativearray/internal/hash"
	"github.com/arloliu/nativearray/internal/options"
	"github.com/arloliu/nativearray/internal/pool"
	"github.com/arloliu/nativearray/section"
)

// ArrayEncoder writes integer arrays as array blobs.
//
// An encoder holds only configuration and may be reused and shared between
// goroutines.
type ArrayEncoder struct {
	config *ArrayEncoderConfig
}

// NewArrayEncoder creates an encoder.
//
// Parameters:
//   - opts: Optional configuration (byte order, compression)
//
// Returns:
//   - *ArrayEncoder: New encoder instance
//   - error: Invalid option error
func NewArrayEncoder(opts ...ArrayEncoderOption) (*ArrayEncoder, error) {
	config := NewArrayEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &ArrayEncoder{config: config}, nil
}

// Config returns the encoder configuration.
func (e *ArrayEncoder) Config() *ArrayEncoderConfig {
	return e.config
}

// Encode serializes a into a new blob.
//
// The elements are gathered in logical order into pooled scratch space,
// converted from a's declared byte order to the encoder's, checksummed and
// compressed. a is never modified.
//
// Returns:
//   - []byte: The encoded blob, owned by the caller
//   - error: Format or layout errors of a, errs.ErrPayloadTooLarge for a
//     compressed payload over compress.MaxDecompressedSize, or compression errors
func (e *ArrayEncoder) Encode(a *array.Array) ([]byte, error) {
	if len(a.Shape) > section.MaxDimensions {
		return nil, fmt.Errorf("%w: %d dimensions, max %d", errs.ErrInvalidLayout, len(a.Shape), section.MaxDimensions)
	}

	elemType, err := a.ElementType()
	if err != nil {
		return nil, err
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	// Decoders cap compressed payloads at compress.MaxDecompressedSize; refuse to
	// write a blob that could not be read back.
	size := a.Len() * elemType.Size()
	if e.config.compression != format.CompressionNone && size > compress.MaxDecompressedSize {
		return nil, fmt.Errorf("%w: %d bytes with %s compression, max %d",
			errs.ErrPayloadTooLarge, size, e.config.compression, compress.MaxDecompressedSize)
	}

	scratch := pool.GetPayloadBuffer(size)
	defer pool.PutPayloadBuffer(scratch)

	scratch.B, err = array.AppendCompact(scratch.B, a)
	if err != nil {
		return nil, err
	}

	// The scratch copy is contiguous; convert it in place.
	compact := &array.Array{Data: scratch.B, Format: a.Format}
	if err := array.ToOrder(compact, e.config.order); err != nil {
		return nil, err
	}

	header := section.NewArrayHeader(elemType)
	header.Flag.SetCompression(e.config.compression)
	if e.config.order == format.OrderBig {
		header.Flag.WithBigEndian()
	}
	header.NDim = uint32(len(a.Shape))                         //nolint:gosec
	header.Count = uint64(len(compact.Data) / elemType.Size()) //nolint:gosec
	header.Checksum = hash.Checksum(compact.Data)

	stored, err := e.config.codec.Compress(compact.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	header.PayloadSize = uint64(len(stored))

	out := make([]byte, 0, header.PayloadOffset()+len(stored))
	out = header.AppendTo(out)
	out = header.AppendDims(out, a.Shape)
	out = append(out, stored...)

	return out, nil
}
