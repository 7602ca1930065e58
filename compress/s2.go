package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/nativearray/errs"
)

// S2Compressor provides S2 block compression, a faster Snappy-compatible
// format with a moderate ratio.
type S2Compressor struct{}

var (
	_ Codec             = (*S2Compressor)(nil)
	_ SizedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data into a single S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
//
// The decoded length stored in the block is checked against
// MaxDecompressedSize before any output is allocated.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > MaxDecompressedSize {
		return nil, fmt.Errorf("s2 decompression failed: decoded length %d exceeds %d", n, MaxDecompressedSize)
	}

	return c.decode(data, n)
}

// DecompressSized decodes an S2 block whose recorded length must equal size.
func (c S2Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(nil, size)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: block holds %d bytes, want %d", errs.ErrPayloadSizeMismatch, n, size)
	}

	return c.decode(data, n)
}

func (c S2Compressor) decode(data []byte, n int) ([]byte, error) {
	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
