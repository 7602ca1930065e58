package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
)

// MaxDecompressedSize bounds the output of every built-in Decompress call, so a
// corrupt or hostile payload cannot demand unbounded memory.
const MaxDecompressedSize = 128 * 1024 * 1024 // 128MiB

// Compressor compresses array blob payloads.
//
// A payload is the contiguous element bytes of one integer array in the blob's
// byte order. Small or slowly varying integers leave long runs of zero bytes,
// which every built-in codec exploits.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The input is not modified. Unless documented otherwise, the result is
	// newly allocated and owned by the caller.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original bytes of a compressed payload, or an
	// error if data is corrupt or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by codecs that can decompress straight into
// an output of known size. Array blobs always know their payload size from the
// element count, which lets block formats skip buffer guessing.
type SizedDecompressor interface {
	// DecompressSized decompresses data that must expand to exactly size bytes.
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// DecompressSized decompresses data that must expand to exactly size bytes.
//
// Codecs implementing SizedDecompressor are used directly; any other codec is
// run through Decompress and its output length checked afterwards.
//
// Returns errs.ErrPayloadSizeMismatch when the output has a different length,
// or errs.ErrPayloadTooLarge when a SizedDecompressor would have to allocate
// past MaxDecompressedSize.
func DecompressSized(d Decompressor, data []byte, size int) ([]byte, error) {
	if sd, ok := d.(SizedDecompressor); ok {
		if size < 0 || size > MaxDecompressedSize {
			return nil, fmt.Errorf("%w: %d bytes, limit %d", errs.ErrPayloadTooLarge, size, MaxDecompressedSize)
		}

		return sd.DecompressSized(data, size)
	}

	out, err := d.Decompress(data)
	if err != nil {
		return nil, err
	}

	return checkSize(out, size)
}

func checkSize(out []byte, size int) ([]byte, error) {
	if len(out) != size {
		return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", errs.ErrPayloadSizeMismatch, len(out), size)
	}

	return out, nil
}

// CompressionStats describes the effect of compressing one payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64
}

// CompressionRatio returns compressed size divided by original size, or 0 for
// an empty payload. Values above 1.0 are common for tiny arrays.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with the built-in codec for compressionType and
// reports the result alongside its stats.
func Measure(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	stats := CompressionStats{
		Algorithm:         compressionType,
		OriginalSize:      int64(len(data)),
		CompressedSize:    int64(len(compressed)),
		CompressionTimeNs: time.Since(start).Nanoseconds(),
	}

	return compressed, stats, nil
}

// CreateCodec returns a new Codec for compressionType.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: What the codec is for, used in error messages
//
// Returns:
//   - Codec: Codec for the specified type
//   - error: Invalid compression type error
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
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}
