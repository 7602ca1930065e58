package compress

// ZstdCompressor provides Zstandard compression for array blob payloads.
//
// Zstd gives the best ratio of the built-in codecs and suits archived or
// network-bound arrays. The default build uses the pure Go
// klauspost/compress implementation; building with cgo and the gozstd tag
// switches to the libzstd binding from valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
