// Package compress provides the payload codecs of the array blob format.
//
// An array blob stores the element bytes of one integer array; this package
// optionally shrinks those bytes after they have been converted to the blob's
// byte order. The codec is recorded in the blob header, so decoders pick the
// right one automatically.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, the default
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Zstd uses the pure Go klauspost/compress implementation unless the module
// is built with cgo and the gozstd build tag, in which case it binds libzstd
// through valyala/gozstd. Both produce standard Zstandard frames.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// Measure compresses a payload and reports a CompressionStats, handy for
// choosing a codec for a given kind of array.
//
// # Limits
//
// Decompression output is capped at MaxDecompressedSize. Array blobs know the
// exact payload size from their header; DecompressSized uses it so that block
// formats such as LZ4 allocate the output once and reject size mismatches.
//
// # Thread Safety
//
// All codecs are stateless values and are safe for concurrent use. Zstd shares
// one encoder and one decoder per process; LZ4 pools its block compressors.
package compress
