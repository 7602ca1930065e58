// Package blob encodes and decodes array blobs, the container that carries one
// integer array between hosts of different byte order.
//
// # Encoding
//
//	encoder, err := blob.NewArrayEncoder(
//	    blob.WithBigEndian(),
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	data, err := encoder.Encode(arr)
//
// The source array may use any layout and any declared byte order; the blob
// always stores its elements contiguously, in logical order, in the encoder's
// byte order. The source array is not modified.
//
// # Decoding
//
//	decoder, err := blob.NewArrayDecoder(data)
//	arr, err := decoder.DecodeNative()
//
// Decode returns the array as stored, tagged with the producer's byte order;
// DecodeNative additionally normalizes it to the host's byte order. Both verify
// the payload size and its xxHash64 checksum.
//
// See the section package for the binary layout.
package blob
