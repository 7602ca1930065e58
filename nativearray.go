// Package nativearray normalizes the byte order of typed integer arrays.
//
// Arrays arriving from files, sockets or other processes carry a buffer
// protocol format descriptor ("<I", ">h", "=Q", ...) that declares the byte
// order the producer wrote them in. nativearray compares that declaration with
// the host's byte order, detected once at startup, and byte-swaps elements in
// place only when the two differ.
//
// # Core Features
//
//   - One-time host byte order detection
//   - In-place normalization of 8, 16, 32 and 64-bit signed and unsigned integers
//   - Strided and multi-dimensional views with layout validation
//   - A self-describing array blob with xxHash64 checksum and optional
//     compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Normalizing a received buffer:
//
//	import "github.com/arloliu/nativearray"
//
//	a, _ := array.New(payload, ">I")
//	if err := nativearray.Normalize(a); err != nil {
//	    return err
//	}
//	// a.Data now holds host-order uint32 values
//
// Shipping an array between hosts:
//
//	data, _ := nativearray.Encode(a, blob.WithCompression(format.CompressionZstd))
//	// ... on the other host
//	received, _ := nativearray.DecodeNative(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the array and blob
// packages. For strided views, per-order conversion or encoder reuse, use those
// packages directly.
package nativearray

import (
	"github.com/arloliu/nativearray/array"
	"github.com/arloliu/nativearray/blob"
	"github.com/arloliu/nativearray/endian"
	"github.com/arloliu/nativearray/format"
)

var defaultEncoderOptions = []blob.ArrayEncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionNone),
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return endian.IsNativeLittleEndian()
}

// IsNative reports whether a's declared byte order matches the host's.
//
// Returns errs.ErrEmptyFormat if a.Format is empty.
func IsNative(a *array.Array) (bool, error) {
	return array.IsNative(a)
}

// Normalize byte-swaps a's elements in place when its declared byte order is
// foreign to the host. a.Format is left as it was.
//
// Parameters:
//   - a: The array to normalize; the caller must hold exclusive access to a.Data
//
// Returns:
//   - error: errs.ErrEmptyFormat, errs.ErrUnsupportedType or a layout error
//
// Example:
//
//	a, _ := array.New(buf, ">H")
//	if err := nativearray.Normalize(a); err != nil {
//	    log.Fatal(err)
//	}
func Normalize(a *array.Array) error {
	return array.Normalize(a)
}

// MakeNative normalizes a and re-tags it as native, so that later
// normalization is a no-op.
func MakeNative(a *array.Array) error {
	return array.MakeNative(a)
}

// Encode writes a into a new array blob.
//
// Without options the blob is little-endian and uncompressed. Options are
// applied after the defaults and override them.
//
// Parameters:
//   - a: The array to encode; it is not modified
//   - opts: Optional encoder configuration (see blob.ArrayEncoderOption)
//
// Returns:
//   - []byte: The encoded blob
//   - error: Invalid options, or format and layout errors of a
//
// Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian() / blob.WithNativeEndian()
//   - blob.WithByteOrder(format.OrderLittle|OrderBig|OrderNative)
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
func Encode(a *array.Array, opts ...blob.ArrayEncoderOption) ([]byte, error) {
	allOpts := append(append([]blob.ArrayEncoderOption{}, defaultEncoderOptions...), opts...)

	encoder, err := blob.NewArrayEncoder(allOpts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(a)
}

// DecodeNative decodes an array blob into a new array in host byte order.
//
// The blob's checksum is verified before any conversion takes place.
func DecodeNative(data []byte) (*array.Array, error) {
	decoder, err := blob.NewArrayDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.DecodeNative()
}
