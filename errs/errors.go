// Package errs defines the sentinel errors returned by nativearray packages.
//
// Callers should compare with errors.Is, since most errors are wrapped with
// additional context before they reach the caller.
package errs

import "errors"

// Format descriptor and element type errors.
var (
	// ErrEmptyFormat is returned when a format descriptor has no character to
	// read the byte-order tag from.
	ErrEmptyFormat = errors.New("format descriptor is empty: byte order index out of range")
	// ErrUnsupportedType is returned for element types other than 8/16/32/64-bit integers.
	ErrUnsupportedType = errors.New("unsupported element type")
	// ErrInvalidByteOrder is returned when a byte order value is not one of the known tags.
	ErrInvalidByteOrder = errors.New("invalid byte order")
)

// Array layout errors.
var (
	// ErrInvalidLayout is returned when shape, strides or offset address memory
	// outside the array's backing buffer, or do not describe it consistently.
	ErrInvalidLayout = errors.New("invalid array layout")
	// ErrOverlappingLayout is returned when strides may map two logical elements
	// onto overlapping bytes, which would make an in-place swap undo itself.
	//
	// The check is conservative: each stride must clear the whole extent of the
	// dimensions with smaller strides. Some interleaved layouts that never share
	// bytes, such as shape [2, 3] with strides [12, 8] over 4-byte elements, are
	// rejected as well.
	ErrOverlappingLayout = errors.New("array strides may overlap")
)

// Array blob errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidMagicNumber     = errors.New("invalid magic number")
	ErrInvalidElementType     = errors.New("invalid element type in header")
	ErrInvalidCompressionType = errors.New("invalid compression type in header")
	ErrTruncatedBlob          = errors.New("blob data is truncated")
	ErrPayloadSizeMismatch    = errors.New("payload size does not match element count")
	ErrPayloadTooLarge        = errors.New("payload exceeds decompression limit")
	ErrChecksumMismatch       = errors.New("payload checksum mismatch")
)
