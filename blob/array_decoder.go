package blob

import (
	"bytes"
	"fmt"

	"github.com/arloliu/nativearray/array"
	"github.com/arloliu/nativearray/compress"
	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
	"github.com/arloliu/nativearray/internal/hash"
	"github.com/arloliu/nativearray/section"
)

// ArrayDecoder reads an array blob.
//
// Note: The ArrayDecoder is NOT thread-safe. Each decoder instance should be used by a single goroutine at a time.
type ArrayDecoder struct {
	data   []byte
	header section.ArrayHeader
	dims   []int
}

// NewArrayDecoder creates a decoder for the given blob.
//
// The header and shape are validated immediately; the payload is only
// decompressed and verified by Decode.
//
// Parameters:
//   - data: Encoded blob byte slice (must contain valid header)
//
// Returns:
//   - *ArrayDecoder: New decoder instance
//   - error: Header parsing error or truncated data
func NewArrayDecoder(data []byte) (*ArrayDecoder, error) {
	header, err := section.ParseArrayHeader(data)
	if err != nil {
		return nil, err
	}

	dims, err := header.ParseDims(data)
	if err != nil {
		return nil, err
	}

	start := uint64(header.PayloadOffset())
	if header.PayloadSize > uint64(len(data))-start {
		return nil, fmt.Errorf("%w: payload needs %d bytes, have %d", errs.ErrTruncatedBlob, header.PayloadSize, uint64(len(data))-start)
	}

	return &ArrayDecoder{
		data:   data,
		header: header,
		dims:   dims,
	}, nil
}

// Header returns the parsed blob header.
func (d *ArrayDecoder) Header() section.ArrayHeader {
	return d.header
}

// Decode returns the stored array in the producer's byte order.
//
// The returned Array owns fresh memory and is tagged with the blob's byte
// order, so array.Normalize or array.MakeNative can bring it to host order.
//
// Returns:
//   - *array.Array: The decoded array
//   - error: Decompression, size or checksum errors
func (d *ArrayDecoder) Decode() (*array.Array, error) {
	codec, err := compress.GetCodec(d.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	want, err := d.header.RawPayloadSize()
	if err != nil {
		return nil, err
	}

	start := d.header.PayloadOffset()
	stored := d.data[start : start+int(d.header.PayloadSize)] //nolint:gosec

	payload, err := compress.DecompressSized(codec, stored, want)
	if err != nil {
		return nil, err
	}

	// NoOp payloads alias the blob; the decoded array must own its memory.
	if d.header.Flag.Compression() == format.CompressionNone {
		payload = bytes.Clone(payload)
	}

	if !hash.Verify(payload, d.header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	if payload == nil {
		payload = []byte{}
	}

	return &array.Array{
		Data:   payload,
		Format: format.FormatString(d.header.Flag.ByteOrder(), d.header.Flag.Element()),
		Shape:  d.dims,
	}, nil
}

// DecodeNative returns the stored array converted to host byte order and
// tagged native.
func (d *ArrayDecoder) DecodeNative() (*array.Array, error) {
	a, err := d.Decode()
	if err != nil {
		return nil, err
	}

	if err := array.MakeNative(a); err != nil {
		return nil, err
	}

	return a, nil
}
