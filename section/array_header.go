package section

import (
	"fmt"
	"math"

	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
)

// ArrayHeader represents the fixed-size header section at the start of an array blob.
type ArrayHeader struct {
	// NDim is the number of shape dimensions following the header, max to MaxDimensions.
	NDim uint32 // byte offset 4-7
	// Count is the number of elements in the payload.
	Count uint64 // byte offset 8-15
	// PayloadSize is the size of the stored payload, after compression.
	PayloadSize uint64 // byte offset 16-23
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 24-31

	// Flag is a packed field for options, element type and compression.
	Flag ArrayFlag // byte offset 0-3
}

// NewArrayHeader creates a new ArrayHeader for arrays of elemType.
// Count, NDim, PayloadSize and Checksum are filled in by the encoder.
func NewArrayHeader(elemType format.ElementType) *ArrayHeader {
	return &ArrayHeader{
		Flag: NewArrayFlag(elemType),
	}
}

// PayloadOffset returns the byte offset of the payload within the blob.
func (h *ArrayHeader) PayloadOffset() int {
	return DimsOffset + int(h.NDim)*DimEntrySize
}

// RawPayloadSize returns the expected size of the uncompressed payload.
func (h *ArrayHeader) RawPayloadSize() (int, error) {
	size := h.Flag.Element().Size()
	if size == 0 {
		return 0, errs.ErrInvalidElementType
	}

	if h.Count > uint64(math.MaxInt/size) {
		return 0, fmt.Errorf("%w: %d elements", errs.ErrPayloadSizeMismatch, h.Count)
	}

	return int(h.Count) * size, nil
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *ArrayHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The options word is always little-endian; it carries the endianness bit for the rest.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.ElementType = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.NDim = engine.Uint32(data[4:8])
	h.Count = engine.Uint64(data[8:16])
	h.PayloadSize = engine.Uint64(data[16:24])
	h.Checksum = engine.Uint64(data[24:32])

	if h.NDim > MaxDimensions {
		return fmt.Errorf("%w: %d dimensions", errs.ErrInvalidHeaderSize, h.NDim)
	}

	return nil
}

// Bytes serializes the ArrayHeader into a new byte slice.
func (h *ArrayHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to buf.
func (h *ArrayHeader) AppendTo(buf []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	buf = append(buf, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.ElementType, h.Flag.CompressionType)
	buf = engine.AppendUint32(buf, h.NDim)
	buf = engine.AppendUint64(buf, h.Count)
	buf = engine.AppendUint64(buf, h.PayloadSize)
	buf = engine.AppendUint64(buf, h.Checksum)

	return buf
}

// AppendDims appends the shape section for dims to buf, in the header's byte order.
func (h *ArrayHeader) AppendDims(buf []byte, dims []int) []byte {
	engine := h.Flag.GetEndianEngine()
	for _, d := range dims {
		buf = engine.AppendUint64(buf, uint64(d)) //nolint:gosec
	}

	return buf
}

// ParseDims reads h.NDim dimensions from the shape section of a blob.
//
// Parameters:
//   - data: The whole blob, starting with the header
//
// Returns:
//   - []int: The dimensions, nil when NDim is zero
//   - error: ErrTruncatedBlob, or ErrPayloadSizeMismatch when the dimensions do not multiply to Count
func (h *ArrayHeader) ParseDims(data []byte) ([]int, error) {
	if h.NDim == 0 {
		return nil, nil
	}

	end := h.PayloadOffset()
	if len(data) < end {
		return nil, fmt.Errorf("%w: shape section needs %d bytes, have %d", errs.ErrTruncatedBlob, end, len(data))
	}

	engine := h.Flag.GetEndianEngine()
	dims := make([]int, h.NDim)
	product := uint64(1)
	for i := range dims {
		off := DimsOffset + i*DimEntrySize
		d := engine.Uint64(data[off : off+DimEntrySize])
		if d > math.MaxInt {
			return nil, fmt.Errorf("%w: dimension %d too large", errs.ErrPayloadSizeMismatch, d)
		}
		dims[i] = int(d)

		if d != 0 && product > math.MaxUint64/d {
			return nil, fmt.Errorf("%w: shape overflows", errs.ErrPayloadSizeMismatch)
		}
		product *= d
	}

	if product != h.Count {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, header says %d", errs.ErrPayloadSizeMismatch, dims, product, h.Count)
	}

	return dims, nil
}

// ParseArrayHeader parses an ArrayHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - ArrayHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseArrayHeader(data []byte) (ArrayHeader, error) {
	if len(data) < HeaderSize {
		return ArrayHeader{}, errs.ErrInvalidHeaderSize
	}

	h := ArrayHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return ArrayHeader{}, err
	}

	return h, nil
}
