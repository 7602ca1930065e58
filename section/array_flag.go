package section

import (
	"github.com/arloliu/nativearray/endian"
	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
)

// ArrayFlag represents the packed flag field at the start of an array blob header.
type ArrayFlag struct {
	// Options is a packed field for various options.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the blob format:
	//   - 0xEC10 (0b1110_1100_0001_0000): Array blob format v1
	Options uint16

	// ElementType is the format.ElementType of the stored array.
	ElementType uint8
	// CompressionType is the format.CompressionType of the payload.
	CompressionType uint8
}

// NewArrayFlag creates a flag for a little-endian, uncompressed blob of elemType.
func NewArrayFlag(elemType format.ElementType) ArrayFlag {
	flag := ArrayFlag{
		Options:         MagicArrayV1Opt,
		ElementType:     uint8(elemType),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the header fields and payload are little-endian.
func (f ArrayFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields and payload are big-endian.
func (f ArrayFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *ArrayFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *ArrayFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// ByteOrder returns the blob's byte order as a tag.
func (f ArrayFlag) ByteOrder() format.ByteOrder {
	if f.IsBigEndian() {
		return format.OrderBig
	}

	return format.OrderLittle
}

// GetMagicNumber returns the magic number from the Options field.
func (f ArrayFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f ArrayFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicArrayV1Opt
}

// Element returns the stored element type.
func (f ArrayFlag) Element() format.ElementType {
	return format.ElementType(f.ElementType)
}

// SetElement sets the stored element type.
func (f *ArrayFlag) SetElement(elemType format.ElementType) {
	f.ElementType = uint8(elemType)
}

// Compression returns the payload compression type.
func (f ArrayFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *ArrayFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks if the flag contains valid values.
func (f ArrayFlag) Validate() error {
	if !f.IsValidMagicNumber() || f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidMagicNumber
	}

	if !f.Element().IsValid() {
		return errs.ErrInvalidElementType
	}

	switch f.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errs.ErrInvalidCompressionType
	}

	return nil
}

// GetEndianEngine returns the endian engine matching the flag.
func (f ArrayFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
