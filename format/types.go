package format

import (
	"fmt"

	"github.com/arloliu/nativearray/errs"
)

type (
	ElementType     uint8
	ByteOrder       uint8
	CompressionType uint8
)

const (
	Int8   ElementType = 0x1 // Int8 represents signed 8-bit integers.
	Uint8  ElementType = 0x2 // Uint8 represents unsigned 8-bit integers.
	Int16  ElementType = 0x3 // Int16 represents signed 16-bit integers.
	Uint16 ElementType = 0x4 // Uint16 represents unsigned 16-bit integers.
	Int32  ElementType = 0x5 // Int32 represents signed 32-bit integers.
	Uint32 ElementType = 0x6 // Uint32 represents unsigned 32-bit integers.
	Int64  ElementType = 0x7 // Int64 represents signed 64-bit integers.
	Uint64 ElementType = 0x8 // Uint64 represents unsigned 64-bit integers.

	OrderNative ByteOrder = 0x0 // OrderNative represents host byte order, or an unspecified order.
	OrderLittle ByteOrder = 0x1 // OrderLittle represents little-endian byte order.
	OrderBig    ByteOrder = 0x2 // OrderBig represents big-endian byte order.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Buffer protocol type codes, indexed by ElementType.
const typeCodes = "\x00bBhHiIqQ"

// IsValid reports whether e is one of the eight supported integer types.
func (e ElementType) IsValid() bool {
	return e >= Int8 && e <= Uint64
}

// Size returns the element width in bytes, or 0 for an invalid type.
func (e ElementType) Size() int {
	switch e {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32:
		return 4
	case Int64, Uint64:
		return 8
	default:
		return 0
	}
}

// Signed reports whether e is a signed integer type.
func (e ElementType) Signed() bool {
	switch e {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// Code returns the buffer protocol type character for e, e.g. 'I' for Uint32.
func (e ElementType) Code() byte {
	if !e.IsValid() {
		return 0
	}

	return typeCodes[e]
}

func (e ElementType) String() string {
	switch e {
	case Int8:
		return "Int8"
	case Uint8:
		return "Uint8"
	case Int16:
		return "Int16"
	case Uint16:
		return "Uint16"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	case Int64:
		return "Int64"
	case Uint64:
		return "Uint64"
	default:
		return "Unknown"
	}
}

// ParseElementType maps a buffer protocol type character to an ElementType.
//
// Only the integer codes b, B, h, H, i, I, q and Q are accepted; floating-point
// and any other codes return errs.ErrUnsupportedType.
func ParseElementType(code byte) (ElementType, error) {
	for i := 1; i < len(typeCodes); i++ {
		if typeCodes[i] == code {
			return ElementType(i), nil
		}
	}

	return 0, fmt.Errorf("%w: type code %q", errs.ErrUnsupportedType, code)
}

// ParseByteOrder maps a byte-order tag character to a ByteOrder.
// '<' is little-endian, '>' is big-endian, anything else is native.
func ParseByteOrder(tag byte) ByteOrder {
	switch tag {
	case '<':
		return OrderLittle
	case '>':
		return OrderBig
	default:
		return OrderNative
	}
}

// IsValid reports whether o is a known byte order.
func (o ByteOrder) IsValid() bool {
	return o <= OrderBig
}

// Char returns the tag character for o.
func (o ByteOrder) Char() byte {
	switch o {
	case OrderLittle:
		return '<'
	case OrderBig:
		return '>'
	default:
		return '='
	}
}

func (o ByteOrder) String() string {
	switch o {
	case OrderNative:
		return "Native"
	case OrderLittle:
		return "LittleEndian"
	case OrderBig:
		return "BigEndian"
	default:
		return "Unknown"
	}
}

// isOrderPrefix reports whether c is one of the buffer protocol byte-order prefixes.
func isOrderPrefix(c byte) bool {
	switch c {
	case '<', '>', '=', '@', '!':
		return true
	default:
		return false
	}
}

// ParseFormat splits a format descriptor such as "<I" or "q" into its byte
// order and element type.
//
// The byte order is always taken from the first character, as ParseByteOrder
// does, so a descriptor without a prefix is native. An empty descriptor
// returns errs.ErrEmptyFormat.
func ParseFormat(descriptor string) (ByteOrder, ElementType, error) {
	if len(descriptor) == 0 {
		return OrderNative, 0, errs.ErrEmptyFormat
	}

	order := ParseByteOrder(descriptor[0])
	code := descriptor
	if isOrderPrefix(code[0]) {
		code = code[1:]
	}

	if len(code) != 1 {
		return order, 0, fmt.Errorf("%w: format %q", errs.ErrUnsupportedType, descriptor)
	}

	elemType, err := ParseElementType(code[0])
	if err != nil {
		return order, 0, err
	}

	return order, elemType, nil
}

// FormatString builds a format descriptor from a byte order and element type.
func FormatString(order ByteOrder, elemType ElementType) string {
	return string([]byte{order.Char(), elemType.Code()})
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
