// Package endian provides host byte order detection and byte-reversal routines.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and adds the primitives used to normalize integer arrays to the host's
// native byte order.
//
// # Host Byte Order
//
// The host byte order is detected once, when the package is initialized, by
// writing the 4-byte pattern 0x01020304 into memory and inspecting which byte
// lands at the lowest address. The result never changes afterwards, so all
// functions that consult it are safe for concurrent use without locking:
//
//	if endian.IsNativeLittleEndian() {
//	    // x86-64, arm64, ...
//	}
//
// # Format Descriptors
//
// IsNativeFormat reads the byte-order tag from the first character of a
// buffer protocol format descriptor:
//
//	native, err := endian.IsNativeFormat(">I")
//
// '<' means little-endian, '>' means big-endian and any other character means
// native or unspecified.
//
// # Byte Reversal
//
// SwapUint16, SwapInt32, SwapUint64 and friends reverse the byte order of a
// single value with a fixed sequence of mask-and-shift stages. They are pure
// and constant time.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// hostPattern is laid out as 01 02 03 04 on big-endian hosts and 04 03 02 01 on
// little-endian hosts.
const hostPattern uint32 = 0x01020304

var native = detectEndianness()

func detectEndianness() EndianEngine {
	v := hostPattern
	b := (*[4]byte)(unsafe.Pointer(&v))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness returns the host's byte order.
//
// The value is computed once at package initialization and cached for the
// lifetime of the process.
func CheckEndianness() binary.ByteOrder {
	return native
}

// GetNativeEngine returns the engine matching the host's byte order.
func GetNativeEngine() EndianEngine {
	return native
}

func IsNativeLittleEndian() bool {
	return native == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return native == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == native
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// EngineFor returns the engine for a byte order tag. OrderNative resolves to
// the host's byte order.
func EngineFor(order format.ByteOrder) EndianEngine {
	switch order {
	case format.OrderLittle:
		return binary.LittleEndian
	case format.OrderBig:
		return binary.BigEndian
	default:
		return native
	}
}

// IsNativeOrder reports whether data tagged with order can be read with the
// host's byte order without swapping.
func IsNativeOrder(order format.ByteOrder) bool {
	switch order {
	case format.OrderLittle:
		return IsNativeLittleEndian()
	case format.OrderBig:
		return IsNativeBigEndian()
	default:
		return true
	}
}

// IsNativeFormat reports whether the byte order declared by a format
// descriptor matches the host's byte order.
//
// The tag is read from the first character only. A descriptor without a
// recognized tag is treated as native. An empty descriptor returns
// errs.ErrEmptyFormat.
func IsNativeFormat(descriptor string) (bool, error) {
	if len(descriptor) == 0 {
		return false, errs.ErrEmptyFormat
	}

	return IsNativeOrder(format.ParseByteOrder(descriptor[0])), nil
}
