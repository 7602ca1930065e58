package array

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/nativearray/endian"
	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
)

// Integer is the set of element types an Array can hold.
type Integer interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64
}

// ElementTypeOf returns the ElementType matching T.
func ElementTypeOf[T Integer]() format.ElementType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return format.Int8
	case uint8:
		return format.Uint8
	case int16:
		return format.Int16
	case uint16:
		return format.Uint16
	case int32:
		return format.Int32
	case uint32:
		return format.Uint32
	case int64:
		return format.Int64
	default:
		return format.Uint64
	}
}

// FromSlice returns an Array viewing the memory of s, tagged with order.
//
// No copy is made: normalizing the returned Array rewrites s.
func FromSlice[T Integer](s []T, order format.ByteOrder) *Array {
	elemType := ElementTypeOf[T]()

	var data []byte
	if len(s) > 0 {
		data = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*elemType.Size())
	}

	return &Array{
		Data:   data,
		Format: format.FormatString(order, elemType),
	}
}

// NormalizeSlice byte-swaps every element of s in place when order differs
// from the host's byte order.
//
// This is the typed counterpart of Normalize for Go slices. 8-bit slices are
// never modified.
func NormalizeSlice[T Integer](s []T, order format.ByteOrder) error {
	if !order.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidByteOrder, order)
	}

	if endian.IsNativeOrder(order) {
		return nil
	}

	switch v := any(s).(type) {
	case []uint16:
		for i := range v {
			v[i] = endian.SwapUint16(v[i])
		}
	case []int16:
		for i := range v {
			v[i] = endian.SwapInt16(v[i])
		}
	case []uint32:
		for i := range v {
			v[i] = endian.SwapUint32(v[i])
		}
	case []int32:
		for i := range v {
			v[i] = endian.SwapInt32(v[i])
		}
	case []uint64:
		for i := range v {
			v[i] = endian.SwapUint64(v[i])
		}
	case []int64:
		for i := range v {
			v[i] = endian.SwapInt64(v[i])
		}
	}

	return nil
}
