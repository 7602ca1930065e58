package array

import (
	"fmt"

	"github.com/arloliu/nativearray/endian"
	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
)

// IsNative reports whether the byte order declared by a.Format matches the
// host's byte order. An untagged or '='-tagged array is assumed native.
//
// Returns errs.ErrEmptyFormat if a.Format is empty.
func IsNative(a *Array) (bool, error) {
	return endian.IsNativeFormat(a.Format)
}

// Normalize byte-swaps every element of a in place when its declared byte
// order differs from the host's.
//
// Arrays that are already native return immediately without touching Data.
// 8-bit arrays are never modified, whatever order they declare. Format is left
// unchanged, so normalizing a foreign-tagged array twice restores its original
// bytes; use MakeNative to re-tag the array as well.
//
// Returns:
//   - error: errs.ErrEmptyFormat, errs.ErrUnsupportedType or a layout error
func Normalize(a *Array) error {
	native, err := IsNative(a)
	if err != nil {
		return err
	}

	elemType, err := a.ElementType()
	if err != nil {
		return err
	}

	if elemType.Size() == 1 || native {
		return nil
	}

	l, err := a.layout()
	if err != nil {
		return err
	}

	swapElements(a.Data, l)

	return nil
}

// MakeNative normalizes a and re-tags its Format as native ('='), so later
// calls are no-ops.
func MakeNative(a *Array) error {
	return ToOrder(a, format.OrderNative)
}

// ToOrder converts a in place to the requested byte order and re-tags its
// Format accordingly.
//
// Unlike Normalize, the layout is always validated, even when no bytes need
// to move.
func ToOrder(a *Array, order format.ByteOrder) error {
	if !order.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidByteOrder, order)
	}

	current, err := a.Order()
	if err != nil {
		return err
	}

	l, err := a.layout()
	if err != nil {
		return err
	}

	if l.itemSize > 1 && endian.EngineFor(current) != endian.EngineFor(order) {
		swapElements(a.Data, l)
	}

	a.Format = format.FormatString(order, l.elemType)

	return nil
}

// Compact returns a contiguous copy of a with the same Format and shape.
//
// The copy is newly allocated; a is not modified.
func Compact(a *Array) (*Array, error) {
	l, err := a.layout()
	if err != nil {
		return nil, err
	}

	out := &Array{
		Data:   appendElements(make([]byte, 0, l.count*l.itemSize), a.Data, l),
		Format: a.Format,
	}
	if len(a.Shape) > 0 {
		out.Shape = append([]int(nil), a.Shape...)
	}

	return out, nil
}

// AppendCompact appends the elements of a to dst in row-major order and
// returns the extended slice. Element bytes are copied as stored; no byte
// order conversion takes place.
func AppendCompact(dst []byte, a *Array) ([]byte, error) {
	l, err := a.layout()
	if err != nil {
		return dst, err
	}

	return appendElements(dst, a.Data, l), nil
}

func appendElements(dst []byte, data []byte, l layout) []byte {
	if l.contiguous {
		return append(dst, data[l.offset:l.offset+l.count*l.itemSize]...)
	}

	l.each(func(off int) bool {
		dst = append(dst, data[off:off+l.itemSize]...)
		return true
	})

	return dst
}

// swapElements reverses the bytes of every element addressed by l.
func swapElements(data []byte, l layout) {
	engine := endian.GetNativeEngine()

	switch l.elemType { //nolint:exhaustive
	case format.Uint16:
		l.each(func(off int) bool {
			b := data[off : off+2]
			engine.PutUint16(b, endian.SwapUint16(engine.Uint16(b)))
			return true
		})
	case format.Int16:
		l.each(func(off int) bool {
			b := data[off : off+2]
			engine.PutUint16(b, uint16(endian.SwapInt16(int16(engine.Uint16(b))))) //nolint:gosec
			return true
		})
	case format.Uint32:
		l.each(func(off int) bool {
			b := data[off : off+4]
			engine.PutUint32(b, endian.SwapUint32(engine.Uint32(b)))
			return true
		})
	case format.Int32:
		l.each(func(off int) bool {
			b := data[off : off+4]
			engine.PutUint32(b, uint32(endian.SwapInt32(int32(engine.Uint32(b))))) //nolint:gosec
			return true
		})
	case format.Uint64:
		l.each(func(off int) bool {
			b := data[off : off+8]
			engine.PutUint64(b, endian.SwapUint64(engine.Uint64(b)))
			return true
		})
	case format.Int64:
		l.each(func(off int) bool {
			b := data[off : off+8]
			engine.PutUint64(b, uint64(endian.SwapInt64(int64(engine.Uint64(b))))) //nolint:gosec
			return true
		})
	}
}
