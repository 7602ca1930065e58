package array

import (
	"encoding/binary"
	"testing"

	"github.com/arloliu/nativearray/endian"
	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
	"github.com/stretchr/testify/require"
)

// foreignOrder returns the byte order tag that is not the host's.
func foreignOrder() format.ByteOrder {
	if endian.IsNativeLittleEndian() {
		return format.OrderBig
	}

	return format.OrderLittle
}

func hostOrder() format.ByteOrder {
	if endian.IsNativeLittleEndian() {
		return format.OrderLittle
	}

	return format.OrderBig
}

func putUint32s(engine binary.ByteOrder, vals ...uint32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		engine.PutUint32(buf[i*4:], v)
	}

	return buf
}

func readUint32s(engine binary.ByteOrder, buf []byte) []uint32 {
	vals := make([]uint32, len(buf)/4)
	for i := range vals {
		vals[i] = engine.Uint32(buf[i*4:])
	}

	return vals
}

func sequence(n int) []uint32 {
	vals := make([]uint32, n)
	for i := range vals {
		vals[i] = uint32(i + 1) //nolint:gosec
	}

	return vals
}

func TestNormalize_Uint32Scenario(t *testing.T) {
	native := endian.GetNativeEngine()
	data := putUint32s(native, 0x00000001, 0x00000002, 0x00000003, 0x00000004)

	a, err := New(data, format.FormatString(foreignOrder(), format.Uint32))
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())

	require.NoError(t, Normalize(a))
	require.Equal(t, []uint32{0x01000000, 0x02000000, 0x03000000, 0x04000000}, readUint32s(native, data))
	require.Len(t, data, 16)
	require.Equal(t, 4, a.Len())
}

func TestNormalize_DecodesForeignData(t *testing.T) {
	foreign := endian.EngineFor(foreignOrder())
	data := putUint32s(foreign, 0xDEADBEEF, 0x01020304, 0)

	a, err := New(data, format.FormatString(foreignOrder(), format.Uint32))
	require.NoError(t, err)
	require.NoError(t, Normalize(a))

	require.Equal(t, []uint32{0xDEADBEEF, 0x01020304, 0}, readUint32s(endian.GetNativeEngine(), data))
}

func TestNormalize_NativeFastPath(t *testing.T) {
	for _, descriptor := range []string{"I", "=I", "@I", "!I", string(hostOrder().Char()) + "I"} {
		t.Run(descriptor, func(t *testing.T) {
			data := putUint32s(endian.GetNativeEngine(), 1, 2, 3, 4)
			original := append([]byte(nil), data...)

			a, err := New(data, descriptor)
			require.NoError(t, err)

			native, err := IsNative(a)
			require.NoError(t, err)
			require.True(t, native)

			require.NoError(t, Normalize(a))
			require.Equal(t, original, data)
		})
	}
}

func TestNormalize_NativeSkipsLayoutWork(t *testing.T) {
	// A native array returns before its layout is inspected.
	a := &Array{Data: make([]byte, 3), Format: "=I"}
	require.NoError(t, Normalize(a))

	a.Format = string(foreignOrder().Char()) + "I"
	require.ErrorIs(t, Normalize(a), errs.ErrInvalidLayout)
}

func TestNormalize_TwiceRestoresBytes(t *testing.T) {
	types := []format.ElementType{format.Int16, format.Uint16, format.Int32, format.Uint32, format.Int64, format.Uint64}
	for _, elemType := range types {
		t.Run(elemType.String(), func(t *testing.T) {
			data := make([]byte, 64)
			for i := range data {
				data[i] = byte(i*7 + 3)
			}
			original := append([]byte(nil), data...)

			a, err := New(data, format.FormatString(foreignOrder(), elemType))
			require.NoError(t, err)

			require.NoError(t, Normalize(a))
			require.NotEqual(t, original, data)

			require.NoError(t, Normalize(a))
			require.Equal(t, original, data)
		})
	}
}

func TestMakeNative_Retags(t *testing.T) {
	data := putUint32s(endian.GetNativeEngine(), 1, 2)
	a, err := New(data, format.FormatString(foreignOrder(), format.Uint32))
	require.NoError(t, err)

	require.NoError(t, MakeNative(a))
	require.Equal(t, "=I", a.Format)
	require.Equal(t, []uint32{0x01000000, 0x02000000}, readUint32s(endian.GetNativeEngine(), data))

	native, err := IsNative(a)
	require.NoError(t, err)
	require.True(t, native)

	swapped := append([]byte(nil), data...)
	require.NoError(t, Normalize(a))
	require.Equal(t, swapped, data)
}

func TestNormalize_EightBitNeverChanges(t *testing.T) {
	for _, descriptor := range []string{"<b", ">b", "=b", "b", "<B", ">B", "=B", "B"} {
		t.Run(descriptor, func(t *testing.T) {
			data := []byte{0x01, 0x02, 0x03, 0x80, 0xFF}
			original := append([]byte(nil), data...)

			a, err := New(data, descriptor)
			require.NoError(t, err)
			require.NoError(t, Normalize(a))
			require.Equal(t, original, data)

			require.NoError(t, ToOrder(a, foreignOrder()))
			require.Equal(t, original, data)
		})
	}
}

func TestNormalize_SignedTypes(t *testing.T) {
	native := endian.GetNativeEngine()
	foreign := endian.EngineFor(foreignOrder())

	t.Run("int16", func(t *testing.T) {
		data := make([]byte, 6)
		for i, v := range []int16{-2, 0x1234, -0x8000} {
			foreign.PutUint16(data[i*2:], uint16(v)) //nolint:gosec
		}

		a, err := New(data, format.FormatString(foreignOrder(), format.Int16))
		require.NoError(t, err)
		require.NoError(t, Normalize(a))

		require.Equal(t, int16(-2), int16(native.Uint16(data[0:])))      //nolint:gosec
		require.Equal(t, int16(0x1234), int16(native.Uint16(data[2:])))  //nolint:gosec
		require.Equal(t, int16(-0x8000), int16(native.Uint16(data[4:]))) //nolint:gosec
	})

	t.Run("int64", func(t *testing.T) {
		data := make([]byte, 16)
		foreign.PutUint64(data[0:], uint64(0x0102030405060708))
		neg := int64(-123456789)
		foreign.PutUint64(data[8:], uint64(neg)) //nolint:gosec

		a, err := New(data, format.FormatString(foreignOrder(), format.Int64))
		require.NoError(t, err)
		require.NoError(t, Normalize(a))

		require.Equal(t, int64(0x0102030405060708), int64(native.Uint64(data[0:]))) //nolint:gosec
		require.Equal(t, neg, int64(native.Uint64(data[8:])))                       //nolint:gosec
	})
}

func TestNormalize_Errors(t *testing.T) {
	t.Run("empty format", func(t *testing.T) {
		a := &Array{Data: make([]byte, 8)}

		_, err := IsNative(a)
		require.ErrorIs(t, err, errs.ErrEmptyFormat)
		require.ErrorIs(t, Normalize(a), errs.ErrEmptyFormat)
		require.ErrorIs(t, MakeNative(a), errs.ErrEmptyFormat)
	})

	t.Run("float", func(t *testing.T) {
		a := &Array{Data: make([]byte, 8), Format: string(foreignOrder().Char()) + "d"}
		require.ErrorIs(t, Normalize(a), errs.ErrUnsupportedType)

		_, err := New(make([]byte, 8), "<f")
		require.ErrorIs(t, err, errs.ErrUnsupportedType)
	})

	t.Run("invalid order", func(t *testing.T) {
		a := &Array{Data: make([]byte, 8), Format: "<I"}
		require.ErrorIs(t, ToOrder(a, format.ByteOrder(9)), errs.ErrInvalidByteOrder)
	})
}

func TestNormalize_MultiDimensional(t *testing.T) {
	// A 3x4 array of uint16 must have all 12 elements swapped exactly once,
	// not every (size / itemsize)-th element.
	native := endian.GetNativeEngine()
	data := make([]byte, 24)
	for i := range 12 {
		native.PutUint16(data[i*2:], uint16(i+1)) //nolint:gosec
	}

	a, err := New(data, format.FormatString(foreignOrder(), format.Uint16), 3, 4)
	require.NoError(t, err)
	require.Equal(t, 12, a.Len())

	require.NoError(t, Normalize(a))
	for i := range 12 {
		require.Equal(t, endian.SwapUint16(uint16(i+1)), native.Uint16(data[i*2:]), "element %d", i) //nolint:gosec
	}
}

func TestNormalize_StridedView(t *testing.T) {
	native := endian.GetNativeEngine()
	data := putUint32s(native, sequence(8)...)

	// Every other element.
	a := &Array{
		Data:    data,
		Format:  format.FormatString(foreignOrder(), format.Uint32),
		Shape:   []int{4},
		Strides: []int{8},
	}
	require.NoError(t, a.Validate())
	require.Equal(t, 4, a.Len())
	require.NoError(t, Normalize(a))

	got := readUint32s(native, data)
	for i, v := range got {
		if i%2 == 0 {
			require.Equal(t, endian.SwapUint32(uint32(i+1)), v, "element %d", i) //nolint:gosec
		} else {
			require.Equal(t, uint32(i+1), v, "element %d", i) //nolint:gosec
		}
	}
}

func TestNormalize_TransposedView(t *testing.T) {
	native := endian.GetNativeEngine()
	data := putUint32s(native, sequence(12)...)

	a := &Array{
		Data:    data,
		Format:  format.FormatString(foreignOrder(), format.Uint32),
		Shape:   []int{4, 3},
		Strides: []int{4, 16},
	}
	require.NoError(t, Normalize(a))

	for i, v := range readUint32s(native, data) {
		require.Equal(t, endian.SwapUint32(uint32(i+1)), v, "element %d", i) //nolint:gosec
	}
}

func TestNormalize_NegativeStride(t *testing.T) {
	native := endian.GetNativeEngine()
	data := putUint32s(native, sequence(4)...)

	a := &Array{
		Data:    data,
		Format:  format.FormatString(foreignOrder(), format.Uint32),
		Shape:   []int{4},
		Strides: []int{-4},
		Offset:  12,
	}
	require.NoError(t, Normalize(a))

	for i, v := range readUint32s(native, data) {
		require.Equal(t, endian.SwapUint32(uint32(i+1)), v) //nolint:gosec
	}
}

func TestToOrder(t *testing.T) {
	native := endian.GetNativeEngine()
	data := putUint32s(native, 0x01020304, 0x0A0B0C0D)

	a, err := New(data, "=I")
	require.NoError(t, err)

	require.NoError(t, ToOrder(a, format.OrderBig))
	require.Equal(t, ">I", a.Format)
	require.Equal(t, putUint32s(binary.BigEndian, 0x01020304, 0x0A0B0C0D), data)

	require.NoError(t, ToOrder(a, format.OrderLittle))
	require.Equal(t, "<I", a.Format)
	require.Equal(t, putUint32s(binary.LittleEndian, 0x01020304, 0x0A0B0C0D), data)

	require.NoError(t, ToOrder(a, format.OrderNative))
	require.Equal(t, "=I", a.Format)
	require.Equal(t, putUint32s(native, 0x01020304, 0x0A0B0C0D), data)
}

func TestCompact(t *testing.T) {
	native := endian.GetNativeEngine()
	data := putUint32s(native, sequence(12)...)

	a := &Array{
		Data:    data,
		Format:  "<I",
		Shape:   []int{4, 3},
		Strides: []int{4, 16},
	}

	c, err := Compact(a)
	require.NoError(t, err)
	require.Equal(t, "<I", c.Format)
	require.Equal(t, []int{4, 3}, c.Shape)
	require.Nil(t, c.Strides)
	require.Equal(t, []uint32{1, 5, 9, 2, 6, 10, 3, 7, 11, 4, 8, 12}, readUint32s(native, c.Data))

	// Source is untouched.
	require.Equal(t, sequence(12), readUint32s(native, data))
}

func TestNormalizeSlice(t *testing.T) {
	foreign := foreignOrder()

	u16 := []uint16{0x1234, 0xABCD}
	require.NoError(t, NormalizeSlice(u16, foreign))
	require.Equal(t, []uint16{0x3412, 0xCDAB}, u16)

	i16 := []int16{0x1234, -0x8000}
	require.NoError(t, NormalizeSlice(i16, foreign))
	require.Equal(t, []int16{0x3412, 0x0080}, i16)

	u32 := []uint32{1, 2, 3, 4}
	require.NoError(t, NormalizeSlice(u32, foreign))
	require.Equal(t, []uint32{0x01000000, 0x02000000, 0x03000000, 0x04000000}, u32)

	i32 := []int32{0x01020304}
	require.NoError(t, NormalizeSlice(i32, foreign))
	require.Equal(t, []int32{0x04030201}, i32)

	u64 := []uint64{0x0102030405060708}
	require.NoError(t, NormalizeSlice(u64, foreign))
	require.Equal(t, []uint64{0x0807060504030201}, u64)

	i64 := []int64{0x0102030405060708}
	require.NoError(t, NormalizeSlice(i64, foreign))
	require.Equal(t, []int64{0x0807060504030201}, i64)

	u8 := []uint8{1, 2, 3}
	require.NoError(t, NormalizeSlice(u8, foreign))
	require.Equal(t, []uint8{1, 2, 3}, u8)

	i8 := []int8{-1, 2}
	require.NoError(t, NormalizeSlice(i8, foreign))
	require.Equal(t, []int8{-1, 2}, i8)

	native := []uint32{1, 2}
	require.NoError(t, NormalizeSlice(native, hostOrder()))
	require.NoError(t, NormalizeSlice(native, format.OrderNative))
	require.Equal(t, []uint32{1, 2}, native)

	require.ErrorIs(t, NormalizeSlice(native, format.ByteOrder(7)), errs.ErrInvalidByteOrder)
}

func TestFromSlice(t *testing.T) {
	vals := []uint64{0x0102030405060708, 42}
	a := FromSlice(vals, foreignOrder())

	require.Equal(t, format.FormatString(foreignOrder(), format.Uint64), a.Format)
	require.Len(t, a.Data, 16)
	require.Equal(t, 2, a.Len())

	require.NoError(t, Normalize(a))
	require.Equal(t, []uint64{0x0807060504030201, endian.SwapUint64(42)}, vals)

	empty := FromSlice([]int32(nil), format.OrderBig)
	require.Equal(t, 0, empty.Len())
	require.NoError(t, Normalize(empty))
}

func BenchmarkNormalize_Uint32(b *testing.B) {
	data := putUint32s(endian.GetNativeEngine(), sequence(4096)...)
	a, err := New(data, format.FormatString(foreignOrder(), format.Uint32))
	require.NoError(b, err)

	for b.Loop() {
		_ = Normalize(a)
	}
}

func BenchmarkNormalize_Native(b *testing.B) {
	data := putUint32s(endian.GetNativeEngine(), sequence(4096)...)
	a, err := New(data, "=I")
	require.NoError(b, err)

	for b.Loop() {
		_ = Normalize(a)
	}
}
