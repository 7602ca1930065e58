package format

import (
	"testing"

	"github.com/arloliu/nativearray/errs"
	"github.com/stretchr/testify/require"
)

func TestElementType(t *testing.T) {
	tests := []struct {
		typ    ElementType
		size   int
		signed bool
		code   byte
		name   string
	}{
		{Int8, 1, true, 'b', "Int8"},
		{Uint8, 1, false, 'B', "Uint8"},
		{Int16, 2, true, 'h', "Int16"},
		{Uint16, 2, false, 'H', "Uint16"},
		{Int32, 4, true, 'i', "Int32"},
		{Uint32, 4, false, 'I', "Uint32"},
		{Int64, 8, true, 'q', "Int64"},
		{Uint64, 8, false, 'Q', "Uint64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.typ.IsValid())
			require.Equal(t, tt.size, tt.typ.Size())
			require.Equal(t, tt.signed, tt.typ.Signed())
			require.Equal(t, tt.code, tt.typ.Code())
			require.Equal(t, tt.name, tt.typ.String())

			parsed, err := ParseElementType(tt.code)
			require.NoError(t, err)
			require.Equal(t, tt.typ, parsed)
		})
	}

	invalid := ElementType(0x9)
	require.False(t, invalid.IsValid())
	require.Equal(t, 0, invalid.Size())
	require.Equal(t, byte(0), invalid.Code())
	require.Equal(t, "Unknown", invalid.String())
}

func TestParseElementType_Unsupported(t *testing.T) {
	for _, code := range []byte{'f', 'd', 'e', '?', 'l', 'x', 0} {
		_, err := ParseElementType(code)
		require.ErrorIs(t, err, errs.ErrUnsupportedType, "code %q", code)
	}
}

func TestParseByteOrder(t *testing.T) {
	require.Equal(t, OrderLittle, ParseByteOrder('<'))
	require.Equal(t, OrderBig, ParseByteOrder('>'))
	require.Equal(t, OrderNative, ParseByteOrder('='))
	require.Equal(t, OrderNative, ParseByteOrder('@'))
	require.Equal(t, OrderNative, ParseByteOrder('!'))
	require.Equal(t, OrderNative, ParseByteOrder('I'))

	require.Equal(t, byte('<'), OrderLittle.Char())
	require.Equal(t, byte('>'), OrderBig.Char())
	require.Equal(t, byte('='), OrderNative.Char())
	require.False(t, ByteOrder(3).IsValid())
	require.Equal(t, "Unknown", ByteOrder(3).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		order    ByteOrder
		elemType ElementType
	}{
		{"little uint32", "<I", OrderLittle, Uint32},
		{"big int64", ">q", OrderBig, Int64},
		{"explicit native", "=h", OrderNative, Int16},
		{"at prefix", "@H", OrderNative, Uint16},
		{"network prefix is native", "!i", OrderNative, Int32},
		{"no prefix", "Q", OrderNative, Uint64},
		{"int8", "<b", OrderLittle, Int8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, elemType, err := ParseFormat(tt.format)
			require.NoError(t, err)
			require.Equal(t, tt.order, order)
			require.Equal(t, tt.elemType, elemType)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, _, err := ParseFormat("")
		require.ErrorIs(t, err, errs.ErrEmptyFormat)
	})

	t.Run("float", func(t *testing.T) {
		_, _, err := ParseFormat("<d")
		require.ErrorIs(t, err, errs.ErrUnsupportedType)
	})

	t.Run("prefix only", func(t *testing.T) {
		_, _, err := ParseFormat(">")
		require.ErrorIs(t, err, errs.ErrUnsupportedType)
	})

	t.Run("repeat count", func(t *testing.T) {
		_, _, err := ParseFormat("<2I")
		require.ErrorIs(t, err, errs.ErrUnsupportedType)
	})
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "<I", FormatString(OrderLittle, Uint32))
	require.Equal(t, ">q", FormatString(OrderBig, Int64))
	require.Equal(t, "=B", FormatString(OrderNative, Uint8))
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
