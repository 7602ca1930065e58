package endian

// Masks for the staged byte reversal.
const (
	pairMask32    uint32 = 0xFF00FF00
	pairMask64    uint64 = 0xFF00FF00FF00FF00
	quartetMask64 uint64 = 0xFFFF0000FFFF0000
)

// SwapUint16 reverses the byte order of a 16-bit unsigned value.
func SwapUint16(v uint16) uint16 {
	return (v << 8) | (v >> 8)
}

// SwapInt16 reverses the byte order of a 16-bit signed value.
//
// The right shift is arithmetic, so the sign bits it drags in are masked off
// before the low byte is merged.
func SwapInt16(v int16) int16 {
	return (v << 8) | ((v >> 8) & 0xFF)
}

// SwapUint32 reverses the byte order of a 32-bit unsigned value in two stages:
// adjacent bytes within each 16-bit half, then the two halves.
func SwapUint32(v uint32) uint32 {
	v = ((v << 8) & pairMask32) | ((v >> 8) &^ pairMask32)

	return (v << 16) | (v >> 16)
}

// SwapInt32 reverses the byte order of a 32-bit signed value as a bit pattern.
func SwapInt32(v int32) int32 {
	return int32(SwapUint32(uint32(v))) //nolint:gosec
}

// SwapUint64 reverses the byte order of a 64-bit unsigned value in three
// stages: byte pairs, 16-bit quartets, then the two 32-bit halves.
func SwapUint64(v uint64) uint64 {
	v = ((v << 8) & pairMask64) | ((v >> 8) &^ pairMask64)
	v = ((v << 16) & quartetMask64) | ((v >> 16) &^ quartetMask64)

	return (v << 32) | (v >> 32)
}

// SwapInt64 reverses the byte order of a 64-bit signed value as a bit pattern.
func SwapInt64(v int64) int64 {
	return int64(SwapUint64(uint64(v))) //nolint:gosec
}
