// Package array normalizes fixed-width integer arrays to the host's byte order.
//
// An Array is a view over caller-owned bytes plus a format descriptor naming
// its element type and declared byte order:
//
//	a, err := array.New(buf, ">I") // big-endian uint32 values
//	if err != nil {
//	    return err
//	}
//	if err := array.Normalize(a); err != nil {
//	    return err
//	}
//	// buf now holds host-order uint32 values
//
// # Supported Types
//
// Signed and unsigned integers of 8, 16, 32 and 64 bits, named by the buffer
// protocol codes b, B, h, H, i, I, q and Q. Floating-point and other codes are
// rejected with errs.ErrUnsupportedType.
//
// # Layout
//
// Arrays may be multi-dimensional and strided. Every element is located from
// its index and the byte strides, and is visited exactly once; layouts that
// reach outside Data, overflow int arithmetic, or may make elements overlap are
// rejected before any byte is modified.
//
// # Ownership
//
// Normalize, MakeNative and ToOrder mutate Data in place and never allocate a
// new buffer. The caller must ensure no other goroutine reads or writes Data
// while they run. Compact is the only function that allocates.
//
// For plain Go slices, use FromSlice to obtain a zero-copy Array, or
// NormalizeSlice to swap the slice directly.
package array
