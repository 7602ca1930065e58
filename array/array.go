package array

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/arloliu/nativearray/errs"
	"github.com/arloliu/nativearray/format"
)

// Array is a typed view over caller-owned memory holding fixed-width integers.
//
// The element type and declared byte order come from Format, a buffer protocol
// style descriptor such as "<I" (little-endian uint32), ">q" (big-endian int64)
// or "h" (native int16).
//
// Layout:
//   - Shape nil or empty: a one-dimensional array covering Data[Offset:]
//   - Strides nil: C-contiguous layout derived from Shape
//   - Strides set: byte strides per dimension, may be negative
//
// Operations in this package mutate Data in place and never reallocate it. The
// caller must hold exclusive access to Data for the duration of a call; Array
// does no locking.
type Array struct {
	// Data is the backing memory. It is owned by the caller.
	Data []byte
	// Format is the byte-order tag followed by the element type code.
	Format string
	// Shape is the number of elements along each dimension.
	Shape []int
	// Strides is the byte distance between consecutive elements along each dimension.
	Strides []int
	// Offset is the byte offset of the element at index (0, 0, ...).
	Offset int
}

// New creates an Array over data described by formatStr and shape.
//
// Parameters:
//   - data: Backing memory, used as-is without copying
//   - formatStr: Format descriptor, e.g. "<I"
//   - shape: Optional dimensions; omitted means one-dimensional over all of data
//
// Returns:
//   - *Array: The validated array
//   - error: errs.ErrEmptyFormat, errs.ErrUnsupportedType or layout errors
func New(data []byte, formatStr string, shape ...int) (*Array, error) {
	if _, _, err := format.ParseFormat(formatStr); err != nil {
		return nil, err
	}

	a := &Array{Data: data, Format: formatStr}
	if len(shape) > 0 {
		a.Shape = slices.Clone(shape)
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// ElementType returns the element type declared by Format.
func (a *Array) ElementType() (format.ElementType, error) {
	_, elemType, err := format.ParseFormat(a.Format)

	return elemType, err
}

// Order returns the byte order declared by Format.
func (a *Array) Order() (format.ByteOrder, error) {
	if len(a.Format) == 0 {
		return format.OrderNative, errs.ErrEmptyFormat
	}

	return format.ParseByteOrder(a.Format[0]), nil
}

// Len returns the logical element count, or 0 if the array is malformed.
func (a *Array) Len() int {
	l, err := a.layout()
	if err != nil {
		return 0
	}

	return l.count
}

// Validate checks that Format names a supported element type and that every
// element addressed by Shape, Strides and Offset lies within Data without
// possibly overlapping another element.
//
// Shapes whose element count or byte span does not fit in an int are
// rejected with errs.ErrInvalidLayout. Overlap detection is conservative; see
// errs.ErrOverlappingLayout.
func (a *Array) Validate() error {
	_, err := a.layout()

	return err
}

// Elements returns an iterator over the logical elements in row-major index
// order. Each element is yielded with its flat index and a slice aliasing its
// bytes in Data.
func (a *Array) Elements() (iter.Seq2[int, []byte], error) {
	l, err := a.layout()
	if err != nil {
		return nil, err
	}

	return func(yield func(int, []byte) bool) {
		i := 0
		l.each(func(off int) bool {
			ok := yield(i, a.Data[off:off+l.itemSize:off+l.itemSize])
			i++

			return ok
		})
	}, nil
}

// layout is the resolved addressing information of an Array.
type layout struct {
	elemType   format.ElementType
	itemSize   int
	shape      []int
	strides    []int
	offset     int
	count      int
	contiguous bool
}

func (a *Array) layout() (layout, error) {
	_, elemType, err := format.ParseFormat(a.Format)
	if err != nil {
		return layout{}, err
	}

	l := layout{
		elemType: elemType,
		itemSize: elemType.Size(),
		offset:   a.Offset,
	}

	if a.Offset < 0 || a.Offset > len(a.Data) {
		return layout{}, fmt.Errorf("%w: offset %d outside buffer of %d bytes", errs.ErrInvalidLayout, a.Offset, len(a.Data))
	}

	if len(a.Shape) == 0 {
		if len(a.Strides) > 0 {
			return layout{}, fmt.Errorf("%w: strides given without shape", errs.ErrInvalidLayout)
		}

		avail := len(a.Data) - a.Offset
		if avail%l.itemSize != 0 {
			return layout{}, fmt.Errorf("%w: %d bytes is not a multiple of item size %d", errs.ErrInvalidLayout, avail, l.itemSize)
		}

		l.count = avail / l.itemSize
		l.shape = []int{l.count}
		l.strides = []int{l.itemSize}
		l.contiguous = true

		return l, nil
	}

	l.shape = a.Shape
	l.count = 1
	for _, n := range a.Shape {
		if n < 0 {
			return layout{}, fmt.Errorf("%w: negative dimension %d", errs.ErrInvalidLayout, n)
		}
		if n != 0 && l.count > math.MaxInt/n {
			return layout{}, fmt.Errorf("%w: shape %v overflows element count", errs.ErrInvalidLayout, a.Shape)
		}
		l.count *= n
	}

	if l.count > math.MaxInt/l.itemSize {
		return layout{}, fmt.Errorf("%w: %d elements of %d bytes overflow", errs.ErrInvalidLayout, l.count, l.itemSize)
	}

	if len(a.Strides) == 0 {
		l.strides = contiguousStrides(a.Shape, l.itemSize)
		l.contiguous = true

		if l.count*l.itemSize > len(a.Data)-a.Offset {
			return layout{}, fmt.Errorf("%w: %d elements of %d bytes at offset %d exceed buffer of %d bytes",
				errs.ErrInvalidLayout, l.count, l.itemSize, a.Offset, len(a.Data))
		}

		return l, nil
	}

	if len(a.Strides) != len(a.Shape) {
		return layout{}, fmt.Errorf("%w: %d strides for %d dimensions", errs.ErrInvalidLayout, len(a.Strides), len(a.Shape))
	}

	l.strides = a.Strides
	l.contiguous = slices.Equal(l.strides, contiguousStrides(a.Shape, l.itemSize))

	if l.count == 0 {
		return l, nil
	}

	if err := l.checkBounds(len(a.Data)); err != nil {
		return layout{}, err
	}

	if err := l.checkOverlap(); err != nil {
		return layout{}, err
	}

	return l, nil
}

func contiguousStrides(shape []int, itemSize int) []int {
	strides := make([]int, len(shape))
	step := itemSize
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = step
		step *= max(shape[k], 1)
	}

	return strides
}

// checkBounds verifies the lowest and highest addressed bytes lie within a
// buffer of size bytes.
func (l layout) checkBounds(size int) error {
	lo, hi := l.offset, l.offset+l.itemSize
	for k, n := range l.shape {
		stride := l.strides[k]
		if stride == math.MinInt || (stride != 0 && n-1 > math.MaxInt/abs(stride)) {
			return fmt.Errorf("%w: dimension %d of size %d with stride %d overflows", errs.ErrInvalidLayout, k, n, stride)
		}

		span := (n - 1) * stride
		switch {
		case span < 0 && lo < math.MinInt-span:
			return fmt.Errorf("%w: strides %v overflow", errs.ErrInvalidLayout, l.strides)
		case span < 0:
			lo += span
		case hi > math.MaxInt-span:
			return fmt.Errorf("%w: strides %v overflow", errs.ErrInvalidLayout, l.strides)
		default:
			hi += span
		}
	}

	if lo < 0 || hi > size {
		return fmt.Errorf("%w: elements address bytes [%d, %d) of a %d-byte buffer", errs.ErrInvalidLayout, lo, hi, size)
	}

	return nil
}

// checkOverlap rejects strides under which two elements could share bytes.
//
// Dimensions are ordered by stride magnitude; each stride must clear the full
// extent spanned by all smaller dimensions. It runs after checkBounds, so the
// extent never exceeds the buffer size.
func (l layout) checkOverlap() error {
	type dim struct{ n, stride int }

	dims := make([]dim, 0, len(l.shape))
	for k, n := range l.shape {
		if n > 1 {
			dims = append(dims, dim{n: n, stride: abs(l.strides[k])})
		}
	}

	slices.SortFunc(dims, func(x, y dim) int { return x.stride - y.stride })

	extent := l.itemSize
	for _, d := range dims {
		if d.stride < extent {
			return fmt.Errorf("%w: stride %d is smaller than extent %d", errs.ErrOverlappingLayout, d.stride, extent)
		}
		extent += d.stride * (d.n - 1)
	}

	return nil
}

// each calls fn with the byte offset of every element in row-major index
// order, stopping early if fn returns false.
func (l layout) each(fn func(off int) bool) {
	if l.count == 0 {
		return
	}

	if l.contiguous {
		end := l.offset + l.count*l.itemSize
		for off := l.offset; off < end; off += l.itemSize {
			if !fn(off) {
				return
			}
		}

		return
	}

	ndim := len(l.shape)
	index := make([]int, ndim)
	off := l.offset
	for {
		if !fn(off) {
			return
		}

		// Advance the odometer from the innermost dimension.
		k := ndim - 1
		for ; k >= 0; k-- {
			index[k]++
			off += l.strides[k]
			if index[k] < l.shape[k] {
				break
			}
			off -= l.strides[k] * l.shape[k]
			index[k] = 0
		}

		if k < 0 {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
