package blob

import (
	"fmt"

	"github.com/arloliu/nativearray/compress"
	"github.com/arloliu/nativearray/endian"
	"github.com/arloliu/nativearray/format"
	"github.com/arloliu/nativearray/internal/options"
)

// ArrayEncoderConfig holds the byte order and payload codec of an ArrayEncoder.
type ArrayEncoderConfig struct {
	order       format.ByteOrder
	compression format.CompressionType
	codec       compress.Codec
}

// NewArrayEncoderConfig creates a config for little-endian, uncompressed blobs.
func NewArrayEncoderConfig() *ArrayEncoderConfig {
	return &ArrayEncoderConfig{
		order:       format.OrderLittle,
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
	}
}

// ByteOrder returns the byte order blobs are written in. It is never OrderNative.
func (c *ArrayEncoderConfig) ByteOrder() format.ByteOrder {
	return c.order
}

// Compression returns the payload compression type.
func (c *ArrayEncoderConfig) Compression() format.CompressionType {
	return c.compression
}

// setByteOrder sets the blob byte order, resolving OrderNative to the host's order.
func (c *ArrayEncoderConfig) setByteOrder(order format.ByteOrder) error {
	switch order {
	case format.OrderLittle, format.OrderBig:
		c.order = order
	case format.OrderNative:
		c.order = hostOrder()
	default:
		return fmt.Errorf("invalid blob byte order: %v", order)
	}

	return nil
}

func hostOrder() format.ByteOrder {
	if endian.IsNativeBigEndian() {
		return format.OrderBig
	}

	return format.OrderLittle
}

// setCompression sets the payload compression type.
func (c *ArrayEncoderConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.CreateCodec(comp, "payload")
	if err != nil {
		return err
	}

	c.compression = comp
	c.codec = codec

	return nil
}

// ArrayEncoderOption represents a functional option for configuring the ArrayEncoderConfig.
type ArrayEncoderOption = options.Option[*ArrayEncoderConfig]

// WithLittleEndian writes blobs in little-endian byte order.
// It is the default option.
func WithLittleEndian() ArrayEncoderOption {
	return options.NoError(func(c *ArrayEncoderConfig) {
		c.order = format.OrderLittle
	})
}

// WithBigEndian writes blobs in big-endian byte order.
func WithBigEndian() ArrayEncoderOption {
	return options.NoError(func(c *ArrayEncoderConfig) {
		c.order = format.OrderBig
	})
}

// WithNativeEndian writes blobs in the encoding host's byte order, so that
// decoders on hosts of the same order never swap.
func WithNativeEndian() ArrayEncoderOption {
	return options.NoError(func(c *ArrayEncoderConfig) {
		c.order = hostOrder()
	})
}

// WithByteOrder writes blobs in the given byte order.
func WithByteOrder(order format.ByteOrder) ArrayEncoderOption {
	return options.New(func(c *ArrayEncoderConfig) error {
		return c.setByteOrder(order)
	})
}

// WithCompression sets the payload compression type.
func WithCompression(comp format.CompressionType) ArrayEncoderOption {
	return options.New(func(c *ArrayEncoderConfig) error {
		return c.setCompression(comp)
	})
}
