package section

const (
	// Bit masks of the options word
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicArrayV1Opt is the version 1 magic number of the array blob format.
	MagicArrayV1Opt = 0xEC10
)

// offset and section sizes in the blob file
const (
	HeaderSize    = 32         // fixed header size in bytes
	DimEntrySize  = 8          // size of one shape dimension in bytes
	DimsOffset    = HeaderSize // byte offset where the shape section starts
	MaxDimensions = 32         // maximum number of dimensions of a stored array
)
