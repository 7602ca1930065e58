// Package section defines the binary layout of the array blob format.
//
// An array blob carries one integer array between hosts whose byte orders may
// differ. Its layout is:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                     │
//	│  - Flag (4 bytes): options, element, codec   │
//	│  - NDim (4 bytes)                            │
//	│  - Count (8 bytes)                           │
//	│  - PayloadSize (8 bytes)                     │
//	│  - Checksum (8 bytes, xxHash64)              │
//	├──────────────────────────────────────────────┤
//	│ Shape (NDim × 8 bytes)                       │
//	├──────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes, maybe compressed)│
//	└──────────────────────────────────────────────┘
//
// The first two bytes of the flag are always little-endian and hold the
// endianness bit; every other multi-byte field, including each payload
// element, uses the byte order that bit selects. Decoders read the bit first
// and pick the matching endian engine, so a blob is readable on any host.
package section
