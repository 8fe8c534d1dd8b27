// Package section defines the fixed layout sections of the pbcnf wire
// formats: the two-element header leading every flattened formula buffer,
// and the byte-level envelope header wrapped around packed buffers.
package section

import "math"

// Flattened formula buffer layout, in int32 elements:
//
//	[0]            totalLength = HeaderLength + numClauses + sum(clauseLengths)
//	[1]            nextFreeVar
//	[2]            clause_0 length
//	[3..2+len0)    clause_0 literals
//	...            repeated per clause, in production order
const (
	// HeaderLength is the number of int32 header elements leading every
	// flattened formula buffer.
	HeaderLength = 2

	// TotalLengthIndex is the element index of the buffer's total length.
	TotalLengthIndex = 0

	// NextFreeVarIndex is the element index of the next-free-variable
	// watermark.
	NextFreeVarIndex = 1

	// MaxTotalLength is the largest representable buffer length. Totals are
	// computed in int64 and rejected before writing if they exceed this.
	MaxTotalLength = math.MaxInt32
)

// Packed envelope layout, in bytes:
//
//	[0:2]   magic number (always little-endian)
//	[2]     option flags (bit 0: payload byte order, 0 = little-endian)
//	[3]     compression type
//	[4:8]   uncompressed payload length in int32 elements
//	[8:16]  xxhash64 checksum of the uncompressed payload bytes
//	[16:]   payload (compressed per the compression type)
const (
	// MagicNumber identifies a pbcnf packed envelope.
	MagicNumber uint16 = 0xB2CF

	// EnvelopeSize is the byte size of the fixed envelope header.
	EnvelopeSize = 16

	// bigEndianFlag marks a payload stored in big-endian byte order.
	bigEndianFlag = 0x01
)
