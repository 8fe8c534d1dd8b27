package section

import (
	"fmt"

	"github.com/arloliu/pbcnf/endian"
	"github.com/arloliu/pbcnf/errs"
	"github.com/arloliu/pbcnf/format"
)

// Envelope is the fixed-size header of a packed formula buffer.
//
// The envelope records everything a consumer with no knowledge of the
// producer needs to restore the flattened buffer: byte order, compression
// type, uncompressed element count, and a checksum of the raw payload.
type Envelope struct {
	// Flags is a packed option field. Bit 0 selects the payload byte order.
	Flags uint8
	// Compression is the codec applied to the payload bytes.
	Compression format.CompressionType
	// PayloadLength is the uncompressed payload length in int32 elements.
	PayloadLength uint32
	// Checksum is the xxhash64 of the uncompressed payload bytes.
	Checksum uint64
}

// NewEnvelope creates an envelope for a payload of the given element count,
// using the host's native byte order.
func NewEnvelope(compression format.CompressionType, payloadLength uint32, checksum uint64) Envelope {
	env := Envelope{
		Compression:   compression,
		PayloadLength: payloadLength,
		Checksum:      checksum,
	}
	if endian.IsNativeBigEndian() {
		env.Flags |= bigEndianFlag
	}

	return env
}

// GetEndianEngine returns the engine matching the envelope's payload byte
// order flag.
func (e Envelope) GetEndianEngine() endian.EndianEngine {
	if e.Flags&bigEndianFlag != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Parse parses the envelope from the start of a packed byte slice.
//
// Returns:
//   - error: ErrInvalidEnvelopeSize if data is shorter than EnvelopeSize,
//     ErrInvalidMagicNumber on a magic mismatch, or ErrInvalidCompression
//     for an unknown compression type
func (e *Envelope) Parse(data []byte) error {
	if len(data) < EnvelopeSize {
		return fmt.Errorf("%w: %d bytes, need at least %d",
			errs.ErrInvalidEnvelopeSize, len(data), EnvelopeSize)
	}

	// The magic number and flags are always little-endian so the payload
	// byte order can be discovered before the rest of the header is read.
	magic := uint16(data[0]) | uint16(data[1])<<8
	if magic != MagicNumber {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, magic)
	}

	e.Flags = data[2]
	e.Compression = format.CompressionType(data[3])
	if !e.Compression.IsValid() {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompression, data[3])
	}

	engine := e.GetEndianEngine()
	e.PayloadLength = engine.Uint32(data[4:8])
	e.Checksum = engine.Uint64(data[8:16])

	return nil
}

// Bytes serializes the envelope into a fresh EnvelopeSize byte slice.
func (e Envelope) Bytes() []byte {
	b := make([]byte, EnvelopeSize)

	b[0] = byte(MagicNumber & 0xFF)
	b[1] = byte(MagicNumber >> 8)
	b[2] = e.Flags
	b[3] = byte(e.Compression)

	engine := e.GetEndianEngine()
	engine.PutUint32(b[4:8], e.PayloadLength)
	engine.PutUint64(b[8:16], e.Checksum)

	return b
}

// ParseEnvelope parses an Envelope from the start of a packed byte slice.
func ParseEnvelope(data []byte) (Envelope, error) {
	e := Envelope{}
	if err := e.Parse(data); err != nil {
		return Envelope{}, err
	}

	return e, nil
}
