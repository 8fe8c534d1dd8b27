package buffer

import (
	"fmt"

	"github.com/arloliu/pbcnf/compress"
	"github.com/arloliu/pbcnf/errs"
	"github.com/arloliu/pbcnf/format"
	"github.com/arloliu/pbcnf/internal/hash"
	"github.com/arloliu/pbcnf/internal/pool"
	"github.com/arloliu/pbcnf/section"
)

// Pack serializes a formula buffer into a self-contained byte envelope for
// storage or transport.
//
// The envelope records the payload byte order, compression type, element
// count and an xxhash64 checksum of the raw payload, so any consumer can
// restore the buffer with Unpack regardless of the producing host. The
// buffer itself is not consumed; the caller still owns and releases it.
//
// Parameters:
//   - buf: Live formula buffer to pack
//   - compression: Codec applied to the payload (format.CompressionNone,
//     CompressionZstd, CompressionS2 or CompressionLZ4)
//
// Returns:
//   - []byte: Envelope header followed by the (compressed) payload
//   - error: ErrBufferReleased, invalid compression type, or codec errors
func Pack(buf *FormulaBuffer, compression format.CompressionType) ([]byte, error) {
	data, err := buf.Int32s()
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(compression, "payload")
	if err != nil {
		return nil, err
	}

	env := section.NewEnvelope(compression, uint32(len(data)), 0)
	engine := env.GetEndianEngine()

	payload := make([]byte, 0, len(data)*4)
	for _, v := range data {
		payload = engine.AppendUint32(payload, uint32(v))
	}
	env.Checksum = hash.Checksum(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	out := make([]byte, 0, section.EnvelopeSize+len(compressed))
	out = append(out, env.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// Unpack restores a formula buffer from a packed envelope.
//
// The envelope's magic number, compression type, payload length and
// checksum are all verified before the buffer is reconstructed; corrupted
// input is rejected, never partially decoded.
//
// The returned buffer is freshly allocated from the internal pool and owned
// by the caller, independent of the input bytes.
func Unpack(data []byte) (*FormulaBuffer, error) {
	env, err := section.ParseEnvelope(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(env.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[section.EnvelopeSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if len(payload) != int(env.PayloadLength)*4 {
		return nil, fmt.Errorf("%w: payload is %d bytes, header records %d elements",
			errs.ErrInvalidBufferLength, len(payload), env.PayloadLength)
	}

	if hash.Checksum(payload) != env.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	engine := env.GetEndianEngine()
	elems, cleanup := pool.GetInt32Slice(int(env.PayloadLength))
	for i := range elems {
		elems[i] = int32(engine.Uint32(payload[i*4 : i*4+4]))
	}

	numClauses, err := validateLayout(elems)
	if err != nil {
		cleanup()
		return nil, err
	}

	return newFormulaBuffer(elems, numClauses, cleanup), nil
}
