// Package pbcnf provides a stable, allocation-transparent boundary to a
// pseudo-boolean-to-CNF encoding engine: opaque encoder handles, five
// encoding operations, and flattened self-describing formula buffers with
// an explicit exactly-once release discipline.
//
// # Core Features
//
//   - Opaque encoder handles with single-ownership Close semantics
//   - Weighted constraint encoding (Leq, Geq, Both) and cardinality
//     encoding (AtMostK, AtLeastK)
//   - One contiguous, self-describing int32 buffer per encoded formula,
//     walkable from its header alone
//   - Exactly-once buffer release backed by pooled storage, with double
//     release detected instead of undefined
//   - Packed byte envelope with xxhash64 checksum and optional
//     Zstd/S2/LZ4 compression for storing or shipping formulas
//   - Pluggable engines behind the engine.Engine facade
//
// # Basic Usage
//
// Encoding a cardinality constraint and walking the result:
//
//	import "github.com/arloliu/pbcnf"
//
//	enc, _ := pbcnf.New()
//	defer enc.Close()
//
//	// At most one of variables 1, 2, 3 is true; auxiliaries start at 4.
//	buf, _ := enc.EncodeAtMostK([]int32{1, 2, 3}, 1, 4)
//	defer buf.Release()
//
//	dec, _ := buffer.NewBufferDecoder(buf)
//	fmt.Println("next free var:", dec.NextFreeVar())
//	for clause := range dec.All() {
//	    fmt.Println(clause)
//	}
//
// Chaining calls without auxiliary variable collisions:
//
//	first, _ := enc.EncodeAtMostK(lits, 2, 4)
//	next, _ := first.NextFreeVar()
//	second, _ := enc.EncodeAtLeastK(lits, 1, next)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoder
// package. For fine-grained control use the encoder, buffer, engine and
// cnf packages directly.
package pbcnf

import (
	"github.com/arloliu/pbcnf/buffer"
	"github.com/arloliu/pbcnf/encoder"
	"github.com/arloliu/pbcnf/engine"
	"github.com/arloliu/pbcnf/format"
)

// New creates a new encoder handle with custom options.
//
// The handle is exclusively owned by the caller and must be closed exactly
// once. The zero-option call uses the built-in reference engine with input
// validation enabled.
//
// Available options:
//   - encoder.WithEngine(engine.Engine)
//   - encoder.WithValidationDisabled()
//
// Example:
//
//	enc, err := pbcnf.New(encoder.WithEngine(myEngine))
//	if err != nil {
//	    return err
//	}
//	defer enc.Close()
func New(opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(opts...)
}

// DefaultEngine returns the built-in reference engine, the engine New uses
// when no WithEngine option is given.
func DefaultEngine() engine.Engine {
	return engine.Default()
}

// Pack serializes a formula buffer into a self-contained byte envelope
// using the given compression type. See buffer.Pack.
func Pack(buf *buffer.FormulaBuffer, compression format.CompressionType) ([]byte, error) {
	return buffer.Pack(buf, compression)
}

// Unpack restores a formula buffer from a packed envelope. See
// buffer.Unpack.
func Unpack(data []byte) (*buffer.FormulaBuffer, error) {
	return buffer.Unpack(data)
}
