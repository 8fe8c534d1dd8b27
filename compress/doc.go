// Package compress provides compression codecs for packed pbcnf formula
// payloads.
//
// A flattened formula is a flat run of int32 elements whose clause length
// prefixes and clustered variable indexes repeat heavily, so general-purpose
// compressors do well on large formulas. Compression applies only to the
// packed envelope produced by buffer.Pack; the in-memory wire buffer is
// never compressed.
//
// Supported algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Use GetCodec to look up a shared built-in codec by format.CompressionType,
// or CreateCodec to construct a fresh instance.
package compress
