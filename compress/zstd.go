package compress

// ZstdCompressor provides Zstandard compression for packed formula payloads.
//
// Zstd gives the best ratio of the supported codecs on large CNF buffers,
// at moderate compression cost. Use it when formulas are archived or
// shipped over a network; prefer S2 or LZ4 when pack latency matters more
// than size.
//
// Two implementations exist behind build tags: a cgo binding (valyala/gozstd)
// selected with the cgozstd tag, and a pure-Go implementation
// (klauspost/compress/zstd) used by default.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
