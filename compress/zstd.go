package compress

// ZstdCompressor provides Zstandard compression.
//
// This codec favors compression ratio over speed, making it the right
// choice when the encoded text is archived or transmitted rather than
// immediately re-read.
//
// Two implementations exist behind build tags: a cgo-backed one using
// valyala/gozstd when cgo is available, and a pure-Go one using
// klauspost/compress/zstd otherwise. Both produce standard zstd frames
// and are wire-compatible.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
