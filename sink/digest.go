package sink

import "github.com/cespare/xxhash/v2"

// Digest feeds every written byte into a streaming xxHash64.
//
// Because the hash is computed over the byte stream regardless of how it
// was sliced into writes, two encode runs that differ only in chunk size
// produce the same digest. That makes it a convenient chunk-invariance
// check without keeping the full output in memory.
type Digest struct {
	h *xxhash.Digest
	n int64
}

// NewDigest creates a digest sink.
func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

// Write feeds p into the hash.
func (d *Digest) Write(p []byte) (int, error) {
	d.n += int64(len(p))
	return d.h.Write(p)
}

// Sum64 returns the hash of everything written so far.
func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}

// Total returns the number of bytes written so far.
func (d *Digest) Total() int64 {
	return d.n
}

// Reset clears the hash state for reuse.
func (d *Digest) Reset() {
	d.h.Reset()
	d.n = 0
}
