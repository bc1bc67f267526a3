package sink

import (
	"io"

	"github.com/qurbonzoda/filewritetext/compress"
	"github.com/qurbonzoda/filewritetext/format"
)

// Compressed pipes written bytes through a streaming compression codec
// into another sink.
//
// Close flushes the final compression frame into the inner sink; it does
// not close the inner sink, which stays owned by the caller.
type Compressed struct {
	w io.WriteCloser
}

// NewCompressed creates a compressed sink in front of next.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - next: Sink receiving the compressed bytes
//
// Returns:
//   - *Compressed: The created sink
//   - error: Invalid compression type error
func NewCompressed(compressionType format.CompressionType, next io.Writer) (*Compressed, error) {
	w, err := compress.NewStreamWriter(compressionType, next)
	if err != nil {
		return nil, err
	}

	return &Compressed{w: w}, nil
}

// Write compresses p and forwards it to the inner sink.
func (s *Compressed) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close flushes pending compressed data into the inner sink.
func (s *Compressed) Close() error {
	return s.w.Close()
}
