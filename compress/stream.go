package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/qurbonzoda/filewritetext/format"
)

// NewStreamWriter returns a WriteCloser that compresses everything written
// to it and forwards the result to w.
//
// This is the codec entry point for the chunked encode path: the encoder
// flushes one chunk at a time, and the stream writer coalesces those
// flushes into proper compression frames. Close must be called to flush
// the final frame; it does not close w.
//
// Stream formats are algorithm-standard: zstd frames, the S2/Snappy
// framing format, and LZ4 frames. Use the matching stream reader to
// decompress; the block-oriented Codec.Decompress does not apply to S2
// and LZ4 streams.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - w: Destination for the compressed output
//
// Returns:
//   - io.WriteCloser: The streaming compressor
//   - error: Invalid compression type error
func NewStreamWriter(compressionType format.CompressionType, w io.Writer) (io.WriteCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return nopWriteCloser{w}, nil
	case format.CompressionZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd stream writer: %w", err)
		}

		return zw, nil
	case format.CompressionS2:
		return s2.NewWriter(w), nil
	case format.CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("invalid stream compression: %s", compressionType)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
