// Package filewritetext converts in-memory text to bytes in a chosen
// charset and writes those bytes to a file, either overwriting or
// appending.
//
// The package exists to compare strategies for this one operation: encode
// the whole text in one shot and write it, or stream it through fixed-size
// working buffers and write chunk by chunk. Both strategies produce
// byte-identical files; they differ in peak memory and syscall pattern.
//
// # Core Features
//
//   - Charset selection by IANA name (UTF-8, UTF-16LE/BE, ISO-8859-1, ...)
//   - Replacement policy throughout: malformed or unmappable input is
//     substituted, never raised as an error
//   - Chunked encoding with correct handling of surrogate pairs that
//     straddle chunk boundaries
//   - Overwrite and append file modes
//   - Optional compression of the written stream (Zstd, S2, LZ4)
//
// # Basic Usage
//
//	import "github.com/qurbonzoda/filewritetext"
//
//	// Overwrite out.txt with text encoded as ISO-8859-1
//	n, err := filewritetext.WriteFile("out.txt", text,
//	    filewritetext.WithCharset("ISO-8859-1"),
//	)
//
//	// Append, forcing the chunked strategy with a custom chunk size
//	n, err = filewritetext.AppendFile("out.txt", text,
//	    filewritetext.WithStrategy(format.StrategyChunked),
//	    filewritetext.WithChunkSize(4096),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control, use the charenc package (encoders) and the sink package
// (destinations) directly.
package filewritetext

import (
	"fmt"
	"io"

	"github.com/qurbonzoda/filewritetext/charenc"
	"github.com/qurbonzoda/filewritetext/compress"
	"github.com/qurbonzoda/filewritetext/format"
	"github.com/qurbonzoda/filewritetext/internal/options"
	"github.com/qurbonzoda/filewritetext/sink"
)

// DefaultCharset is the charset used when WithCharset is not given.
const DefaultCharset = "UTF-8"

type config struct {
	charsetName string
	chunkSize   int
	strategy    format.Strategy
	compression format.CompressionType
}

// Option configures WriteFile and AppendFile.
type Option = options.Option[*config]

func defaultConfig() config {
	return config{
		charsetName: DefaultCharset,
		chunkSize:   charenc.DefaultChunkSize,
		strategy:    format.StrategyAuto,
		compression: format.CompressionNone,
	}
}

// WithCharset selects the target charset by name.
//
// The name is resolved through charenc.Lookup before any file is opened;
// an unknown name fails the whole operation at setup time.
func WithCharset(name string) Option {
	return options.NoError(func(c *config) {
		c.charsetName = name
	})
}

// WithChunkSize sets the chunk size, in code units, for the chunked
// strategy. Returns an error for sizes below charenc.MinChunkSize.
func WithChunkSize(n int) Option {
	return options.New(func(c *config) error {
		if n < charenc.MinChunkSize {
			return fmt.Errorf("chunk size %d below minimum %d", n, charenc.MinChunkSize)
		}
		c.chunkSize = n

		return nil
	})
}

// WithStrategy selects the encode strategy.
//
// StrategyAuto (the default) encodes small inputs in one shot and chunks
// large ones; StrategyWriteAll and StrategyChunked force one path.
func WithStrategy(s format.Strategy) Option {
	return options.New(func(c *config) error {
		switch s {
		case format.StrategyAuto, format.StrategyWriteAll, format.StrategyChunked:
			c.strategy = s
			return nil
		default:
			return fmt.Errorf("invalid strategy: %v", s)
		}
	})
}

// WithCompression compresses the written bytes with the given codec.
//
// The auto and chunked strategies stream through a framed compressor;
// StrategyWriteAll compresses the whole payload in one shot with the block
// codec. Zstd produces a standard zstd frame either way; for S2 and LZ4
// the block form is not the framed stream format, so files written under
// different strategies are decoded differently.
func WithCompression(ct format.CompressionType) Option {
	return options.NoError(func(c *config) {
		c.compression = ct
	})
}

// WriteFile encodes text and writes it to path, truncating any existing
// content.
//
// Parameters:
//   - path: Destination file path
//   - text: Text to encode
//   - opts: Optional configuration (charset, strategy, chunk size, compression)
//
// Returns:
//   - int64: Encoded bytes produced (before compression, if any)
//   - error: Setup, encode setup, or I/O error
func WriteFile(path, text string, opts ...Option) (int64, error) {
	return writeFile(path, text, format.ModeOverwrite, opts)
}

// AppendFile encodes text and writes it after the existing content of path.
// The file is created if it does not exist.
//
// Parameters and returns match WriteFile.
func AppendFile(path, text string, opts ...Option) (int64, error) {
	return writeFile(path, text, format.ModeAppend, opts)
}

func writeFile(path, text string, mode format.WriteMode, opts []Option) (n int64, err error) {
	cfg := defaultConfig()
	if err = options.Apply(&cfg, opts...); err != nil {
		return 0, err
	}

	// Charset and codec problems are setup errors; reject them before
	// touching the file.
	charset, err := charenc.Lookup(cfg.charsetName)
	if err != nil {
		return 0, err
	}

	units := charenc.CodeUnits(text)

	// The forced one-shot strategy stays one-shot under compression too:
	// atomic encode, block codec, single write.
	if cfg.strategy == format.StrategyWriteAll && cfg.compression != format.CompressionNone {
		return writeAllCompressed(path, mode, charset, units, cfg.compression)
	}

	fs, err := openSink(path, mode)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := fs.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var out io.Writer = fs
	var cw *sink.Compressed
	if cfg.compression != format.CompressionNone {
		cw, err = sink.NewCompressed(cfg.compression, fs)
		if err != nil {
			return 0, err
		}
		out = cw
	}

	n, err = encode(out, charset, units, cfg)

	// Close the compressor even after an encode error so its resources are
	// released; the first error wins.
	if cw != nil {
		if cerr := cw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return n, err
}

// writeAllCompressed encodes the whole payload atomically, compresses it
// with the block codec for the given type, and writes the result in one
// call. The returned count is the encoded size before compression, matching
// the streamed paths.
func writeAllCompressed(path string, mode format.WriteMode, charset charenc.Charset, units []uint16, ct format.CompressionType) (n int64, err error) {
	codec, err := compress.CreateCodec(ct, "file")
	if err != nil {
		return 0, err
	}

	data := charenc.EncodeAll(charset, units)
	compressed, err := codec.Compress(data)
	if err != nil {
		return 0, err
	}

	fs, err := openSink(path, mode)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := fs.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err = fs.Write(compressed); err != nil {
		return 0, err
	}

	return int64(len(data)), nil
}

func openSink(path string, mode format.WriteMode) (*sink.File, error) {
	if mode == format.ModeAppend {
		return sink.Append(path)
	}

	return sink.Overwrite(path)
}

func encode(w io.Writer, charset charenc.Charset, units []uint16, cfg config) (int64, error) {
	switch cfg.strategy {
	case format.StrategyWriteAll:
		data := charenc.EncodeAll(charset, units)
		n, err := w.Write(data)

		return int64(n), err
	case format.StrategyChunked:
		enc, err := charenc.NewChunkedEncoder(charset, cfg.chunkSize)
		if err != nil {
			return 0, err
		}
		defer enc.Release()

		return enc.EncodeTo(w, units)
	default:
		return charenc.EncodeTo(w, charset, units)
	}
}

// EncodeString returns the bytes of text in the named charset without
// touching the filesystem.
//
// Parameters:
//   - text: Text to encode
//   - charsetName: Charset name resolved through charenc.Lookup
//
// Returns:
//   - []byte: Encoded bytes
//   - error: Unknown charset error
func EncodeString(text, charsetName string) ([]byte, error) {
	charset, err := charenc.Lookup(charsetName)
	if err != nil {
		return nil, err
	}

	return charenc.EncodeAll(charset, charenc.CodeUnits(text)), nil
}
