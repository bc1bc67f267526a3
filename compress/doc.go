// Package compress provides compression codecs for encoded text payloads.
//
// Compression is optional and sits behind the sink layer: encoded bytes can
// be written to a file as-is, or piped through one of the codecs here first.
// Storing text in a single-byte or UTF-8 charset already removes a lot of
// redundancy, but long repetitive text still compresses well.
//
// The package offers two API shapes:
//
//   - Codec: one-shot Compress/Decompress over byte slices, for payloads
//     that are fully in memory
//   - NewStreamWriter: a streaming io.WriteCloser for the chunked encode
//     path, where bytes arrive one flush at a time
//
// Supported algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// Note that the block form and the stream form of S2 and LZ4 are different
// wire formats: data written through NewStreamWriter must be read back with
// the matching stream reader, not with Codec.Decompress.
package compress
