// Package charenc converts in-memory text, represented as UTF-16 code units,
// into bytes of a target charset.
//
// The package provides two encode paths over the same Charset implementations:
//
//   - EncodeAll: one-shot atomic encode of the whole input
//   - ChunkedEncoder: incremental encode through fixed-size working buffers,
//     flushing bytes to an io.Writer after every chunk
//
// Both paths produce byte-identical output for any input and chunk size. The
// chunked path never holds more than one chunk of code units and its worst
// case byte expansion in memory at once, which is what makes it interesting
// for large inputs written straight to a file.
//
// Malformed input (unpaired surrogates) is always substituted with the
// charset's replacement sequence, never reported as an error. A surrogate
// pair split across a chunk boundary is carried over and encoded as a single
// unit once its second half arrives.
package charenc
