// Package sink provides destinations for encoded text bytes.
//
// A sink is a plain io.Writer: it accepts bytes in order, synchronously,
// and propagates any underlying I/O error to the caller. The encoder layer
// performs no retries, so the first sink error aborts an encode run.
//
// Available sinks:
//   - File: overwrite or append to a file on disk
//   - Count: tally total bytes without storing them
//   - Digest: streaming xxHash64 of everything written
//   - Compressed: pipe bytes through a compression codec into another sink
package sink
