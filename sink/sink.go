package sink

import "io"

// Sink accepts encoded bytes in order, synchronously. It is an alias for
// io.Writer so any writer can serve as a destination; the types in this
// package are the destinations the benchmarks compare.
type Sink = io.Writer
