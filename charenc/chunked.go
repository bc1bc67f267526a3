package charenc

import (
	"fmt"
	"io"

	"github.com/qurbonzoda/filewritetext/internal/pool"
)

const (
	// DefaultChunkSize is the number of code units processed per chunk.
	DefaultChunkSize = 8192

	// DirectEncodeThreshold is the input length below which EncodeTo skips
	// chunking and encodes in one shot. This is a tuning constant, not a
	// correctness boundary: both paths produce identical bytes.
	DirectEncodeThreshold = 2 * DefaultChunkSize

	// MinChunkSize is the smallest usable chunk size. With a carried high
	// surrogate occupying one slot, a chunk must still have room for the
	// low half to ever make progress.
	MinChunkSize = 2
)

// ChunkedEncoder streams code units through a pair of fixed-size working
// buffers: a char buffer of chunkSize code units and a byte buffer of
// chunkSize * MaxBytesPerCodeUnit bytes. Both are borrowed from internal
// pools and reused across chunks and across EncodeTo calls.
//
// The encoder owns its buffers exclusively and is not safe for concurrent
// use. Call Release when done to return the buffers to their pools.
type ChunkedEncoder struct {
	charset     Charset
	chunkSize   int
	charBuf     []uint16
	releaseChar func()
	byteBuf     *pool.ByteBuffer
}

// NewChunkedEncoder creates a chunked encoder for the given charset.
//
// Parameters:
//   - charset: Target charset
//   - chunkSize: Code units per chunk, at least MinChunkSize
//
// Returns:
//   - *ChunkedEncoder: The created encoder
//   - error: An error if chunkSize is below MinChunkSize
func NewChunkedEncoder(charset Charset, chunkSize int) (*ChunkedEncoder, error) {
	if chunkSize < MinChunkSize {
		return nil, fmt.Errorf("charenc: chunk size %d below minimum %d", chunkSize, MinChunkSize)
	}

	charBuf, releaseChar := pool.GetUint16Slice(chunkSize)

	byteBuf := pool.GetChunkBuffer()
	need := chunkSize * charset.MaxBytesPerCodeUnit()
	byteBuf.Grow(need)
	byteBuf.SetLength(need)

	return &ChunkedEncoder{
		charset:     charset,
		chunkSize:   chunkSize,
		charBuf:     charBuf,
		releaseChar: releaseChar,
		byteBuf:     byteBuf,
	}, nil
}

// EncodeTo encodes src chunk by chunk, writing the bytes of each chunk to w
// before starting the next one.
//
// The concatenation of all writes equals EncodeAll(charset, src) byte for
// byte, for any chunk size. A high surrogate left dangling at a chunk
// boundary is carried into the next chunk; on the final chunk it is
// finalized as a replacement sequence.
//
// The first error from w aborts the remaining chunks and is returned
// unchanged; bytes already written are not rolled back.
//
// Returns:
//   - int64: Total bytes written to w
//   - error: The first write error, or nil
func (e *ChunkedEncoder) EncodeTo(w io.Writer, src []uint16) (int64, error) {
	var total int64
	leftover := 0 // pending code units carried from the prior chunk, 0 or 1
	cursor := 0

	for {
		copyLen := min(e.chunkSize-leftover, len(src)-cursor)
		copy(e.charBuf[leftover:], src[cursor:cursor+copyLen])
		chunkLen := leftover + copyLen
		atEOF := cursor+copyLen == len(src)

		nDst, nSrc, err := e.charset.Encode(e.byteBuf.B, e.charBuf[:chunkLen], atEOF)
		if err != nil {
			panic(fmt.Sprintf("charenc: charset %s failed on a full-size byte buffer: %v", e.charset.Name(), err))
		}
		remaining := chunkLen - nSrc
		if remaining > 1 || (remaining == 1 && atEOF) {
			panic(fmt.Sprintf("charenc: charset %s consumed %d of %d code units (atEOF=%v)",
				e.charset.Name(), nSrc, chunkLen, atEOF))
		}

		if nDst > 0 {
			n, werr := w.Write(e.byteBuf.B[:nDst])
			total += int64(n)
			if werr != nil {
				return total, werr
			}
		}

		if remaining == 1 {
			// A dangling high surrogate waits for its low half.
			e.charBuf[0] = e.charBuf[chunkLen-1]
			leftover = 1
		} else {
			leftover = 0
		}

		cursor += copyLen
		if atEOF {
			return total, nil
		}
	}
}

// Release returns the working buffers to their pools.
// The encoder must not be used after calling Release.
func (e *ChunkedEncoder) Release() {
	if e.releaseChar != nil {
		e.releaseChar()
		e.releaseChar = nil
		e.charBuf = nil
	}
	if e.byteBuf != nil {
		pool.PutChunkBuffer(e.byteBuf)
		e.byteBuf = nil
	}
}

// EncodeAll encodes src atomically into a newly allocated byte slice.
//
// This is the reference the chunked path is measured against: for any
// input and chunk size, chunked output equals EncodeAll output.
func EncodeAll(charset Charset, src []uint16) []byte {
	dst := make([]byte, len(src)*charset.MaxBytesPerCodeUnit())
	nDst, nSrc, err := charset.Encode(dst, src, true)
	if err != nil || nSrc != len(src) {
		panic(fmt.Sprintf("charenc: charset %s atomic encode consumed %d of %d code units: %v",
			charset.Name(), nSrc, len(src), err))
	}

	return dst[:nDst]
}

// EncodeTo encodes src with charset and writes the bytes to w.
//
// Inputs shorter than DirectEncodeThreshold are encoded in one shot using a
// pooled buffer; longer inputs go through a ChunkedEncoder with
// DefaultChunkSize. Output is identical either way.
func EncodeTo(w io.Writer, charset Charset, src []uint16) (int64, error) {
	if len(src) < DirectEncodeThreshold {
		return encodeDirect(w, charset, src)
	}

	enc, err := NewChunkedEncoder(charset, DefaultChunkSize)
	if err != nil {
		return 0, err
	}
	defer enc.Release()

	return enc.EncodeTo(w, src)
}

func encodeDirect(w io.Writer, charset Charset, src []uint16) (int64, error) {
	buf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(buf)

	need := len(src) * charset.MaxBytesPerCodeUnit()
	buf.Grow(need)
	buf.SetLength(need)

	nDst, nSrc, err := charset.Encode(buf.B, src, true)
	if err != nil || nSrc != len(src) {
		panic(fmt.Sprintf("charenc: charset %s atomic encode consumed %d of %d code units: %v",
			charset.Name(), nSrc, len(src), err))
	}

	n, werr := w.Write(buf.B[:nDst])

	return int64(n), werr
}
