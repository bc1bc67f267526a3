package charenc

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/qurbonzoda/filewritetext/internal/pool"
)

// xtextCharset adapts an x/text encoding to the Charset interface.
//
// Code units are resolved to complete runes first, so the wrapped
// transformer only ever sees well-formed UTF-8 ending on a rune boundary.
// Unmappable runes are substituted with the encoding's own replacement
// byte via encoding.ReplaceUnsupported.
type xtextCharset struct {
	name string
	enc  encoding.Encoding
}

func (c *xtextCharset) Name() string { return c.name }

// MaxBytesPerCodeUnit is a conservative bound: the stateless encodings
// Lookup admits top out at four bytes per rune (GB18030), and a rune never
// spans more than two code units. Escape-based encodings, whose shift
// sequences would exceed this, never reach this type.
func (c *xtextCharset) MaxBytesPerCodeUnit() int { return 4 }

func (c *xtextCharset) Encode(dst []byte, src []uint16, atEOF bool) (nDst, nSrc int, err error) {
	scratch := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(scratch)

	for nSrc < len(src) {
		r, consumed := decodeCodeUnit(src[nSrc:], atEOF)
		if consumed == 0 {
			break // trailing high surrogate, wait for the next chunk
		}
		scratch.B = utf8.AppendRune(scratch.B, r)
		nSrc += consumed
	}

	// The scratch always ends on a rune boundary and the encoding carries no
	// state across runes, so the transformer can be finalized per call
	// regardless of atEOF. Output stays identical however src is split.
	t := encoding.ReplaceUnsupported(c.enc.NewEncoder())
	n, _, terr := t.Transform(dst, scratch.Bytes(), true)
	if terr != nil {
		if errors.Is(terr, transform.ErrShortDst) {
			return n, 0, ErrShortDst
		}

		return n, 0, fmt.Errorf("charenc: %s encoder failed: %w", c.name, terr)
	}

	return n, nSrc, nil
}
