package charenc

import "github.com/qurbonzoda/filewritetext/endian"

// UTF16LE and UTF16BE encode code units as UTF-16 in the respective byte
// order, without a byte order mark. Well-formed pairs pass through
// unchanged; an unpaired surrogate is substituted with U+FFFD.
var (
	UTF16LE Charset = utf16Charset{name: "UTF-16LE", engine: endian.GetLittleEndianEngine()}
	UTF16BE Charset = utf16Charset{name: "UTF-16BE", engine: endian.GetBigEndianEngine()}
)

type utf16Charset struct {
	name   string
	engine endian.EndianEngine
}

func (c utf16Charset) Name() string { return c.name }

func (c utf16Charset) MaxBytesPerCodeUnit() int { return 2 }

func (c utf16Charset) Encode(dst []byte, src []uint16, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		u := src[nSrc]
		if IsHighSurrogate(u) {
			if nSrc+1 == len(src) && !atEOF {
				break // wait for the potential low half
			}
			if nSrc+1 < len(src) && IsLowSurrogate(src[nSrc+1]) {
				if len(dst)-nDst < 4 {
					return nDst, nSrc, ErrShortDst
				}
				c.engine.PutUint16(dst[nDst:], u)
				c.engine.PutUint16(dst[nDst+2:], src[nSrc+1])
				nDst += 4
				nSrc += 2

				continue
			}
			u = replacementUnit
		} else if IsLowSurrogate(u) {
			u = replacementUnit
		}

		if len(dst)-nDst < 2 {
			return nDst, nSrc, ErrShortDst
		}
		c.engine.PutUint16(dst[nDst:], u)
		nDst += 2
		nSrc++
	}

	return nDst, nSrc, nil
}
