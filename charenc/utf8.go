package charenc

import "unicode/utf8"

// UTF8 encodes code units as UTF-8.
//
// A BMP code unit encodes to at most three bytes, a surrogate pair to four
// bytes for two code units, and an unpaired surrogate to the three-byte
// replacement sequence for U+FFFD, so three bytes per code unit is the
// worst case.
var UTF8 Charset = utf8Charset{}

type utf8Charset struct{}

func (utf8Charset) Name() string { return "UTF-8" }

func (utf8Charset) MaxBytesPerCodeUnit() int { return 3 }

func (utf8Charset) Encode(dst []byte, src []uint16, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, consumed := decodeCodeUnit(src[nSrc:], atEOF)
		if consumed == 0 {
			break // trailing high surrogate, wait for the next chunk
		}
		if len(dst)-nDst < utf8.RuneLen(r) {
			return nDst, nSrc, ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += consumed
	}

	return nDst, nSrc, nil
}
