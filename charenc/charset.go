package charenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// ErrShortDst is returned by Charset.Encode when the destination buffer is
// too small to make progress. Callers that size the destination from
// MaxBytesPerCodeUnit never see it; receiving it through the chunked
// encoder indicates a charset whose declared maximum is wrong.
var ErrShortDst = errors.New("charenc: destination buffer too small")

// Charset is a named mapping from UTF-16 code units to bytes.
//
// All implementations follow the same replacement policy: malformed input
// (unpaired surrogates) and unmappable code points are substituted with the
// charset's replacement sequence, never reported as an error.
type Charset interface {
	// Name returns the canonical charset name, e.g. "UTF-8".
	Name() string

	// MaxBytesPerCodeUnit returns the worst case number of bytes a single
	// input code unit can produce, including replacement sequence expansion.
	// A destination of len(src)*MaxBytesPerCodeUnit() bytes is always
	// sufficient for Encode.
	MaxBytesPerCodeUnit() int

	// Encode converts code units from src into bytes in dst.
	//
	// It returns the number of bytes written and code units consumed.
	// Encode consumes all of src except, when atEOF is false, a single
	// trailing high surrogate that may be completed by the next call.
	// With atEOF true the trailing surrogate is finalized as a replacement
	// sequence and src is always fully consumed.
	//
	// If dst is too small to hold the encoded output, Encode returns
	// ErrShortDst; counts are then only valid for the bytes actually
	// written and the call must be treated as failed.
	Encode(dst []byte, src []uint16, atEOF bool) (nDst, nSrc int, err error)
}

// statefulEncodings lists x/text encodings whose encoder carries shift
// state between runes. Each chunk runs through a fresh, finalized encoder
// session, so these would re-emit their escape sequences at every chunk
// boundary and chunked output would diverge from atomic output. They are
// rejected by Lookup, whatever alias they are requested under.
var statefulEncodings = []encoding.Encoding{
	japanese.ISO2022JP,
	simplifiedchinese.HZGB2312,
}

// Lookup resolves a charset by name.
//
// UTF-8, UTF-16LE and UTF-16BE are served by native implementations; any
// other IANA-registered charset name (e.g. "ISO-8859-1", "windows-1252")
// resolves through the x/text encoding index. An unknown, unsupported or
// stateful name is rejected here, before any encode loop runs.
//
// Parameters:
//   - name: Charset name, matched case-insensitively
//
// Returns:
//   - Charset: The resolved charset
//   - error: An error if the name is unknown, has no encoder support, or
//     names a stateful encoding
func Lookup(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "utf-16le", "utf16le":
		return UTF16LE, nil
	case "utf-16be", "utf16be":
		return UTF16BE, nil
	case "utf-16", "utf16":
		// The x/text UTF-16 encoding writes a BOM per encoder session,
		// which would repeat the BOM on every chunk. Serve the big-endian
		// form without BOM so chunked and atomic output agree.
		return UTF16BE, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("charenc: unknown charset %q", name)
	}

	for _, stateful := range statefulEncodings {
		if enc == stateful {
			return nil, fmt.Errorf("charenc: charset %q uses a stateful encoder and is not supported", name)
		}
	}

	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}

	return &xtextCharset{name: canonical, enc: enc}, nil
}
