package charenc

import "unicode/utf16"

const (
	surrHighStart = 0xD800
	surrLowStart  = 0xDC00
	surrEnd       = 0xE000

	// replacementRune substitutes unpaired surrogates in Unicode-based charsets.
	replacementRune = '�'

	// replacementUnit is the UTF-16 code unit form of replacementRune.
	replacementUnit = 0xFFFD
)

// IsHighSurrogate reports whether u is the leading half of a surrogate pair.
func IsHighSurrogate(u uint16) bool {
	return u >= surrHighStart && u < surrLowStart
}

// IsLowSurrogate reports whether u is the trailing half of a surrogate pair.
func IsLowSurrogate(u uint16) bool {
	return u >= surrLowStart && u < surrEnd
}

// IsSurrogate reports whether u is either half of a surrogate pair.
func IsSurrogate(u uint16) bool {
	return u >= surrHighStart && u < surrEnd
}

// CodeUnits converts a string to its UTF-16 code unit representation.
//
// This is the input form all encoders in this package operate on. Runes
// outside the BMP become surrogate pairs, matching the in-memory text
// representation the chunked encoder is designed around.
func CodeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeString converts code units back to a Go string.
// Unpaired surrogates decode to U+FFFD.
func DecodeString(units []uint16) string {
	return string(utf16.Decode(units))
}

func combineSurrogates(high, low uint16) rune {
	return 0x10000 + (rune(high)-surrHighStart)<<10 + (rune(low) - surrLowStart)
}

// decodeCodeUnit reads one code point from the front of src.
//
// It returns the decoded rune and the number of code units consumed (1 or 2).
// A consumed count of 0 means src starts with a high surrogate that may be
// completed by future input; this only happens when atEOF is false. Unpaired
// surrogates decode to the replacement rune.
func decodeCodeUnit(src []uint16, atEOF bool) (rune, int) {
	u := src[0]
	switch {
	case !IsSurrogate(u):
		return rune(u), 1
	case IsHighSurrogate(u):
		if len(src) > 1 {
			if IsLowSurrogate(src[1]) {
				return combineSurrogates(u, src[1]), 2
			}
			// High surrogate followed by a non-low unit: replace the high alone.
			return replacementRune, 1
		}
		if atEOF {
			return replacementRune, 1
		}

		return 0, 0 // need more input
	default:
		// Unpaired low surrogate.
		return replacementRune, 1
	}
}
