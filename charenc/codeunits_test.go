package charenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSurrogateClassification(t *testing.T) {
	require.True(t, IsHighSurrogate(0xD800))
	require.True(t, IsHighSurrogate(0xDBFF))
	require.False(t, IsHighSurrogate(0xDC00))

	require.True(t, IsLowSurrogate(0xDC00))
	require.True(t, IsLowSurrogate(0xDFFF))
	require.False(t, IsLowSurrogate(0xD800))

	require.True(t, IsSurrogate(0xD800))
	require.True(t, IsSurrogate(0xDFFF))
	require.False(t, IsSurrogate(0xD7FF))
	require.False(t, IsSurrogate(0xE000))
	require.False(t, IsSurrogate(0x0041))
}

func TestCodeUnits(t *testing.T) {
	// BMP characters are one unit each
	require.Equal(t, []uint16{0x0041, 0x0042}, CodeUnits("AB"))

	// Supplementary characters become surrogate pairs
	require.Equal(t, []uint16{0x0041, 0xD83D, 0xDE00, 0x0042}, CodeUnits("A😀B"))

	require.Empty(t, CodeUnits(""))
}

func TestDecodeString(t *testing.T) {
	require.Equal(t, "A😀B", DecodeString([]uint16{0x0041, 0xD83D, 0xDE00, 0x0042}))

	// Unpaired surrogates decode to U+FFFD
	require.Equal(t, "A�B", DecodeString([]uint16{0x0041, 0xD800, 0x0042}))
}

func TestCombineSurrogates(t *testing.T) {
	require.Equal(t, rune(0x1F600), combineSurrogates(0xD83D, 0xDE00))
	require.Equal(t, rune(0x10000), combineSurrogates(0xD800, 0xDC00))
	require.Equal(t, rune(0x10FFFF), combineSurrogates(0xDBFF, 0xDFFF))
}

func TestDecodeCodeUnit(t *testing.T) {
	// Plain BMP unit
	r, n := decodeCodeUnit([]uint16{0x0041}, false)
	require.Equal(t, rune('A'), r)
	require.Equal(t, 1, n)

	// Complete pair
	r, n = decodeCodeUnit([]uint16{0xD83D, 0xDE00}, false)
	require.Equal(t, rune(0x1F600), r)
	require.Equal(t, 2, n)

	// Trailing high surrogate: wait unless atEOF
	_, n = decodeCodeUnit([]uint16{0xD83D}, false)
	require.Equal(t, 0, n)

	r, n = decodeCodeUnit([]uint16{0xD83D}, true)
	require.Equal(t, replacementRune, r)
	require.Equal(t, 1, n)

	// High surrogate followed by a non-low unit replaces the high alone
	r, n = decodeCodeUnit([]uint16{0xD83D, 0x0041}, false)
	require.Equal(t, replacementRune, r)
	require.Equal(t, 1, n)

	// Unpaired low surrogate
	r, n = decodeCodeUnit([]uint16{0xDE00}, false)
	require.Equal(t, replacementRune, r)
	require.Equal(t, 1, n)
}
