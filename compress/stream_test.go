package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/qurbonzoda/filewritetext/format"
)

func TestNewStreamWriter_InvalidType(t *testing.T) {
	_, err := NewStreamWriter(format.CompressionType(0xAB), io.Discard)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid stream compression")
}

func TestStreamWriter_None(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewStreamWriter(format.CompressionNone, &buf)
	require.NoError(t, err)

	data := testPayload()
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Equal(t, data, buf.Bytes())
}

// writeInPieces simulates the chunked encoder flushing several times.
func writeInPieces(t *testing.T, w io.WriteCloser, data []byte, piece int) {
	t.Helper()

	for start := 0; start < len(data); start += piece {
		end := min(start+piece, len(data))
		_, err := w.Write(data[start:end])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestStreamWriter_Zstd(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewStreamWriter(format.CompressionZstd, &buf)
	require.NoError(t, err)

	data := testPayload()
	writeInPieces(t, w, data, 100)

	dec, err := zstd.NewReader(&buf)
	require.NoError(t, err)
	defer dec.Close()

	got, err := io.ReadAll(dec)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestStreamWriter_S2(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewStreamWriter(format.CompressionS2, &buf)
	require.NoError(t, err)

	data := testPayload()
	writeInPieces(t, w, data, 100)

	got, err := io.ReadAll(s2.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestStreamWriter_LZ4(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewStreamWriter(format.CompressionLZ4, &buf)
	require.NoError(t, err)

	data := testPayload()
	writeInPieces(t, w, data, 100)

	got, err := io.ReadAll(lz4.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, data, got)
}
