package sink

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	var c Count

	n, err := c.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = c.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, int64(11), c.Total())

	c.Reset()
	require.Equal(t, int64(0), c.Total())
}

func TestDigest_ChunkInvariant(t *testing.T) {
	data := []byte("the digest must not depend on how the stream was sliced")

	whole := NewDigest()
	_, err := whole.Write(data)
	require.NoError(t, err)

	sliced := NewDigest()
	for i := range data {
		_, err := sliced.Write(data[i : i+1])
		require.NoError(t, err)
	}

	require.Equal(t, whole.Sum64(), sliced.Sum64())
	require.Equal(t, xxhash.Sum64(data), whole.Sum64())
	require.Equal(t, int64(len(data)), whole.Total())
	require.Equal(t, int64(len(data)), sliced.Total())
}

func TestDigest_Reset(t *testing.T) {
	d := NewDigest()
	_, err := d.Write([]byte("abc"))
	require.NoError(t, err)

	d.Reset()
	require.Equal(t, int64(0), d.Total())
	require.Equal(t, xxhash.Sum64(nil), d.Sum64())
}
