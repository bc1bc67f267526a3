package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverwrite_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous longer content"), 0o644))

	s, err := Overwrite(path)
	require.NoError(t, err)

	_, err = s.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}

func TestOverwrite_CreatesMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.txt")

	s, err := Overwrite(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Name())

	_, err = s.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("data"), got)
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	for _, part := range []string{"one", "two", "three"} {
		s, err := Append(path)
		require.NoError(t, err)
		_, err = s.Write([]byte(part))
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("onetwothree"), got)
}

func TestOverwrite_BadPath(t *testing.T) {
	_, err := Overwrite(filepath.Join(t.TempDir(), "missing", "out.txt"))
	require.Error(t, err)
}
