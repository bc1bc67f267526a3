package sink

import (
	"fmt"
	"os"
)

// File is a file-backed sink. It is a thin wrapper over os.File; write
// errors (disk full, permission) surface unchanged. The file handle is
// exclusively owned by the caller for the duration of the write.
type File struct {
	f *os.File
}

// Overwrite opens path for writing, truncating any existing content.
// The file is created if it does not exist.
func Overwrite(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s for overwrite: %w", path, err)
	}

	return &File{f: f}, nil
}

// Append opens path for writing after its existing content.
// The file is created if it does not exist.
func Append(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s for append: %w", path, err)
	}

	return &File{f: f}, nil
}

// Write writes p to the underlying file.
func (s *File) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

// Close closes the underlying file.
func (s *File) Close() error {
	return s.f.Close()
}

// Name returns the path the sink was opened with.
func (s *File) Name() string {
	return s.f.Name()
}
