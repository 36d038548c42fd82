package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Bounds works out how many bytes can be read from a file of the given size
// starting at start. A nil limit means "until the end of the file"; a limit
// that reaches past the end is capped there. A start offset at or beyond the
// end of the file is an error, even when limit is zero.
func Bounds(size int64, start uint64, limit *uint64) (uint64, error) {
	fileSize := uint64(max(size, 0))
	if start >= fileSize {
		return 0, &OffsetOutOfRangeError{Offset: start, Size: fileSize}
	}

	available := fileSize - start
	if limit == nil {
		return available, nil
	}

	return min(*limit, available), nil
}

// Range is a bounded window into a file. It owns the file handle it reads
// from and never returns bytes beyond the window, even if the file is longer.
// A Range is consumed once, front to back.
type Range struct {
	file  *os.File
	start uint64
	count uint64
	read  uint64
}

// OpenRange validates start and limit against the size of the file at path,
// then opens it and seeks to start. The caller must Close the returned Range.
// Nothing is left open when an error is returned.
func OpenRange(path string, start uint64, limit *uint64) (*Range, error) {
	size, err := Size(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	count, err := Bounds(size, start, limit)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	// Bounds guarantees start < size, so it fits in an int64.
	if _, err := file.Seek(int64(start), io.SeekStart); err != nil {
		err = fmt.Errorf("failed to seek to offset %d: %w", start, err)
		if closeErr := file.Close(); closeErr != nil {
			return nil, errors.Join(err, closeErr)
		}
		return nil, err
	}

	return &Range{file: file, start: start, count: count}, nil
}

// Start returns the file offset the window begins at.
func (r *Range) Start() uint64 {
	return r.start
}

// Len returns the total number of bytes in the window.
func (r *Range) Len() uint64 {
	return r.count
}

// Remaining returns how many bytes of the window have not been read yet.
func (r *Range) Remaining() uint64 {
	return r.count - r.read
}

// Read implements io.Reader over the window. It returns io.EOF once the whole
// window has been read, and ErrShortRead if the file ends before that.
func (r *Range) Read(p []byte) (int, error) {
	remaining := r.Remaining()
	if remaining == 0 {
		return 0, io.EOF
	}
	if uint64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := r.file.Read(p)
	r.read += uint64(n)
	if errors.Is(err, io.EOF) && r.read < r.count {
		return n, ErrShortRead
	}
	return n, err
}

// Close releases the underlying file handle.
func (r *Range) Close() error {
	return r.file.Close()
}

// ReadRange reads the window described by start and limit out of the file at
// path in one go. It returns exactly Bounds(size, start, limit) bytes or an
// error, never a partial slice.
func ReadRange(path string, start uint64, limit *uint64) (data []byte, err error) {
	r, err := OpenRange(path, start, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil && err == nil {
			data, err = nil, fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	data = make([]byte, r.Len())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}
