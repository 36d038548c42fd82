package reader

import (
	"errors"
	"fmt"
	"io"
)

// ErrShortRead is returned when a file yields fewer bytes than its size
// promised, e.g. because it was truncated while being read.
var ErrShortRead = fmt.Errorf("short read: %w", io.ErrUnexpectedEOF)

// OffsetOutOfRangeError reports a start offset at or past the end of a file.
// Seeking there is rejected up front instead of leaving it to the platform.
type OffsetOutOfRangeError struct {
	Offset uint64
	Size   uint64
}

func (e *OffsetOutOfRangeError) Error() string {
	return fmt.Sprintf("starting offset (%d) was larger than the file length (%d)", e.Offset, e.Size)
}

// IsOffsetOutOfRange reports whether err is, or wraps, an
// OffsetOutOfRangeError.
func IsOffsetOutOfRange(err error) bool {
	var rangeErr *OffsetOutOfRangeError
	return errors.As(err, &rangeErr)
}
