package hexdump

import (
	"errors"
	"fmt"
	"io"
)

// Scanner produces a dump one line at a time, reading at most one line's
// worth of bytes from its source per call to Scan. It is used like
// bufio.Scanner:
//
//	s := NewScanner(r, total, layout)
//	for s.Scan() {
//		fmt.Println(s.Text())
//	}
//	if err := s.Err(); err != nil { ... }
//
// A Scanner moves forwards only and cannot be restarted.
type Scanner struct {
	r      io.Reader
	layout Layout
	total  uint64
	// Bytes emitted by previous lines.
	offset uint64
	// Offset of the current line.
	lineOffset uint64
	buf        []byte
	line       []byte
	err        error
	done       bool
}

// NewScanner returns a Scanner that dumps exactly total bytes read from r.
// The layout must be valid.
func NewScanner(r io.Reader, total uint64, layout Layout) *Scanner {
	return &Scanner{
		r:      r,
		layout: layout,
		total:  total,
		buf:    make([]byte, 0, min(layout.Width, total)),
	}
}

// Scan renders the next line, which is then available through Text. It
// returns false when all bytes have been dumped or a read failed.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	if s.err == nil {
		s.err = s.layout.Validate()
	}
	if s.err != nil || s.offset >= s.total {
		s.done = true
		s.line = nil
		return false
	}

	n := min(s.layout.Width, s.total-s.offset)
	s.buf = s.buf[:n]
	if _, err := io.ReadFull(s.r, s.buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		s.err = fmt.Errorf("failed to read bytes at offset %d: %w", s.offset, err)
		s.done = true
		s.line = nil
		return false
	}

	s.lineOffset = s.offset
	s.line = s.layout.AppendLine(s.line[:0], s.offset, s.buf)
	s.offset += n
	return true
}

// Text returns the line produced by the last call to Scan.
func (s *Scanner) Text() string {
	return string(s.line)
}

// Offset returns the dump offset of the line produced by the last call to
// Scan.
func (s *Scanner) Offset() uint64 {
	return s.lineOffset
}

// Err returns the first error encountered by the Scanner.
func (s *Scanner) Err() error {
	return s.err
}
