package hexdump

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// FormatLine renders one line of the dump. offset is the number of bytes that
// came before line in the dump, not a file position. l must be valid.
func (l Layout) FormatLine(offset uint64, line []byte) string {
	return string(l.AppendLine(nil, offset, line))
}

// AppendLine is like FormatLine but appends the rendered line to dst. No
// trailing newline is added.
func (l Layout) AppendLine(dst []byte, offset uint64, line []byte) []byte {
	if l.ShowOffset {
		dst = fmt.Appendf(dst, "%08x  ", offset)
	}

	for chunk := range chunks(line, l.ChunkSize) {
		dst = hex.AppendEncode(dst, chunk)
		dst = append(dst, ' ')
	}

	if l.Translate {
		// Pad short lines so the translation column lines up with full ones.
		if pad := l.hexWidth(l.Width) - l.hexWidth(uint64(len(line))); pad > 0 {
			dst = append(dst, bytes.Repeat([]byte{' '}, int(pad))...)
		}

		dst = append(dst, "\t\t|"...)
		for _, b := range line {
			dst = append(dst, translate(b))
		}
		dst = append(dst, '|')
	}

	return dst
}

// hexWidth is the number of characters the hex groups of an n byte line take
// up. The group count is rounded down, so a trailing partial group is not
// counted when the chunk size does not divide the width.
func (l Layout) hexWidth(n uint64) int64 {
	return int64(n*2 + n/l.ChunkSize)
}

func translate(b byte) byte {
	switch {
	case b == '\n' || b == '\t' || b == '\r':
		return ' '
	case b >= 32 && b <= 126:
		return b
	default:
		return '.'
	}
}

// chunks yields consecutive slices of b that are size bytes long, except for
// the last one which may be shorter.
func chunks(b []byte, size uint64) func(yield func([]byte) bool) {
	size = max(size, 1)
	return func(yield func([]byte) bool) {
		for len(b) > 0 {
			n := min(uint64(len(b)), size)
			if !yield(b[:n]) {
				return
			}
			b = b[n:]
		}
	}
}
