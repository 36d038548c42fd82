package hexdump

import (
	"bytes"
	"fmt"

	"github.com/YLivay/hexdump/log"
	"github.com/YLivay/hexdump/reader"
	"github.com/dustin/go-humanize"
)

// Lines renders data in full. Empty data renders to no lines.
func (l Layout) Lines(data []byte) ([]string, error) {
	s := NewScanner(bytes.NewReader(data), uint64(len(data)), l)

	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Dump reads the range of the file described by cfg and renders it. Either
// every line is returned, or an error and no lines.
func Dump(cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := reader.ReadRange(cfg.FilePath, cfg.StartOffset, cfg.ByteLimit)
	if err != nil {
		return nil, err
	}
	log.Debugf("read %s from %s starting at offset %s",
		humanize.IBytes(uint64(len(data))), cfg.FilePath, humanize.Comma(int64(cfg.StartOffset)))

	lines, err := cfg.Layout().Lines(data)
	if err != nil {
		return nil, fmt.Errorf("failed to format %s: %w", cfg.FilePath, err)
	}
	log.Debugf("rendered %d lines", len(lines))

	return lines, nil
}

// Stream is like Dump but reads the file one line at a time instead of all at
// once, so only a single line of bytes is held in memory. The returned
// Scanner's source must be released with the returned close function.
//
// Lines already handed out stay valid if a later read fails, so callers that
// must not print partial output should use Dump.
func Stream(cfg Config) (*Scanner, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	r, err := reader.OpenRange(cfg.FilePath, cfg.StartOffset, cfg.ByteLimit)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("streaming %s from %s starting at offset %s",
		humanize.IBytes(r.Len()), cfg.FilePath, humanize.Comma(int64(r.Start())))

	return NewScanner(r, r.Len(), cfg.Layout()), r.Close, nil
}
