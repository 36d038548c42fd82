// Package hexdump renders byte ranges of files as lines of hexadecimal text,
// with an optional offset column and an optional ASCII translation column.
package hexdump

import (
	"errors"
	"fmt"
)

const (
	DefaultWidth     = 16
	DefaultChunkSize = 2
	// MaxWidth bounds the bytes per line so a rendered line, padding
	// included, stays a sensible size.
	MaxWidth = 1 << 20
)

var (
	ErrNoFile        = errors.New("no file given")
	ErrZeroWidth     = errors.New("width must be at least 1")
	ErrZeroChunkSize = errors.New("chunk size must be at least 1")
	ErrWidthTooLarge = fmt.Errorf("width must be at most %d", MaxWidth)
)

// Config describes one dump: which bytes to read and how to lay them out.
type Config struct {
	// Path of the file to dump.
	FilePath string
	// Maximum number of bytes to dump. Nil means until the end of the file.
	ByteLimit *uint64
	// Bytes per line.
	Width uint64
	// Bytes per space separated group.
	ChunkSize uint64
	// File offset to start reading from.
	StartOffset uint64
	// Print the offset column.
	ShowOffset bool
	// Print the ASCII translation column.
	Translate bool
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig(path string) Config {
	return Config{
		FilePath:   path,
		Width:      DefaultWidth,
		ChunkSize:  DefaultChunkSize,
		ShowOffset: true,
	}
}

func (c Config) Validate() error {
	if c.FilePath == "" {
		return ErrNoFile
	}
	return c.Layout().Validate()
}

// Layout returns the parts of c that control how lines are rendered.
func (c Config) Layout() Layout {
	return Layout{
		Width:      c.Width,
		ChunkSize:  c.ChunkSize,
		ShowOffset: c.ShowOffset,
		Translate:  c.Translate,
	}
}

// Layout controls how a line of bytes is rendered.
type Layout struct {
	Width      uint64
	ChunkSize  uint64
	ShowOffset bool
	Translate  bool
}

func (l Layout) Validate() error {
	if l.Width == 0 {
		return ErrZeroWidth
	}
	if l.Width > MaxWidth {
		return ErrWidthTooLarge
	}
	if l.ChunkSize == 0 {
		return ErrZeroChunkSize
	}
	return nil
}
