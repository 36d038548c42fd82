package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_BreaksAtSpaces(t *testing.T) {
	assert.Equal(t, []string{"the quick", "brown fox"}, Wrap("the quick brown fox", 10))
}

func TestWrap_FitsOnOneLine(t *testing.T) {
	assert.Equal(t, []string{"short"}, Wrap("short", 80))
}

func TestWrap_KeepsNewlines(t *testing.T) {
	assert.Equal(t, []string{"first", "second"}, Wrap("first\nsecond\n", 80))
}

func TestWrap_LongWordStaysWhole(t *testing.T) {
	assert.Equal(t, []string{"a", "abcdefghij", "b"}, Wrap("a abcdefghij b", 4))
}

func TestWrap_CountsCellsNotBytes(t *testing.T) {
	assert.Equal(t, []string{"日本", "語日", "本語"}, Wrap("日本語日本語", 4))
}

func TestWrap_Disabled(t *testing.T) {
	assert.Equal(t, []string{"no wrapping at all"}, Wrap("no wrapping at all", 0))
}

func TestWrap_Empty(t *testing.T) {
	assert.Empty(t, Wrap("", 10))
}
