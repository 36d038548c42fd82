package utils

import (
	"os"
	"path"
	"testing"
)

// CreateTestFile writes contents to a fresh file in the test's temporary
// directory and returns its path. The file is removed with the directory when
// the test ends.
func CreateTestFile(t testing.TB, contents string) string {
	t.Helper()

	filepath := path.Join(t.TempDir(), "test.bin")
	if err := os.WriteFile(filepath, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	return filepath
}

// Sequence returns n bytes counting up from 0, wrapping after 0xff.
func Sequence(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return string(b)
}
