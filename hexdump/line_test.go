package hexdump

import (
	"strings"
	"testing"

	"github.com/YLivay/hexdump/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLayout() Layout {
	return DefaultConfig("unused").Layout()
}

func TestFormatLine_Defaults(t *testing.T) {
	assert.Equal(t, "00000000  3132 3334 ", defaultLayout().FormatLine(0, []byte("1234")))
}

func TestFormatLine_NoOffset(t *testing.T) {
	l := defaultLayout()
	l.ShowOffset = false
	assert.Equal(t, "3132 3334 ", l.FormatLine(0, []byte("1234")))
}

func TestFormatLine_OffsetIsLowercaseHex(t *testing.T) {
	assert.Equal(t, "000001ab  ff ", defaultLayout().FormatLine(0x1ab, []byte{0xff}))
}

func TestFormatLine_ChunkOfOne(t *testing.T) {
	l := Layout{Width: 16, ChunkSize: 1}
	assert.Equal(t, "61 62 63 ", l.FormatLine(0, []byte("abc")))
}

func TestFormatLine_ChunkWiderThanLine(t *testing.T) {
	l := Layout{Width: 4, ChunkSize: 8}
	assert.Equal(t, "61626364 ", l.FormatLine(0, []byte("abcd")))
}

func TestFormatLine_TranslatePadsShortLine(t *testing.T) {
	l := Layout{Width: 4, ChunkSize: 2, ShowOffset: true, Translate: true}

	// A full line is 4*2 + 4/2 = 10 characters of hex, "hi" takes 5.
	assert.Equal(t, "00000000  6869      \t\t|hi|", l.FormatLine(0, []byte("hi")))
	assert.Equal(t, "00000004  6869 7468 \t\t|hith|", l.FormatLine(4, []byte("hith")))
}

func TestFormatLine_TranslateUnevenChunks(t *testing.T) {
	l := Layout{Width: 3, ChunkSize: 2, Translate: true}

	// The group count is rounded down, so the trailing one byte group of a
	// full line is not accounted for and the line gets no padding.
	assert.Equal(t, "6162 63 \t\t|abc|", l.FormatLine(0, []byte("abc")))
	assert.Equal(t, "64      \t\t|d|", l.FormatLine(3, []byte("d")))
}

func TestFormatLine_TranslateMapsBytes(t *testing.T) {
	l := Layout{Width: 8, ChunkSize: 8, Translate: true}

	line := l.FormatLine(0, []byte{0x00, '\n', '\t', '\r', 'A', ' ', 0x7f, 0x80})
	assert.Equal(t, "000a090d41207f80 \t\t|.   A ..|", line)
}

func TestTranslate(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := translate(byte(b))
		switch {
		case b == '\n' || b == '\t' || b == '\r':
			assert.EqualValues(t, ' ', got, "byte %#x", b)
		case b >= 32 && b <= 126:
			assert.EqualValues(t, b, got, "byte %#x", b)
		default:
			assert.EqualValues(t, '.', got, "byte %#x", b)
		}
	}
}

func TestLines_GroupWidths(t *testing.T) {
	data := []byte(utils.Sequence(100))

	for width := uint64(1); width <= 20; width++ {
		for chunk := uint64(1); chunk <= 7; chunk++ {
			l := Layout{Width: width, ChunkSize: chunk}
			lines, err := l.Lines(data)
			require.NoError(t, err)

			remaining := uint64(len(data))
			for _, line := range lines {
				inLine := min(width, remaining)
				groups := strings.Fields(line)
				left := inLine
				for _, g := range groups {
					assert.Len(t, g, int(2*min(chunk, left)), "width %d chunk %d", width, chunk)
					left -= min(chunk, left)
				}
				assert.Zero(t, left)
				remaining -= inLine
			}
			assert.Zero(t, remaining)
		}
	}
}

func TestLines_OffsetsAreCumulative(t *testing.T) {
	l := Layout{Width: 5, ChunkSize: 2, ShowOffset: true}

	lines, err := l.Lines([]byte(utils.Sequence(12)))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	for i, want := range []string{"00000000", "00000005", "0000000a"} {
		assert.True(t, strings.HasPrefix(lines[i], want+"  "), lines[i])
	}
	assert.Equal(t, "0000000a  0a0b ", lines[2])
}

func TestLines_Empty(t *testing.T) {
	lines, err := defaultLayout().Lines(nil)
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLines_TranslationRoundTrip(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. 0123456789!"
	l := defaultLayout()
	l.Translate = true

	lines, err := l.Lines([]byte(text))
	require.NoError(t, err)

	var translated strings.Builder
	for _, line := range lines {
		start := strings.Index(line, "\t\t|")
		require.NotEqual(t, -1, start, line)
		require.True(t, strings.HasSuffix(line, "|"), line)
		translated.WriteString(line[start+3 : len(line)-1])
	}
	assert.Equal(t, text, translated.String())
}

func TestLines_TranslationColumnsLineUp(t *testing.T) {
	l := defaultLayout()
	l.Translate = true

	lines, err := l.Lines([]byte(utils.Sequence(40)))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	col := strings.Index(lines[0], "\t\t|")
	for _, line := range lines {
		assert.Equal(t, col, strings.Index(line, "\t\t|"), line)
	}
}

func TestLines_Idempotent(t *testing.T) {
	l := Layout{Width: 7, ChunkSize: 3, ShowOffset: true, Translate: true}
	data := []byte(utils.Sequence(300))

	first, err := l.Lines(data)
	require.NoError(t, err)
	second, err := l.Lines(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLines_InvalidLayout(t *testing.T) {
	_, err := Layout{Width: 0, ChunkSize: 2}.Lines([]byte("x"))
	assert.ErrorIs(t, err, ErrZeroWidth)

	_, err = Layout{Width: 2, ChunkSize: 0}.Lines([]byte("x"))
	assert.ErrorIs(t, err, ErrZeroChunkSize)
}

func TestLayout_RejectsHugeWidth(t *testing.T) {
	l := Layout{Width: 1 << 40, ChunkSize: 2, Translate: true}
	assert.ErrorIs(t, l.Validate(), ErrWidthTooLarge)

	lines, err := l.Lines([]byte("tiny"))
	assert.ErrorIs(t, err, ErrWidthTooLarge)
	assert.Nil(t, lines)

	assert.NoError(t, Layout{Width: MaxWidth, ChunkSize: 1}.Validate())
}

func TestLines_TwoLines(t *testing.T) {
	l := Layout{Width: 8, ChunkSize: 2, ShowOffset: true, Translate: true}

	lines, err := l.Lines([]byte("hello, world\n"))
	require.NoError(t, err)

	// The second line gets 20 - 12 = 8 spaces of padding after the trailing
	// group space. The group count is rounded down, so the lone 0a group is
	// not counted and the translation column ends up one cell to the right.
	assert.Equal(t, []string{
		"00000000  6865 6c6c 6f2c 2077 \t\t|hello, w|",
		"00000008  6f72 6c64 0a " + strings.Repeat(" ", 8) + "\t\t|orld |",
	}, lines)
}
