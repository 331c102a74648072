package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk_EmptyText(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"", "   ", "\n\t"} {
		chunks, err := Chunk(text, 1000, 200)
		require.NoError(t, err)
		assert.NotNil(t, chunks)
		assert.Empty(t, chunks)
	}
}

func TestChunk_ShortTextIsSingleChunk(t *testing.T) {
	t.Parallel()
	chunks, err := Chunk("  Save ten percent of every paycheck.  ", 1000, 200)
	require.NoError(t, err)
	assert.Equal(t, []string{"Save ten percent of every paycheck."}, chunks)
}

func TestChunk_InvalidConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		size, overlap int
	}{
		{"zero size", 0, 0},
		{"negative overlap", 100, -1},
		{"overlap equals size", 100, 100},
		{"overlap larger than size", 100, 150},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Chunk("text", tc.size, tc.overlap)
			assert.ErrorIs(t, err, domain.ErrValidation)
			_, err = New(tc.size, tc.overlap)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestChunk_ThreeWindowsFor2500Chars(t *testing.T) {
	t.Parallel()
	text := strings.Repeat("a", 2500)

	chunks, err := Chunk(text, 1000, 200)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	second := strings.Index(text[1:], chunks[1]) + 1
	assert.LessOrEqual(t, second, 800)
	assert.Len(t, chunks[0], 1000)
	assert.Len(t, chunks[1], 1000)
	assert.Len(t, chunks[2], 900)
}

func TestChunk_CutsAtSentenceBoundary(t *testing.T) {
	t.Parallel()
	// The period sits past the midpoint of the first window.
	text := strings.Repeat("x", 70) + ". " + strings.Repeat("y", 60)

	chunks, err := Chunk(text, 100, 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(chunks), 2)
	assert.True(t, strings.HasSuffix(chunks[0], "."), "first chunk should end at the period: %q", chunks[0])
	assert.Len(t, chunks[0], 71)
}

func TestChunk_IgnoresPeriodBeforeMidpoint(t *testing.T) {
	t.Parallel()
	text := strings.Repeat("x", 10) + "." + strings.Repeat("y", 200)

	chunks, err := Chunk(text, 100, 0)
	require.NoError(t, err)
	assert.Len(t, chunks[0], 100)
}

func TestChunk_OverlapRepeatsContent(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	for i := 0; i < 300; i++ {
		b.WriteByte(byte('a' + i%26))
	}
	text := b.String()

	chunks, err := Chunk(text, 100, 20)
	require.NoError(t, err)
	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1]
		assert.True(t, strings.HasPrefix(chunks[i], prev[len(prev)-20:]),
			"chunk %d should start with the tail of chunk %d", i, i-1)
	}
}

func TestChunk_Properties(t *testing.T) {
	t.Parallel()
	sentence := "Budgeting keeps spending aligned with goals. "
	texts := []string{
		strings.Repeat(sentence, 80),
		strings.Repeat("word ", 900),
		strings.Repeat("é", 1234),
		strings.Repeat("Short. ", 500),
	}
	for _, text := range texts {
		for _, cfg := range []Chunker{{Size: 1000, Overlap: 200}, {Size: 50, Overlap: 49}, {Size: 7, Overlap: 0}} {
			chunks, err := cfg.Split(text)
			require.NoError(t, err)
			require.NotEmpty(t, chunks)
			for _, c := range chunks {
				assert.LessOrEqual(t, utf8.RuneCountInString(c), cfg.Size+1)
				assert.NotEmpty(t, c)
				assert.True(t, utf8.ValidString(c))
			}
			last := chunks[len(chunks)-1]
			assert.True(t, strings.HasSuffix(strings.TrimSpace(text), last))
		}
	}
}

func TestChunk_PeriodAtWindowEdge(t *testing.T) {
	t.Parallel()
	// The 101st rune is a period: the cut keeps it in the first chunk.
	text := strings.Repeat("x", 100) + "." + strings.Repeat("y", 50)

	chunks, err := Chunk(text, 100, 10)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("x", 100)+".", chunks[0])
	assert.Equal(t, strings.Repeat("x", 9)+"."+strings.Repeat("y", 50), chunks[1])
}

// rebuild joins chunks after dropping the overlap prefix of every chunk but
// the first.
func rebuild(chunks []string, overlap int) string {
	var b strings.Builder
	for i, c := range chunks {
		r := []rune(c)
		if i > 0 {
			r = r[overlap:]
		}
		b.WriteString(string(r))
	}
	return b.String()
}

func TestChunk_RebuildsText(t *testing.T) {
	t.Parallel()
	var letters strings.Builder
	for i := range 2500 {
		letters.WriteByte(byte('a' + (i*7)%26))
	}
	texts := map[string]string{
		"letters":    letters.String(),
		"multi-byte": strings.Repeat("€ü漢", 700),
		"one window": "abcdef",
	}
	for name, text := range texts {
		for _, cfg := range []Chunker{{Size: 1000, Overlap: 200}, {Size: 100, Overlap: 30}, {Size: 9, Overlap: 0}} {
			chunks, err := cfg.Split(text)
			require.NoError(t, err)
			require.NotEmpty(t, chunks)
			assert.Equal(t, text, rebuild(chunks, cfg.Overlap), "%s with %+v", name, cfg)
		}
	}
}

func TestChunk_RebuildsAcrossSentenceCut(t *testing.T) {
	t.Parallel()
	// The cut after the period shortens the first window, and the period
	// falls inside the overlap carried into the second chunk.
	text := strings.Repeat("a", 70) + "." + strings.Repeat("b", 100)

	chunks, err := Chunk(text, 100, 20)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("a", 70)+".", chunks[0])
	assert.True(t, strings.HasPrefix(chunks[1], strings.Repeat("a", 19)+"."))
	assert.Equal(t, text, rebuild(chunks, 20))
}
