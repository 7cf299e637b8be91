package chunker_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docrag/internal/chunker"
)

func makeLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line number %d", i)
	}
	return lines
}

func TestChunkCount(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{lines: 0, want: 0},
		{lines: 1, want: 1},
		{lines: 13, want: 1},
		{lines: 14, want: 2},
		{lines: 20, want: 2},
		{lines: 21, want: 2},
		{lines: 33, want: 3},
		{lines: 100, want: 8},
	}
	c := chunker.NewLineChunker(chunker.DefaultLinesPerChunk, chunker.DefaultOverlapLines)
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines", tt.lines), func(t *testing.T) {
			assert.Len(t, c.Chunk(makeLines(tt.lines)), tt.want)
		})
	}
}

func TestChunkBoundaries(t *testing.T) {
	c := chunker.NewLineChunker(chunker.DefaultLinesPerChunk, chunker.DefaultOverlapLines)
	chunks := c.Chunk(makeLines(40))
	require.Len(t, chunks, 4)

	for i, ch := range chunks {
		assert.Equal(t, i, ch.ID)
		assert.Equal(t, i*13, ch.StartLine)
	}
	assert.Equal(t, 19, chunks[0].EndLine)
	assert.Equal(t, 32, chunks[1].EndLine)
	assert.Equal(t, 39, chunks[2].EndLine)
	assert.Equal(t, 39, chunks[3].EndLine, "last chunk is shorter")
	assert.True(t, chunks[0].Overlaps(chunks[1]))
}

func TestChunkWordFrequencies(t *testing.T) {
	c := chunker.NewLineChunker(chunker.DefaultLinesPerChunk, chunker.DefaultOverlapLines)
	chunks := c.Chunk([]string{"NLP nlp, NLP!", "language models"})
	require.Len(t, chunks, 1)

	ch := chunks[0]
	assert.Equal(t, "NLP nlp, NLP!\nlanguage models", ch.Text)
	assert.Equal(t, 3, ch.WordFreq["nlp"])
	assert.Equal(t, 1, ch.WordFreq["language"])
	assert.Equal(t, []string{"language", "models", "nlp"}, ch.UniqueWords)
	assert.True(t, ch.Has("models"))
	assert.False(t, ch.Has("missing"))
}

func TestNewLineChunkerSanitizesArguments(t *testing.T) {
	assert.Equal(t, 13, chunker.NewLineChunker(0, 7).Step())
	assert.Equal(t, 5, chunker.NewLineChunker(5, 5).Step())
	assert.Equal(t, 10, chunker.NewLineChunker(10, -1).Step())
}
