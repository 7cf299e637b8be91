package chunker

import (
	"sort"
	"strings"

	"docrag/internal/domain"
	"docrag/internal/tokenizer"
)

const (
	// DefaultLinesPerChunk is the window size in lines.
	DefaultLinesPerChunk = 20

	// DefaultOverlapLines is how many lines consecutive windows share.
	DefaultOverlapLines = 7
)

// LineChunker splits a document into overlapping windows of lines.
type LineChunker struct {
	linesPerChunk int
	overlapLines  int
}

func NewLineChunker(linesPerChunk, overlapLines int) *LineChunker {
	if linesPerChunk <= 0 {
		linesPerChunk = DefaultLinesPerChunk
	}
	if overlapLines < 0 || overlapLines >= linesPerChunk {
		overlapLines = 0
	}
	return &LineChunker{linesPerChunk: linesPerChunk, overlapLines: overlapLines}
}

// Step is the distance between the first lines of consecutive chunks.
func (c *LineChunker) Step() int {
	return c.linesPerChunk - c.overlapLines
}

// Chunk windows the lines starting at line 0, advancing by Step until the
// window start passes the last line. The final chunk may be shorter.
func (c *LineChunker) Chunk(lines []string) []domain.Chunk {
	if len(lines) == 0 {
		return nil
	}
	step := c.Step()
	chunks := make([]domain.Chunk, 0, (len(lines)+step-1)/step)
	for start := 0; start < len(lines); start += step {
		end := start + c.linesPerChunk
		if end > len(lines) {
			end = len(lines)
		}
		text := strings.Join(lines[start:end], "\n")
		freq := make(map[string]int)
		for _, tok := range tokenizer.Tokenize(text) {
			freq[tok]++
		}
		unique := make([]string, 0, len(freq))
		for w := range freq {
			unique = append(unique, w)
		}
		sort.Strings(unique)
		chunks = append(chunks, domain.Chunk{
			ID:          len(chunks),
			Text:        text,
			StartLine:   start,
			EndLine:     end - 1,
			WordFreq:    freq,
			UniqueWords: unique,
		})
	}
	return chunks
}
