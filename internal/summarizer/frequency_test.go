package summarizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"docrag/internal/chunker"
	"docrag/internal/index"
	"docrag/internal/summarizer"
)

func build(text string) *index.Index {
	return index.Build(text, chunker.NewLineChunker(chunker.DefaultLinesPerChunk, chunker.DefaultOverlapLines))
}

func TestSummarizePicksFrequentSentences(t *testing.T) {
	doc := strings.Join([]string{
		"Compilers translate source code.",
		"The weather was pleasant yesterday.",
		"Compilers optimize source code before emitting machine code.",
		"Lunch was served at noon.",
	}, "\n")
	got := summarizer.NewFrequencySummarizer().Summarize(build(doc), 2)
	assert.Equal(t, "Compilers translate source code. Compilers optimize source code before emitting machine code.", got)
}

func TestSummarizeWithoutSentences(t *testing.T) {
	got := summarizer.NewFrequencySummarizer().Summarize(build("  no terminal punctuation here  "), 3)
	assert.Equal(t, "no terminal punctuation here", got)
}

func TestSummarizeEmptyDocument(t *testing.T) {
	assert.Equal(t, "", summarizer.NewFrequencySummarizer().Summarize(build(""), 0))
}
