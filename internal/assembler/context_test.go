package assembler_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docrag/internal/assembler"
	"docrag/internal/chunker"
	"docrag/internal/index"
	"docrag/internal/ranker"
)

func build(lines []string) *index.Index {
	return index.Build(strings.Join(lines, "\n"),
		chunker.NewLineChunker(chunker.DefaultLinesPerChunk, chunker.DefaultOverlapLines))
}

func nlpDoc() *index.Index {
	lines := make([]string, 40)
	for i := 0; i < 5; i++ {
		lines[i] = "nlp basics nlp tools nlp"
	}
	lines[30] = "nlp meets language"
	return build(lines)
}

func numberedDoc(n int) *index.Index {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d content", i)
	}
	return build(lines)
}

func TestBuildRendersSections(t *testing.T) {
	idx := nlpDoc()
	results := ranker.Search(idx, "What is NLP?", 5)
	require.Len(t, results, 2)

	out := assembler.Build(idx, results, 10000)
	assert.True(t, strings.HasPrefix(out, assembler.HighConfidenceMarker+"\n"))
	assert.Contains(t, out, "[Section 1 | Lines 1-23 | Matched: nlp, basics, tools]\nnlp basics nlp tools nlp")
	assert.Contains(t, out, "[Section 2 | Lines 24-40 | Matched: nlp, language, meets]")
	assert.Contains(t, out, "\n---\n")
	assert.Contains(t, out, "nlp meets language")
}

func TestBuildWithoutHighConfidence(t *testing.T) {
	idx := build([]string{"alpha is it"})
	results := ranker.Search(idx, "alpha", 5)
	require.Len(t, results, 1)
	require.Less(t, results[0].Confidence, assembler.HighConfidence)

	out := assembler.Build(idx, results, 1000)
	assert.Equal(t, "[Section 1 | Lines 1-1 | Matched: alpha]\nalpha is it", out)
}

func TestBuildFallsBackToOverview(t *testing.T) {
	idx := numberedDoc(40)
	results := ranker.Search(idx, "photosynthesis", 5)
	require.Empty(t, results)

	out := assembler.Build(idx, results, 1000)
	assert.True(t, strings.HasPrefix(out, "line 0 content\nline 1 content"))
	assert.Contains(t, out, assembler.EndOfDocumentMarker)
	assert.True(t, strings.HasSuffix(out, "line 39 content"))
	assert.Equal(t, assembler.Overview(idx, 1000), out)
}

func TestOverviewShortDocumentHasNoEnd(t *testing.T) {
	idx := numberedDoc(20)
	require.Equal(t, 2, idx.NumChunks())
	out := assembler.Overview(idx, 1000)
	assert.NotContains(t, out, assembler.EndOfDocumentMarker)
	assert.Equal(t, idx.Chunks()[0].Text, out)
}

func TestOverviewHalvesBudget(t *testing.T) {
	idx := numberedDoc(40)
	out := assembler.Overview(idx, 40)
	assert.True(t, strings.HasPrefix(out, "line 0 content\nline \n\n[... end"))
	assert.Equal(t, 40, utf8.RuneCountInString(out))
}

func TestOverviewEmptyDocument(t *testing.T) {
	assert.Equal(t, "", assembler.Overview(build(nil), 100))
}

func TestBuildLengthBound(t *testing.T) {
	idx := nlpDoc()
	queries := []string{"What is NLP?", "language", "nothing matches here", "what is it"}
	for _, q := range queries {
		for _, maxChars := range []int{-5, 0, 1, 17, 64, 200, 5000} {
			out := assembler.Build(idx, ranker.Search(idx, q, 5), maxChars)
			limit := maxChars
			if limit < 0 {
				limit = 0
			}
			assert.LessOrEqual(t, utf8.RuneCountInString(out), limit, "q=%q max=%d", q, maxChars)
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", assembler.Truncate("hello", 0))
	assert.Equal(t, "hel", assembler.Truncate("hello", 3))
	assert.Equal(t, "hello", assembler.Truncate("hello", 10))
	assert.Equal(t, "hé", assembler.Truncate("héllo", 2))
}
