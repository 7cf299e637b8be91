package index_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docrag/internal/chunker"
	"docrag/internal/index"
)

func newChunker() *chunker.LineChunker {
	return chunker.NewLineChunker(chunker.DefaultLinesPerChunk, chunker.DefaultOverlapLines)
}

func sampleDoc() string {
	lines := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		switch {
		case i < 5:
			lines = append(lines, "neural networks learn representations")
		case i >= 30 && i < 35:
			lines = append(lines, "gradient descent optimizes networks")
		default:
			lines = append(lines, fmt.Sprintf("filler line %d", i))
		}
	}
	return strings.Join(lines, "\n")
}

func TestBuildEmptyDocument(t *testing.T) {
	idx := index.Build("", newChunker())
	assert.Equal(t, 0, idx.NumChunks())
	assert.Empty(t, idx.Lines())
	assert.Empty(t, idx.Vocabulary())
	assert.Equal(t, 0, idx.Graph().Len())
	assert.NotEmpty(t, idx.ID())
}

func TestInvertedIndex(t *testing.T) {
	idx := index.Build(sampleDoc(), newChunker())
	require.Equal(t, 4, idx.NumChunks())

	assert.Equal(t, []int{0}, idx.Postings("neural"))
	assert.Equal(t, []int{1, 2}, idx.Postings("gradient"))
	assert.Equal(t, []int{0, 1, 2}, idx.Postings("networks"))
	assert.Equal(t, 3, idx.DocFreq("networks"))
	assert.True(t, idx.Contains("filler"))
	assert.False(t, idx.Contains("absent"))
}

func TestGlobalFrequency(t *testing.T) {
	idx := index.Build("alpha beta alpha\ngamma alpha", newChunker())
	assert.Equal(t, 3, idx.Frequency("alpha"))
	assert.Equal(t, 1, idx.Frequency("gamma"))
	assert.Equal(t, 0, idx.Frequency("delta"))
}

func TestCoOccurrenceGraph(t *testing.T) {
	idx := index.Build(sampleDoc(), newChunker())
	g := idx.Graph()

	// "networks" and "gradient" share chunks 1 and 2.
	assert.Equal(t, 2, g.Weight("networks", "gradient"))
	assert.Equal(t, 1, g.Weight("neural", "networks"))
	assert.Equal(t, 0, g.Weight("neural", "gradient"))

	// Stop words and short words never enter the graph.
	assert.False(t, g.Contains("the"))
	assert.False(t, g.Contains("30"))

	neighbors := g.Neighbors("networks")
	require.NotEmpty(t, neighbors)
	for i := 1; i < len(neighbors); i++ {
		assert.GreaterOrEqual(t, neighbors[i-1].Count, neighbors[i].Count)
	}
}

func TestCoOccurrenceGraphIsSymmetric(t *testing.T) {
	idx := index.Build(sampleDoc(), newChunker())
	g := idx.Graph()
	for _, a := range idx.Vocabulary() {
		for _, n := range g.Neighbors(a) {
			assert.Equal(t, n.Count, g.Weight(n.Word, a), "%s/%s", a, n.Word)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	doc := sampleDoc()
	a := index.Build(doc, newChunker())
	b := index.Build(doc, newChunker())

	assert.Equal(t, a.Chunks(), b.Chunks())
	assert.Equal(t, a.Vocabulary(), b.Vocabulary())
	for _, w := range a.Vocabulary() {
		assert.Equal(t, a.Postings(w), b.Postings(w))
		assert.Equal(t, a.Graph().Neighbors(w), b.Graph().Neighbors(w))
	}
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, index.SplitLines(""))
	assert.Equal(t, []string{"a", "b", ""}, index.SplitLines("a\r\nb\n"))
}

func TestLineRangeClamps(t *testing.T) {
	idx := index.Build("l0\nl1\nl2\nl3", newChunker())
	assert.Equal(t, []string{"l0", "l1"}, idx.LineRange(-3, 1))
	assert.Equal(t, []string{"l2", "l3"}, idx.LineRange(2, 10))
	assert.Nil(t, idx.LineRange(5, 8))
}
