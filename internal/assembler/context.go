// Package assembler renders ranked chunks into a bounded context string for
// a downstream prompt.
package assembler

import (
	"fmt"
	"strings"

	"docrag/internal/domain"
	"docrag/internal/index"
)

const (
	// SurroundingLines is how many lines are added before and after each
	// matched chunk.
	SurroundingLines = 3

	// HighConfidence is the best-result confidence that earns the marker.
	HighConfidence = 0.7

	HighConfidenceMarker = "[High-confidence matches found]"
	EndOfDocumentMarker  = "[... end of document ...]"
	sectionSeparator     = "\n---\n"
)

// Build renders results against idx, or an overview of the document when
// results is empty. The output never exceeds maxChars runes.
func Build(idx *index.Index, results []domain.SearchResult, maxChars int) string {
	if maxChars < 0 {
		maxChars = 0
	}
	if len(results) == 0 {
		return Overview(idx, maxChars)
	}

	blocks := make([]string, 0, len(results))
	for i, r := range results {
		start := r.Chunk.StartLine - SurroundingLines
		end := r.Chunk.EndLine + SurroundingLines
		if start < 0 {
			start = 0
		}
		if last := len(idx.Lines()) - 1; end > last {
			end = last
		}
		lines := idx.LineRange(start, end)
		header := fmt.Sprintf("[Section %d | Lines %d-%d | Matched: %s]",
			i+1, start+1, end+1, strings.Join(r.MatchedKeywords, ", "))
		blocks = append(blocks, header+"\n"+strings.Join(lines, "\n"))
	}

	var b strings.Builder
	if results[0].Confidence >= HighConfidence {
		b.WriteString(HighConfidenceMarker)
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(blocks, sectionSeparator))
	return Truncate(b.String(), maxChars)
}

// Overview returns the beginning of the document and, for documents with
// more than two chunks, its end. Each part gets half of maxChars.
func Overview(idx *index.Index, maxChars int) string {
	chunks := idx.Chunks()
	if len(chunks) == 0 {
		return ""
	}
	half := maxChars / 2
	out := Truncate(chunks[0].Text, half)
	if len(chunks) > 2 {
		out += "\n\n" + EndOfDocumentMarker + "\n" + Truncate(chunks[len(chunks)-1].Text, half)
	}
	return Truncate(out, maxChars)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
