// Package index builds the immutable per-document retrieval structures: the
// line array, chunks, inverted index, co-occurrence graph and global word
// frequencies. An Index is never mutated after Build returns, so it can be
// shared freely between goroutines.
package index

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"docrag/internal/domain"
	"docrag/internal/tokenizer"
)

// Index is a snapshot of one indexed document.
type Index struct {
	id       string
	builtAt  time.Time
	lines    []string
	chunks   []domain.Chunk
	inverted map[string][]int
	graph    *Graph
	global   map[string]int
	vocab    []string
}

// Build splits text into lines, chunks them with ch and indexes the chunks.
func Build(text string, ch domain.Chunker) *Index {
	lines := SplitLines(text)
	chunks := ch.Chunk(lines)
	idx := &Index{
		id:       uuid.NewString(),
		builtAt:  time.Now(),
		lines:    lines,
		chunks:   chunks,
		inverted: make(map[string][]int),
		graph:    newGraph(),
		global:   make(map[string]int),
	}
	for _, c := range chunks {
		for _, w := range c.UniqueWords {
			idx.inverted[w] = append(idx.inverted[w], c.ID)
			idx.global[w] += c.WordFreq[w]
		}
		meaningful := make([]string, 0, len(c.UniqueWords))
		for _, w := range c.UniqueWords {
			if tokenizer.IsMeaningful(w) {
				meaningful = append(meaningful, w)
			}
		}
		for i := 0; i < len(meaningful); i++ {
			for j := i + 1; j < len(meaningful); j++ {
				idx.graph.addEdge(meaningful[i], meaningful[j])
			}
		}
	}
	idx.vocab = make([]string, 0, len(idx.inverted))
	for w := range idx.inverted {
		idx.vocab = append(idx.vocab, w)
	}
	sort.Strings(idx.vocab)
	return idx
}

// SplitLines splits text on newlines. Empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func (x *Index) ID() string         { return x.id }
func (x *Index) BuiltAt() time.Time { return x.builtAt }

// Lines returns the document lines. Callers must not modify the slice.
func (x *Index) Lines() []string { return x.lines }

// Chunks returns the chunks in id order. Callers must not modify the slice.
func (x *Index) Chunks() []domain.Chunk { return x.chunks }

func (x *Index) NumChunks() int { return len(x.chunks) }

// Graph returns the co-occurrence graph.
func (x *Index) Graph() *Graph { return x.graph }

// Vocabulary returns every distinct word of the document, sorted.
func (x *Index) Vocabulary() []string { return x.vocab }

// Contains reports whether word occurs anywhere in the document.
func (x *Index) Contains(word string) bool {
	_, ok := x.inverted[word]
	return ok
}

// Postings returns the ids of the chunks containing word, ascending.
func (x *Index) Postings(word string) []int { return x.inverted[word] }

// DocFreq returns the number of chunks containing word.
func (x *Index) DocFreq(word string) int { return len(x.inverted[word]) }

// Frequency returns the total occurrences of word across all chunks.
// Lines shared by overlapping chunks are counted once per chunk.
func (x *Index) Frequency(word string) int { return x.global[word] }

// LineRange returns the document lines from start to end inclusive, clamped
// to the document bounds.
func (x *Index) LineRange(start, end int) []string {
	if start < 0 {
		start = 0
	}
	if end >= len(x.lines) {
		end = len(x.lines) - 1
	}
	if start > end {
		return nil
	}
	return x.lines[start : end+1]
}
