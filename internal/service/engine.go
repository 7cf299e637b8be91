package service

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"docrag/internal/assembler"
	"docrag/internal/domain"
	"docrag/internal/expander"
	"docrag/internal/index"
	"docrag/internal/ranker"
	"docrag/internal/summarizer"
)

// DefaultTopK is the requested result count used by RelevantContext.
const DefaultTopK = 5

// state is either empty or indexed. Only Index and Clear move between them.
type state interface{ isState() }

type emptyState struct{}

type indexedState struct{ idx *index.Index }

func (emptyState) isState()   {}
func (indexedState) isState() {}

// Engine owns the index of the current document. Index and Clear swap the
// snapshot under a lock; queries run against the snapshot they started with.
type Engine struct {
	chunker    domain.Chunker
	summarizer *summarizer.FrequencySummarizer
	logger     *logrus.Entry

	mu    sync.RWMutex
	state state
}

func NewEngine(ch domain.Chunker, sum *summarizer.FrequencySummarizer, logger *logrus.Entry) *Engine {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	return &Engine{chunker: ch, summarizer: sum, logger: logger, state: emptyState{}}
}

// Index replaces the current document and returns its chunk count.
func (e *Engine) Index(text string) int {
	start := time.Now()
	idx := index.Build(text, e.chunker)

	e.mu.Lock()
	e.state = indexedState{idx: idx}
	e.mu.Unlock()

	e.logger.WithFields(logrus.Fields{
		"index_id":   idx.ID(),
		"chunks":     idx.NumChunks(),
		"lines":      len(idx.Lines()),
		"vocabulary": len(idx.Vocabulary()),
		"elapsed":    time.Since(start),
	}).Info("document indexed")
	return idx.NumChunks()
}

// Clear drops the current document.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.state = emptyState{}
	e.mu.Unlock()
	e.logger.Info("index cleared")
}

// Snapshot returns the current index, if any.
func (e *Engine) Snapshot() (*index.Index, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	switch st := e.state.(type) {
	case indexedState:
		return st.idx, true
	default:
		return nil, false
	}
}

func (e *Engine) IsIndexed() bool {
	_, ok := e.Snapshot()
	return ok
}

// Search returns the ranked, non-overlapping results for query. It returns
// nil when no document is indexed.
func (e *Engine) Search(query string, topK int) []domain.SearchResult {
	idx, ok := e.Snapshot()
	if !ok {
		return nil
	}
	keywords := expander.Expand(idx, query)
	results := ranker.Rank(idx, keywords, topK)

	entry := e.logger.WithFields(logrus.Fields{
		"query":    query,
		"keywords": len(keywords),
		"results":  len(results),
	})
	if len(results) > 0 {
		entry = entry.WithField("top_confidence", results[0].Confidence)
	}
	entry.Debug("search")
	return results
}

// RelevantContext renders at most maxChars runes of context for query. ok is
// false when no document is indexed.
func (e *Engine) RelevantContext(query string, maxChars int) (string, bool) {
	idx, ok := e.Snapshot()
	if !ok {
		return "", false
	}
	results := ranker.Rank(idx, expander.Expand(idx, query), DefaultTopK)
	if len(results) == 0 {
		e.logger.WithField("query", query).Debug("no match, using document overview")
	}
	return assembler.Build(idx, results, maxChars), true
}

// ExtractKeywords exposes query expansion for diagnostics.
func (e *Engine) ExtractKeywords(query string) ([]domain.WeightedKeyword, bool) {
	idx, ok := e.Snapshot()
	if !ok {
		return nil, false
	}
	return expander.Expand(idx, query), true
}

// RelatedWords returns up to n words that co-occur with word, strongest first.
// n <= 0 returns all of them.
func (e *Engine) RelatedWords(word string, n int) ([]domain.Neighbor, bool) {
	idx, ok := e.Snapshot()
	if !ok {
		return nil, false
	}
	neighbors := idx.Graph().Neighbors(word)
	if n > 0 && len(neighbors) > n {
		neighbors = neighbors[:n]
	}
	return neighbors, true
}

// Summary returns an extractive summary of the indexed document.
func (e *Engine) Summary(maxSentences int) (string, bool) {
	idx, ok := e.Snapshot()
	if !ok || e.summarizer == nil {
		return "", false
	}
	return e.summarizer.Summarize(idx, maxSentences), true
}

// Stats describes the current index in one line.
func (e *Engine) Stats() string {
	idx, ok := e.Snapshot()
	if !ok {
		return "No document indexed"
	}
	return fmt.Sprintf("%d sections indexed | %d lines | %d unique words | %d related word pairs",
		idx.NumChunks(), len(idx.Lines()), len(idx.Vocabulary()), idx.Graph().Edges())
}
