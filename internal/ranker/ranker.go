// Package ranker scores chunks against expanded keywords and selects a
// confidence-sized, non-overlapping top set.
package ranker

import (
	"math"
	"sort"
	"strings"

	"docrag/internal/domain"
	"docrag/internal/expander"
	"docrag/internal/index"
)

const (
	// MinFuzzyLen is the shortest keyword and chunk word compared by substring.
	MinFuzzyLen = 4

	fuzzyFactor          = 0.3
	completenessBonus    = 1.5
	highConfidenceTopK   = 3
	mediumConfidenceTopK = 4
	lowConfidenceTopK    = 5
)

// Search expands query against idx and returns the best chunks in
// descending score order. The number of results is derived from the
// confidence of the best chunk; requestedTopK is only used when the query
// yields no keywords at all, in which case the first chunks are returned
// with a zero score.
func Search(idx *index.Index, query string, requestedTopK int) []domain.SearchResult {
	return Rank(idx, expander.Expand(idx, query), requestedTopK)
}

// Rank is Search with already expanded keywords.
func Rank(idx *index.Index, keywords []domain.WeightedKeyword, requestedTopK int) []domain.SearchResult {
	chunks := idx.Chunks()
	if len(keywords) == 0 {
		if requestedTopK > len(chunks) {
			requestedTopK = len(chunks)
		}
		if requestedTopK < 0 {
			requestedTopK = 0
		}
		out := make([]domain.SearchResult, 0, requestedTopK)
		for _, c := range chunks[:requestedTopK] {
			out = append(out, domain.SearchResult{Chunk: c})
		}
		return Dedupe(out)
	}

	primary := make(map[string]struct{})
	for _, kw := range keywords {
		if kw.Source == domain.SourcePrimary {
			primary[kw.Word] = struct{}{}
		}
	}

	var scored []domain.SearchResult
	for _, c := range chunks {
		r := ScoreChunk(idx, c, keywords, primary)
		if r.Score > 0 {
			scored = append(scored, r)
		}
	}
	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Chunk.ID < scored[j].Chunk.ID
	})

	k := TopKForConfidence(scored[0].Confidence)
	if k > len(scored) {
		k = len(scored)
	}
	return Dedupe(scored[:k])
}

// ScoreChunk computes the score, matched keywords and confidence of one chunk.
func ScoreChunk(idx *index.Index, c domain.Chunk, keywords []domain.WeightedKeyword, primary map[string]struct{}) domain.SearchResult {
	n := float64(idx.NumChunks())
	score := 0.0
	var matched []string
	isMatched := make(map[string]struct{})
	match := func(w string) {
		if _, ok := isMatched[w]; !ok {
			isMatched[w] = struct{}{}
			matched = append(matched, w)
		}
	}

	for _, kw := range keywords {
		if tf := c.WordFreq[kw.Word]; tf > 0 {
			tfScore := 1 + math.Log(float64(tf))
			idf := math.Log((n+1)/(float64(idx.DocFreq(kw.Word))+1)) + 1
			score += tfScore * idf * kw.Weight
			match(kw.Word)
		}
		if len(kw.Word) < MinFuzzyLen {
			continue
		}
		for _, w := range c.UniqueWords {
			if len(w) < MinFuzzyLen || w == kw.Word {
				continue
			}
			if strings.Contains(w, kw.Word) || strings.Contains(kw.Word, w) {
				score += fuzzyFactor * kw.Weight * (1 + math.Log(float64(c.WordFreq[w])))
				match(kw.Word)
			}
		}
	}

	k := len(matched)
	score *= IntersectionBonus(k)

	primaryMatches := 0
	for _, w := range matched {
		if _, ok := primary[w]; ok {
			primaryMatches++
		}
	}
	if len(primary) > 0 && primaryMatches == len(primary) {
		score *= completenessBonus
	}

	return domain.SearchResult{
		Chunk:           c,
		Score:           score,
		MatchedKeywords: matched,
		Confidence:      Confidence(k, primaryMatches > 0),
	}
}

// IntersectionBonus rewards chunks matching several distinct keywords.
func IntersectionBonus(k int) float64 {
	switch {
	case k >= 5:
		return 3.0 + 0.6*float64(k)
	case k >= 3:
		return 1.5 + 0.4*float64(k)
	case k > 1:
		return 1.0 + 0.4*float64(k)
	default:
		return 1
	}
}

// Confidence maps the distinct matched keyword count and whether any
// primary keyword matched to a 0..1 label.
func Confidence(k int, hasPrimary bool) float64 {
	switch {
	case k >= 4 && hasPrimary:
		return 0.95
	case k >= 3 && hasPrimary:
		return 0.85
	case k >= 2 && hasPrimary:
		return 0.70
	case hasPrimary:
		return 0.50
	case k >= 2:
		return 0.40
	case k >= 1:
		return 0.25
	default:
		return 0
	}
}

// TopKForConfidence returns how many results to keep given the confidence
// of the best chunk.
func TopKForConfidence(c float64) int {
	switch {
	case c >= 0.85:
		return highConfidenceTopK
	case c >= 0.50:
		return mediumConfidenceTopK
	default:
		return lowConfidenceTopK
	}
}

// Dedupe keeps results in order, dropping any whose line range overlaps a
// result already kept.
func Dedupe(results []domain.SearchResult) []domain.SearchResult {
	kept := make([]domain.SearchResult, 0, len(results))
	for _, r := range results {
		overlap := false
		for _, k := range kept {
			if r.Chunk.Overlaps(k.Chunk) {
				overlap = true
				break
			}
		}
		if !overlap {
			kept = append(kept, r)
		}
	}
	return kept
}
