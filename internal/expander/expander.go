// Package expander grows a raw query into a weighted set of search terms
// using the vocabulary and co-occurrence graph of an indexed document.
package expander

import (
	"strings"

	"docrag/internal/domain"
	"docrag/internal/index"
	"docrag/internal/tokenizer"
)

const (
	// MaxPrimaryKeywords caps the literal query terms.
	MaxPrimaryKeywords = 8

	// RelatedPerKeyword is how many co-occurring words each primary term adds.
	RelatedPerKeyword = 4

	// MinSubstringLen is the shortest vocabulary word eligible for substring
	// expansion.
	MinSubstringLen = 4

	PrimaryWeight      = 1.0
	SubstringWeight    = 0.6
	QuestionTypeWeight = 0.3
)

// PrimaryKeywords returns the de-duplicated non-stop-word tokens of query in
// order of first appearance, at most MaxPrimaryKeywords of them.
func PrimaryKeywords(query string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range tokenizer.Tokenize(query) {
		if len(out) == MaxPrimaryKeywords {
			break
		}
		if tokenizer.IsStopWord(tok) {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// Expand returns the weighted keywords for query against idx. A word is added
// by the first step that produces it: primary terms, then co-occurring words,
// then vocabulary substring matches, then question-type context words.
func Expand(idx *index.Index, query string) []domain.WeightedKeyword {
	e := &expansion{seen: make(map[string]struct{})}

	primary := PrimaryKeywords(query)
	for _, kw := range primary {
		e.add(kw, PrimaryWeight, domain.SourcePrimary)
	}

	graph := idx.Graph()
	for _, kw := range primary {
		if !graph.Contains(kw) {
			continue
		}
		neighbors := graph.Neighbors(kw)
		maxCount := float64(neighbors[0].Count)
		taken := 0
		for _, n := range neighbors {
			if taken == RelatedPerKeyword {
				break
			}
			if !tokenizer.IsMeaningful(n.Word) || e.has(n.Word) {
				continue
			}
			e.add(n.Word, 0.4+0.4*(float64(n.Count)/maxCount), domain.SourceCoOccur)
			taken++
		}
	}

	for _, kw := range primary {
		for _, w := range idx.Vocabulary() {
			if len(w) < MinSubstringLen || w == kw || e.has(w) {
				continue
			}
			if (len(kw) >= 3 && strings.Contains(w, kw)) || strings.Contains(kw, w) {
				e.add(w, SubstringWeight, domain.SourceSubstring)
			}
		}
	}

	if qt, ok := DetectQuestionType(query); ok {
		for _, w := range qt.ContextWords {
			if idx.Contains(w) && !e.has(w) {
				e.add(w, QuestionTypeWeight, domain.SourceQuestionType)
			}
		}
	}
	return e.keywords
}

type expansion struct {
	seen     map[string]struct{}
	keywords []domain.WeightedKeyword
}

func (e *expansion) has(w string) bool {
	_, ok := e.seen[w]
	return ok
}

func (e *expansion) add(w string, weight float64, src domain.KeywordSource) {
	e.seen[w] = struct{}{}
	e.keywords = append(e.keywords, domain.WeightedKeyword{Word: w, Weight: weight, Source: src})
}
