package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"docrag/internal/index"
	"docrag/internal/tokenizer"
)

// DefaultMaxSentences is used when a non-positive count is requested.
const DefaultMaxSentences = 3

var sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// FrequencySummarizer ranks sentences by the document-wide frequency of their
// meaningful words.
type FrequencySummarizer struct{}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{}
}

// Summarize returns up to maxSentences sentences of the indexed document, in
// document order.
func (s *FrequencySummarizer) Summarize(idx *index.Index, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}
	text := strings.Join(idx.Lines(), "\n")
	sentences := sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}

	maxF := 0.0
	for _, w := range idx.Vocabulary() {
		if !tokenizer.IsMeaningful(w) {
			continue
		}
		if f := float64(idx.Frequency(w)); f > maxF {
			maxF = f
		}
	}
	if maxF == 0 {
		maxF = 1
	}

	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(sentences))
	for i, sent := range sentences {
		tokens := tokenizer.Tokenize(sent)
		sscore := 0.0
		for _, tok := range tokens {
			if tokenizer.IsMeaningful(tok) {
				sscore += float64(idx.Frequency(tok)) / maxF
			}
		}
		// Normalize by sentence length to avoid bias
		if l := float64(len(tokens)); l > 0 {
			sscore /= math.Sqrt(l)
		}
		scores[i] = pair{i, sscore}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	// Keep original order among selected
	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)
	out := make([]string, 0, len(selected))
	for _, i := range selected {
		out = append(out, strings.Join(strings.Fields(sentences[i]), " "))
	}
	return strings.Join(out, " ")
}
