package domain

// Chunk is a fixed window of document lines, the unit of retrieval.
// StartLine and EndLine are 0-based and inclusive.
type Chunk struct {
	ID        int
	Text      string
	StartLine int
	EndLine   int
	WordFreq  map[string]int
	// UniqueWords holds the distinct tokens of the chunk in sorted order.
	UniqueWords []string
}

// Has reports whether word occurs in the chunk.
func (c Chunk) Has(word string) bool {
	return c.WordFreq[word] > 0
}

// Overlaps reports whether the line ranges of two chunks intersect.
func (c Chunk) Overlaps(other Chunk) bool {
	return c.StartLine <= other.EndLine && other.StartLine <= c.EndLine
}

// KeywordSource records which expansion step produced a keyword.
type KeywordSource int

const (
	SourcePrimary KeywordSource = iota
	SourceCoOccur
	SourceSubstring
	SourceQuestionType
)

func (s KeywordSource) String() string {
	switch s {
	case SourcePrimary:
		return "primary"
	case SourceCoOccur:
		return "co-occur"
	case SourceSubstring:
		return "substring"
	case SourceQuestionType:
		return "question-type"
	default:
		return "unknown"
	}
}

// WeightedKeyword is one search term produced by query expansion.
type WeightedKeyword struct {
	Word   string
	Weight float64
	Source KeywordSource
}

// SearchResult represents a scored chunk.
type SearchResult struct {
	Chunk           Chunk
	Score           float64
	MatchedKeywords []string
	Confidence      float64
}

// Neighbor is a word related to another through co-occurrence.
type Neighbor struct {
	Word  string
	Count int
}

// Chunker splits document lines into chunks suitable for indexing.
type Chunker interface {
	Chunk(lines []string) []Chunk
}
