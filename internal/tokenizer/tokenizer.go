// Package tokenizer normalizes raw text into word tokens and knows which
// words carry no retrieval signal.
package tokenizer

import "strings"

// MinTokenLen is the shortest token kept by Tokenize.
const MinTokenLen = 2

// MinMeaningfulLen is the shortest word considered for co-occurrence.
const MinMeaningfulLen = 3

// Tokenize lower-cases text, treats every character outside [a-z0-9] and
// whitespace as a separator and returns the tokens of at least two bytes.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !isTokenRune(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) >= MinTokenLen {
			out = append(out, f)
		}
	}
	return out
}

func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// IsStopWord reports whether word is in the stop-word set.
func IsStopWord(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// IsMeaningful reports whether word is long enough and not a stop word.
func IsMeaningful(word string) bool {
	return len(word) >= MinMeaningfulLen && !IsStopWord(word)
}
