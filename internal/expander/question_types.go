package expander

import (
	"regexp"
	"strings"
)

// QuestionType is a coarse intent detected from the phrasing of a query.
type QuestionType struct {
	Name         string
	Phrases      []string
	ContextWords []string
	patterns     []*regexp.Regexp
}

// Matches reports whether the lower-cased query contains one of the phrases
// as whole words.
func (q *QuestionType) Matches(query string) bool {
	for _, p := range q.patterns {
		if p.MatchString(query) {
			return true
		}
	}
	return false
}

func newQuestionType(name string, phrases, context []string) QuestionType {
	q := QuestionType{Name: name, Phrases: phrases, ContextWords: context}
	for _, p := range phrases {
		q.patterns = append(q.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(p))+`\b`))
	}
	return q
}

// questionTypes is checked in order; the first match wins.
var questionTypes = []QuestionType{
	newQuestionType("definition",
		[]string{"what is", "what are", "what does", "define", "definition", "meaning of", "means", "kya hai", "kya hota", "kya hote", "matlab"},
		[]string{"definition", "meaning", "refers", "introduction", "overview", "concept", "defined", "term", "known", "called", "basically"}),
	newQuestionType("process",
		[]string{"how does", "how do", "how to", "how is", "process", "steps", "procedure", "mechanism", "kaise", "kaise kare", "tarika"},
		[]string{"process", "steps", "step", "first", "next", "finally", "procedure", "method", "works", "working", "stage", "stages"}),
	newQuestionType("comparison",
		[]string{"difference between", "differences", "different from", "compare", "comparison", "versus", "vs", "antar", "fark", "farak"},
		[]string{"difference", "differences", "compared", "whereas", "unlike", "however", "contrast", "similar", "similarity", "while"}),
	newQuestionType("example",
		[]string{"example", "examples", "for instance", "such as", "udaharan", "misal"},
		[]string{"example", "examples", "instance", "illustration", "like", "including", "sample", "case"}),
	newQuestionType("advantage",
		[]string{"advantage", "advantages", "benefit", "benefits", "pros", "merits", "fayde", "faida", "labh"},
		[]string{"advantage", "advantages", "benefit", "benefits", "useful", "helps", "improves", "efficient", "better", "merit"}),
	newQuestionType("disadvantage",
		[]string{"disadvantage", "disadvantages", "drawback", "drawbacks", "limitation", "limitations", "cons", "demerits", "nuksan", "hani"},
		[]string{"disadvantage", "disadvantages", "drawback", "drawbacks", "limitation", "limitations", "problem", "problems", "issue", "challenge", "risk"}),
	newQuestionType("types",
		[]string{"types of", "type of", "kinds of", "kind of", "categories", "classification", "classify", "prakar"},
		[]string{"types", "type", "kinds", "categories", "category", "classified", "classification", "forms", "varieties"}),
	newQuestionType("application",
		[]string{"application", "applications", "uses of", "used for", "use of", "usage", "applied", "upyog", "istemal"},
		[]string{"application", "applications", "used", "uses", "usage", "applied", "industry", "real", "practical"}),
	newQuestionType("cause",
		[]string{"why", "cause", "causes", "reason", "reasons", "kyun", "kyon", "karan"},
		[]string{"because", "cause", "causes", "reason", "due", "result", "therefore", "leads", "hence", "effect"}),
	newQuestionType("feature",
		[]string{"feature", "features", "characteristic", "characteristics", "properties", "property", "visheshta"},
		[]string{"feature", "features", "characteristic", "characteristics", "property", "properties", "key", "important", "main"}),
}

// DetectQuestionType returns the first question type whose phrases occur in
// query.
func DetectQuestionType(query string) (QuestionType, bool) {
	lower := strings.ToLower(query)
	for _, q := range questionTypes {
		if q.Matches(lower) {
			return q, true
		}
	}
	return QuestionType{}, false
}
