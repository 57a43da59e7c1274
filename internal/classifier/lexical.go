package classifier

import "regexp"

// Lexical is a regex-based Classifier. Patterns are compiled once at
// construction and never mutated, so a Lexical value is safe for concurrent
// use.
type Lexical struct {
	kind     string
	patterns []*regexp.Regexp
}

// NewLexical creates a lexical classifier from precompiled patterns
func NewLexical(kind string, patterns []*regexp.Regexp) *Lexical {
	return &Lexical{kind: kind, patterns: patterns}
}

// Kind returns the content class this classifier detects
func (l *Lexical) Kind() string {
	return l.kind
}

// Classify runs every pattern against the text and collects all matches in
// pattern order. Overlapping matches from different patterns are kept.
func (l *Lexical) Classify(text string) []string {
	var matches []string
	for _, pattern := range l.patterns {
		matches = append(matches, pattern.FindAllString(text, -1)...)
	}
	return matches
}
