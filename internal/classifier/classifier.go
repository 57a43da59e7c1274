// Package classifier provides the text classification capability behind the
// safety scorer. The lexical implementation is a deliberate stand-in for a
// real model: anything satisfying Classifier can replace it without touching
// the scoring logic.
package classifier

// Classifier detects a single class of problematic content in raw text
type Classifier interface {
	// Kind returns the content class this classifier detects
	// (e.g., "toxicity", "spam", "nsfw")
	Kind() string

	// Classify returns the matched snippets in the order found.
	// An empty result means the text is clean for this class.
	Classify(text string) []string
}
