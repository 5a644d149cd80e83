// Package domain holds the value types of the re-alignment engine.
package domain

// Sentence is one tokenized segment of a document. Index is its position
// within the document's sentence sequence; ID is the segment identifier
// carried by the corpus format.
type Sentence struct {
	Index  int
	ID     string
	Text   string
	Tokens []string
}

// DocumentBundle pairs the source-language and target-language sentence
// sequences of one document. The two sequences keep their original
// within-document order; index correspondence across them is what the
// engine recovers.
type DocumentBundle struct {
	SourceID string
	TargetID string
	Source   []Sentence
	Target   []Sentence
}

// Validate checks the bundle invariant: both sequences non-empty.
func (b DocumentBundle) Validate() error {
	if len(b.Source) == 0 || len(b.Target) == 0 {
		return ErrEmptyBundle
	}
	return nil
}

// DocumentPair identifies one source/translation document mapping.
type DocumentPair struct {
	SourceID string
	TargetID string
}
