package score

import (
	"fmt"

	"github.com/bitext-tools/realign/internal/domain"
)

// Scorer names recognized in configuration.
const (
	NameCharLen     = "charlen"
	NameTokLen      = "toklen"
	NameCopyPattern = "copypatn"
	NameAscii       = "ascii"
	NameMCSS        = "mcss"
	NameTTab        = "ttab"
)

// Names lists all recognized scorer names.
func Names() []string {
	return []string{NameCharLen, NameTokLen, NameCopyPattern, NameAscii, NameMCSS, NameTTab}
}

// Known reports whether name is a recognized scorer.
func Known(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Options are the scalar knobs shared by scorers.
type Options struct {
	// ExpectedLengthRatio is the per-language-pair source/target length
	// ratio the length scorers treat as the best fit. Zero means 1.0.
	ExpectedLengthRatio float64
}

// Resources are the shared read-only inputs some scorers require.
// Loaded once per run and read concurrently without locking.
type Resources struct {
	// SourceVectorizer and TargetVectorizer back the mcss scorer.
	SourceVectorizer Vectorizer
	TargetVectorizer Vectorizer
	// Table backs the ttab scorer.
	Table *domain.TranslationTable
}

// Build validates the requested scorer names against their resources
// and instantiates the active set, preserving order. A requested scorer
// with a missing resource is a configuration error here, at pipeline
// construction time, never a per-pair failure.
func Build(names []string, opts Options, res Resources) ([]Scorer, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty scorer set", domain.ErrUnknownScorer)
	}
	seen := make(map[string]bool, len(names))
	scorers := make([]Scorer, 0, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateScorer, name)
		}
		seen[name] = true
		switch name {
		case NameCharLen:
			scorers = append(scorers, charLen{expected: opts.ExpectedLengthRatio})
		case NameTokLen:
			scorers = append(scorers, tokLen{expected: opts.ExpectedLengthRatio})
		case NameCopyPattern:
			scorers = append(scorers, copyPattern{})
		case NameAscii:
			scorers = append(scorers, asciiOverlap{})
		case NameMCSS:
			if res.SourceVectorizer == nil || res.TargetVectorizer == nil {
				return nil, fmt.Errorf("%w: %q needs source and target vector spaces", domain.ErrMissingResource, name)
			}
			scorers = append(scorers, mcss{})
		case NameTTab:
			if res.Table == nil {
				return nil, fmt.Errorf("%w: %q needs a translation table", domain.ErrMissingResource, name)
			}
			scorers = append(scorers, ttab{table: res.Table})
		default:
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownScorer, name)
		}
	}
	return scorers, nil
}
