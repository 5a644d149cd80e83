// Package realign aligns sentence pairs within bilingual document
// bundles whose original alignment has degraded. It exposes the scoring
// and matching engine behind the realign command for embedding into
// other tools.
package realign

import (
	"strings"

	"github.com/bitext-tools/realign/internal/domain"
)

// Sentence is one tokenized sentence. Tokens may be left nil, in which
// case Text is split on whitespace.
type Sentence struct {
	Text   string
	Tokens []string
}

// Bundle is a pair of sentence sequences presumed to be mutual
// translations in some order.
type Bundle struct {
	Source []Sentence
	Target []Sentence
}

// Pair is one aligned sentence pair with its combined confidence.
type Pair struct {
	Source int
	Target int
	Score  float64
}

// Alignment is the resolved one-to-one alignment of a bundle. Each
// index appears at most once; surplus indices are listed unmatched.
type Alignment struct {
	Pairs           []Pair
	UnmatchedSource []int
	UnmatchedTarget []int
}

func toDomain(sentences []Sentence) []domain.Sentence {
	out := make([]domain.Sentence, len(sentences))
	for i, s := range sentences {
		tokens := s.Tokens
		if tokens == nil {
			tokens = strings.Fields(s.Text)
		}
		out[i] = domain.Sentence{Index: i, Text: s.Text, Tokens: tokens}
	}
	return out
}

func fromDomain(a domain.Alignment) Alignment {
	out := Alignment{
		Pairs:           make([]Pair, len(a.Pairs)),
		UnmatchedSource: a.UnmatchedSource,
		UnmatchedTarget: a.UnmatchedTarget,
	}
	for i, p := range a.Pairs {
		out.Pairs[i] = Pair{Source: p.Source, Target: p.Target, Score: p.Score}
	}
	return out
}
