package score

import "github.com/bitext-tools/realign/internal/domain"

// copyPattern scores shared literals: numbers, dates and URLs pass
// through translation unchanged, so their overlap is direct evidence.
type copyPattern struct{}

func (copyPattern) Name() string { return NameCopyPattern }

func (copyPattern) Score(src, tgt Input) float64 {
	a := src.Features.Numbers.Union(src.Features.URLs)
	b := tgt.Features.Numbers.Union(tgt.Features.URLs)
	j, ok := domain.Jaccard(a, b)
	if !ok {
		return Neutral
	}
	return j
}

// asciiOverlap scores the consistency of non-translatable fragments:
// named entities, code and other ASCII-only tokens.
type asciiOverlap struct{}

func (asciiOverlap) Name() string { return NameAscii }

func (asciiOverlap) Score(src, tgt Input) float64 {
	j, ok := domain.Jaccard(src.Features.ASCII, tgt.Features.ASCII)
	if !ok {
		return Neutral
	}
	return j
}
