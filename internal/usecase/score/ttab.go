package score

import (
	"math"

	"github.com/bitext-tools/realign/internal/domain"
)

// ttab scores lexical translation probability. Each side's sentence
// generation likelihood is the mean over its tokens of the best
// translation probability toward any token on the other side; the two
// directional likelihoods are combined by geometric mean, which makes
// the pair score symmetric even though the directions are not.
type ttab struct {
	table *domain.TranslationTable
}

func (ttab) Name() string { return NameTTab }

func (s ttab) Score(src, tgt Input) float64 {
	srcSet := domain.NewTokenSet(src.Sentence.Tokens...)
	tgtSet := domain.NewTokenSet(tgt.Sentence.Tokens...)
	fwd := directionalEvidence(src.Sentence.Tokens, s.table.Forward, tgtSet)
	inv := directionalEvidence(tgt.Sentence.Tokens, s.table.Inverse, srcSet)
	return math.Sqrt(fwd * inv)
}

// directionalEvidence averages per-token evidence that tokens generated
// something on the candidate side. A token without a distribution is an
// OOV: it counts fully when copied over verbatim, zero otherwise.
func directionalEvidence(
	tokens []string, dist func(string) map[string]float64, candidates domain.TokenSet,
) float64 {
	if len(tokens) == 0 {
		return 0
	}
	var total float64
	for _, tok := range tokens {
		probs := dist(tok)
		if len(probs) == 0 {
			if candidates.Contains(tok) {
				total++
			}
			continue
		}
		best := 0.0
		for cand, p := range probs {
			if p > best && candidates.Contains(cand) {
				best = p
			}
		}
		total += best
	}
	return total / float64(len(tokens))
}
