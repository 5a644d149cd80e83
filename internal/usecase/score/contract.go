// Package score implements the pairwise candidate scorers and the
// matrix builder that combines them.
package score

import (
	"context"

	"github.com/bitext-tools/realign/internal/domain"
)

// Neutral is the midpoint confidence contributed by a scorer with no
// applicable evidence for a pair. Using the midpoint instead of zero
// keeps one missing signal from vetoing an otherwise strong match.
const Neutral = 0.5

// Input bundles a sentence with its precomputed features and, when the
// mcss scorer is active, its sentence vector. Built once per sentence
// per bundle.
type Input struct {
	Sentence domain.Sentence
	Features domain.Features
	Vector   []float32
}

// Scorer rates one candidate pair. Results are confidences in [0,1],
// higher meaning more likely mutual translations. Implementations are
// stateless given their resources, deterministic, and side-effect free.
type Scorer interface {
	Name() string
	Score(src, tgt Input) float64
}

// Vectorizer produces sentence vectors in the shared cross-lingual
// space. A nil vector with a nil error means no token resolved; the
// mcss scorer then contributes the neutral midpoint.
type Vectorizer interface {
	SentenceVector(ctx context.Context, s domain.Sentence) ([]float32, error)
}
