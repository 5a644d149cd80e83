package score

import (
	"context"
	"math"
	"strings"

	"github.com/bitext-tools/realign/internal/domain"
)

// mcss scores cross-lingual semantic similarity: cosine of the two
// sentence vectors, rescaled from [-1,1] to [0,1]. Sentences without a
// resolvable vector contribute the neutral midpoint.
type mcss struct{}

func (mcss) Name() string { return NameMCSS }

func (mcss) Score(src, tgt Input) float64 {
	if len(src.Vector) == 0 || len(tgt.Vector) == 0 {
		return Neutral
	}
	return (cosine(src.Vector, tgt.Vector) + 1) / 2
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// MeanVectorizer embeds a sentence as the mean of its token vectors in
// a word vector space. Tokens absent from the space are skipped; a
// sentence with no resolvable token yields a nil vector.
type MeanVectorizer struct {
	space *domain.VectorSpace
}

// NewMeanVectorizer creates a bag-of-words vectorizer over a space.
func NewMeanVectorizer(space *domain.VectorSpace) *MeanVectorizer {
	return &MeanVectorizer{space: space}
}

// SentenceVector implements Vectorizer. Never fails; lookup misses are
// expected for out-of-vocabulary tokens.
func (v *MeanVectorizer) SentenceVector(_ context.Context, s domain.Sentence) ([]float32, error) {
	var sum []float32
	n := 0
	for _, tok := range s.Tokens {
		vec, ok := v.space.Lookup(strings.ToLower(tok))
		if !ok {
			continue
		}
		if sum == nil {
			sum = make([]float32, len(vec))
		}
		for i := range vec {
			sum[i] += vec[i]
		}
		n++
	}
	if n == 0 {
		return nil, nil
	}
	for i := range sum {
		sum[i] /= float32(n)
	}
	return sum, nil
}

// EmbedderVectorizer embeds whole sentences through a remote provider
// whose multilingual vectors share one space across languages.
type EmbedderVectorizer struct {
	embedder domain.Embedder
}

// NewEmbedderVectorizer wraps an embedding provider as a Vectorizer.
func NewEmbedderVectorizer(e domain.Embedder) *EmbedderVectorizer {
	return &EmbedderVectorizer{embedder: e}
}

// SentenceVector implements Vectorizer.
func (v *EmbedderVectorizer) SentenceVector(ctx context.Context, s domain.Sentence) ([]float32, error) {
	return v.embedder.Embed(ctx, strings.ToLower(s.Text))
}
