package realign

import (
	"context"
	"fmt"

	"github.com/bitext-tools/realign/internal/domain"
	"github.com/bitext-tools/realign/internal/usecase/score"
)

// EmbedFunc produces a sentence vector in a shared cross-lingual space.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

type settings struct {
	scorers     []string
	threshold   float64
	lengthRatio float64
	weights     map[string]float64
	srcSpace    *domain.VectorSpace
	tgtSpace    *domain.VectorSpace
	table       *domain.TranslationTable
	embed       EmbedFunc
	err         error
}

// Option configures an Aligner.
type Option func(*settings)

// WithScorers selects the active scorer set, in order. Known names:
// charlen, toklen, copypatn, ascii, mcss, ttab.
func WithScorers(names ...string) Option {
	return func(s *settings) { s.scorers = names }
}

// WithThreshold sets the minimum combined score for a kept pair.
func WithThreshold(t float64) Option {
	return func(s *settings) { s.threshold = t }
}

// WithExpectedLengthRatio sets the expected source/target length ratio
// for the length scorers. Default 1.0.
func WithExpectedLengthRatio(r float64) Option {
	return func(s *settings) { s.lengthRatio = r }
}

// WithWeights assigns per-scorer combination weights. Absent scorers
// weigh 1.
func WithWeights(weights map[string]float64) Option {
	return func(s *settings) { s.weights = weights }
}

// WithVectorSpaces supplies pre-aligned word vectors for the mcss
// scorer, one lookup table per language. All vectors must share one
// dimension.
func WithVectorSpaces(source, target map[string][]float32) Option {
	return func(s *settings) {
		src, err := buildSpace(source)
		if err != nil {
			s.err = fmt.Errorf("source vectors: %w", err)
			return
		}
		tgt, err := buildSpace(target)
		if err != nil {
			s.err = fmt.Errorf("target vectors: %w", err)
			return
		}
		if src.Dim() != tgt.Dim() {
			s.err = fmt.Errorf("vector spaces disagree on dimension: %d vs %d", src.Dim(), tgt.Dim())
			return
		}
		s.srcSpace, s.tgtSpace = src, tgt
	}
}

// WithTranslationTable supplies the lexical translation probabilities
// for the ttab scorer: forward maps source token to target token to
// probability; inverse is the opposite direction and may be nil.
func WithTranslationTable(forward, inverse map[string]map[string]float64) Option {
	return func(s *settings) { s.table = domain.NewTranslationTable(forward, inverse) }
}

// WithEmbedder supplies a sentence embedder as the mcss vector source
// instead of word vector spaces.
func WithEmbedder(embed EmbedFunc) Option {
	return func(s *settings) { s.embed = embed }
}

func buildSpace(vecs map[string][]float32) (*domain.VectorSpace, error) {
	if len(vecs) == 0 {
		return nil, fmt.Errorf("empty vector table")
	}
	dim := 0
	for _, v := range vecs {
		dim = len(v)
		break
	}
	space := domain.NewVectorSpace(dim)
	for tok, v := range vecs {
		if err := space.Add(tok, v); err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, err)
		}
	}
	return space, nil
}

type embedAdapter struct{ fn EmbedFunc }

func (a embedAdapter) Embed(ctx context.Context, text string) ([]float32, error) {
	return a.fn(ctx, text)
}

func (s *settings) vectorizers() (score.Vectorizer, score.Vectorizer) {
	if s.srcSpace != nil && s.tgtSpace != nil {
		return score.NewMeanVectorizer(s.srcSpace), score.NewMeanVectorizer(s.tgtSpace)
	}
	if s.embed != nil {
		v := score.NewEmbedderVectorizer(embedAdapter{fn: s.embed})
		return v, v
	}
	return nil, nil
}
