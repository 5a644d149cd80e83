package realign

import (
	"context"
	"fmt"

	"github.com/bitext-tools/realign/internal/domain"
	"github.com/bitext-tools/realign/internal/usecase/feature"
	"github.com/bitext-tools/realign/internal/usecase/resolve"
	"github.com/bitext-tools/realign/internal/usecase/score"
)

// Aligner scores and aligns the sentence pairs of document bundles.
// Immutable and safe for concurrent use once constructed.
type Aligner struct {
	builder   *score.Builder
	srcVec    score.Vectorizer
	tgtVec    score.Vectorizer
	threshold float64
}

// New builds an Aligner. Configuration problems — unknown scorer names,
// a scorer without its resource, an out-of-range threshold — surface
// here, never during alignment.
func New(opts ...Option) (*Aligner, error) {
	s := settings{
		scorers:     []string{score.NameCharLen, score.NameTokLen, score.NameCopyPattern, score.NameAscii},
		lengthRatio: 1.0,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.threshold < 0 || s.threshold > 1 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidThreshold, s.threshold)
	}

	srcVec, tgtVec := s.vectorizers()
	scorers, err := score.Build(s.scorers,
		score.Options{ExpectedLengthRatio: s.lengthRatio},
		score.Resources{SourceVectorizer: srcVec, TargetVectorizer: tgtVec, Table: s.table},
	)
	if err != nil {
		return nil, err
	}
	builder, err := score.NewBuilder(scorers, s.weights)
	if err != nil {
		return nil, err
	}
	return &Aligner{builder: builder, srcVec: srcVec, tgtVec: tgtVec, threshold: s.threshold}, nil
}

// Align resolves the best one-to-one alignment of a bundle. Both sides
// must be non-empty.
func (a *Aligner) Align(ctx context.Context, b Bundle) (Alignment, error) {
	if len(b.Source) == 0 || len(b.Target) == 0 {
		return Alignment{}, domain.ErrEmptyBundle
	}
	srcIn, err := a.inputs(ctx, toDomain(b.Source), a.srcVec)
	if err != nil {
		return Alignment{}, err
	}
	tgtIn, err := a.inputs(ctx, toDomain(b.Target), a.tgtVec)
	if err != nil {
		return Alignment{}, err
	}
	combined, _ := a.builder.Build(srcIn, tgtIn)
	return fromDomain(resolve.Resolve(combined, a.threshold)), nil
}

// ScorePair returns the combined confidence of a single candidate pair.
func (a *Aligner) ScorePair(ctx context.Context, source, target Sentence) (float64, error) {
	srcIn, err := a.inputs(ctx, toDomain([]Sentence{source}), a.srcVec)
	if err != nil {
		return 0, err
	}
	tgtIn, err := a.inputs(ctx, toDomain([]Sentence{target}), a.tgtVec)
	if err != nil {
		return 0, err
	}
	return a.builder.Pair(srcIn[0], tgtIn[0]), nil
}

func (a *Aligner) inputs(ctx context.Context, sentences []domain.Sentence, vec score.Vectorizer) ([]score.Input, error) {
	ins := make([]score.Input, len(sentences))
	for i, sent := range sentences {
		in := score.Input{Sentence: sent, Features: feature.Extract(sent)}
		if vec != nil {
			v, err := vec.SentenceVector(ctx, sent)
			if err != nil {
				return nil, err
			}
			in.Vector = v
		}
		ins[i] = in
	}
	return ins, nil
}
