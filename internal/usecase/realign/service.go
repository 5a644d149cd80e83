package realign

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bitext-tools/realign/internal/domain"
	"github.com/bitext-tools/realign/internal/logger"
	"github.com/bitext-tools/realign/internal/metrics"
	"github.com/bitext-tools/realign/internal/usecase/feature"
	"github.com/bitext-tools/realign/internal/usecase/resolve"
	"github.com/bitext-tools/realign/internal/usecase/score"
)

// Service runs the re-alignment pipeline. Per bundle: extract features,
// vectorize when mcss is active, fill and combine score matrices,
// resolve the alignment, emit the record. Bundles share only the
// immutable resources held by the scorers.
type Service struct {
	source       BundleSource
	writer       RecordWriter
	builder      *score.Builder
	srcVec       score.Vectorizer
	tgtVec       score.Vectorizer
	threshold    float64
	skipExisting bool
	logger       *zap.Logger

	progress progressCounters
}

// Params configures a Service. SourceVectorizer and TargetVectorizer
// are nil unless the mcss scorer is active.
type Params struct {
	Source           BundleSource
	Writer           RecordWriter
	Builder          *score.Builder
	SourceVectorizer score.Vectorizer
	TargetVectorizer score.Vectorizer
	Threshold        float64
	SkipExisting     bool
	Logger           *zap.Logger
}

// New creates the pipeline service. The threshold must lie in [0,1].
func New(p Params) (*Service, error) {
	if p.Threshold < 0 || p.Threshold > 1 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidThreshold, p.Threshold)
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:       p.Source,
		writer:       p.Writer,
		builder:      p.Builder,
		srcVec:       p.SourceVectorizer,
		tgtVec:       p.TargetVectorizer,
		threshold:    p.Threshold,
		skipExisting: p.SkipExisting,
		logger:       logger,
	}, nil
}

// AlignBundle runs the per-bundle pipeline and returns the output
// record. The bundle invariant (both sides non-empty) is enforced here.
func (s *Service) AlignBundle(ctx context.Context, b domain.DocumentBundle) (domain.Record, error) {
	if err := b.Validate(); err != nil {
		return domain.Record{}, err
	}
	start := time.Now()

	srcIn, err := s.inputs(ctx, b.Source, s.srcVec)
	if err != nil {
		return domain.Record{}, fmt.Errorf("vectorize source %s: %w", b.SourceID, err)
	}
	tgtIn, err := s.inputs(ctx, b.Target, s.tgtVec)
	if err != nil {
		return domain.Record{}, fmt.Errorf("vectorize target %s: %w", b.TargetID, err)
	}

	combined, _ := s.builder.Build(srcIn, tgtIn)
	aln := resolve.Resolve(combined, s.threshold)

	metrics.PairsScoredTotal.Add(float64(len(b.Source) * len(b.Target)))
	for _, p := range aln.Pairs {
		metrics.CombinedScore.Observe(p.Score)
	}
	metrics.SentencesTotal.WithLabelValues("source", "matched").Add(float64(len(aln.Pairs)))
	metrics.SentencesTotal.WithLabelValues("target", "matched").Add(float64(len(aln.Pairs)))
	metrics.SentencesTotal.WithLabelValues("source", "unmatched").Add(float64(len(aln.UnmatchedSource)))
	metrics.SentencesTotal.WithLabelValues("target", "unmatched").Add(float64(len(aln.UnmatchedTarget)))
	metrics.BundleDuration.Observe(time.Since(start).Seconds())

	logger.FromContext(ctx).Debug("bundle aligned",
		zap.Int("matched", len(aln.Pairs)),
		zap.Int("unmatched_source", len(aln.UnmatchedSource)),
		zap.Int("unmatched_target", len(aln.UnmatchedTarget)),
		zap.Duration("took", time.Since(start)),
	)

	return domain.Record{
		SourceID:   b.SourceID,
		TargetID:   b.TargetID,
		Alignment:  aln,
		SourceSegs: segIDs(b.Source),
		TargetSegs: segIDs(b.Target),
	}, nil
}

// inputs precomputes features (and vectors, when a vectorizer is set)
// once per sentence; every scorer reuses them.
func (s *Service) inputs(ctx context.Context, sentences []domain.Sentence, vec score.Vectorizer) ([]score.Input, error) {
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

func segIDs(sentences []domain.Sentence) []string {
	ids := make([]string, len(sentences))
	for i, s := range sentences {
		ids[i] = s.ID
	}
	return ids
}
