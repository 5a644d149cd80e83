package realign

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/bitext-tools/realign/internal/domain"
	"github.com/bitext-tools/realign/internal/logger"
	"github.com/bitext-tools/realign/internal/metrics"
)

// Failure records one skipped bundle with its reason.
type Failure struct {
	Pair   domain.DocumentPair
	Reason string
}

// Summary reports the outcome of a run.
type Summary struct {
	Total    int
	Aligned  int
	Empty    int // processed, but nothing cleared the threshold
	Skipped  int // output already existed
	Failed   int
	Failures []Failure
}

// Progress is a point-in-time snapshot for the monitor endpoint.
type Progress struct {
	Total   int64 `json:"total"`
	Done    int64 `json:"done"`
	Aligned int64 `json:"aligned"`
	Empty   int64 `json:"empty"`
	Skipped int64 `json:"skipped"`
	Failed  int64 `json:"failed"`
}

type progressCounters struct {
	total, done, aligned, empty, skipped, failed atomic.Int64
}

// Progress returns a snapshot of the running counters. Safe to call
// concurrently with Run.
func (s *Service) Progress() Progress {
	return Progress{
		Total:   s.progress.total.Load(),
		Done:    s.progress.done.Load(),
		Aligned: s.progress.aligned.Load(),
		Empty:   s.progress.empty.Load(),
		Skipped: s.progress.skipped.Load(),
		Failed:  s.progress.failed.Load(),
	}
}

// Run processes the document pairs across a fixed-size worker pool.
// Bundles are independent; a failed bundle is logged and counted, never
// aborts the batch. Cancelling the context stops dispatching further
// pairs; in-flight bundles finish.
func (s *Service) Run(ctx context.Context, pairs []domain.DocumentPair, workers int) Summary {
	if workers < 1 {
		workers = 1
	}
	s.progress.total.Store(int64(len(pairs)))

	jobs := make(chan domain.DocumentPair)
	results := make(chan Failure, len(pairs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pair := range jobs {
				if f := s.runOne(ctx, pair); f != nil {
					results <- *f
				}
				s.progress.done.Add(1)
			}
		}()
	}

dispatch:
	for _, pair := range pairs {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- pair:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	sum := Summary{
		Total:   len(pairs),
		Aligned: int(s.progress.aligned.Load()),
		Empty:   int(s.progress.empty.Load()),
		Skipped: int(s.progress.skipped.Load()),
		Failed:  int(s.progress.failed.Load()),
	}
	for f := range results {
		sum.Failures = append(sum.Failures, f)
	}
	return sum
}

// runOne processes a single pair end to end. Returns a Failure when the
// bundle was skipped for a data problem.
func (s *Service) runOne(ctx context.Context, pair domain.DocumentPair) *Failure {
	log := s.logger.With(
		zap.String("source_id", pair.SourceID),
		zap.String("target_id", pair.TargetID),
	)
	ctx = logger.ContextWithLogger(ctx, log)

	if s.skipExisting && s.writer.Exists(pair.SourceID) {
		log.Info("output exists, skipping")
		s.progress.skipped.Add(1)
		metrics.BundlesTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	bundle, err := s.source.Load(ctx, pair)
	if err != nil {
		log.Warn("bundle unreadable, skipping", zap.Error(err))
		s.progress.failed.Add(1)
		metrics.BundlesTotal.WithLabelValues("failed").Inc()
		return &Failure{Pair: pair, Reason: err.Error()}
	}

	rec, err := s.AlignBundle(ctx, bundle)
	if err != nil {
		log.Warn("bundle failed, skipping", zap.Error(err))
		s.progress.failed.Add(1)
		metrics.BundlesTotal.WithLabelValues("failed").Inc()
		return &Failure{Pair: pair, Reason: err.Error()}
	}

	if err := s.writer.Write(rec); err != nil {
		log.Warn("write failed", zap.Error(err))
		s.progress.failed.Add(1)
		metrics.BundlesTotal.WithLabelValues("failed").Inc()
		return &Failure{Pair: pair, Reason: err.Error()}
	}

	if len(rec.Alignment.Pairs) == 0 {
		log.Info("no alignment cleared the threshold",
			zap.Int("source_sentences", len(rec.SourceSegs)),
			zap.Int("target_sentences", len(rec.TargetSegs)),
		)
		s.progress.empty.Add(1)
		metrics.BundlesTotal.WithLabelValues("empty").Inc()
	} else {
		s.progress.aligned.Add(1)
		metrics.BundlesTotal.WithLabelValues("aligned").Inc()
	}
	return nil
}
