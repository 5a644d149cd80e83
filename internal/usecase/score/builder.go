package score

import (
	"fmt"

	"github.com/bitext-tools/realign/internal/domain"
)

// Builder fills one score matrix per active scorer and combines them
// into a single confidence matrix by weighted arithmetic mean.
// Averaging, not multiplying: one weak or inapplicable signal must not
// zero out an otherwise strong match.
type Builder struct {
	scorers []Scorer
	weights []float64
	total   float64
}

// NewBuilder creates a builder over the active scorers. The weights map
// may assign a positive weight per scorer name; absent names default to
// 1. A weight for an inactive scorer or a non-positive weight is a
// configuration error.
func NewBuilder(scorers []Scorer, weights map[string]float64) (*Builder, error) {
	if len(scorers) == 0 {
		return nil, fmt.Errorf("%w: builder needs at least one scorer", domain.ErrUnknownScorer)
	}
	active := make(map[string]bool, len(scorers))
	for _, s := range scorers {
		active[s.Name()] = true
	}
	for name, w := range weights {
		if !active[name] {
			return nil, fmt.Errorf("%w: weight for inactive scorer %q", domain.ErrInvalidWeight, name)
		}
		if w <= 0 {
			return nil, fmt.Errorf("%w: %q has weight %v", domain.ErrInvalidWeight, name, w)
		}
	}
	b := &Builder{scorers: scorers, weights: make([]float64, len(scorers))}
	for i, s := range scorers {
		w := 1.0
		if ww, ok := weights[s.Name()]; ok {
			w = ww
		}
		b.weights[i] = w
		b.total += w
	}
	return b, nil
}

// Scorers returns the active scorers in configured order.
func (b *Builder) Scorers() []Scorer { return b.scorers }

// Build evaluates every active scorer on every candidate pair and
// returns the combined matrix plus the per-scorer matrices in scorer
// order. All scorer matrices are computed densely before combining; no
// pair short-circuits, so behavior is uniform regardless of content.
func (b *Builder) Build(src, tgt []Input) (*domain.ScoreMatrix, []*domain.ScoreMatrix) {
	rows, cols := len(src), len(tgt)
	perScorer := make([]*domain.ScoreMatrix, len(b.scorers))
	for k, s := range b.scorers {
		m := domain.NewScoreMatrix(rows, cols)
		for i := range src {
			for j := range tgt {
				m.Set(i, j, s.Score(src[i], tgt[j]))
			}
		}
		perScorer[k] = m
	}
	combined := domain.NewScoreMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum float64
			for k := range perScorer {
				sum += b.weights[k] * perScorer[k].At(i, j)
			}
			combined.Set(i, j, sum/b.total)
		}
	}
	return combined, perScorer
}

// Pair scores a single candidate pair: the weighted mean of the active
// scorers on one (source, target) couple.
func (b *Builder) Pair(src, tgt Input) float64 {
	var sum float64
	for k, s := range b.scorers {
		sum += b.weights[k] * s.Score(src, tgt)
	}
	return sum / b.total
}
