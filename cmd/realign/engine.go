package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bitext-tools/realign/internal/config"
	"github.com/bitext-tools/realign/internal/repository/ttable"
	"github.com/bitext-tools/realign/internal/repository/vectors"
	openaiEmb "github.com/bitext-tools/realign/internal/transport/openai"
	"github.com/bitext-tools/realign/internal/usecase/score"
)

// buildEngine loads the scorer resources and assembles the score
// builder. Resource problems surface here, before any bundle is
// processed.
func buildEngine(ctx context.Context, cfg config.Config, log *zap.Logger) (*score.Builder, score.Vectorizer, score.Vectorizer, error) {
	active := map[string]bool{}
	for _, name := range cfg.Scorers {
		active[name] = true
	}

	var srcVec, tgtVec score.Vectorizer
	if active[score.NameMCSS] {
		switch {
		case cfg.Resources.SourceVectors != "" && cfg.Resources.TargetVectors != "":
			srcSpace, err := vectors.Load(cfg.Resources.SourceVectors, cfg.Resources.MaxVocab)
			if err != nil {
				return nil, nil, nil, err
			}
			log.Info("loaded source vectors",
				zap.String("path", cfg.Resources.SourceVectors),
				zap.Int("vocab", srcSpace.Size()),
				zap.Int("dim", srcSpace.Dim()),
			)
			tgtSpace, err := vectors.Load(cfg.Resources.TargetVectors, cfg.Resources.MaxVocab)
			if err != nil {
				return nil, nil, nil, err
			}
			log.Info("loaded target vectors",
				zap.String("path", cfg.Resources.TargetVectors),
				zap.Int("vocab", tgtSpace.Size()),
				zap.Int("dim", tgtSpace.Dim()),
			)
			if srcSpace.Dim() != tgtSpace.Dim() {
				return nil, nil, nil, fmt.Errorf("vector spaces disagree on dimension: %d vs %d",
					srcSpace.Dim(), tgtSpace.Dim())
			}
			srcVec = score.NewMeanVectorizer(srcSpace)
			tgtVec = score.NewMeanVectorizer(tgtSpace)
		case cfg.Embedding.Enabled:
			emb := openaiEmb.NewEmbedder(openaiEmb.Config{
				APIKey:     cfg.Embedding.APIKey,
				BaseURL:    cfg.Embedding.BaseURL,
				Model:      cfg.Embedding.Model,
				Dimensions: cfg.Embedding.Dimensions,
			})
			if err := emb.HealthCheck(ctx); err != nil {
				return nil, nil, nil, fmt.Errorf("embedding provider unavailable: %w", err)
			}
			log.Info("using remote embedding provider", zap.String("model", cfg.Embedding.Model))
			v := score.NewEmbedderVectorizer(emb)
			srcVec, tgtVec = v, v
		}
	}

	res := score.Resources{SourceVectorizer: srcVec, TargetVectorizer: tgtVec}
	if active[score.NameTTab] {
		t, err := ttable.Load(ttable.Paths{
			SourceVocab: cfg.Resources.TTable.SourceVocab,
			TargetVocab: cfg.Resources.TTable.TargetVocab,
			Forward:     cfg.Resources.TTable.Forward,
			Inverse:     cfg.Resources.TTable.Inverse,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("loaded translation table",
			zap.Int("forward", t.ForwardSize()),
			zap.Int("inverse", t.InverseSize()),
		)
		res.Table = t
	}

	scorers, err := score.Build(cfg.Scorers, score.Options{ExpectedLengthRatio: cfg.LengthRatio}, res)
	if err != nil {
		return nil, nil, nil, err
	}
	builder, err := score.NewBuilder(scorers, cfg.Weights)
	if err != nil {
		return nil, nil, nil, err
	}
	return builder, srcVec, tgtVec, nil
}
