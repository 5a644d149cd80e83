package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bitext-tools/realign/internal/metrics"
	"github.com/bitext-tools/realign/internal/repository/corpus"
	"github.com/bitext-tools/realign/internal/transport/monitor"
	realignuc "github.com/bitext-tools/realign/internal/usecase/realign"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Re-align all document bundles of a dataset",
		RunE:  runRun,
	}
	cmd.Flags().String("found-dir", "", "dataset root holding <lang>/ltf and sentence_alignment")
	cmd.Flags().String("source-lang", "", "source language code")
	cmd.Flags().String("out-dir", "", "output directory for alignment files")
	cmd.Flags().Int("workers", 0, "worker count for the bundle pool")
	cmd.Flags().Bool("overwrite", false, "recompute bundles whose output already exists")
	addScorerFlags(cmd)
	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Corpus.FoundDir == "" {
		return fmt.Errorf("corpus.found_dir (or --found-dir) is required")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	metrics.Register()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	builder, srcVec, tgtVec, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return err
	}

	store := corpus.NewStore(cfg.Corpus.FoundDir, cfg.Corpus.TargetLang)
	if err := store.VerifyLayout(cfg.Corpus.SourceLang); err != nil {
		return err
	}
	writer := corpus.NewWriter(cfg.Corpus.OutDir)

	svc, err := realignuc.New(realignuc.Params{
		Source:           store,
		Writer:           writer,
		Builder:          builder,
		SourceVectorizer: srcVec,
		TargetVectorizer: tgtVec,
		Threshold:        cfg.Threshold,
		SkipExisting:     !cfg.Overwrite,
		Logger:           log,
	})
	if err != nil {
		return err
	}

	var monitorSrv *http.Server
	if cfg.Monitor.Port > 0 {
		monitorSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Monitor.Port),
			Handler:           monitor.NewHandler(svc, log),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("monitor endpoint up", zap.String("addr", monitorSrv.Addr))
			if err := monitorSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn("monitor endpoint failed", zap.Error(err))
			}
		}()
	}

	alnDir := filepath.Join(cfg.Corpus.FoundDir, "sentence_alignment")
	pairs, err := corpus.ReadPairs(alnDir, cfg.Corpus.TargetLang)
	if err != nil {
		return err
	}
	active := make([]string, 0, len(builder.Scorers()))
	for _, s := range builder.Scorers() {
		active = append(active, s.Name())
	}
	log.Info("starting run",
		zap.Int("bundles", len(pairs)),
		zap.Strings("scorers", active),
		zap.Float64("threshold", cfg.Threshold),
		zap.Int("workers", cfg.Workers),
		zap.String("out_dir", cfg.Corpus.OutDir),
	)

	summary := svc.Run(ctx, pairs, cfg.Workers)

	if monitorSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = monitorSrv.Shutdown(shutdownCtx)
	}

	for _, f := range summary.Failures {
		log.Warn("bundle skipped",
			zap.String("source_id", f.Pair.SourceID),
			zap.String("target_id", f.Pair.TargetID),
			zap.String("reason", f.Reason),
		)
	}
	log.Info("run finished",
		zap.Int("total", summary.Total),
		zap.Int("aligned", summary.Aligned),
		zap.Int("empty", summary.Empty),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)

	if ctx.Err() != nil {
		return fmt.Errorf("run interrupted: %w", ctx.Err())
	}
	return nil
}
