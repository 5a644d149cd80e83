package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitext-tools/realign/internal/domain"
	"github.com/bitext-tools/realign/internal/usecase/feature"
	"github.com/bitext-tools/realign/internal/usecase/score"
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score tab-separated sentence pairs from stdin or a file",
		Long: "Reads source<TAB>target tokenized sentence pairs, one per line,\n" +
			"and writes score<TAB>source<TAB>target using the configured scorer set.",
		RunE: runScore,
	}
	cmd.Flags().StringP("input", "i", "", "input file (default: stdin)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	addScorerFlags(cmd)
	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	builder, srcVec, tgtVec, err := buildEngine(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	in := io.Reader(cmd.InOrStdin())
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	out := io.Writer(cmd.OutOrStdout())
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	ctx := cmd.Context()
	w := bufio.NewWriter(out)
	defer w.Flush()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		src, tgt, ok := strings.Cut(text, "\t")
		if !ok {
			return fmt.Errorf("line %d: expected source<TAB>target", line)
		}
		srcIn, err := pairInput(ctx, src, srcVec)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		tgtIn, err := pairInput(ctx, tgt, tgtVec)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintf(w, "%.4f\t%s\t%s\n", builder.Pair(srcIn, tgtIn), src, tgt)
	}
	return sc.Err()
}

// pairInput builds a scorer input from raw tokenized text.
func pairInput(ctx context.Context, text string, vec score.Vectorizer) (score.Input, error) {
	sent := domain.Sentence{Text: text, Tokens: strings.Fields(text)}
	in := score.Input{Sentence: sent, Features: feature.Extract(sent)}
	if vec != nil {
		v, err := vec.SentenceVector(ctx, sent)
		if err != nil {
			return score.Input{}, err
		}
		in.Vector = v
	}
	return in, nil
}
