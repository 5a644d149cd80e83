package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bitext-tools/realign/internal/config"
	"github.com/bitext-tools/realign/internal/logger"
	"github.com/bitext-tools/realign/internal/usecase/score"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "realign",
		Short:         "Re-align sentence pairs in noisy bilingual document bundles",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringP("config", "c", "", "path to YAML configuration file")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().Bool("log-json", false, "emit JSON logs")

	root.AddCommand(newRunCommand())
	root.AddCommand(newScoreCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// loadConfig builds the effective configuration: the YAML file when
// given, then flag overrides, then defaults and validation.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("found-dir") {
		cfg.Corpus.FoundDir, _ = flags.GetString("found-dir")
	}
	if flags.Changed("source-lang") {
		cfg.Corpus.SourceLang, _ = flags.GetString("source-lang")
	}
	if flags.Changed("out-dir") {
		cfg.Corpus.OutDir, _ = flags.GetString("out-dir")
	}
	if flags.Changed("scorers") {
		cfg.Scorers, _ = flags.GetStringSlice("scorers")
	}
	if flags.Changed("threshold") {
		cfg.Threshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("overwrite") {
		cfg.Overwrite, _ = flags.GetBool("overwrite")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.Logging.JSON, _ = flags.GetBool("log-json")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Logging.Level, cfg.Logging.JSON)
}

func addScorerFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("scorers", nil,
		fmt.Sprintf("comma-separated scorer set (known: %v)", score.Names()))
	cmd.Flags().Float64("threshold", 0, "minimum combined score to keep a pair")
}
