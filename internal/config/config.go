// Package config loads and validates the run configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bitext-tools/realign/internal/domain"
	"github.com/bitext-tools/realign/internal/usecase/score"
)

// Config holds one realignment run's configuration.
type Config struct {
	Corpus    CorpusConfig `yaml:"corpus"`
	Scorers   []string     `yaml:"scorers"`
	Threshold float64      `yaml:"threshold"`
	// LengthRatio is the expected source/target length ratio for the
	// length scorers; 0 means 1.0 (unknown language pair).
	LengthRatio float64            `yaml:"length_ratio"`
	Weights     map[string]float64 `yaml:"weights"`
	Workers     int                `yaml:"workers"`
	Overwrite   bool               `yaml:"overwrite"`
	Resources   ResourcesConfig    `yaml:"resources"`
	Embedding   EmbeddingConfig    `yaml:"embedding_api"`
	Monitor     MonitorConfig      `yaml:"monitor"`
	Logging     LoggingConfig      `yaml:"logging"`
}

// CorpusConfig locates the dataset.
type CorpusConfig struct {
	FoundDir   string `yaml:"found_dir"`
	SourceLang string `yaml:"source_lang"`
	TargetLang string `yaml:"target_lang"` // default: eng
	OutDir     string `yaml:"out_dir"`     // default: sentence_alignment-re under found_dir
}

// ResourcesConfig names the scorer resource files.
type ResourcesConfig struct {
	SourceVectors string       `yaml:"source_vectors"`
	TargetVectors string       `yaml:"target_vectors"`
	MaxVocab      int          `yaml:"max_vocab"`
	TTable        TTableConfig `yaml:"ttable"`
}

// TTableConfig names the translation-table files.
type TTableConfig struct {
	SourceVocab string `yaml:"source_vocab"`
	TargetVocab string `yaml:"target_vocab"`
	Forward     string `yaml:"forward"`
	Inverse     string `yaml:"inverse"`
}

// EmbeddingConfig holds the optional remote embedding provider used as
// the mcss vector source when no local vector files are supplied.
type EmbeddingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// MonitorConfig holds the optional HTTP monitor endpoint settings.
type MonitorConfig struct {
	Port int `yaml:"port"` // 0 disables the endpoint
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// Load reads a YAML configuration file, expands ${VAR} references,
// applies defaults, and validates.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if len(c.Scorers) == 0 {
		c.Scorers = []string{score.NameCharLen, score.NameTokLen, score.NameCopyPattern, score.NameAscii}
	}
	if c.LengthRatio <= 0 {
		c.LengthRatio = 1.0
	}
	if c.Workers <= 0 {
		c.Workers = 2
	}
	if c.Corpus.TargetLang == "" {
		c.Corpus.TargetLang = "eng"
	}
	if c.Corpus.OutDir == "" && c.Corpus.FoundDir != "" {
		c.Corpus.OutDir = filepath.Join(c.Corpus.FoundDir, "sentence_alignment-re")
	}
	if c.Resources.MaxVocab <= 0 {
		c.Resources.MaxVocab = 1_000_000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness. Scorer-resource
// availability is re-checked at registry build time; this catches shape
// errors before any resource is loaded.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v not in [0,1]", domain.ErrInvalidThreshold, c.Threshold)
	}
	seen := map[string]bool{}
	for _, name := range c.Scorers {
		if !score.Known(name) {
			return fmt.Errorf("%w: %q (known: %s)", domain.ErrUnknownScorer, name, strings.Join(score.Names(), ", "))
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateScorer, name)
		}
		seen[name] = true
	}
	for name, w := range c.Weights {
		if !seen[name] {
			return fmt.Errorf("%w: weight for inactive scorer %q", domain.ErrInvalidWeight, name)
		}
		if w <= 0 {
			return fmt.Errorf("%w: %q has weight %v", domain.ErrInvalidWeight, name, w)
		}
	}
	if seen[score.NameMCSS] {
		local := c.Resources.SourceVectors != "" && c.Resources.TargetVectors != ""
		if !local && !c.Embedding.Enabled {
			return fmt.Errorf("%w: mcss needs source_vectors and target_vectors, or embedding_api.enabled",
				domain.ErrMissingResource)
		}
	}
	if seen[score.NameTTab] {
		t := c.Resources.TTable
		if t.SourceVocab == "" || t.TargetVocab == "" || t.Forward == "" {
			return fmt.Errorf("%w: ttab needs ttable source_vocab, target_vocab and forward", domain.ErrMissingResource)
		}
	}
	if c.Embedding.Enabled && c.Embedding.Model == "" {
		return fmt.Errorf("embedding_api.model is required when embedding_api is enabled")
	}
	if c.Monitor.Port < 0 || c.Monitor.Port > 65535 {
		return fmt.Errorf("monitor.port must be between 0 and 65535, got %d", c.Monitor.Port)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
