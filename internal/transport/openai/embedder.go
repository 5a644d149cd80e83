// Package openai provides a sentence embedder backed by an
// OpenAI-compatible embeddings API, usable as the mcss vector source
// when no local word vector files are supplied.
package openai

import (
	"context"
	"errors"
	"fmt"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bitext-tools/realign/internal/domain"
	"github.com/bitext-tools/realign/internal/metrics"
)

// Embedder implements domain.Embedder over a remote provider.
// Multilingual API embeddings place both languages in one space, which
// is exactly what the mcss scorer needs. Responses are memoized per
// sentence; repeated segments across bundles cost one request.
type Embedder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int

	mu    sync.RWMutex
	cache map[string][]float32
}

// Config holds the embedding provider settings.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
}

// NewEmbedder creates an OpenAI-compatible embedding provider.
func NewEmbedder(cfg Config) *Embedder {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Embedder{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      openai.EmbeddingModel(cfg.Model),
		dimensions: cfg.Dimensions,
		cache:      make(map[string][]float32),
	}
}

// Embed implements domain.Embedder.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.mu.RLock()
	vec, ok := e.cache[text]
	e.mu.RUnlock()
	if ok {
		return vec, nil
	}

	req := openai.EmbeddingRequest{
		Input:          []string{text},
		Model:          e.model,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	}
	if e.dimensions > 0 {
		req.Dimensions = e.dimensions
	}

	resp, err := e.client.CreateEmbeddings(ctx, req)
	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(string(e.model), "error").Inc()
		return nil, parseAPIError(err)
	}
	if len(resp.Data) == 0 {
		metrics.EmbeddingRequestsTotal.WithLabelValues(string(e.model), "error").Inc()
		return nil, fmt.Errorf("empty embedding response: %w", domain.ErrEmbeddingProviderError)
	}
	metrics.EmbeddingRequestsTotal.WithLabelValues(string(e.model), "success").Inc()

	vec = resp.Data[0].Embedding
	e.mu.Lock()
	e.cache[text] = vec
	e.mu.Unlock()
	return vec, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (e *Embedder) HealthCheck(ctx context.Context) error {
	if _, err := e.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAPIError extracts a readable error from the API response. All
// errors wrap domain.ErrEmbeddingProviderError so the pipeline treats
// them as bundle-processing failures.
func parseAPIError(err error) error {
	wrap := domain.ErrEmbeddingProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("embedding API error %d: %s: %w", reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("embedding API error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}
	return fmt.Errorf("embedding request failed: %w", wrap)
}
