package domain

import "context"

// Embedder turns a sentence into a vector in the shared cross-lingual
// space. Implemented by remote embedding providers.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
