package embedding

import "context"

// EmbeddingProvider turns text into a dense vector for similarity search.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
