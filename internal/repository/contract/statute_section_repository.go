package contract

import (
	"context"

	"legal-advisor-be/internal/entity"
)

// ScoredStatuteSection pairs a section with its cosine similarity to a query
// vector. Similarity is 1 - cosine distance, so higher means more relevant.
type ScoredStatuteSection struct {
	Section    *entity.StatuteSection
	Similarity float64
}

type StatuteSectionRepository interface {
	CreateBulk(ctx context.Context, sections []*entity.StatuteSection, embeddings [][]float32) error
	Count(ctx context.Context) (int64, error)
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredStatuteSection, error)
}
