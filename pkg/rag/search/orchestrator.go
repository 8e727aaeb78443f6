package search

import (
	"context"
	"fmt"
	"log"

	"legal-advisor-be/internal/repository/contract"
	"legal-advisor-be/pkg/embedding"
	"legal-advisor-be/pkg/store"
)

// SectionSearcher is the retrieval contract the orchestrator consumes.
type SectionSearcher interface {
	FindRelevantSections(ctx context.Context, query string, k int) ([]store.RetrievedSection, error)
}

// Orchestrator embeds the query and ranks statute sections by cosine
// similarity against the corpus. No caching: every call recomputes.
type Orchestrator struct {
	embedder embedding.EmbeddingProvider
	sections contract.StatuteSectionRepository
	logger   *log.Logger
}

var _ SectionSearcher = &Orchestrator{}

func NewOrchestrator(embedder embedding.EmbeddingProvider, sections contract.StatuteSectionRepository, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		embedder: embedder,
		sections: sections,
		logger:   logger,
	}
}

// FindRelevantSections returns up to k sections, best first. Embedding or
// index failures propagate; the caller decides how to surface them.
func (o *Orchestrator) FindRelevantSections(ctx context.Context, query string, k int) ([]store.RetrievedSection, error) {
	if k <= 0 {
		k = 5
	}

	vector, err := o.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := o.sections.SearchSimilarWithScore(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	results := make([]store.RetrievedSection, 0, len(scored))
	for _, s := range scored {
		results = append(results, store.RetrievedSection{
			Act:           s.Section.Act,
			SectionNumber: s.Section.SectionNumber,
			Text:          s.Section.FullText,
			Score:         s.Similarity,
		})
	}

	o.logger.Printf("[SEARCH] %d sections retrieved for query (k=%d)", len(results), k)
	return results, nil
}
