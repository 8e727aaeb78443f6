package implementation

import (
	"context"

	"legal-advisor-be/internal/entity"
	"legal-advisor-be/internal/mapper"
	"legal-advisor-be/internal/model"
	"legal-advisor-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type StatuteSectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StatuteSectionMapper
}

func NewStatuteSectionRepository(db *gorm.DB) contract.StatuteSectionRepository {
	return &StatuteSectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewStatuteSectionMapper(),
	}
}

func (r *StatuteSectionRepositoryImpl) CreateBulk(ctx context.Context, sections []*entity.StatuteSection, embeddings [][]float32) error {
	models := make([]*model.StatuteSection, len(sections))
	for i, s := range sections {
		models[i] = r.mapper.ToModel(s, embeddings[i])
	}

	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return err
	}

	// Write generated IDs back to the entities
	for i, m := range models {
		*sections[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *StatuteSectionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StatuteSection{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore ranks sections by cosine similarity against the
// query vector. pgvector's <=> operator is cosine distance, so the exposed
// score is 1 - distance: 1.0 is an exact match, 0.0 is orthogonal.
func (r *StatuteSectionRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredStatuteSection, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.StatuteSection
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("statute_sections").
		Select("statute_sections.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("statute_sections.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredStatuteSection, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredStatuteSection{
			Section:    r.mapper.ToEntity(&res.StatuteSection),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
