package mapper

import (
	"time"

	"legal-advisor-be/internal/entity"
	"legal-advisor-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type StatuteSectionMapper struct{}

func NewStatuteSectionMapper() *StatuteSectionMapper {
	return &StatuteSectionMapper{}
}

func (m *StatuteSectionMapper) ToEntity(s *model.StatuteSection) *entity.StatuteSection {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.StatuteSection{
		Id:            s.Id,
		Act:           s.Act,
		SectionNumber: s.SectionNumber,
		FullText:      s.FullText,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *StatuteSectionMapper) ToModel(e *entity.StatuteSection, embedding []float32) *model.StatuteSection {
	if e == nil {
		return nil
	}

	s := &model.StatuteSection{
		Id:            e.Id,
		Act:           e.Act,
		SectionNumber: e.SectionNumber,
		FullText:      e.FullText,
		Embedding:     pgvector.NewVector(embedding),
		CreatedAt:     e.CreatedAt,
	}
	if e.UpdatedAt != nil {
		s.UpdatedAt = *e.UpdatedAt
	}
	if e.DeletedAt != nil {
		s.DeletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	}
	return s
}
