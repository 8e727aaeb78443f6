package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type StatuteSection struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Act           string          `gorm:"type:text;not null;index"`
	SectionNumber string          `gorm:"type:varchar(64);not null"`
	FullText      string          `gorm:"type:text;not null"`
	Embedding     pgvector.Vector `gorm:"type:vector(768)"` // jina v2-base-en / nomic-embed-text are 768-dim
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"`
}

func (StatuteSection) TableName() string {
	return "statute_sections"
}
