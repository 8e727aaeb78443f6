package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatuteSection is one numbered section of an act in the statute corpus.
type StatuteSection struct {
	Id            uuid.UUID
	Act           string
	SectionNumber string
	FullText      string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}
