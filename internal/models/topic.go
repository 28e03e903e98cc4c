package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is created on demand when a room names it, never updated.
type Topic struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex;not null"`
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
