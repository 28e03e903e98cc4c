package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HostID      uuid.UUID `gorm:"type:uuid;not null"`
	TopicID     uuid.UUID `gorm:"type:uuid;not null"`
	Name        string    `gorm:"not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Host         User      `gorm:"foreignKey:HostID"`
	Topic        Topic     `gorm:"foreignKey:TopicID"`
	Participants []User    `gorm:"many2many:room_participants"`
	Messages     []Message `gorm:"foreignKey:RoomID"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
