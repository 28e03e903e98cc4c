package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserSummary is the public slice of a user embedded in API responses.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

type RoomResponse struct {
	ID           uuid.UUID     `json:"id"`
	Host         UserSummary   `json:"host"`
	Topic        string        `json:"topic"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Participants []UserSummary `json:"participants"`
	CreatedAt    time.Time     `json:"created"`
	UpdatedAt    time.Time     `json:"updated"`
}
