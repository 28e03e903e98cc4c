package database

import (
	"github.com/example/studybud/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

func (d *Database) GetMessage(id string) (*models.Message, error) {
	var message models.Message
	err := d.db.
		Preload("User").
		Preload("Room").
		First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (d *Database) DeleteMessage(id string) error {
	return d.db.Delete(&models.Message{}, "id = ?", id).Error
}

// GetRoomMessages returns a room's messages oldest first.
func (d *Database) GetRoomMessages(roomID string) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Preload("User").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (d *Database) GetUserMessages(userID string) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// SearchMessagesByRoomTopic feeds the home page: messages whose room's topic
// name contains q, newest first.
func (d *Database) SearchMessagesByRoomTopic(q string) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Joins("JOIN rooms ON rooms.id = messages.room_id").
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Where("LOWER(topics.name) LIKE ?", likePattern(q)).
		Order("messages.created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// SearchMessagesByRoomName feeds the activity page: messages whose room name
// contains q, newest first.
func (d *Database) SearchMessagesByRoomName(q string) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Joins("JOIN rooms ON rooms.id = messages.room_id").
		Where("LOWER(rooms.name) LIKE ?", likePattern(q)).
		Order("messages.created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
