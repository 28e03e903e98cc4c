package database

import (
	"github.com/example/studybud/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateRoom(room *models.Room) error {
	return d.db.Create(room).Error
}

func (d *Database) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	err := d.db.
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// SearchRooms returns rooms where q is a case-insensitive substring of the
// topic name, the room name, or the description. An empty q matches all.
func (d *Database) SearchRooms(q string) ([]models.Room, error) {
	var rooms []models.Room

	p := likePattern(q)
	err := d.db.
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Where("LOWER(topics.name) LIKE ? OR LOWER(rooms.name) LIKE ? OR LOWER(rooms.description) LIKE ?", p, p, p).
		Order("rooms.updated_at DESC, rooms.created_at DESC").
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (d *Database) GetUserRooms(userID string) ([]models.Room, error) {
	var rooms []models.Room

	err := d.db.
		Where("host_id = ?", userID).
		Order("updated_at DESC, created_at DESC").
		Preload("Host").
		Preload("Topic").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (d *Database) UpdateRoom(room *models.Room) error {
	return d.db.Save(room).Error
}

// DeleteRoom removes the room, its messages and its participant rows in one
// transaction.
func (d *Database) DeleteRoom(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Message{}, "room_id = ?", id).Error; err != nil {
			return err
		}

		var room models.Room
		if err := tx.First(&room, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&room).Association("Participants").Clear(); err != nil {
			return err
		}

		return tx.Delete(&room).Error
	})
}

// AddParticipant records that a user has posted in a room. Appending an
// existing participant is a no-op on the join table.
func (d *Database) AddParticipant(roomID, userID string) error {
	var room models.Room
	var user models.User

	if err := d.db.First(&room, "id = ?", roomID).Error; err != nil {
		return err
	}

	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	return d.db.Model(&room).Association("Participants").Append(&user)
}

func (d *Database) CountRooms() (int64, error) {
	var count int64
	err := d.db.Model(&models.Room{}).Count(&count).Error
	return count, err
}

// CountRoomsByTopic counts rooms whose topic name contains q.
func (d *Database) CountRoomsByTopic(q string) (int64, error) {
	var count int64
	err := d.db.Model(&models.Room{}).
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Where("LOWER(topics.name) LIKE ?", likePattern(q)).
		Count(&count).Error
	return count, err
}
