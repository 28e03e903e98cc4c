package database

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/studybud/internal/models"
)

// setupTestDB opens an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Topic{}, &models.Room{}, &models.Message{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewDatabase(db)
}

func createTestUser(t *testing.T, d *Database, username string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now(),
	}
	if err := d.SaveUser(user); err != nil {
		t.Fatalf("failed to create test user %q: %v", username, err)
	}
	return user
}

func createTestRoom(t *testing.T, d *Database, host *models.User, topicName, name, description string) *models.Room {
	t.Helper()

	topic, _, err := d.GetOrCreateTopic(topicName)
	if err != nil {
		t.Fatalf("failed to resolve topic %q: %v", topicName, err)
	}

	room := &models.Room{
		HostID:      host.ID,
		TopicID:     topic.ID,
		Name:        name,
		Description: description,
	}
	if err := d.CreateRoom(room); err != nil {
		t.Fatalf("failed to create test room %q: %v", name, err)
	}
	return room
}

func createTestMessage(t *testing.T, d *Database, room *models.Room, author *models.User, body string, at time.Time) *models.Message {
	t.Helper()

	message := &models.Message{
		RoomID:    room.ID,
		UserID:    author.ID,
		Body:      body,
		CreatedAt: at,
	}
	if err := d.SaveMessage(message); err != nil {
		t.Fatalf("failed to create test message %q: %v", body, err)
	}
	return message
}
