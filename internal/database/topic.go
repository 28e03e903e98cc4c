package database

import (
	"errors"
	"strings"

	"github.com/example/studybud/internal/models"
	"gorm.io/gorm"
)

// likePattern builds a case-insensitive substring predicate argument.
// LOWER + LIKE behaves the same on Postgres and the SQLite test driver.
func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}

// GetOrCreateTopic looks a topic up by exact name and creates it if absent.
// The bool reports whether a new topic was created.
func (d *Database) GetOrCreateTopic(name string) (*models.Topic, bool, error) {
	var topic models.Topic

	err := d.db.Where("name = ?", name).First(&topic).Error
	if err == nil {
		return &topic, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	topic = models.Topic{Name: name}
	if err := d.db.Create(&topic).Error; err != nil {
		return nil, false, err
	}

	return &topic, true, nil
}

// ListTopics returns topics in name order, capped at limit when limit > 0.
func (d *Database) ListTopics(limit int) ([]models.Topic, error) {
	var topics []models.Topic

	query := d.db.Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// SearchTopics returns topics whose name contains q, case-insensitively.
func (d *Database) SearchTopics(q string) ([]models.Topic, error) {
	var topics []models.Topic

	err := d.db.
		Where("LOWER(name) LIKE ?", likePattern(q)).
		Order("name ASC").
		Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}
