// Package message provides operations for contact form messages.
package message

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new contact message.
func Create(db *gorm.DB, m *models.ContactMessage) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(m).Error
}

// GetByID retrieves a message by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.ContactMessage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var m models.ContactMessage
	result := db.First(&m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, result.Error
	}

	return &m, nil
}

// GetAll retrieves all messages, newest first.
func GetAll(db *gorm.DB) ([]models.ContactMessage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var messages []models.ContactMessage
	result := db.Order("created_at DESC").Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}

// CountUnread returns the number of unread messages.
func CountUnread(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// MarkRead flags a message as read.
func MarkRead(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

// Delete deletes a message by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
