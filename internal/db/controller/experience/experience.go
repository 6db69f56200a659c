// Package experience provides CRUD operations for experience entries.
package experience

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrExperienceNotFound is returned when an experience entry is not found.
	ErrExperienceNotFound = errors.New("experience not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves an experience entry by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Experience, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var e models.Experience
	result := db.First(&e, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, result.Error
	}

	return &e, nil
}

// GetAll retrieves all experience entries, most recent role first.
// Ongoing roles sort before finished ones.
func GetAll(db *gorm.DB) ([]models.Experience, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var entries []models.Experience
	result := db.Order("is_current DESC").Order("start_date DESC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Save creates or updates an experience entry. Validation runs in the
// model's BeforeSave hook.
func Save(db *gorm.DB, e *models.Experience) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Save(e).Error
}

// Delete deletes an experience entry by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Experience{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExperienceNotFound
	}

	return nil
}
