// Package education provides CRUD operations for education entries.
package education

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrEducationNotFound is returned when an education entry is not found.
	ErrEducationNotFound = errors.New("education not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves an education entry by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Education, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var e models.Education
	result := db.First(&e, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, result.Error
	}

	return &e, nil
}

// GetAll retrieves all education entries, most recent start year first.
func GetAll(db *gorm.DB) ([]models.Education, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var entries []models.Education
	result := db.Order("start_year DESC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Save creates or updates an education entry. Year validation runs in
// the model's BeforeSave hook.
func Save(db *gorm.DB, e *models.Education) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Save(e).Error
}

// Delete deletes an education entry by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Education{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEducationNotFound
	}

	return nil
}
