// Package project provides CRUD operations for portfolio projects.
package project

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTitleEmpty is returned when attempting to create a project without a title.
	ErrTitleEmpty = errors.New("project title cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a project by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var p models.Project
	result := db.First(&p, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, result.Error
	}

	return &p, nil
}

// GetBySlug retrieves a project by its slug.
func GetBySlug(db *gorm.DB, slug string) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var p models.Project
	result := db.Where("slug = ?", slug).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, result.Error
	}

	return &p, nil
}

// GetAll retrieves all projects, newest first.
func GetAll(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var projects []models.Project
	result := db.Order("created_at DESC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

// GetFeatured retrieves the featured projects, newest first.
func GetFeatured(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var projects []models.Project
	result := db.Where("is_featured = ?", true).Order("created_at DESC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

// Save creates or updates a project, generating a unique slug from the
// title when none is set.
func Save(db *gorm.DB, p *models.Project) error {
	if db == nil {
		return ErrDBNil
	}
	if p.Title == "" {
		return ErrTitleEmpty
	}

	if p.Slug == "" {
		slug, err := uniqueSlug(db, p.Title, p.ID)
		if err != nil {
			return err
		}

		p.Slug = slug
	}

	return db.Save(p).Error
}

// Delete deletes a project by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	return nil
}
