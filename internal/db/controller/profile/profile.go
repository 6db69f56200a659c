// Package profile manages the single owner profile row.
package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrProfileNotFound is returned when no profile row exists.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the owner profile. The site keeps a single profile row;
// the first one is authoritative.
func Get(db *gorm.DB) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var p models.Profile
	result := db.Order("id").First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}

	return &p, nil
}

// GetOrCreate retrieves the owner profile, creating a placeholder row when
// none exists yet so the edit form always has an instance to bind to.
func GetOrCreate(db *gorm.DB) (*models.Profile, error) {
	p, err := Get(db)
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	p = &models.Profile{
		FullName: "Your Name",
		Headline: "Your Headline",
		Email:    "you@example.com",
		About:    "Write your bio here...",
	}

	if result := db.Create(p); result.Error != nil {
		return nil, result.Error
	}

	return p, nil
}

// Save persists changes to the profile row.
func Save(db *gorm.DB, p *models.Profile) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Save(p).Error
}
