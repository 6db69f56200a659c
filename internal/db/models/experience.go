package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrCurrentWithEndDate is returned when an ongoing experience carries an end date.
	ErrCurrentWithEndDate = errors.New("if the role is current, end date must be empty")

	// ErrEndBeforeStart is returned when the end date is earlier than the start date.
	ErrEndBeforeStart = errors.New("end date cannot be earlier than start date")
)

// Experience is a work/leadership experience item.
// Ongoing roles set IsCurrent=true and leave EndDate empty.
type Experience struct {
	ID uint64 `gorm:"primaryKey"`

	Role         string `gorm:"size:150;not null" form:"role"`
	Organization string `gorm:"size:150;not null" form:"organization"`
	Location     string `gorm:"size:150"          form:"location"`

	StartDate time.Time  `gorm:"not null" form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date"`
	IsCurrent bool       `form:"is_current"`

	// Description holds key responsibilities, impact, tools used.
	Description string `gorm:"type:text" form:"description"`

	CreatedAt time.Time
}

// Validate enforces the date rules before the row is written.
func (e *Experience) Validate() error {
	if e.IsCurrent && e.EndDate != nil {
		return ErrCurrentWithEndDate
	}

	if !e.IsCurrent && e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return ErrEndBeforeStart
	}

	return nil
}

// BeforeSave normalizes the row: a current role never stores an end date.
func (e *Experience) BeforeSave(_ *gorm.DB) error {
	if e.IsCurrent {
		e.EndDate = nil
	}

	return e.Validate()
}
