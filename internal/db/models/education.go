package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrEndYearBeforeStartYear is returned when the end year precedes the start year.
var ErrEndYearBeforeStartYear = errors.New("end year cannot be earlier than start year")

// Education is an education history entry. EndYear may be nil for "Present".
type Education struct {
	ID uint64 `gorm:"primaryKey"`

	Institution  string `gorm:"size:150;not null" form:"institution"`
	Degree       string `gorm:"size:150;not null" form:"degree"`
	FieldOfStudy string `gorm:"size:150"          form:"field_of_study"`

	StartYear uint  `gorm:"not null" form:"start_year"`
	EndYear   *uint `form:"end_year"`

	ResultOrCGPA string `gorm:"column:result_or_cgpa;size:50" form:"result_or_cgpa"`
	Description  string `gorm:"type:text"                     form:"description"`
}

// Validate enforces the year ordering rule.
func (e *Education) Validate() error {
	if e.EndYear != nil && *e.EndYear < e.StartYear {
		return ErrEndYearBeforeStartYear
	}

	return nil
}

// BeforeSave rejects invalid year ranges.
func (e *Education) BeforeSave(_ *gorm.DB) error {
	return e.Validate()
}
