package models

import (
	"time"
)

// Project is a portfolio project.
// The slug is unique; the project controller generates it from the title
// when left blank.
type Project struct {
	ID uint64 `gorm:"primaryKey"`

	Title string `gorm:"size:150;not null"      form:"title"`
	Slug  string `gorm:"unique;size:160"        form:"slug"`

	ShortDescription string `gorm:"size:255;not null" form:"short_description"`
	LongDescription  string `gorm:"type:text"         form:"long_description"`

	// TechStack is comma-separated, e.g. "Go, Fiber, GORM, PostgreSQL".
	TechStack string `gorm:"size:255" form:"tech_stack"`

	GithubURL string `gorm:"size:255" form:"github_url"`
	LiveURL   string `gorm:"size:255" form:"live_url"`

	IsFeatured bool   `form:"is_featured"`
	Image      string `gorm:"size:255" form:"image"`

	CreatedAt time.Time
}
