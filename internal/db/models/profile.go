package models

import (
	"time"
)

// Profile is the single owner profile for the portfolio site.
// Keep only ONE Profile row in the DB; the first one is used by the views.
type Profile struct {
	ID uint64 `gorm:"primaryKey"`

	FullName string `gorm:"size:150;not null" form:"full_name"`
	// Headline is a short title, e.g. "CSE Student & Aspiring SQA Engineer".
	Headline string `gorm:"size:200;not null" form:"headline"`
	Location string `gorm:"size:150"          form:"location"`
	Email    string `gorm:"size:255;not null" form:"email"`
	Phone    string `gorm:"size:30"           form:"phone"`

	// Social links.
	LinkedinURL  string `gorm:"size:255" form:"linkedin_url"`
	GithubURL    string `gorm:"size:255" form:"github_url"`
	FacebookURL  string `gorm:"size:255" form:"facebook_url"`
	InstagramURL string `gorm:"size:255" form:"instagram_url"`

	// Portfolio assets, stored as media-relative paths (e.g. "cv/resume.pdf").
	CVFile       string `gorm:"column:cv_file;size:255" form:"cv_file"`
	ProfileImage string `gorm:"size:255"                form:"profile_image"`

	// About is a short bio / summary.
	About  string `gorm:"type:text" form:"about"`
	Skills string `gorm:"size:500"  form:"skills"`

	UpdatedAt time.Time
}

// HasCV reports whether a CV file reference is set so templates can decide
// to show the download link.
func (p *Profile) HasCV() bool {
	return p.CVFile != ""
}
