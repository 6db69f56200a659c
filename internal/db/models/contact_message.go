package models

import (
	"time"
)

// ContactMessage is a contact form submission, stored so the owner can
// review it in the dashboard.
type ContactMessage struct {
	ID uint64 `gorm:"primaryKey"`

	Name    string `gorm:"size:150;not null" form:"name"`
	Email   string `gorm:"size:255;not null" form:"email"`
	Subject string `gorm:"size:200"          form:"subject"`
	Message string `gorm:"type:text;not null" form:"message"`

	IsRead    bool
	CreatedAt time.Time
}
