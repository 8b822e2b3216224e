// Package entity defines the domain entities for the events feature.
package entity

import "time"

// Registration is one hackathon participant sign-up. Rows are created once on
// submission and only read afterwards; there is no update or delete path.
type Registration struct {
	ID uint `gorm:"primaryKey"`

	// UserID links the registration to an account when the participant was
	// logged in. Anonymous registrations leave it null.
	UserID *uint

	Name    string `gorm:"size:255;not null"`
	Email   string `gorm:"size:255;not null"`
	Mobile  string `gorm:"size:32;not null"`
	College string `gorm:"size:255;not null"`
	Branch  string `gorm:"size:255;not null"`
	Year    string `gorm:"size:32;not null"`

	TeamName    string `gorm:"size:255"`
	TeamMembers string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
