package models

import "time"

// Country is read-only reference data seeded at startup.
type Country struct {
	ID        uint   `gorm:"primary_key"`
	Name      string `gorm:"unique;not null"`
	Code      string `gorm:"unique;not null;size:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
