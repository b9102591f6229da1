package models

import (
	"time"

	"github.com/google/uuid"
)

// Ressource keeps the original French spelling used across the API.
// No foreign key constraint on CategoryID: deleting a category leaves its
// ressources in place with a dangling reference.
type Ressource struct {
	ID          uint   `gorm:"primary_key"`
	Title       string `gorm:"not null"`
	Description string
	CategoryID  uint `gorm:"index"`
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
