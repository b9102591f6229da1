package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is hard-deleted on purpose: the API exposes no trash/restore
// surface, so there is no DeletedAt column here.
type Category struct {
	ID          uint   `gorm:"primary_key"`
	Title       string `gorm:"unique;not null"`
	Description string `gorm:"not null"`
	Icon        string `gorm:"not null"`
	Color       string `gorm:"not null"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedBy   uuid.UUID
	Creator     User `gorm:"foreignKey:CreatedBy"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
