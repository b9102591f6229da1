package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Capryc0rne/CUBE/internal/models"
)

// CategoryDetail is the API-facing shape of a category. The basic variant
// carries the public fields; the privileged variant adds the activation flag
// and creator attribution.
type CategoryDetail struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	IsActive    *bool      `json:"isActive,omitempty"`
	CreatedBy   *uuid.UUID `json:"createdBy,omitempty"`
}

type RessourceSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CategoryDetailWithRessources struct {
	CategoryDetail
	Ressources []RessourceSummary `json:"ressources"`
}

type CategoryStats struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
	RessourcesCount int64  `json:"ressourcesCount"`
	IsActive        bool   `json:"isActive"`
}

// NewCategoryDetail shapes a persisted category for the API. It is a pure
// function of its inputs and never touches the datastore.
func NewCategoryDetail(category models.Category, includePrivileged bool) CategoryDetail {
	detail := CategoryDetail{
		ID:          category.ID,
		Title:       category.Title,
		Description: category.Description,
		Icon:        category.Icon,
		Color:       category.Color,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
	if includePrivileged {
		isActive := category.IsActive
		createdBy := category.CreatedBy
		detail.IsActive = &isActive
		detail.CreatedBy = &createdBy
	}
	return detail
}

// NewCategoryDetailWithRessources nests the category's ressources under the
// basic detail shape. The caller performs the ressource lookup.
func NewCategoryDetailWithRessources(category models.Category, ressources []models.Ressource) CategoryDetailWithRessources {
	summaries := make([]RessourceSummary, 0, len(ressources))
	for _, ressource := range ressources {
		summaries = append(summaries, RessourceSummary{
			ID:          ressource.ID,
			Title:       ressource.Title,
			Description: ressource.Description,
			CreatedAt:   ressource.CreatedAt,
		})
	}
	return CategoryDetailWithRessources{
		CategoryDetail: NewCategoryDetail(category, false),
		Ressources:     summaries,
	}
}
