package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Capryc0rne/CUBE/internal/dto"
	"github.com/Capryc0rne/CUBE/internal/helpers"
	"github.com/Capryc0rne/CUBE/internal/models"
)

// GetCategoriesStatsCount returns every category with the number of
// ressources referencing it. Unlike the other admin routes this one answers
// 401 on a failed role check; the asymmetry is part of the published
// contract, so the check lives here instead of the shared admin middleware.
func GetCategoriesStatsCount(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Unauthorized - Access restricted to admins")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var categories []models.Category
	if err := gormDB.Find(&categories).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la récupération des statistiques")
		return
	}

	stats := make([]dto.CategoryStats, 0, len(categories))
	for _, category := range categories {
		var count int64
		if err := gormDB.Model(&models.Ressource{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la récupération des statistiques")
			return
		}
		stats = append(stats, dto.CategoryStats{
			ID:              category.ID,
			Title:           category.Title,
			Color:           category.Color,
			Icon:            category.Icon,
			RessourcesCount: count,
			IsActive:        category.IsActive,
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": stats})
}
