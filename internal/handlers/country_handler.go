package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Capryc0rne/CUBE/internal/dto"
	"github.com/Capryc0rne/CUBE/internal/helpers"
	"github.com/Capryc0rne/CUBE/internal/models"
)

func ListCountries(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var countries []models.Country
	if err := gormDB.Order("name ASC").Find(&countries).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la récupération des pays")
		return
	}

	details := make([]dto.CountryDetail, 0, len(countries))
	for _, country := range countries {
		details = append(details, dto.CountryDetail{
			ID:   country.ID,
			Name: country.Name,
			Code: country.Code,
		})
	}

	c.JSON(http.StatusOK, gin.H{"countries": details})
}
