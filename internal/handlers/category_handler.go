package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Capryc0rne/CUBE/internal/dto"
	"github.com/Capryc0rne/CUBE/internal/helpers"
	"github.com/Capryc0rne/CUBE/internal/models"
	"github.com/Capryc0rne/CUBE/internal/validation"
)

// Category payloads are bound as loose maps: edit has partial-update
// semantics, so "field absent" and "field present but invalid" must be
// distinguished per field, and isActive additionally accepts boolean-like
// strings. Each field is validated into a {field: [messages]} map.

func GetAllCategories(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var categories []models.Category
	if err := gormDB.Find(&categories).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la récupération des catégories")
		return
	}

	details := make([]dto.CategoryDetail, 0, len(categories))
	for _, category := range categories {
		details = append(details, dto.NewCategoryDetail(category, true))
	}

	c.JSON(http.StatusOK, gin.H{"categories": details})
}

func GetActiveCategories(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var categories []models.Category
	if err := gormDB.Where("is_active = ?", true).Find(&categories).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la récupération des catégories")
		return
	}

	details := make([]dto.CategoryDetail, 0, len(categories))
	for _, category := range categories {
		details = append(details, dto.NewCategoryDetail(category, false))
	}

	c.JSON(http.StatusOK, gin.H{"categories": details})
}

func GetCategory(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoryID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Catégorie non trouvée")
		return
	}

	var category models.Category
	if err := gormDB.First(&category, categoryID).Error; err != nil || !category.IsActive {
		helpers.RespondWithError(c, http.StatusNotFound, "Catégorie non trouvée")
		return
	}

	var ressources []models.Ressource
	if err := gormDB.Where("category_id = ?", category.ID).Find(&ressources).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la récupération des ressources")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": dto.NewCategoryDetailWithRessources(category, ressources)})
}

func CreateCategory(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	errs := validation.Errors{}

	title := requireString(body, "title", errs)
	description := requireString(body, "description", errs)
	icon := requireString(body, "icon", errs)
	color := requireString(body, "color", errs)
	if color != "" && !validation.IsHexColor(color) {
		errs.Add("color", validation.FormatMessage("color"))
	}

	isActive := true
	if raw, present := body["isActive"]; present {
		parsed, err := helpers.ParseBoolean(raw)
		if err != nil {
			errs.Add("isActive", validation.BooleanMessage("isActive"))
		} else {
			isActive = parsed
		}
	}

	if title != "" {
		var count int64
		gormDB.Model(&models.Category{}).Where("title = ?", title).Count(&count)
		if count > 0 {
			errs.Add("title", validation.TakenMessage("title"))
		}
	}

	if errs.Any() {
		helpers.RespondWithValidationErrors(c, errs)
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Authentification requise")
		return
	}
	creatorID, err := uuid.Parse(userID.(string))
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Authentification requise")
		return
	}

	category := models.Category{
		Title:       title,
		Description: description,
		Icon:        icon,
		Color:       validation.NormalizeHexColor(color),
		IsActive:    isActive,
		CreatedBy:   creatorID,
	}

	if err := gormDB.Create(&category).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la création de la catégorie")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": dto.NewCategoryDetail(category, true)})
}

func EditCategory(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoryID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Catégorie non trouvée")
		return
	}

	var category models.Category
	if err := gormDB.First(&category, categoryID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Catégorie non trouvée")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	errs := validation.Errors{}

	title, hasTitle := optionalString(body, "title", errs)
	description, hasDescription := optionalString(body, "description", errs)
	icon, hasIcon := optionalString(body, "icon", errs)
	color, hasColor := optionalString(body, "color", errs)
	if hasColor && !validation.IsHexColor(color) {
		errs.Add("color", validation.FormatMessage("color"))
	}

	isActive := category.IsActive
	if raw, present := body["isActive"]; present {
		parsed, err := helpers.ParseBoolean(raw)
		if err != nil {
			errs.Add("isActive", validation.BooleanMessage("isActive"))
		} else {
			isActive = parsed
		}
	}

	// A category keeping its own title must not conflict with itself.
	if hasTitle {
		var count int64
		gormDB.Model(&models.Category{}).Where("title = ? AND id <> ?", title, category.ID).Count(&count)
		if count > 0 {
			errs.Add("title", validation.TakenMessage("title"))
		}
	}

	if errs.Any() {
		helpers.RespondWithValidationErrors(c, errs)
		return
	}

	if hasTitle {
		category.Title = title
	}
	if hasDescription {
		category.Description = description
	}
	if hasIcon {
		category.Icon = icon
	}
	if hasColor {
		category.Color = validation.NormalizeHexColor(color)
	}
	category.IsActive = isActive

	if err := gormDB.Save(&category).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la modification de la catégorie")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": dto.NewCategoryDetail(category, true)})
}

func DeleteCategory(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoryID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Catégorie non trouvée")
		return
	}

	var category models.Category
	if err := gormDB.First(&category, categoryID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Catégorie non trouvée")
		return
	}

	// Unexpected datastore failures are logged and converted, never leaked.
	if err := gormDB.Delete(&category).Error; err != nil {
		logrus.WithError(err).WithField("category_id", category.ID).Error("category delete failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erreur lors de la suppression de la catégorie")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée"})
}

// requireString enforces the required|string rule pair: the field must be
// present, a string, and non-empty.
func requireString(body map[string]interface{}, field string, errs validation.Errors) string {
	raw, present := body[field]
	if !present {
		errs.Add(field, validation.RequiredMessage(field))
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		errs.Add(field, validation.StringMessage(field))
		return ""
	}
	if s == "" {
		errs.Add(field, validation.RequiredMessage(field))
		return ""
	}
	return s
}

// optionalString enforces the bare string rule: absent is fine, present
// non-string is a type error.
func optionalString(body map[string]interface{}, field string, errs validation.Errors) (string, bool) {
	raw, present := body[field]
	if !present {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		errs.Add(field, validation.StringMessage(field))
		return "", false
	}
	return s, true
}
