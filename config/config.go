package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Capryc0rne/CUBE/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.Role{}, &models.User{}, &models.Category{}, &models.Ressource{}, &models.Country{})
	if err != nil {
		return nil, err
	}

	seedRoles(db)
	seedCountries(db)

	logrus.Info("database initialized")
	return db, nil
}

func seedRoles(db *gorm.DB) {
	roles := []models.Role{
		{Name: models.RoleAdmin},
		{Name: models.RoleUtilisateur},
	}

	for _, role := range roles {
		var existingRole models.Role
		result := db.Where("name = ?", role.Name).First(&existingRole)
		if result.Error != nil {
			db.Create(&role)
		}
	}
}

func seedCountries(db *gorm.DB) {
	countries := []models.Country{
		{Name: "Allemagne", Code: "DE"},
		{Name: "Belgique", Code: "BE"},
		{Name: "Espagne", Code: "ES"},
		{Name: "France", Code: "FR"},
		{Name: "Italie", Code: "IT"},
		{Name: "Luxembourg", Code: "LU"},
		{Name: "Portugal", Code: "PT"},
		{Name: "Suisse", Code: "CH"},
	}

	for _, country := range countries {
		var existing models.Country
		result := db.Where("code = ?", country.Code).First(&existing)
		if result.Error != nil {
			db.Create(&country)
		}
	}
}
