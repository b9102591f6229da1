package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Capryc0rne/CUBE/config"
	"github.com/Capryc0rne/CUBE/internal/handlers"
	"github.com/Capryc0rne/CUBE/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("server listening")
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		public.GET("/categories", handlers.GetActiveCategories)
		public.GET("/category/:id", handlers.GetCategory)
		public.GET("/countries", handlers.ListCountries)
	}

	authenticated := r.Group("")
	authenticated.Use(middleware.JWTAuthMiddleware())
	{
		// The stats handler does its own role check: that route answers 401
		// instead of the 403 the admin middleware produces.
		authenticated.GET("/stats/categories", handlers.GetCategoriesStatsCount)

		admin := authenticated.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/allCategories", handlers.GetAllCategories)
			admin.POST("/category/create", handlers.CreateCategory)
			admin.POST("/category/edit/:id", handlers.EditCategory)
			admin.DELETE("/category/delete/:id", handlers.DeleteCategory)
		}
	}
}
