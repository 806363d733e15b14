package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/huntdavid175/plateraa-storefront/config"
	_ "github.com/huntdavid175/plateraa-storefront/docs"
	"github.com/huntdavid175/plateraa-storefront/middleware"
	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/routes"
)

// @title Plateraa Storefront API
// @version 1.0
// @description Restaurant storefront API: menu browsing, session carts and order submission.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitDB()
	defer models.CloseDB()
	models.InitRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
