package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/huntdavid175/plateraa-storefront/config"
	"github.com/huntdavid175/plateraa-storefront/middleware"
	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitDB()
		models.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
