package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/huntdavid175/plateraa-storefront/config"
	"github.com/huntdavid175/plateraa-storefront/controllers"
	"github.com/huntdavid175/plateraa-storefront/middleware"
	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/repositories"
	"github.com/huntdavid175/plateraa-storefront/services"
)

func SetupRoutes(router *gin.Engine) {
	menuRepo := repositories.NewMenuRepository()
	orderRepo := repositories.NewOrderRepository()

	var cartStore repositories.CartStore
	if models.RedisClient != nil {
		cartStore = repositories.NewRedisCartStore(models.RedisClient, config.AppConfig.SessionTTL)
	} else {
		cartStore = repositories.NewMemoryCartStore()
	}

	cartSvc := services.NewCartService(cartStore)
	orderSvc := services.NewOrderService(orderRepo,
		config.AppConfig.DeliveryFee, config.AppConfig.ServiceFee, config.AppConfig.OrderTimeout)

	emailSvc, err := models.NewEmailService()
	if err != nil {
		emailSvc = nil
	}

	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc, menuRepo)
	orderCtrl := controllers.NewOrderController(orderRepo)
	checkoutCtrl := controllers.NewCheckoutController(cartSvc, menuRepo, orderSvc, emailSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/restaurants/:institutionId", menuCtrl.GetRestaurant)
	router.GET("/restaurants/:institutionId/menu", menuCtrl.GetMenu)
	router.GET("/restaurants/:institutionId/menu/:itemId", menuCtrl.GetMenuItem)
	router.GET("/restaurants/:institutionId/categories", menuCtrl.GetCategories)
	router.GET("/restaurants/:institutionId/branches", menuCtrl.GetBranches)

	router.POST("/orders", orderCtrl.SubmitOrder)
	router.GET("/orders/:orderId", orderCtrl.GetOrder)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.GET("/restaurants/:institutionId/cart", cartCtrl.GetCart)
		session.POST("/restaurants/:institutionId/cart", cartCtrl.AddToCart)
		session.PATCH("/restaurants/:institutionId/cart/items/:lineId", cartCtrl.UpdateQuantity)
		session.DELETE("/restaurants/:institutionId/cart", cartCtrl.ClearCart)
		session.POST("/restaurants/:institutionId/checkout", checkoutCtrl.Checkout)
	}
}
