package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/repositories"
)

type MenuController struct {
	menus *repositories.MenuRepository
}

func NewMenuController(menus *repositories.MenuRepository) *MenuController {
	return &MenuController{menus: menus}
}

func menuCacheKey(institutionID string) string {
	return fmt.Sprintf("menu_%s", institutionID)
}

// @Summary Get restaurant
// @Description Get a restaurant's storefront details
// @Tags Restaurants
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{institutionId} [get]
func (ctrl *MenuController) GetRestaurant(c *gin.Context) {
	institution, err := ctrl.menus.GetInstitution(c.Request.Context(), c.Param("institutionId"))
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Restaurant not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch restaurant",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Restaurant retrieved",
		Data:    institution,
	})
}

// @Summary Get menu
// @Description Get a restaurant's available menu items with their modification groups
// @Tags Restaurants
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Param category query string false "Filter by category ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{institutionId}/menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	institutionID := c.Param("institutionId")
	categoryID := c.Query("category")

	cacheKey := menuCacheKey(institutionID)
	if categoryID == "" && models.RedisClient != nil {
		cached, err := models.RedisClient.Get(context.Background(), cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	items, err := ctrl.menus.GetMenuItems(c.Request.Context(), institutionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch menu",
			Error:   err.Error(),
		})
		return
	}

	if categoryID != "" {
		filtered := []models.MenuItem{}
		for _, item := range items {
			if item.CategoryID == categoryID {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	response := models.Response{
		Success: true,
		Message: "Menu retrieved",
		Data:    items,
	}

	if categoryID == "" && models.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			models.RedisClient.Set(context.Background(), cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get menu item
// @Description Get a single available menu item
// @Tags Restaurants
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Param itemId path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{institutionId}/menu/{itemId} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	item, err := ctrl.menus.GetMenuItem(c.Request.Context(), c.Param("institutionId"), c.Param("itemId"))
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Menu item not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch menu item",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu item retrieved",
		Data:    item,
	})
}

// @Summary Get categories
// @Description Get a restaurant's visible menu categories in display order
// @Tags Restaurants
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{institutionId}/categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	categories, err := ctrl.menus.GetCategories(c.Request.Context(), c.Param("institutionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// @Summary Get branches
// @Description Get a restaurant's pickup branches
// @Tags Restaurants
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{institutionId}/branches [get]
func (ctrl *MenuController) GetBranches(c *gin.Context) {
	branches, err := ctrl.menus.GetBranches(c.Request.Context(), c.Param("institutionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch branches",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Branches retrieved",
		Data:    branches,
	})
}
