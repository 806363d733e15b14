package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/services"
)

// MenuCatalog is the slice of the menu repository the cart needs.
type MenuCatalog interface {
	GetInstitution(ctx context.Context, institutionID string) (*models.Institution, error)
	GetMenuItem(ctx context.Context, institutionID, itemID string) (*models.MenuItem, error)
}

type CartController struct {
	carts *services.CartService
	menus MenuCatalog
}

func NewCartController(carts *services.CartService, menus MenuCatalog) *CartController {
	return &CartController{carts: carts, menus: menus}
}

func (ctrl *CartController) summary(c *gin.Context, cart *models.Cart) (models.CartSummary, bool) {
	institution, err := ctrl.menus.GetInstitution(c.Request.Context(), cart.InstitutionID)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Restaurant not found",
		})
		return models.CartSummary{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch restaurant",
			Error:   err.Error(),
		})
		return models.CartSummary{}, false
	}
	return ctrl.carts.Summary(cart, institution.MinOrder), true
}

// @Summary Get cart
// @Description Get the session's cart for a restaurant with totals and the minimum-order gate
// @Tags Cart
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{institutionId}/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	institutionID := c.Param("institutionId")

	cart, err := ctrl.carts.GetCart(c.Request.Context(), sessionID, institutionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load cart",
			Error:   err.Error(),
		})
		return
	}

	summary, ok := ctrl.summary(c, cart)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    summary,
	})
}

// @Summary Add to cart
// @Description Add a menu item with its selected modifications to the session's cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Param request body models.AddToCartRequest true "Item and selections"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{institutionId}/cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	institutionID := c.Param("institutionId")

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.menus.GetMenuItem(c.Request.Context(), institutionID, req.ItemID)
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

	cart, err := ctrl.carts.AddToCart(c.Request.Context(), sessionID, institutionID, item, req.Selections, req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid selection",
			Error:   err.Error(),
		})
		return
	}

	summary, ok := ctrl.summary(c, cart)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    summary,
	})
}

// @Summary Update cart line quantity
// @Description Apply a quantity delta to a cart line; dropping to zero removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Param lineId path string true "Cart line ID"
// @Param request body models.UpdateQuantityRequest true "Quantity delta"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{institutionId}/cart/items/{lineId} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	sessionID := c.GetString("session_id")
	institutionID := c.Param("institutionId")

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	cart, err := ctrl.carts.UpdateQuantity(c.Request.Context(), sessionID, institutionID, c.Param("lineId"), req.Delta)
	if errors.Is(err, services.ErrLineNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Cart line not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update cart",
			Error:   err.Error(),
		})
		return
	}

	summary, ok := ctrl.summary(c, cart)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    summary,
	})
}

// @Summary Clear cart
// @Description Remove the session's cart for a restaurant
// @Tags Cart
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{institutionId}/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	institutionID := c.Param("institutionId")

	if err := ctrl.carts.Clear(c.Request.Context(), sessionID, institutionID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to clear cart",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
	})
}
