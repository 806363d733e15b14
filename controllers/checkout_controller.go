package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/repositories"
	"github.com/huntdavid175/plateraa-storefront/services"
)

type CheckoutController struct {
	carts  *services.CartService
	menus  *repositories.MenuRepository
	orders *services.OrderService
	email  *models.EmailService
}

// email may be nil when SMTP is not configured; receipts are then skipped.
func NewCheckoutController(carts *services.CartService, menus *repositories.MenuRepository, orders *services.OrderService, email *models.EmailService) *CheckoutController {
	return &CheckoutController{carts: carts, menus: menus, orders: orders, email: email}
}

// @Summary Checkout
// @Description Validate the session's cart, assemble the order and submit it
// @Tags Checkout
// @Accept json
// @Produce json
// @Param institutionId path string true "Institution ID"
// @Param request body models.CheckoutRequest true "Fulfillment and contact details"
// @Success 201 {object} models.OrderResponse
// @Failure 400 {object} models.OrderResponse
// @Failure 500 {object} models.OrderResponse
// @Router /restaurants/{institutionId}/checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	institutionID := c.Param("institutionId")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.OrderResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	institution, err := ctrl.menus.GetInstitution(c.Request.Context(), institutionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.OrderResponse{
			Success: false,
			Error:   "Failed to fetch restaurant",
		})
		return
	}

	cart, err := ctrl.carts.GetCart(c.Request.Context(), sessionID, institutionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.OrderResponse{
			Success: false,
			Error:   "Failed to load cart",
		})
		return
	}

	order, err := ctrl.orders.Submit(c.Request.Context(), cart, &req, institution)

	var validation services.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, models.OrderResponse{
			Success: false,
			Error:   validation.Error(),
		})
		return
	}

	var incomplete *repositories.OrderIncompleteError
	if errors.As(err, &incomplete) {
		// Cart stays intact so the customer can retry once the incomplete
		// order is sorted out with the restaurant.
		c.JSON(http.StatusInternalServerError, models.OrderResponse{
			Success: false,
			Order:   order,
			Error:   "Order " + incomplete.OrderID + " was received but could not be completed. Please contact the restaurant.",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.OrderResponse{
			Success: false,
			Error:   "Failed to place order",
		})
		return
	}

	if clearErr := ctrl.carts.Clear(c.Request.Context(), sessionID, institutionID); clearErr != nil {
		log.Printf("failed to clear cart after order %s: %v", order.ID, clearErr)
	}

	if ctrl.email != nil && order.CustomerEmail != nil {
		go func(toEmail, restaurantName string, placed models.Order) {
			if sendErr := ctrl.email.SendOrderReceiptEmail(toEmail, restaurantName, &placed); sendErr != nil {
				log.Printf("failed to send receipt for order %s: %v", placed.ID, sendErr)
			}
		}(*order.CustomerEmail, institution.Name, *order)
	}

	c.JSON(http.StatusCreated, models.OrderResponse{
		Success: true,
		Order:   order,
	})
}
