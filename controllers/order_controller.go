package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huntdavid175/plateraa-storefront/config"
	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/repositories"
)

type OrderController struct {
	orders repositories.OrderStore
}

func NewOrderController(orders repositories.OrderStore) *OrderController {
	return &OrderController{orders: orders}
}

// @Summary Submit order
// @Description Persist a pre-assembled order with its items and addon selections
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.SubmitOrderRequest true "Order, items and addon map"
// @Success 201 {object} models.OrderResponse
// @Failure 400 {object} models.OrderResponse
// @Failure 500 {object} models.OrderResponse
// @Router /orders [post]
func (ctrl *OrderController) SubmitOrder(c *gin.Context) {
	var req models.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.OrderResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), config.AppConfig.OrderTimeout)
	defer cancel()

	order, err := ctrl.orders.CreateCompleteOrder(ctx, req.Order, req.Items, req.AddonsMap)

	var incomplete *repositories.OrderIncompleteError
	if errors.As(err, &incomplete) {
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
			Error:   "Failed to create order",
		})
		return
	}

	c.JSON(http.StatusCreated, models.OrderResponse{
		Success: true,
		Order:   order,
	})
}

// @Summary Get order
// @Description Get an order by id for confirmation display
// @Tags Orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} models.OrderResponse
// @Failure 404 {object} models.OrderResponse
// @Router /orders/{orderId} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctrl.orders.GetOrder(c.Request.Context(), c.Param("orderId"))
	if errors.Is(err, repositories.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.OrderResponse{
			Success: false,
			Error:   "Order not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.OrderResponse{
			Success: false,
			Error:   "Failed to fetch order",
		})
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{
		Success: true,
		Order:   order,
	})
}
