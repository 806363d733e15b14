package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/repositories"
	"github.com/huntdavid175/plateraa-storefront/services"
)

type stubMenuCatalog struct {
	institutions map[string]*models.Institution
	items        map[string]*models.MenuItem
}

func (s *stubMenuCatalog) GetInstitution(ctx context.Context, institutionID string) (*models.Institution, error) {
	institution, ok := s.institutions[institutionID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return institution, nil
}

func (s *stubMenuCatalog) GetMenuItem(ctx context.Context, institutionID, itemID string) (*models.MenuItem, error) {
	item, ok := s.items[itemID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return item, nil
}

func cartRouter(catalog *stubMenuCatalog) *gin.Engine {
	router := gin.New()
	ctrl := NewCartController(services.NewCartService(repositories.NewMemoryCartStore()), catalog)
	router.GET("/restaurants/:institutionId/cart", ctrl.GetCart)
	router.POST("/restaurants/:institutionId/cart", ctrl.AddToCart)
	return router
}

func TestGetCartUnknownRestaurantIs404(t *testing.T) {
	router := cartRouter(&stubMenuCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restaurants/missing/cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Restaurant not found", resp.Message)
}

func TestAddToCartAndSummary(t *testing.T) {
	catalog := &stubMenuCatalog{
		institutions: map[string]*models.Institution{
			"inst-1": {ID: "inst-1", Name: "Mama's Kitchen", MinOrder: 20.00},
		},
		items: map[string]*models.MenuItem{
			"item-1": {ID: "item-1", Name: "Jollof Rice", BasePrice: 16.50},
		},
	}
	router := cartRouter(catalog)

	body, err := json.Marshal(models.AddToCartRequest{ItemID: "item-1", Quantity: 1})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/restaurants/inst-1/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    models.CartSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 16.50, resp.Data.Subtotal)
	assert.Equal(t, 3.50, resp.Data.Shortfall)
	assert.False(t, resp.Data.CheckoutAllowed)
}
