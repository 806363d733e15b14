package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntdavid175/plateraa-storefront/models"
)

func TestCollectAddonsMatchesByItemKey(t *testing.T) {
	created := []models.OrderItem{
		{ID: "oi-1"},
		{ID: "oi-2"},
	}
	items := []models.CreateOrderItemRequest{
		{ItemKey: "item-0", ItemName: "Jollof"},
		{ItemKey: "item-1", ItemName: "Waakye"},
	}
	addonsMap := map[string][]models.CreateOrderItemAddonRequest{
		"item-1": {{AddonName: "Boiled Egg", AddonPrice: 1.00, Quantity: 1}},
	}

	addons := collectAddons(created, items, addonsMap)
	require.Len(t, addons, 1)
	assert.Equal(t, "oi-2", addons[0].OrderItemID)
	assert.Equal(t, "Boiled Egg", addons[0].AddonName)
}

func TestCollectAddonsDefaultsToPositionalKeys(t *testing.T) {
	// Clients that key the addon map by index send no item_key at all;
	// the addons must still land on the right items.
	created := []models.OrderItem{
		{ID: "oi-1"},
		{ID: "oi-2"},
	}
	items := []models.CreateOrderItemRequest{
		{ItemName: "Jollof"},
		{ItemName: "Waakye"},
	}
	addonsMap := map[string][]models.CreateOrderItemAddonRequest{
		"item-0": {{AddonName: "Grilled Chicken", AddonPrice: 2.00, Quantity: 2}},
		"item-1": {{AddonName: "Boiled Egg", AddonPrice: 1.00, Quantity: 1}},
	}

	addons := collectAddons(created, items, addonsMap)
	require.Len(t, addons, 2)
	assert.Equal(t, "oi-1", addons[0].OrderItemID)
	assert.Equal(t, "Grilled Chicken", addons[0].AddonName)
	assert.Equal(t, "oi-2", addons[1].OrderItemID)
	assert.Equal(t, "Boiled Egg", addons[1].AddonName)
}

func TestCollectAddonsExplicitKeyBeatsPosition(t *testing.T) {
	created := []models.OrderItem{{ID: "oi-1"}}
	items := []models.CreateOrderItemRequest{{ItemKey: "line-abc", ItemName: "Jollof"}}
	addonsMap := map[string][]models.CreateOrderItemAddonRequest{
		"line-abc": {{AddonName: "Fried Plantain", AddonPrice: 1.50, Quantity: 1}},
		"item-0":   {{AddonName: "Wrong", AddonPrice: 9.99, Quantity: 1}},
	}

	addons := collectAddons(created, items, addonsMap)
	require.Len(t, addons, 1)
	assert.Equal(t, "Fried Plantain", addons[0].AddonName)
}

func TestCollectAddonsNoAddons(t *testing.T) {
	created := []models.OrderItem{{ID: "oi-1"}}
	items := []models.CreateOrderItemRequest{{ItemKey: "item-0"}}

	addons := collectAddons(created, items, nil)
	assert.Empty(t, addons)
}
