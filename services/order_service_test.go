package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/repositories"
)

// fakeOrderStore records submissions instead of touching a database.
type fakeOrderStore struct {
	calls     int
	lastReq   models.CreateOrderRequest
	lastItems []models.CreateOrderItemRequest
	lastMap   map[string][]models.CreateOrderItemAddonRequest
	err       error
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	return nil, errors.New("not used")
}

func (f *fakeOrderStore) CreateOrderItems(ctx context.Context, orderID string, items []models.CreateOrderItemRequest) ([]models.OrderItem, error) {
	return nil, errors.New("not used")
}

func (f *fakeOrderStore) CreateOrderItemAddons(ctx context.Context, addons []models.CreateOrderItemAddonRequest) ([]models.OrderItemAddon, error) {
	return nil, errors.New("not used")
}

func (f *fakeOrderStore) CreateCompleteOrder(ctx context.Context, req models.CreateOrderRequest, items []models.CreateOrderItemRequest, addonsMap map[string][]models.CreateOrderItemAddonRequest) (*models.Order, error) {
	f.calls++
	f.lastReq = req
	f.lastItems = items
	f.lastMap = addonsMap
	if f.err != nil {
		return nil, f.err
	}
	return &models.Order{
		ID:            "order-1",
		InstitutionID: req.InstitutionID,
		CustomerName:  req.CustomerName,
		Subtotal:      req.Subtotal,
		DeliveryFee:   req.DeliveryFee,
		TotalAmount:   req.TotalAmount,
		Status:        "pending",
	}, nil
}

func (f *fakeOrderStore) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return nil, repositories.ErrOrderNotFound
}

func newTestOrderService(store repositories.OrderStore) *OrderService {
	return NewOrderService(store, 2.99, 1.50, 5*time.Second)
}

func deliveryRequest() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		Fulfillment:     "delivery",
		CustomerName:    "Ama Mensah",
		CustomerPhone:   "0241234567",
		CustomerEmail:   "ama@example.com",
		DeliveryAddress: "12 Ring Road",
		PaymentMethod:   "mobile-payment",
	}
}

func testInstitution() *models.Institution {
	return &models.Institution{ID: "inst-1", Name: "Mama's Kitchen"}
}

func cartWithLines(lines ...models.CartLine) *models.Cart {
	for i := range lines {
		lines[i].Recompute()
	}
	return &models.Cart{InstitutionID: "inst-1", Lines: lines}
}

func TestValidateCheckout(t *testing.T) {
	svc := newTestOrderService(&fakeOrderStore{})
	cart := cartWithLines(models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 45.00, Quantity: 1})

	t.Run("empty cart", func(t *testing.T) {
		err := svc.ValidateCheckout(&models.Cart{}, deliveryRequest(), 0)
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		req := deliveryRequest()
		req.CustomerName = ""
		assert.Error(t, svc.ValidateCheckout(cart, req, 0))
	})

	t.Run("missing phone", func(t *testing.T) {
		req := deliveryRequest()
		req.CustomerPhone = ""
		assert.Error(t, svc.ValidateCheckout(cart, req, 0))
	})

	t.Run("delivery needs address", func(t *testing.T) {
		req := deliveryRequest()
		req.DeliveryAddress = ""
		assert.Error(t, svc.ValidateCheckout(cart, req, 0))
	})

	t.Run("pickup needs branch", func(t *testing.T) {
		req := deliveryRequest()
		req.Fulfillment = "pickup"
		assert.Error(t, svc.ValidateCheckout(cart, req, 0))

		req.BranchID = "branch-1"
		assert.NoError(t, svc.ValidateCheckout(cart, req, 0))
	})

	t.Run("below minimum order", func(t *testing.T) {
		assert.Error(t, svc.ValidateCheckout(cart, deliveryRequest(), 50.00))
		assert.NoError(t, svc.ValidateCheckout(cart, deliveryRequest(), 45.00))
	})
}

func TestValidationFailureMakesNoStoreCalls(t *testing.T) {
	store := &fakeOrderStore{}
	svc := newTestOrderService(store)

	req := deliveryRequest()
	req.CustomerPhone = ""

	cart := cartWithLines(models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 45.00, Quantity: 1})
	_, err := svc.Submit(context.Background(), cart, req, &models.Institution{ID: "inst-1"})

	var validation ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Zero(t, store.calls)
}

func TestAssembleTotals(t *testing.T) {
	svc := newTestOrderService(&fakeOrderStore{})
	cart := cartWithLines(models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 45.00, Quantity: 1})

	header, items, _, err := svc.Assemble(cart, deliveryRequest(), testInstitution())
	require.NoError(t, err)
	require.Len(t, items, 1)

	// 45.00 in the cart, 1.50 service fee folded into the subtotal,
	// 2.99 delivery on top.
	assert.Equal(t, 46.50, header.Subtotal)
	assert.Equal(t, 2.99, header.DeliveryFee)
	assert.Equal(t, 49.49, header.TotalAmount)
}

func TestAssemblePrefersRestaurantDeliveryFee(t *testing.T) {
	svc := newTestOrderService(&fakeOrderStore{})
	cart := cartWithLines(models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 45.00, Quantity: 1})

	institution := testInstitution()
	institution.DeliveryFee = 5.00

	header, _, _, err := svc.Assemble(cart, deliveryRequest(), institution)
	require.NoError(t, err)

	assert.Equal(t, 5.00, header.DeliveryFee)
	assert.Equal(t, 51.50, header.TotalAmount)
}

func TestAssemblePickupHasNoDeliveryFee(t *testing.T) {
	svc := newTestOrderService(&fakeOrderStore{})
	cart := cartWithLines(models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 45.00, Quantity: 1})

	req := deliveryRequest()
	req.Fulfillment = "pickup"
	req.BranchID = "branch-1"

	header, _, _, err := svc.Assemble(cart, req, testInstitution())
	require.NoError(t, err)

	assert.Equal(t, 0.00, header.DeliveryFee)
	assert.Equal(t, 46.50, header.TotalAmount)
	require.NotNil(t, header.BranchID)
	assert.Equal(t, "branch-1", *header.BranchID)
	assert.Nil(t, header.DeliveryAddress)
}

func TestAssembleClassifiesModifications(t *testing.T) {
	svc := newTestOrderService(&fakeOrderStore{})
	cart := cartWithLines(models.CartLine{
		ID:        "l1",
		ItemID:    "item-1",
		Name:      "Jollof",
		BasePrice: 16.50,
		Quantity:  2,
		Modifications: []models.SelectedModification{
			{GroupID: "variant", OptionID: "large", Name: "Large", Price: 4.00},
			{GroupID: "addons", OptionID: "chicken", Name: "Grilled Chicken", Price: 2.00},
		},
	})

	_, items, addonsMap, err := svc.Assemble(cart, deliveryRequest(), testInstitution())
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "item-0", item.ItemKey)
	require.NotNil(t, item.VariantName)
	assert.Equal(t, "Large", *item.VariantName)
	assert.Equal(t, 22.50, item.UnitPrice)
	assert.Equal(t, 45.00, item.TotalPrice)

	addons := addonsMap["item-0"]
	require.Len(t, addons, 1)
	assert.Equal(t, "Grilled Chicken", addons[0].AddonName)
	assert.Equal(t, 2.00, addons[0].AddonPrice)
	assert.Equal(t, 2, addons[0].Quantity)
}

func TestAssembleAddonMapUsesItemKeys(t *testing.T) {
	svc := newTestOrderService(&fakeOrderStore{})
	cart := cartWithLines(
		models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 16.50, Quantity: 1},
		models.CartLine{
			ID: "l2", ItemID: "item-2", Name: "Waakye", BasePrice: 12.00, Quantity: 1,
			Modifications: []models.SelectedModification{
				{GroupID: "addons", OptionID: "egg", Name: "Boiled Egg", Price: 1.00},
			},
		},
	)

	_, items, addonsMap, err := svc.Assemble(cart, deliveryRequest(), testInstitution())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.NotContains(t, addonsMap, "item-0")
	require.Contains(t, addonsMap, "item-1")
	assert.Equal(t, "Boiled Egg", addonsMap["item-1"][0].AddonName)
}

func TestAssembleRejectsUnreconciledLine(t *testing.T) {
	svc := newTestOrderService(&fakeOrderStore{})

	line := models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 16.50, Quantity: 2}
	line.LineTotal = 30.00 // tampered, should be 33.00
	cart := &models.Cart{InstitutionID: "inst-1", Lines: []models.CartLine{line}}

	_, _, _, err := svc.Assemble(cart, deliveryRequest(), testInstitution())
	assert.Error(t, err)
}

func TestSubmitPassesAssembledOrder(t *testing.T) {
	store := &fakeOrderStore{}
	svc := newTestOrderService(store)
	cart := cartWithLines(models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 45.00, Quantity: 1})

	order, err := svc.Submit(context.Background(), cart, deliveryRequest(), &models.Institution{ID: "inst-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
	assert.Equal(t, "inst-1", store.lastReq.InstitutionID)
	assert.Equal(t, "website", store.lastReq.Channel)
	assert.Equal(t, "pending", store.lastReq.Status)
	require.NotNil(t, store.lastReq.PaymentMethod)
	assert.Equal(t, "mobile_money", *store.lastReq.PaymentMethod)
	assert.Equal(t, 49.49, order.TotalAmount)
}

func TestSubmitSurfacesIncompleteOrder(t *testing.T) {
	store := &fakeOrderStore{err: &repositories.OrderIncompleteError{OrderID: "order-1", Err: errors.New("boom")}}
	svc := newTestOrderService(store)
	cart := cartWithLines(models.CartLine{ID: "l1", ItemID: "item-1", Name: "Jollof", BasePrice: 45.00, Quantity: 1})

	_, err := svc.Submit(context.Background(), cart, deliveryRequest(), &models.Institution{ID: "inst-1"})

	var incomplete *repositories.OrderIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "order-1", incomplete.OrderID)
}
