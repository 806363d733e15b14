package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/huntdavid175/plateraa-storefront/models"
)

// ErrOrderNotFound is a normal outcome for confirmation lookups, not a
// backend failure.
var ErrOrderNotFound = errors.New("order not found")

// OrderIncompleteError reports that the order header was persisted but the
// dependent item or addon writes failed. The header is intentionally left in
// place; callers must surface this distinctly instead of retrying blindly.
type OrderIncompleteError struct {
	OrderID string
	Err     error
}

func (e *OrderIncompleteError) Error() string {
	return fmt.Sprintf("order %s created but incomplete: %v", e.OrderID, e.Err)
}

func (e *OrderIncompleteError) Unwrap() error {
	return e.Err
}

// OrderStore is the external collaborator that persists orders.
type OrderStore interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	CreateOrderItems(ctx context.Context, orderID string, items []models.CreateOrderItemRequest) ([]models.OrderItem, error)
	CreateOrderItemAddons(ctx context.Context, addons []models.CreateOrderItemAddonRequest) ([]models.OrderItemAddon, error)
	CreateCompleteOrder(ctx context.Context, req models.CreateOrderRequest, items []models.CreateOrderItemRequest, addonsMap map[string][]models.CreateOrderItemAddonRequest) (*models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
}

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	channel := req.Channel
	if channel == "" {
		channel = "website"
	}
	status := req.Status
	if status == "" {
		status = "pending"
	}

	query := `
		INSERT INTO orders (institution_id, branch_id, customer_name, customer_phone,
			customer_email, delivery_address, delivery_type, channel, subtotal,
			delivery_fee, total_amount, payment_method, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		RETURNING id, created_at, updated_at
	`

	order := models.Order{
		InstitutionID:   req.InstitutionID,
		BranchID:        req.BranchID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryType:    req.DeliveryType,
		Channel:         channel,
		Subtotal:        req.Subtotal,
		DeliveryFee:     req.DeliveryFee,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		Status:          status,
	}

	err := models.DB.QueryRow(ctx, query,
		req.InstitutionID, req.BranchID, req.CustomerName, req.CustomerPhone,
		req.CustomerEmail, req.DeliveryAddress, req.DeliveryType, channel, req.Subtotal,
		req.DeliveryFee, req.TotalAmount, req.PaymentMethod, req.Notes, status, time.Now(),
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// CreateOrderItems inserts the items for an order. Empty input is a no-op.
// Results are returned in input order.
func (r *OrderRepository) CreateOrderItems(ctx context.Context, orderID string, items []models.CreateOrderItemRequest) ([]models.OrderItem, error) {
	if len(items) == 0 {
		return []models.OrderItem{}, nil
	}

	query := `
		INSERT INTO order_items (order_id, menu_item_id, item_name, quantity,
			unit_price, total_price, variant_name, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	created := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		row := models.OrderItem{
			OrderID:     orderID,
			MenuItemID:  item.MenuItemID,
			ItemName:    item.ItemName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			VariantName: item.VariantName,
			Notes:       item.Notes,
		}
		err := models.DB.QueryRow(ctx, query,
			orderID, item.MenuItemID, item.ItemName, item.Quantity,
			item.UnitPrice, item.TotalPrice, item.VariantName, item.Notes,
		).Scan(&row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create order items: %w", err)
		}
		created = append(created, row)
	}
	return created, nil
}

func (r *OrderRepository) CreateOrderItemAddons(ctx context.Context, addons []models.CreateOrderItemAddonRequest) ([]models.OrderItemAddon, error) {
	if len(addons) == 0 {
		return []models.OrderItemAddon{}, nil
	}

	query := `
		INSERT INTO order_item_addons (order_item_id, addon_name, addon_price, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	created := make([]models.OrderItemAddon, 0, len(addons))
	for _, addon := range addons {
		row := models.OrderItemAddon{
			OrderItemID: addon.OrderItemID,
			AddonName:   addon.AddonName,
			AddonPrice:  addon.AddonPrice,
			Quantity:    addon.Quantity,
		}
		err := models.DB.QueryRow(ctx, query,
			addon.OrderItemID, addon.AddonName, addon.AddonPrice, addon.Quantity,
		).Scan(&row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create order item addons: %w", err)
		}
		created = append(created, row)
	}
	return created, nil
}

// collectAddons resolves each item's addon records against its created row.
// Items submitted without a correlation key fall back to their positional
// key, which is the shape clients that key the addon map by index send.
func collectAddons(created []models.OrderItem, items []models.CreateOrderItemRequest, addonsMap map[string][]models.CreateOrderItemAddonRequest) []models.CreateOrderItemAddonRequest {
	all := []models.CreateOrderItemAddonRequest{}
	for i, orderItem := range created {
		key := items[i].ItemKey
		if key == "" {
			key = fmt.Sprintf("item-%d", i)
		}
		for _, addon := range addonsMap[key] {
			addon.OrderItemID = orderItem.ID
			all = append(all, addon)
		}
	}
	return all
}

// CreateCompleteOrder persists the header, then the items, then the addons.
// Addons are matched to their parent item by the correlation key each item
// carries, with the item's position as the fallback key. If a dependent step
// fails after the header is in, the header stays and an OrderIncompleteError
// is returned.
func (r *OrderRepository) CreateCompleteOrder(ctx context.Context, req models.CreateOrderRequest, items []models.CreateOrderItemRequest, addonsMap map[string][]models.CreateOrderItemAddonRequest) (*models.Order, error) {
	order, err := r.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := r.CreateOrderItems(ctx, order.ID, items)
	if err != nil {
		return order, &OrderIncompleteError{OrderID: order.ID, Err: err}
	}

	if _, err := r.CreateOrderItemAddons(ctx, collectAddons(created, items, addonsMap)); err != nil {
		return order, &OrderIncompleteError{OrderID: order.ID, Err: err}
	}
	return order, nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	query := `SELECT id, institution_id, branch_id, customer_name, customer_phone,
	          customer_email, delivery_address, delivery_type, channel, subtotal,
	          delivery_fee, total_amount, payment_method, notes, status, created_at, updated_at
	          FROM orders WHERE id = $1`

	var order models.Order
	err := models.DB.QueryRow(ctx, query, orderID).Scan(
		&order.ID, &order.InstitutionID, &order.BranchID, &order.CustomerName, &order.CustomerPhone,
		&order.CustomerEmail, &order.DeliveryAddress, &order.DeliveryType, &order.Channel, &order.Subtotal,
		&order.DeliveryFee, &order.TotalAmount, &order.PaymentMethod, &order.Notes, &order.Status,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}
