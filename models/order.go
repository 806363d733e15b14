package models

import "time"

// Row shapes for the order store. Field names mirror the orders,
// order_items and order_item_addons tables.

type Order struct {
	ID              string    `json:"id"`
	InstitutionID   string    `json:"institution_id"`
	BranchID        *string   `json:"branch_id,omitempty"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerEmail   *string   `json:"customer_email,omitempty"`
	DeliveryAddress *string   `json:"delivery_address,omitempty"`
	DeliveryType    string    `json:"delivery_type"`
	Channel         string    `json:"channel"`
	Subtotal        float64   `json:"subtotal"`
	DeliveryFee     float64   `json:"delivery_fee"`
	TotalAmount     float64   `json:"total_amount"`
	PaymentMethod   *string   `json:"payment_method,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	MenuItemID  *string `json:"menu_item_id,omitempty"`
	ItemName    string  `json:"item_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	VariantName *string `json:"variant_name,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type OrderItemAddon struct {
	ID          string  `json:"id"`
	OrderItemID string  `json:"order_item_id"`
	AddonName   string  `json:"addon_name"`
	AddonPrice  float64 `json:"addon_price"`
	Quantity    int     `json:"quantity"`
}

type CreateOrderRequest struct {
	InstitutionID   string  `json:"institution_id" binding:"required"`
	BranchID        *string `json:"branch_id,omitempty"`
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerPhone   string  `json:"customer_phone" binding:"required"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	DeliveryAddress *string `json:"delivery_address,omitempty"`
	DeliveryType    string  `json:"delivery_type" binding:"required,oneof=delivery pickup"`
	Channel         string  `json:"channel"`
	Subtotal        float64 `json:"subtotal"`
	DeliveryFee     float64 `json:"delivery_fee"`
	TotalAmount     float64 `json:"total_amount"`
	PaymentMethod   *string `json:"payment_method,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Status          string  `json:"status"`
}

// CreateOrderItemRequest carries ItemKey, a client-generated correlation key
// echoed by the addon map. The store associates addons with items through
// this key, never through the item's position in the list.
type CreateOrderItemRequest struct {
	ItemKey     string  `json:"item_key"`
	MenuItemID  *string `json:"menu_item_id,omitempty"`
	ItemName    string  `json:"item_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	VariantName *string `json:"variant_name,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type CreateOrderItemAddonRequest struct {
	OrderItemID string  `json:"order_item_id,omitempty"`
	AddonName   string  `json:"addon_name"`
	AddonPrice  float64 `json:"addon_price"`
	Quantity    int     `json:"quantity"`
}
