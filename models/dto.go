package models

type AddToCartRequest struct {
	ItemID     string              `json:"itemId" binding:"required"`
	Quantity   int                 `json:"quantity"`
	Selections map[string][]string `json:"selections"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type CheckoutRequest struct {
	Fulfillment          string `json:"fulfillment" binding:"required,oneof=delivery pickup"`
	CustomerName         string `json:"customerName"`
	CustomerPhone        string `json:"customerPhone"`
	CustomerEmail        string `json:"customerEmail"`
	DeliveryAddress      string `json:"deliveryAddress"`
	DeliveryInstructions string `json:"deliveryInstructions"`
	BranchID             string `json:"branchId"`
	PaymentMethod        string `json:"paymentMethod"`
	Notes                string `json:"notes"`
}

// SubmitOrderRequest is the POST /orders body: a pre-assembled order plus
// its items and the addon selections keyed by each item's correlation key.
type SubmitOrderRequest struct {
	Order     CreateOrderRequest                       `json:"order" binding:"required"`
	Items     []CreateOrderItemRequest                 `json:"items" binding:"required"`
	AddonsMap map[string][]CreateOrderItemAddonRequest `json:"addonsMap"`
}

type CartSummary struct {
	Cart            *Cart   `json:"cart"`
	Subtotal        float64 `json:"subtotal"`
	ItemCount       int     `json:"itemCount"`
	MinOrder        float64 `json:"minOrder"`
	Shortfall       float64 `json:"shortfall"`
	CheckoutAllowed bool    `json:"checkoutAllowed"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type OrderResponse struct {
	Success bool   `json:"success"`
	Order   *Order `json:"order,omitempty"`
	Error   string `json:"error,omitempty"`
}
