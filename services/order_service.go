package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/repositories"
)

// ValidationError marks checkout preconditions the user can fix; no store
// call is made when one is returned.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// Reserved modification group ids the assembler classifies by.
const (
	variantGroupID = "variant"
	addonsGroupID  = "addons"
)

// OrderService validates checkout input, assembles the order request shape
// the store expects and submits it.
type OrderService struct {
	orders      repositories.OrderStore
	deliveryFee float64
	serviceFee  float64
	timeout     time.Duration
}

func NewOrderService(orders repositories.OrderStore, deliveryFee, serviceFee float64, timeout time.Duration) *OrderService {
	return &OrderService{
		orders:      orders,
		deliveryFee: deliveryFee,
		serviceFee:  serviceFee,
		timeout:     timeout,
	}
}

// ValidateCheckout enforces the pre-assembly rules: non-empty cart, contact
// name and phone, an address for delivery, a branch for pickup, and the
// institution's minimum order total.
func (s *OrderService) ValidateCheckout(cart *models.Cart, req *models.CheckoutRequest, minOrder float64) error {
	if len(cart.Lines) == 0 {
		return ValidationError("Your cart is empty")
	}
	if req.CustomerName == "" {
		return ValidationError("Full name is required")
	}
	if req.CustomerPhone == "" {
		return ValidationError("Phone number is required")
	}
	if req.Fulfillment == "delivery" && req.DeliveryAddress == "" {
		return ValidationError("Delivery address is required")
	}
	if req.Fulfillment == "pickup" && req.BranchID == "" {
		return ValidationError("Please select a branch for pickup")
	}

	if total := cart.Total(); total < minOrder {
		shortfall := models.RoundCents(minOrder - total)
		return ValidationError(fmt.Sprintf("Add %.2f more to meet the %.2f minimum", shortfall, minOrder))
	}
	return nil
}

// Assemble transforms cart lines plus fulfillment details into the order
// header, the item list and the addon map keyed by each item's correlation
// key. Modifications in the reserved "variant" group fold into the unit
// price and surface as the item's variant name; "addons" modifications are
// tracked individually at the line's quantity.
//
// The reported unit price covers all modifications, so unit price times
// quantity must reconcile exactly with the cart line's total.
func (s *OrderService) Assemble(cart *models.Cart, req *models.CheckoutRequest, institution *models.Institution) (models.CreateOrderRequest, []models.CreateOrderItemRequest, map[string][]models.CreateOrderItemAddonRequest, error) {
	items := make([]models.CreateOrderItemRequest, 0, len(cart.Lines))
	addonsMap := map[string][]models.CreateOrderItemAddonRequest{}

	for idx := range cart.Lines {
		line := &cart.Lines[idx]

		var variantName *string
		variantDelta := 0.0
		addonTotal := 0.0
		addons := []models.CreateOrderItemAddonRequest{}

		for _, mod := range line.Modifications {
			switch mod.GroupID {
			case variantGroupID:
				name := mod.Name
				variantName = &name
				variantDelta += mod.Price
			case addonsGroupID:
				addonTotal += mod.Price
				addons = append(addons, models.CreateOrderItemAddonRequest{
					AddonName:  mod.Name,
					AddonPrice: mod.Price,
					Quantity:   line.Quantity,
				})
			default:
				// Unreserved groups still price into the unit like addons,
				// but have no individual record in the store schema.
				addonTotal += mod.Price
			}
		}

		unitPrice := models.RoundCents(line.BasePrice + variantDelta + addonTotal)
		totalPrice := models.RoundCents(unitPrice * float64(line.Quantity))

		if math.Abs(totalPrice-line.LineTotal) > 0.005 {
			return models.CreateOrderRequest{}, nil, nil, fmt.Errorf(
				"line %s does not reconcile: unit %.2f x %d = %.2f, cart says %.2f",
				line.ID, unitPrice, line.Quantity, totalPrice, line.LineTotal)
		}

		itemID := line.ItemID
		item := models.CreateOrderItemRequest{
			ItemKey:     fmt.Sprintf("item-%d", idx),
			MenuItemID:  &itemID,
			ItemName:    line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  totalPrice,
			VariantName: variantName,
		}
		items = append(items, item)

		if len(addons) > 0 {
			addonsMap[item.ItemKey] = addons
		}
	}

	// Convention: the service fee folds into the order's subtotal, so the
	// stored breakdown always satisfies total = subtotal + delivery fee.
	subtotal := models.RoundCents(cart.Total() + s.serviceFee)
	deliveryFee := 0.0
	if req.Fulfillment == "delivery" {
		// A restaurant with its own delivery fee overrides the platform
		// default.
		deliveryFee = s.deliveryFee
		if institution.DeliveryFee > 0 {
			deliveryFee = institution.DeliveryFee
		}
	}
	total := models.RoundCents(subtotal + deliveryFee)

	header := models.CreateOrderRequest{
		InstitutionID: institution.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DeliveryType:  req.Fulfillment,
		Channel:       "website",
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		TotalAmount:   total,
		Status:        "pending",
	}

	if req.CustomerEmail != "" {
		email := req.CustomerEmail
		header.CustomerEmail = &email
	}
	if req.Fulfillment == "delivery" {
		address := req.DeliveryAddress
		if req.DeliveryInstructions != "" {
			address = address + " (" + req.DeliveryInstructions + ")"
		}
		header.DeliveryAddress = &address
	}
	if req.Fulfillment == "pickup" && req.BranchID != "" {
		branchID := req.BranchID
		header.BranchID = &branchID
	}
	if method := mapPaymentMethod(req.PaymentMethod); method != "" {
		header.PaymentMethod = &method
	}
	if req.Notes != "" {
		notes := req.Notes
		header.Notes = &notes
	}

	return header, items, addonsMap, nil
}

// Submit runs the full checkout pipeline against the store under a bounded
// timeout. A validation failure makes zero store calls. Partial failures
// bubble up as *repositories.OrderIncompleteError.
func (s *OrderService) Submit(ctx context.Context, cart *models.Cart, req *models.CheckoutRequest, institution *models.Institution) (*models.Order, error) {
	if err := s.ValidateCheckout(cart, req, institution.MinOrder); err != nil {
		return nil, err
	}

	header, items, addonsMap, err := s.Assemble(cart, req, institution)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.orders.CreateCompleteOrder(ctx, header, items, addonsMap)
}

func mapPaymentMethod(method string) string {
	switch method {
	case "mobile-payment", "mobile_money":
		return "mobile_money"
	case "cash":
		return "cash"
	case "card":
		return "card"
	case "bank-transfer", "bank_transfer":
		return "bank_transfer"
	default:
		return ""
	}
}
