package services

import (
	"context"
	"errors"

	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/repositories"
)

var ErrLineNotFound = errors.New("cart line not found")

// CartService is the cart engine. It is stateless; cart state lives in the
// CartStore keyed per session and institution, and every mutation is saved
// before it is reported back.
type CartService struct {
	store     repositories.CartStore
	selection *SelectionService
}

func NewCartService(store repositories.CartStore) *CartService {
	return &CartService{
		store:     store,
		selection: NewSelectionService(),
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID, institutionID string) (*models.Cart, error) {
	cart, err := s.store.Load(ctx, repositories.CartKey(sessionID, institutionID))
	if err != nil {
		return nil, err
	}
	cart.InstitutionID = institutionID
	return cart, nil
}

// AddToCart resolves the selections against the item's catalog entry and
// merges the result into the cart. Lines with the same item and the same
// resolved selections share an id and merge; a non-positive quantity is
// clamped to 1.
func (s *CartService) AddToCart(ctx context.Context, sessionID, institutionID string, item *models.MenuItem, selections map[string][]string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	mods, err := s.selection.Resolve(item, selections)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, sessionID, institutionID)
	if err != nil {
		return nil, err
	}

	lineID := models.BuildLineID(item.ID, mods)
	if line := cart.FindLine(lineID); line != nil {
		line.Quantity += quantity
		line.Recompute()
	} else {
		newLine := models.CartLine{
			ID:            lineID,
			ItemID:        item.ID,
			Name:          item.Name,
			BasePrice:     item.BasePrice,
			Quantity:      quantity,
			Modifications: mods,
		}
		newLine.Recompute()
		cart.Lines = append(cart.Lines, newLine)
	}

	if err := s.store.Save(ctx, repositories.CartKey(sessionID, institutionID), cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity applies a delta to a line's quantity. A resulting quantity
// of zero or less removes the line entirely.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, institutionID, lineID string, delta int) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID, institutionID)
	if err != nil {
		return nil, err
	}

	found := false
	lines := cart.Lines[:0]
	for i := range cart.Lines {
		line := cart.Lines[i]
		if line.ID != lineID {
			lines = append(lines, line)
			continue
		}
		found = true
		line.Quantity += delta
		if line.Quantity <= 0 {
			continue
		}
		line.Recompute()
		lines = append(lines, line)
	}
	if !found {
		return nil, ErrLineNotFound
	}
	cart.Lines = lines

	if err := s.store.Save(ctx, repositories.CartKey(sessionID, institutionID), cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID, institutionID string) error {
	return s.store.Delete(ctx, repositories.CartKey(sessionID, institutionID))
}

// Summary reports the totals and the minimum-order gate for display.
func (s *CartService) Summary(cart *models.Cart, minOrder float64) models.CartSummary {
	total := cart.Total()

	shortfall := 0.0
	if total < minOrder {
		shortfall = models.RoundCents(minOrder - total)
	}

	return models.CartSummary{
		Cart:            cart,
		Subtotal:        total,
		ItemCount:       cart.ItemCount(),
		MinOrder:        minOrder,
		Shortfall:       shortfall,
		CheckoutAllowed: len(cart.Lines) > 0 && shortfall == 0,
	}
}
