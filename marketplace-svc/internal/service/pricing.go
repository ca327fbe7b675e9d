package service

import (
	"context"
	"fmt"

	"foodmarket/marketplace-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const MaxLineItems = 50

// Pricer checks order lines against a restaurant's orderable catalog and
// snapshots their prices.
type Pricer struct {
	menu MenuItemSource
}

func NewPricer(menu MenuItemSource) *Pricer {
	return &Pricer{menu: menu}
}

// Validate reports whether every requested menu item is in the restaurant's
// active catalog. It checks membership only.
func (p *Pricer) Validate(ctx context.Context, restaurantID int, lineItems []domain.LineItemRequest) (bool, error) {
	items, err := p.menu.GetMenuItemsByRestaurant(ctx, restaurantID)
	if err != nil {
		return false, err
	}
	if len(items) == 0 {
		return false, nil
	}

	catalog := indexMenuItems(items)
	for _, line := range lineItems {
		if _, ok := catalog[line.MenuItemID]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// Price validates the request shape and membership, then returns one priced
// line per request line and the order total.
func (p *Pricer) Price(ctx context.Context, restaurantID int, lineItems []domain.LineItemRequest) ([]domain.OrderLineItem, decimal.Decimal, error) {
	if err := validateLineItems(lineItems); err != nil {
		return nil, decimal.Zero, err
	}

	items, err := p.menu.GetMenuItemsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	catalog := indexMenuItems(items)

	priced := make([]domain.OrderLineItem, 0, len(lineItems))
	total := decimal.Zero
	for _, line := range lineItems {
		item, ok := catalog[line.MenuItemID]
		if !ok {
			return nil, decimal.Zero, domain.ValidationError{
				Field:   "line_items",
				Message: fmt.Sprintf("menu item %d is not available at this restaurant", line.MenuItemID),
			}
		}

		unitPrice := item.Price.Round(2)
		subTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		total = total.Add(subTotal)

		priced = append(priced, domain.OrderLineItem{
			MenuItemID:   item.ID,
			MenuItemName: item.Name,
			Quantity:     line.Quantity,
			UnitPrice:    unitPrice,
			SubTotal:     subTotal,
		})
	}

	return priced, total.Round(2), nil
}

func validateLineItems(lineItems []domain.LineItemRequest) error {
	if len(lineItems) == 0 {
		return domain.ValidationError{Field: "line_items", Message: "at least one line item is required"}
	}
	if len(lineItems) > MaxLineItems {
		return domain.ValidationError{Field: "line_items", Message: fmt.Sprintf("at most %d line items are allowed", MaxLineItems)}
	}
	for i, line := range lineItems {
		if line.Quantity <= 0 {
			return domain.ValidationError{
				Field:   fmt.Sprintf("line_items[%d].quantity", i),
				Message: "must be greater than zero",
			}
		}
	}
	return nil
}

func indexMenuItems(items []domain.MenuItem) map[int]domain.MenuItem {
	catalog := make(map[int]domain.MenuItem, len(items))
	for _, item := range items {
		if item.Active {
			catalog[item.ID] = item
		}
	}
	return catalog
}

var _ PricerInterface = (*Pricer)(nil)
