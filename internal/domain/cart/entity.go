// internal/domain/cart/entity.go
package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrItemNotFound is returned when an update targets a line item that is not
// in the cart
var ErrItemNotFound = errors.New("item not found in cart")

// LineItem represents one (product, size) pairing in a cart. Title, image,
// unit price and stock are snapshots taken at add-time and never re-derived
// from the catalog.
type LineItem struct {
	ProductID int             `json:"product_id"`
	Size      string          `json:"size"`
	Title     string          `json:"title"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Stock     int             `json:"stock"`
}

// LineTotal returns unit price times quantity
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Snapshot represents a cart with its derived totals, as returned to callers
// and pushed to change listeners
type Snapshot struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	PromoCode string     `json:"promo_code,omitempty"`
	Totals    Totals     `json:"totals"`
}

// PromoResult is the structured outcome of a promo code application
type PromoResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
