// internal/domain/checkout/entity.go
package checkout

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

var (
	// ErrEmptyCart is returned when an order is placed against an empty cart
	ErrEmptyCart = errors.New("cannot place order with empty cart")

	// ErrNoRecentOrder is returned when no one-shot order record exists for
	// the session
	ErrNoRecentOrder = errors.New("no recent order for session")
)

// ShippingMethod identifies one of the fixed shipping options
type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

// ParseShippingMethod maps a request value to a ShippingMethod, defaulting to
// standard
func ParseShippingMethod(value string) ShippingMethod {
	switch ShippingMethod(value) {
	case ShippingExpress, ShippingOvernight:
		return ShippingMethod(value)
	default:
		return ShippingStandard
	}
}

// CustomerInfo carries the checkout form's contact fields
type CustomerInfo struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

// ShippingInfo carries the delivery address and the selected method
type ShippingInfo struct {
	Address   string         `json:"address" binding:"required"`
	Apartment string         `json:"apartment"`
	City      string         `json:"city" binding:"required"`
	State     string         `json:"state" binding:"required"`
	ZipCode   string         `json:"zip_code" binding:"required"`
	Method    ShippingMethod `json:"method"`
}

// PaymentInfo carries the simulated payment selection. No card details are
// ever accepted or stored.
type PaymentInfo struct {
	Method string `json:"method"`
}

// Order is the confirmed-order record persisted as a one-shot snapshot for
// the confirmation page
type Order struct {
	OrderNumber string          `json:"order_number"`
	SessionID   string          `json:"session_id"`
	PlacedAt    time.Time       `json:"placed_at"`
	Customer    CustomerInfo    `json:"customer"`
	Shipping    ShippingInfo    `json:"shipping"`
	Payment     PaymentInfo     `json:"payment"`
	Items       []cart.LineItem `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
}
