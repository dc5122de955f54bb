// internal/domain/cart/pricing.go
package cart

import "github.com/shopspring/decimal"

// Business pricing constants. These are fixed storefront rules, kept as
// named values so a rate change touches exactly one place.
var (
	// FreeShippingThreshold is the post-discount subtotal at which shipping is free
	FreeShippingThreshold = decimal.NewFromInt(75)

	// ReducedShippingThreshold is the post-discount subtotal for the reduced rate
	ReducedShippingThreshold = decimal.NewFromInt(50)

	// ReducedShippingCost applies between the two thresholds
	ReducedShippingCost = decimal.RequireFromString("5.99")

	// StandardShippingCost applies below the reduced threshold
	StandardShippingCost = decimal.RequireFromString("9.99")

	// TaxRate is the flat tax applied to (subtotal - discount + shipping)
	TaxRate = decimal.RequireFromString("0.08")
)

// Totals are the derived order amounts. They are recomputed on every read,
// never cached.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// ComputeTotals derives order totals from line items and the active promo.
// Only percentage promos reduce the subtotal; the shipping tier is evaluated
// against the post-discount subtotal.
func ComputeTotals(items []LineItem, promo *Promo) Totals {
	if len(items) == 0 {
		// An empty cart owes nothing, including shipping.
		return Totals{
			Subtotal: decimal.Zero,
			Discount: decimal.Zero,
			Shipping: decimal.Zero,
			Tax:      decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	subtotal := decimal.Zero
	itemCount := 0
	for i := range items {
		subtotal = subtotal.Add(items[i].LineTotal())
		itemCount += items[i].Quantity
	}

	discount := decimal.Zero
	if promo != nil && promo.Kind == PromoPercentage {
		discount = subtotal.Mul(promo.Percent).Div(decimal.NewFromInt(100)).Round(2)
	}

	discounted := subtotal.Sub(discount)
	shipping := ShippingCost(discounted)
	tax := discounted.Add(shipping).Mul(TaxRate).Round(2)
	total := discounted.Add(shipping).Add(tax)

	return Totals{
		Subtotal:  subtotal,
		Discount:  discount,
		Shipping:  shipping,
		Tax:       tax,
		Total:     total,
		ItemCount: itemCount,
	}
}

// ShippingCost selects the flat shipping fee for a post-discount subtotal
func ShippingCost(subtotal decimal.Decimal) decimal.Decimal {
	switch {
	case subtotal.GreaterThanOrEqual(FreeShippingThreshold):
		return decimal.Zero
	case subtotal.GreaterThanOrEqual(ReducedShippingThreshold):
		return ReducedShippingCost
	default:
		return StandardShippingCost
	}
}
