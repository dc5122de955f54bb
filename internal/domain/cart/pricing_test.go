// internal/domain/cart/pricing_test.go
package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lineItem(price string, qty int) LineItem {
	return LineItem{
		ProductID: 1,
		Size:      "Small (6 oz)",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
		Stock:     100,
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
	assert.Equal(t, 0, totals.ItemCount)
}

func TestComputeTotalsFreeShippingWithTax(t *testing.T) {
	items := []LineItem{lineItem("32.00", 2), lineItem("48.00", 1)} // subtotal 112.00

	totals := ComputeTotals(items, nil)

	assert.Equal(t, "112", totals.Subtotal.String())
	assert.True(t, totals.Shipping.IsZero(), "orders over the threshold ship free")
	assert.Equal(t, "8.96", totals.Tax.String())
	assert.Equal(t, "120.96", totals.Total.String())
	assert.Equal(t, 3, totals.ItemCount)
}

func TestComputeTotalsStandardShipping(t *testing.T) {
	items := []LineItem{lineItem("32.00", 1)}

	totals := ComputeTotals(items, nil)

	assert.Equal(t, "9.99", totals.Shipping.String())
	// tax = (32.00 + 9.99) * 0.08 = 3.3592 -> 3.36
	assert.Equal(t, "3.36", totals.Tax.String())
	assert.Equal(t, "45.35", totals.Total.String())
}

func TestComputeTotalsReducedShipping(t *testing.T) {
	items := []LineItem{lineItem("50.00", 1)}

	totals := ComputeTotals(items, nil)

	assert.Equal(t, "5.99", totals.Shipping.String())
}

func TestComputeTotalsPercentageDiscount(t *testing.T) {
	items := []LineItem{lineItem("100.00", 1)}
	promo, ok := LookupPromo("SAVE10")
	assert.True(t, ok)

	totals := ComputeTotals(items, &promo)

	assert.Equal(t, "10", totals.Discount.String())
	// post-discount subtotal 90.00 still clears the free shipping threshold
	assert.True(t, totals.Shipping.IsZero())
	assert.Equal(t, "7.2", totals.Tax.String())
	assert.Equal(t, "97.2", totals.Total.String())
}

func TestComputeTotalsDiscountCanDropShippingTier(t *testing.T) {
	// 80.00 ships free, but a 15% discount brings it to 68.00 which does not
	items := []LineItem{lineItem("80.00", 1)}
	promo, ok := LookupPromo("WELCOME15")
	assert.True(t, ok)

	totals := ComputeTotals(items, &promo)

	assert.Equal(t, "12", totals.Discount.String())
	assert.Equal(t, "5.99", totals.Shipping.String())
}

func TestComputeTotalsFreeShippingPromoHasNoNumericEffect(t *testing.T) {
	items := []LineItem{lineItem("80.00", 1)}
	promo, ok := LookupPromo("FREESHIP75")
	assert.True(t, ok)

	withPromo := ComputeTotals(items, &promo)
	withoutPromo := ComputeTotals(items, nil)

	assert.True(t, withPromo.Total.Equal(withoutPromo.Total))
	assert.True(t, withPromo.Discount.IsZero())
}

func TestShippingCostTiers(t *testing.T) {
	tests := []struct {
		subtotal string
		want     string
	}{
		{"75.00", "0"},
		{"74.99", "5.99"},
		{"50.00", "5.99"},
		{"49.99", "9.99"},
		{"0.01", "9.99"},
	}

	for _, tt := range tests {
		got := ShippingCost(decimal.RequireFromString(tt.subtotal))
		assert.Equal(t, tt.want, got.String(), "subtotal %s", tt.subtotal)
	}
}
